package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestInspectDemo(t *testing.T) {
	flagLevel = "demo"
	t.Cleanup(func() { flagLevel = "" })

	var buf bytes.Buffer
	inspectCmd.SetOut(&buf)
	t.Cleanup(func() { inspectCmd.SetOut(nil) })

	if err := runInspect(inspectCmd, nil); err != nil {
		t.Fatalf("runInspect() error = %v", err)
	}

	want := map[string]string{"collider": "3", "mobile": "2", "slope": "4"}
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		if count, ok := want[fields[0]]; ok {
			if fields[1] != count {
				t.Errorf("%s count = %s, want %s", fields[0], fields[1], count)
			}
			delete(want, fields[0])
		}
	}
	if len(want) != 0 {
		t.Errorf("missing kinds %v in output:\n%s", want, buf.String())
	}
}

func TestListShowsDemo(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	t.Cleanup(func() { listCmd.SetOut(nil) })

	if err := runList(listCmd, nil); err != nil {
		t.Fatalf("runList() error = %v", err)
	}
	if !strings.Contains(buf.String(), "  demo\n") {
		t.Errorf("demo missing from:\n%s", buf.String())
	}
}
