package physics

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-physics/shared/gamemath"
)

type hit struct {
	side  Side
	other *Body
	loss  float64
}

// record captures every notification b receives.
func record(b *Body) *[]hit {
	hits := &[]hit{}
	b.OnCollision = func(side Side, other *Body, moveLoss float64) {
		*hits = append(*hits, hit{side, other, moveLoss})
	}
	return hits
}

func newTestSpace(bodies ...*Body) *Space {
	s := NewSpace(640, 480, 16, 16)
	s.Add(bodies...)
	return s
}

func assertNear(t *testing.T, what string, got, want float64) {
	t.Helper()
	if !gamemath.Flush(got, want) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func assertPanics(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", want)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("panic = %v, want %v", r, want)
		}
	}()
	fn()
}
