package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/automoto/doomerang-physics/scenes"
)

// traceRecord is one CSV row: a collider's state after a tick.
type traceRecord struct {
	Tick     int     `csv:"tick"`
	Name     string  `csv:"name"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	SpeedX   float64 `csv:"speed_x"`
	SpeedY   float64 `csv:"speed_y"`
	OnGround bool    `csv:"on_ground"`
}

// traceWriter appends collider state to a CSV stream. A nil writer discards.
type traceWriter struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// newTraceWriter creates the trace file. It returns nil if path is empty.
func newTraceWriter(path string) (*traceWriter, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace %s: %w", path, err)
	}
	return &traceWriter{w: f, closer: f}, nil
}

func (tw *traceWriter) Write(tick int, colliders []scenes.ColliderState) error {
	if tw == nil || len(colliders) == 0 {
		return nil
	}

	records := make([]traceRecord, 0, len(colliders))
	for _, c := range colliders {
		records = append(records, traceRecord{
			Tick:     tick,
			Name:     c.Name,
			X:        c.X,
			Y:        c.Y,
			SpeedX:   c.SpeedX,
			SpeedY:   c.SpeedY,
			OnGround: c.OnGround,
		})
	}

	if !tw.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, tw.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		tw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, tw.w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

func (tw *traceWriter) Close() error {
	if tw == nil || tw.closer == nil {
		return nil
	}
	return tw.closer.Close()
}
