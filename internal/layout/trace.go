package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/egg-run/internal/games/eggrun"
)

// TraceRow is the state of a headless run after one frame.
type TraceRow struct {
	Frame  int     `csv:"frame"`
	State  string  `csv:"state"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	VX     float64 `csv:"vx"`
	VY     float64 `csv:"vy"`
	Score  int     `csv:"score"`
	Events string  `csv:"events"` // Semicolon separated, in emission order
}

// TraceFrom builds a row from a snapshot taken after the frame and the
// events the frame produced.
func TraceFrom(frame int, snap eggrun.Snapshot, events []eggrun.Event) TraceRow {
	names := make([]string, len(events))
	for i, ev := range events {
		names[i] = ev.String()
	}
	return TraceRow{
		Frame:  frame,
		State:  snap.State,
		X:      snap.PlayerX,
		Y:      snap.PlayerY,
		VX:     snap.VelX,
		VY:     snap.VelY,
		Score:  snap.Score,
		Events: strings.Join(names, ";"),
	}
}

// TraceWriter streams trace rows as CSV, writing the header with the
// first row.
type TraceWriter struct {
	out           io.Writer
	headerWritten bool
	rows          int
}

// NewTraceWriter creates a writer on out.
func NewTraceWriter(out io.Writer) *TraceWriter {
	return &TraceWriter{out: out}
}

// Write appends one row.
func (t *TraceWriter) Write(row TraceRow) error {
	records := []TraceRow{row}

	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.out); err != nil {
			return fmt.Errorf("layout: writing trace: %w", err)
		}
		t.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, t.out); err != nil {
			return fmt.Errorf("layout: writing trace: %w", err)
		}
	}

	t.rows++
	return nil
}

// Rows returns the number of rows written.
func (t *TraceWriter) Rows() int {
	return t.rows
}
