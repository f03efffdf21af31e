package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/egg-run/internal/config"
	"github.com/vovakirdan/egg-run/internal/games/eggrun"
)

func testWorld(t *testing.T) *eggrun.World {
	t.Helper()
	cfg := config.DefaultEggRunConfig()
	return eggrun.Generate(cfg, cfg.Level.ScreenHeight, eggrun.NewRand(42))
}

func TestRows(t *testing.T) {
	w := testWorld(t)
	rows := Rows(w)

	want := 1 + len(w.Background) + len(w.Clouds) + len(w.Platforms) + len(w.Eggs) + len(w.Chickens) + len(w.Spikes) + 1
	if len(rows) != want {
		t.Fatalf("got %d rows, expected %d", len(rows), want)
	}

	if rows[0].Kind != KindPlayer {
		t.Errorf("first row kind = %q, expected player", rows[0].Kind)
	}
	if last := rows[len(rows)-1]; last.Kind != KindHouse || last.X != w.House.Rect.X {
		t.Errorf("last row = %+v, expected the house", last)
	}

	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Kind]++
	}
	if counts[KindGround] != 7 || counts[KindBar] != 60 {
		t.Errorf("platform rows: ground %d, bar %d, expected 7 and 60", counts[KindGround], counts[KindBar])
	}
	if counts[KindChicken] != 20 {
		t.Errorf("chicken rows = %d, expected 20", counts[KindChicken])
	}
}

func TestRowsKeepVelocity(t *testing.T) {
	w := testWorld(t)
	rows := Rows(w)

	for _, r := range rows {
		if r.Kind == KindChicken && r.Index == 0 {
			c := w.Chickens[0]
			if r.VX != c.Velocity.X || r.VY != c.Velocity.Y {
				t.Errorf("chicken row velocity = (%v, %v), expected %+v", r.VX, r.VY, c.Velocity)
			}
			return
		}
	}
	t.Fatalf("no chicken row found")
}

func TestRowsBarIndexRestarts(t *testing.T) {
	rows := Rows(testWorld(t))
	for _, r := range rows {
		if r.Kind == KindBar {
			if r.Index != 0 {
				t.Errorf("first bar index = %d, expected 0", r.Index)
			}
			return
		}
	}
}

func TestWriteCSV(t *testing.T) {
	rows := Rows(testWorld(t))

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if header != "kind,index,x,y,w,h,vx,vy" {
		t.Errorf("header = %q", header)
	}

	var back []EntityRow
	if err := gocsv.Unmarshal(&buf, &back); err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(back) != len(rows) {
		t.Fatalf("read %d rows, wrote %d", len(back), len(rows))
	}
	for i := range rows {
		if back[i].Kind != rows[i].Kind || back[i].Index != rows[i].Index {
			t.Fatalf("row %d = %+v, expected %+v", i, back[i], rows[i])
		}
	}
}

func TestWriteYAML(t *testing.T) {
	rows := Rows(testWorld(t))

	var buf bytes.Buffer
	if err := WriteYAML(&buf, 42, rows); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if doc.Seed != 42 {
		t.Errorf("seed = %d, expected 42", doc.Seed)
	}
	if len(doc.Entities) != len(rows) {
		t.Fatalf("read %d entities, wrote %d", len(doc.Entities), len(rows))
	}
	if doc.Entities[0].Kind != KindPlayer {
		t.Errorf("first entity kind = %q", doc.Entities[0].Kind)
	}
}

func TestTraceWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraceWriter(&buf)

	snap := eggrun.Snapshot{State: "game", PlayerX: 10, PlayerY: 20, Score: 1}
	events := []eggrun.Event{eggrun.JumpedEvent{}, eggrun.ScoredEvent{Score: 1}}

	if err := tw.Write(TraceFrom(1, snap, events)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := tw.Write(TraceFrom(2, snap, nil)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected header and two rows:\n%s", len(lines), buf.String())
	}
	if lines[0] != "frame,state,x,y,vx,vy,score,events" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "jumped;scored(1)") {
		t.Errorf("first row = %q, expected events at the end", lines[1])
	}
	if tw.Rows() != 2 {
		t.Errorf("Rows() = %d, expected 2", tw.Rows())
	}
}
