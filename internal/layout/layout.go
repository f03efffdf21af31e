// Package layout exports Egg Run levels and simulation traces as CSV and
// YAML for inspection outside the game.
package layout

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/egg-run/internal/games/eggrun"
)

// Entity kinds as they appear in exported rows.
const (
	KindPlayer     = "player"
	KindBackground = "background"
	KindCloud      = "cloud"
	KindGround     = "ground"
	KindBar        = "bar"
	KindEgg        = "egg"
	KindChicken    = "chicken"
	KindSpike      = "spike"
	KindHouse      = "house"
)

// EntityRow is one entity of a level, flattened for export.
// Index is the position within its kind.
type EntityRow struct {
	Kind  string  `csv:"kind" yaml:"kind"`
	Index int     `csv:"index" yaml:"index"`
	X     float64 `csv:"x" yaml:"x"`
	Y     float64 `csv:"y" yaml:"y"`
	W     float64 `csv:"w" yaml:"w"`
	H     float64 `csv:"h" yaml:"h"`
	VX    float64 `csv:"vx" yaml:"vx,omitempty"`
	VY    float64 `csv:"vy" yaml:"vy,omitempty"`
}

// Document is the YAML form of a level.
type Document struct {
	Seed     int64       `yaml:"seed"`
	Entities []EntityRow `yaml:"entities"`
}

// Rows flattens a world in generation order: player, background, clouds,
// ground platforms, floating bars, eggs, chickens, spikes, house.
func Rows(w *eggrun.World) []EntityRow {
	var rows []EntityRow

	rows = append(rows, moving(KindPlayer, 0, w.Player))
	for i, e := range w.Background {
		rows = append(rows, static(KindBackground, i, e))
	}
	for i, c := range w.Clouds {
		rows = append(rows, moving(KindCloud, i, c))
	}
	for i, p := range w.Platforms {
		if i < w.Ground {
			rows = append(rows, static(KindGround, i, p))
		} else {
			rows = append(rows, static(KindBar, i-w.Ground, p))
		}
	}
	for i, e := range w.Eggs {
		rows = append(rows, static(KindEgg, i, e))
	}
	for i, c := range w.Chickens {
		rows = append(rows, moving(KindChicken, i, c))
	}
	for i, s := range w.Spikes {
		rows = append(rows, static(KindSpike, i, s))
	}
	rows = append(rows, static(KindHouse, 0, w.House))

	return rows
}

func static(kind string, i int, e eggrun.Entity) EntityRow {
	r := e.Rect
	return EntityRow{Kind: kind, Index: i, X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func moving(kind string, i int, m eggrun.MovingEntity) EntityRow {
	row := static(kind, i, m.Entity)
	row.VX = m.Velocity.X
	row.VY = m.Velocity.Y
	return row
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []EntityRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("layout: writing csv: %w", err)
	}
	return nil
}

// WriteYAML writes rows as a Document.
func WriteYAML(w io.Writer, seed int64, rows []EntityRow) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Seed: seed, Entities: rows}); err != nil {
		return fmt.Errorf("layout: writing yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("layout: writing yaml: %w", err)
	}
	return nil
}
