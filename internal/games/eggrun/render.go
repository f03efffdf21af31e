package eggrun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/egg-run/internal/core"
)

// Visual characters for rendering
const (
	CloudChar       = '░'
	GroundChar      = '█'
	BarChar         = '▀'
	HouseChar       = '▓'
	DoorChar        = '▌'
	EggChar         = 'o'
	SpikeChar       = '^'
	ChickenChar     = 'V'
	PlayerRightChar = '▶'
	PlayerLeftChar  = '◀'
)

const (
	CellAspect       = 2 // A terminal cell is about twice as tall as it is wide
	minRowsForLayout = 8
)

// MemeCaptions are the texts of the alternate endings, indexed by
// EndReason.Meme.
var MemeCaptions = [MemeCount]string{
	"You came home with eggs. Mum expected an omelette.",
	"Two eggs? The chickens are unionising.",
	"Achievement unlocked: Mediocre Egg Hunter",
	"The house accepts your offering. Barely.",
	"Breakfast for one. Nobody else is invited.",
	"Eggsistential crisis: was it worth it?",
	"The chickens will remember this.",
	"Not bad. Not great. Scrambled.",
}

// Scale returns the world units covered by one column and one row when the
// logical screen height is spread over rows terminal rows.
func Scale(screenHeight float64, rows int) (colW, rowH float64) {
	rows = max(rows, 1)
	rowH = screenHeight / float64(rows)
	return rowH / CellAspect, rowH
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Height() < minRowsForLayout {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightRed)
		return
	}

	switch s := g.state.(type) {
	case StartState:
		g.renderStart(dst)
	case GameState:
		g.renderWorld(dst, s.World)
		g.renderHUD(dst, s.World)
	case GameOverState:
		g.renderGameOver(dst, s.Reason)
	}
}

func (g *Game) renderStart(dst *core.Screen) {
	drawCenteredBox(dst, core.ColorBrightYellow,
		"EGG RUN",
		"Collect eggs, dodge chickens and spikes, reach the house.",
		"←/→ or A/D run   ↑/W/Space jump",
		"Press P to start",
	)
}

func (g *Game) renderGameOver(dst *core.Screen, reason Reason) {
	const restart = "Press R to restart"

	switch r := reason.(type) {
	case DeathReason:
		drawCenteredBox(dst, core.ColorBrightRed,
			"GAME OVER",
			deathCaption(r.Cause),
			fmt.Sprintf("Final Score: %d", r.Score),
			restart,
		)
	case EndReason:
		drawCenteredBox(dst, core.ColorMagenta,
			"THE END?",
			MemeCaptions[r.Meme%MemeCount],
			restart,
		)
	case WinReason:
		drawCenteredBox(dst, core.ColorBrightYellow,
			"YOU WIN!",
			"Every egg made it home.",
			restart,
		)
	}
}

func deathCaption(c DeathCause) string {
	switch c {
	case CauseChicken:
		return "Pecked by a chicken"
	case CauseSpike:
		return "Impaled on a spike"
	case CauseFall:
		return "Fell off the world"
	default:
		return "Died"
	}
}

// renderWorld draws entities back to front.
func (g *Game) renderWorld(dst *core.Screen, w *World) {
	colW, rowH := Scale(g.cfg.Level.ScreenHeight, dst.Height())
	v := view{
		dst:  dst,
		camX: g.Camera(float64(dst.Width()) * colW),
		colW: colW,
		rowH: rowH,
	}

	for _, c := range w.Clouds {
		v.fill(c.Rect, CloudChar, core.ColorGray)
	}
	for i, p := range w.Platforms {
		if i < w.Ground {
			v.fill(p.Rect, GroundChar, core.ColorBrown)
		} else {
			v.fill(p.Rect, BarChar, core.ColorGreen)
		}
	}

	v.fill(w.House.Rect, HouseChar, core.ColorOrange)
	door := w.House.Rect
	door.X += door.W / 2
	door.W = colW
	door.Y += door.H * 0.75
	door.H *= 0.25
	v.fill(door, DoorChar, core.ColorBrown)

	for _, e := range w.Eggs {
		v.fill(e.Rect, EggChar, core.ColorBrightWhite)
	}
	for _, s := range w.Spikes {
		v.fill(s.Rect, SpikeChar, core.ColorWhite)
	}
	for _, c := range w.Chickens {
		v.fill(c.Rect, ChickenChar, core.ColorYellow)
	}

	glyph := PlayerRightChar
	if w.Facing == FacingLeft {
		glyph = PlayerLeftChar
	}
	v.fill(w.Player.Rect, glyph, core.ColorBrightCyan)
}

func (g *Game) renderHUD(dst *core.Screen, w *World) {
	hud := fmt.Sprintf(" Score: %d/%d  Eggs: %d/%d ", w.Score, WinThreshold, w.Score, HouseThreshold)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// view maps world rectangles onto screen cells.
type view struct {
	dst        *core.Screen
	camX       float64
	colW, rowH float64
}

// cells returns the cell rectangle covered by r. Anything visible covers
// at least one cell.
func (v view) cells(r core.Rect) core.CellRect {
	x0 := int(math.Floor((r.X - v.camX) / v.colW))
	y0 := int(math.Floor(r.Y / v.rowH))
	x1 := int(math.Ceil((r.Right() - v.camX) / v.colW))
	y1 := int(math.Ceil(r.Bottom() / v.rowH))
	return core.CellRect{X: x0, Y: y0, W: max(x1-x0, 1), H: max(y1-y0, 1)}
}

func (v view) fill(r core.Rect, glyph rune, c core.Color) {
	cr := v.cells(r)
	if cr.Right() < 0 || cr.X >= v.dst.Width() || cr.Bottom() < 0 || cr.Y >= v.dst.Height() {
		return
	}
	v.dst.DrawRect(cr, glyph, c)
}

// drawCenteredBox draws a bordered message box in the middle of the
// screen: a coloured title, a rule, then lines of text.
func drawCenteredBox(dst *core.Screen, c core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width = min(width+4, dst.Width())

	box := core.CellRect{W: width, H: len(lines)*2 + 3}
	box.X = (dst.Width() - box.W) / 2
	box.Y = max((dst.Height()-box.H)/2, 0)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawHLine(box.X+1, box.Y+2, box.W-2, '─', c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i*2, l, core.ColorDefault)
	}
}
