package eggrun

// Snapshot is a comparable summary of the game used to check that two
// games fed the same seed and inputs stay in lockstep.
type Snapshot struct {
	Tick   uint64
	State  string // "start", "game" or "gameover"
	Reason string // Set in gameover only

	PlayerX, PlayerY float64
	VelX, VelY       float64
	Facing           Facing
	Score            int
	EggsLeft         int
}

// Snapshot returns the current summary.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, State: StateName(g.state)}

	switch s := g.state.(type) {
	case GameOverState:
		snap.Reason = s.Reason.String()
	case GameState:
		w := s.World
		snap.PlayerX = w.Player.Rect.X
		snap.PlayerY = w.Player.Rect.Y
		snap.VelX = w.Player.Velocity.X
		snap.VelY = w.Player.Velocity.Y
		snap.Facing = w.Facing
		snap.Score = w.Score
		snap.EggsLeft = len(w.Eggs)
	}

	return snap
}

// StateName returns the short name used by Snapshot and log lines.
func StateName(s State) string {
	switch s.(type) {
	case StartState:
		return "start"
	case GameState:
		return "game"
	case GameOverState:
		return "gameover"
	default:
		return "unknown"
	}
}
