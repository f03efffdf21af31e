package eggrun

// resolve runs the end-of-frame checks in priority order: falling out of
// the world, egg pickup, chickens, spikes, then the house. The first three
// deaths end the frame immediately. Egg pickup never ends a run but does
// count towards a death's score and the house thresholds in the same frame.
func (g *Game) resolve(w *World) []Event {
	margin := g.cfg.Physics.CollisionMargin
	player := w.Player.CollisionRect(margin)

	if w.Player.Rect.Bottom() > g.cfg.Level.ScreenHeight+g.cfg.Physics.FallMargin {
		return g.end(DeathReason{Cause: CauseFall, Score: w.Score}, nil)
	}

	var events []Event

	kept := w.Eggs[:0]
	for _, egg := range w.Eggs {
		if player.Overlaps(egg.CollisionRect(margin)) {
			w.Score++
			events = append(events, ScoredEvent{Score: w.Score})
			continue
		}
		kept = append(kept, egg)
	}
	w.Eggs = kept

	for _, c := range w.Chickens {
		if player.Overlaps(c.CollisionRect(margin)) {
			return g.end(DeathReason{Cause: CauseChicken, Score: w.Score}, events)
		}
	}

	for _, s := range w.Spikes {
		if player.Overlaps(s.CollisionRect(margin)) {
			return g.end(DeathReason{Cause: CauseSpike, Score: w.Score}, events)
		}
	}

	if player.Overlaps(w.House.CollisionRect(margin)) {
		switch {
		case w.Score >= WinThreshold:
			return g.end(WinReason{}, events)
		case w.Score >= HouseThreshold:
			return g.end(EndReason{Meme: g.rng.Int(0, MemeCount)}, events)
		}
	}

	return events
}
