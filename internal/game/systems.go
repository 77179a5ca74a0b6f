package game

// updateSpotlights is the spotlight check phase: refresh every player's
// sticky in-spotlight flag from current positions, then fire dialogue
// activations for rising edges. Region memory is refreshed even while a
// player is mid-dialogue so a later re-entry is still a single edge.
func updateSpotlights(r *Room) {
	for _, p := range r.Players {
		tr := r.World.Transform(p.Avatar)
		if tr == nil {
			continue
		}

		inside := false
		for _, s := range r.Spotlights {
			if s.Contains(tr.Pos) {
				inside = true
				break
			}
		}

		for _, t := range r.Triggers {
			entered := t.ObserveRegion(p.ID, tr.Pos)
			if t.Spotlight != nil && t.Spotlight.Contains(tr.Pos) {
				inside = true
			}
			if !entered || p.InDialogue() {
				continue
			}
			if entry := t.ActivateSpotlight(); entry != nil {
				r.beginDialogueLocked(p, t, entry)
			}
		}

		p.Gate.SetInSpotlight(inside)
	}
}

// updateTriggers is the dialogue check phase: consume interact latches and
// route them to the nearest trigger that accepts the interaction channel.
func updateTriggers(r *Room) {
	for _, p := range r.Players {
		if !p.interact {
			continue
		}
		p.interact = false

		if p.InDialogue() {
			continue
		}
		tr := r.World.Transform(p.Avatar)
		if tr == nil {
			continue
		}
		for _, t := range r.Triggers {
			if entry := t.HandleInteract(tr.Pos); entry != nil {
				r.beginDialogueLocked(p, t, entry)
				break
			}
		}
	}
}

// updateMovement recomputes each player's gate decision for this tick and
// integrates motion. Input gathered earlier is discarded, not merely
// ignored, whenever the fresh decision is false; re-enabling movement must
// not replay a stale direction.
func updateMovement(r *Room, dt float64) {
	for _, p := range r.Players {
		canMove := p.Gate.Tick(p.Presenter.IsDialogueActive())

		tr := r.World.Transform(p.Avatar)
		mov := r.World.Movement(p.Avatar)
		if tr == nil || mov == nil {
			continue
		}

		if !canMove {
			p.input = Vec2{}
			tr.Vel = Vec2{}
			continue
		}

		dir := p.input.Normalized(MoveInputEps)
		if dir == (Vec2{}) {
			tr.Vel = Vec2{}
			continue
		}
		tr.Vel = dir.Scale(mov.MaxSpeed)
		tr.Pos = tr.Pos.Add(tr.Vel.Scale(dt))
		tr.Pos.X = Clamp(tr.Pos.X, 0, r.WorldWidth)
		tr.Pos.Y = Clamp(tr.Pos.Y, 0, r.WorldHeight)
	}
}
