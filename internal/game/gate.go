package game

// MovementGate owns one player's locomotion-enable state. Every signal that
// can suppress movement (active dialogue, spotlight occupancy, explicit
// disables) is reconciled here into a single decision per tick; callers must
// not carry the decision across ticks.
//
// Precedence, higher overrides lower:
//  1. dialogue active: movement suppressed unconditionally
//  2. player in spotlight: movement suppressed (spotlight is a modal state)
//  3. otherwise movement permitted, overriding any earlier manual Disable
//
// A manual Disable therefore lasts until the next recompute unless the caller
// re-disables; Disable is for interrupting movement mid-tick, not for
// long-lived locks.
type MovementGate struct {
	canMove        bool
	inSpotlight    bool
	dialogueActive bool // last observed dialogue flag, consulted by Enable
}

func NewMovementGate() *MovementGate {
	return &MovementGate{canMove: true}
}

// SetInSpotlight updates the sticky spotlight flag. Written by the spotlight
// check phase, read by Tick later in the same tick.
func (g *MovementGate) SetInSpotlight(inside bool) {
	g.inSpotlight = inside
}

// Disable suppresses movement immediately, interrupting movement that was
// already permitted this tick.
func (g *MovementGate) Disable() {
	g.canMove = false
}

// Enable requests movement. The request is refused while dialogue is active;
// otherwise movement is permitted unless the spotlight suppresses it.
//
// The dialogue flag consulted here is the one observed by the last Tick. An
// Enable issued after dialogue starts but before the next recompute is
// therefore honored for at most one tick; Tick suppresses it again as soon as
// it observes the live flag.
func (g *MovementGate) Enable() {
	if g.dialogueActive {
		return
	}
	g.canMove = !g.inSpotlight
}

// Tick recomputes the movement decision from the current signals and returns
// it. Permission from a previous tick is never retained once a suppressing
// condition holds.
func (g *MovementGate) Tick(dialogueActive bool) bool {
	g.dialogueActive = dialogueActive
	switch {
	case dialogueActive:
		g.canMove = false
	case g.inSpotlight:
		g.canMove = false
	default:
		g.canMove = true
	}
	return g.canMove
}

// CanMove returns the most recent decision.
func (g *MovementGate) CanMove() bool { return g.canMove }

// InSpotlight returns the sticky spotlight flag.
func (g *MovementGate) InSpotlight() bool { return g.inSpotlight }
