package game

import (
	"Emberwick/internal/dialogue"
)

// DialogueTrigger ties one authored dialogue sequence to a world location.
// A trigger owns exactly one sequence; the sequence cursor is shared by the
// room, while rising-edge memory for spotlight entry is tracked per player.
//
// Two activation channels feed the same cursor: spotlight entry (rising edge
// only, never re-fired while the player stays inside) and proximity
// interaction (once per explicit interact input within radius). Which channel
// wins when both could fire in one tick is decided by system iteration order.
type DialogueTrigger struct {
	ID             string
	Name           string
	Pos            Vec2
	InteractRadius float64 // center-to-center
	Sequence       *dialogue.Sequence
	Spotlight      *SpotlightRegion // nil when the trigger has no region

	def       dialogue.TriggerDef
	wasInside map[string]bool // per-player rising-edge memory
}

// NewDialogueTrigger builds the runtime trigger for an authored definition.
func NewDialogueTrigger(def dialogue.TriggerDef) *DialogueTrigger {
	radius := def.InteractRadius
	if radius <= 0 {
		radius = InteractRadius
	}
	t := &DialogueTrigger{
		ID:             def.ID,
		Name:           def.Name,
		Pos:            Vec2{X: def.X, Y: def.Y},
		InteractRadius: radius,
		Sequence:       def.Sequence(),
		def:            def,
		wasInside:      make(map[string]bool),
	}
	if def.Spotlight != nil {
		t.Spotlight = &SpotlightRegion{
			ID:     def.Spotlight.ID,
			Center: Vec2{X: def.Spotlight.X, Y: def.Spotlight.Y},
			Radius: def.Spotlight.Radius,
		}
	}
	return t
}

// ObserveRegion refreshes the player's inside/outside memory for this
// trigger's region and reports a rising edge (just entered). It must be
// called every tick for every player so re-entry is detected even while the
// player is mid-dialogue.
func (t *DialogueTrigger) ObserveRegion(playerID string, pos Vec2) bool {
	if t.Spotlight == nil {
		return false
	}
	inside := t.Spotlight.Contains(pos)
	was := t.wasInside[playerID]
	t.wasInside[playerID] = inside
	return inside && !was
}

// ActivateSpotlight advances the sequence through the spotlight channel.
// Returns nil when the channel is disabled or the sequence is exhausted.
func (t *DialogueTrigger) ActivateSpotlight() *dialogue.Entry {
	if !t.Sequence.ActivateOnSpotlight {
		return nil
	}
	return t.Sequence.Activate()
}

// HandleInteract advances the sequence through the interaction channel when
// pos is within radius. Returns nil outside the radius, when the channel is
// disabled, or when the sequence is exhausted.
func (t *DialogueTrigger) HandleInteract(pos Vec2) *dialogue.Entry {
	if !t.Sequence.ActivateOnInteraction {
		return nil
	}
	if t.Pos.Sub(pos).Len() > t.InteractRadius {
		return nil
	}
	return t.Sequence.Activate()
}

// ChoiceFlag returns the story flag granted by picking choice choiceIdx on
// entry entryIdx, or "" when the choice has no handler.
func (t *DialogueTrigger) ChoiceFlag(entryIdx, choiceIdx int) string {
	if entryIdx < 0 || entryIdx >= len(t.def.Entries) {
		return ""
	}
	choices := t.def.Entries[entryIdx].Choices
	if choiceIdx < 0 || choiceIdx >= len(choices) {
		return ""
	}
	return choices[choiceIdx].SetFlag
}

// ForgetPlayer drops per-player rising-edge memory, called when a player
// leaves the room.
func (t *DialogueTrigger) ForgetPlayer(playerID string) {
	delete(t.wasInside, playerID)
}
