package game

import (
	"fmt"
	"testing"

	"Emberwick/internal/dialogue"
)

func interactionDef(entryCount int) dialogue.TriggerDef {
	def := dialogue.TriggerDef{
		ID:            "npc.test",
		Name:          "Test NPC",
		X:             10,
		Y:             10,
		OnInteraction: true,
	}
	for i := 0; i < entryCount; i++ {
		def.Entries = append(def.Entries, dialogue.EntryDef{
			Speaker: "NPC",
			Text:    fmt.Sprintf("line %d", i),
		})
	}
	return def
}

func spotlightDef(entryCount int) dialogue.TriggerDef {
	def := dialogue.TriggerDef{
		ID:          "scene.test",
		X:           5,
		Y:           5,
		OnSpotlight: true,
		Spotlight:   &dialogue.RegionDef{ID: "spot.test", X: 5, Y: 5, Radius: 3},
	}
	for i := 0; i < entryCount; i++ {
		def.Entries = append(def.Entries, dialogue.EntryDef{
			Text: fmt.Sprintf("scene line %d", i),
		})
	}
	return def
}

func TestInteractionAdvancesThroughSequence(t *testing.T) {
	trig := NewDialogueTrigger(interactionDef(2))
	at := Vec2{X: 10, Y: 10}

	first := trig.HandleInteract(at)
	if first == nil || first.Text != "line 0" {
		t.Fatalf("first interaction: got %+v, want line 0", first)
	}
	if got := trig.Sequence.Cursor(); got != 1 {
		t.Fatalf("cursor after first interaction = %d, want 1", got)
	}
	if trig.Sequence.Exhausted() {
		t.Fatalf("sequence should not be exhausted after first of two entries")
	}

	second := trig.HandleInteract(at)
	if second == nil || second.Text != "line 1" {
		t.Fatalf("second interaction: got %+v, want line 1", second)
	}
	if !trig.Sequence.Exhausted() {
		t.Fatalf("sequence should be exhausted after the final entry")
	}

	if extra := trig.HandleInteract(at); extra != nil {
		t.Fatalf("exhausted trigger should yield nothing, got %+v", extra)
	}
}

func TestInteractionRadius(t *testing.T) {
	trig := NewDialogueTrigger(interactionDef(3))

	if e := trig.HandleInteract(Vec2{X: 13, Y: 10}); e != nil {
		t.Fatalf("interaction outside radius should yield nothing")
	}
	if got := trig.Sequence.Cursor(); got != 0 {
		t.Fatalf("out-of-range interaction must not advance the cursor, got %d", got)
	}
	// Boundary is inclusive at exactly InteractRadius.
	if e := trig.HandleInteract(Vec2{X: 10 + InteractRadius, Y: 10}); e == nil {
		t.Fatalf("interaction at exact radius should activate")
	}
}

func TestDisabledChannelsNeverActivate(t *testing.T) {
	def := interactionDef(2)
	def.OnInteraction = false
	trig := NewDialogueTrigger(def)

	if e := trig.HandleInteract(Vec2{X: 10, Y: 10}); e != nil {
		t.Fatalf("disabled interaction channel activated: %+v", e)
	}
	if e := trig.ActivateSpotlight(); e != nil {
		t.Fatalf("disabled spotlight channel activated: %+v", e)
	}
	if got := trig.Sequence.Cursor(); got != 0 {
		t.Fatalf("cursor moved on a trigger with no enabled channels: %d", got)
	}
}

func TestSpotlightRisingEdge(t *testing.T) {
	trig := NewDialogueTrigger(spotlightDef(3))
	inside := Vec2{X: 5, Y: 5}
	outside := Vec2{X: 20, Y: 20}

	if trig.ObserveRegion("p1", outside) {
		t.Fatalf("no edge expected while outside")
	}
	if !trig.ObserveRegion("p1", inside) {
		t.Fatalf("entering the region should report a rising edge")
	}
	if trig.ObserveRegion("p1", inside) {
		t.Fatalf("staying inside must not report another edge")
	}
	if trig.ObserveRegion("p1", outside) {
		t.Fatalf("leaving is not an edge")
	}
	if !trig.ObserveRegion("p1", inside) {
		t.Fatalf("re-entry should report a fresh rising edge")
	}
}

func TestSpotlightEdgesTrackedPerPlayer(t *testing.T) {
	trig := NewDialogueTrigger(spotlightDef(3))
	inside := Vec2{X: 5, Y: 5}

	if !trig.ObserveRegion("p1", inside) {
		t.Fatalf("p1 entry should be an edge")
	}
	if !trig.ObserveRegion("p2", inside) {
		t.Fatalf("p2 entry should be an edge independent of p1")
	}

	trig.ForgetPlayer("p1")
	if !trig.ObserveRegion("p1", inside) {
		t.Fatalf("forgotten player re-entering should be an edge again")
	}
}

func TestSpotlightActivationAndReset(t *testing.T) {
	trig := NewDialogueTrigger(spotlightDef(1))

	if e := trig.ActivateSpotlight(); e == nil || e.Text != "scene line 0" {
		t.Fatalf("first spotlight activation: got %+v", e)
	}
	if e := trig.ActivateSpotlight(); e != nil {
		t.Fatalf("exhausted activation should yield nothing, got %+v", e)
	}

	trig.Sequence.Reset()
	if e := trig.ActivateSpotlight(); e == nil {
		t.Fatalf("activation after reset should yield the first entry again")
	}
}

func TestChoiceFlagLookup(t *testing.T) {
	def := interactionDef(2)
	def.Entries[1].Choices = []dialogue.ChoiceDef{
		{Text: "Agree", SetFlag: "test.agreed"},
		{Text: "Refuse"},
	}
	trig := NewDialogueTrigger(def)

	if got := trig.ChoiceFlag(1, 0); got != "test.agreed" {
		t.Fatalf("ChoiceFlag(1,0) = %q, want test.agreed", got)
	}
	if got := trig.ChoiceFlag(1, 1); got != "" {
		t.Fatalf("ChoiceFlag(1,1) = %q, want empty", got)
	}
	if got := trig.ChoiceFlag(0, 0); got != "" {
		t.Fatalf("entry without choices should yield empty flag, got %q", got)
	}
	if got := trig.ChoiceFlag(5, 0); got != "" {
		t.Fatalf("out-of-range entry should yield empty flag, got %q", got)
	}
}

func TestSpotlightCheckPlayerSetsGateFlag(t *testing.T) {
	s := SpotlightRegion{ID: "s", Center: Vec2{X: 0, Y: 0}, Radius: 2}
	p := &Player{Gate: NewMovementGate()}

	if !s.CheckPlayer(p, Vec2{X: 1, Y: 0}) {
		t.Fatalf("position inside the region should report inside")
	}
	if !p.Gate.InSpotlight() {
		t.Fatalf("check should set the gate's spotlight flag")
	}
	if s.CheckPlayer(p, Vec2{X: 5, Y: 0}) {
		t.Fatalf("position outside the region should report outside")
	}
	if p.Gate.InSpotlight() {
		t.Fatalf("check should clear the gate's spotlight flag")
	}
}

func TestSpotlightContainsBoundary(t *testing.T) {
	s := SpotlightRegion{ID: "s", Center: Vec2{X: 0, Y: 0}, Radius: 2}
	if !s.Contains(Vec2{X: 2, Y: 0}) {
		t.Fatalf("boundary should count as inside")
	}
	if s.Contains(Vec2{X: 2.001, Y: 0}) {
		t.Fatalf("just outside the boundary should not count as inside")
	}
}
