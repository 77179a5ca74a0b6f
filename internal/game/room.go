package game

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"Emberwick/internal/dialogue"
)

// Player is one connected participant: an avatar entity, a movement gate, and
// an injected presentation port. The presenter is wired in at spawn time;
// components never look it up globally.
type Player struct {
	ID        string
	Name      string
	Avatar    EntityID
	Presenter dialogue.Presenter
	Gate      *MovementGate
	Flags     map[string]bool // story flags granted by choice handlers

	input    Vec2 // sampled movement vector; discarded while the gate blocks
	interact bool // one-tick interact latch

	activeTrigger  *DialogueTrigger
	activeEntry    *dialogue.Entry
	activeEntryIdx int
	dispatcher     *dialogue.Dispatcher
}

// InDialogue reports whether a dialogue flow is in flight for this player.
func (p *Player) InDialogue() bool {
	return p.activeEntry != nil || p.Presenter.IsDialogueActive()
}

type Room struct {
	ID          string
	Now         float64
	World       *World
	Players     map[string]*Player
	Triggers    []*DialogueTrigger
	Spotlights  []*SpotlightRegion // standalone regions without dialogue
	WorldWidth  float64
	WorldHeight float64
	Mu          sync.Mutex

	done chan struct{}
}

func newRoom(id string, script *dialogue.Script) *Room {
	r := &Room{
		ID:          id,
		World:       newWorld(),
		Players:     map[string]*Player{},
		WorldWidth:  WorldW,
		WorldHeight: WorldH,
		done:        make(chan struct{}),
	}
	if script != nil {
		for _, def := range script.Triggers {
			r.Triggers = append(r.Triggers, NewDialogueTrigger(def))
		}
		for _, reg := range script.Spotlights {
			r.Spotlights = append(r.Spotlights, &SpotlightRegion{
				ID:     reg.ID,
				Center: Vec2{X: reg.X, Y: reg.Y},
				Radius: reg.Radius,
			})
		}
	}
	return r
}

type Hub struct {
	Rooms  map[string]*Room
	Mu     sync.Mutex
	script *dialogue.Script
}

func NewHub(script *dialogue.Script) *Hub {
	return &Hub{Rooms: map[string]*Room{}, script: script}
}

// GetRoom returns the room with the given id, creating it and starting its
// simulation loop on first use.
func (h *Hub) GetRoom(id string) *Room {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	return h.getRoomLocked(id)
}

func (h *Hub) getRoomLocked(id string) *Room {
	r, ok := h.Rooms[id]
	if !ok {
		r = newRoom(id, h.script)
		h.Rooms[id] = r
		go r.run()
	}
	return r
}

// JoinRoom spawns a player into the room with the given id, creating it on
// first use. Lookup and spawn both happen under Hub.Mu so a concurrent
// cleanup cannot retire the room between the two; joining a retired id lands
// in a fresh live room. Reports false when the room is full.
func (h *Hub) JoinRoom(id, name string, pres dialogue.Presenter) (*Room, *Player, bool) {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	r := h.getRoomLocked(id)
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if len(r.Players) >= RoomMaxPlayers {
		return r, nil, false
	}
	return r, r.SpawnPlayerLocked(name, pres), true
}

// CleanupEmptyRooms stops and drops rooms with no players left.
func (h *Hub) CleanupEmptyRooms() {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	for id, r := range h.Rooms {
		r.Mu.Lock()
		empty := len(r.Players) == 0
		r.Mu.Unlock()
		if empty {
			close(r.done)
			delete(h.Rooms, id)
			slog.Debug("cleaned up empty room", "room", id)
		}
	}
}

// run drives the fixed-step simulation until the room is cleaned up.
func (r *Room) run() {
	ticker := time.NewTicker(time.Duration(float64(time.Second) / SimHz))
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}

// Tick advances the simulation by one fixed step. Phase order is fixed and
// serial: spotlight check, then dialogue triggers, then the movement gate
// decision and integration. Each phase is the sole writer of its state, so
// no locking beyond Room.Mu is needed.
func (r *Room) Tick() {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	r.Now += Dt

	updateSpotlights(r)
	updateTriggers(r)
	updateMovement(r, Dt)
}

// SpawnPlayerLocked creates a player and avatar. A nil presenter is reported
// and replaced with the no-op fallback rather than crashing later. Caller
// holds Room.Mu.
func (r *Room) SpawnPlayerLocked(name string, pres dialogue.Presenter) *Player {
	if pres == nil {
		slog.Warn("player joined without presentation surface, dialogue will be absorbed", "room", r.ID)
		pres = dialogue.NoOpPresenter{}
	}
	startPos := Vec2{
		X: r.WorldWidth * 0.5,
		Y: r.WorldHeight*0.5 + float64(len(r.Players))*1.5,
	}
	id := r.World.NewEntity()
	r.World.SetComponent(id, CompTransform, &Transform{Pos: startPos})
	r.World.SetComponent(id, CompMovement, &Movement{MaxSpeed: PlayerMaxSpeed})

	p := &Player{
		ID:        uuid.NewString(),
		Name:      name,
		Avatar:    id,
		Presenter: pres,
		Gate:      NewMovementGate(),
		Flags:     make(map[string]bool),
	}
	r.World.SetComponent(id, CompOwner, &OwnerComponent{PlayerID: p.ID})
	r.Players[p.ID] = p
	return p
}

// RemovePlayerLocked drops a player, their avatar, and per-player trigger
// memory. Caller holds Room.Mu.
func (r *Room) RemovePlayerLocked(playerID string) {
	p, ok := r.Players[playerID]
	if !ok {
		return
	}
	r.World.RemoveEntity(p.Avatar)
	for _, t := range r.Triggers {
		t.ForgetPlayer(playerID)
	}
	delete(r.Players, playerID)
}

// SetInputLocked stores the sampled movement vector for the next movement
// phase. Input is discarded at the gathering step while the gate blocks, so
// no stale direction survives a re-enable. Caller holds Room.Mu.
func (r *Room) SetInputLocked(playerID string, v Vec2) {
	p, ok := r.Players[playerID]
	if !ok {
		return
	}
	if !p.Gate.CanMove() {
		p.input = Vec2{}
		return
	}
	if v.Len() > 1 {
		v = v.Normalized(MoveInputEps)
	}
	p.input = v
}

// InteractLocked latches an interact press for the next trigger phase.
// Caller holds Room.Mu.
func (r *Room) InteractLocked(playerID string) {
	if p, ok := r.Players[playerID]; ok {
		p.interact = true
	}
}

// IsMovingLocked reports whether the player's avatar is in motion. The
// answer is meaningful only while the gate permits movement; suppressed
// players always report false because their velocity is zeroed.
func (r *Room) IsMovingLocked(playerID string) bool {
	p, ok := r.Players[playerID]
	if !ok {
		return false
	}
	tr := r.World.Transform(p.Avatar)
	return tr != nil && tr.Vel.Len() > MoveInputEps
}

// beginDialogueLocked starts the presentation flow for a freshly activated
// entry. Caller holds Room.Mu.
func (r *Room) beginDialogueLocked(p *Player, t *DialogueTrigger, entry *dialogue.Entry) {
	p.activeTrigger = t
	p.activeEntry = entry
	p.activeEntryIdx = t.Sequence.Cursor() - 1
	p.Presenter.ShowDialogue(*entry)
	slog.Debug("dialogue entry shown", "room", r.ID, "player", p.ID, "trigger", t.ID, "entry", p.activeEntryIdx)
}

// AdvanceDialogueLocked handles the explicit advance (panel ack or display
// timeout) for the player's active entry. If the entry carries a choice
// prompt it is presented now and true is returned; otherwise the flow
// returns to idle and false is returned. Caller holds Room.Mu.
func (r *Room) AdvanceDialogueLocked(playerID string) bool {
	p, ok := r.Players[playerID]
	if !ok || p.activeEntry == nil {
		return false
	}
	// A prompt already awaiting its selection is never re-presented; a stray
	// advance must not replace the pending selection callback.
	if p.dispatcher != nil && p.dispatcher.State() == dialogue.FlowAwaitingChoice {
		slog.Debug("advance ignored, prompt already pending", "room", r.ID, "player", p.ID)
		return true
	}
	entry := p.activeEntry
	trig := p.activeTrigger
	entryIdx := p.activeEntryIdx

	if entry.Prompt == nil {
		r.clearDialogueLocked(p)
		return false
	}

	d := dialogue.NewDispatcher(slog.Default())
	for i := range entry.Prompt.Options {
		flag := trig.ChoiceFlag(entryIdx, i)
		if flag == "" {
			continue
		}
		f := flag
		d.Handle(i, func() { p.Flags[f] = true })
	}
	p.dispatcher = d
	err := d.Present(entry.Prompt, p.Presenter, func(index int) {
		slog.Debug("choice resolved", "room", r.ID, "player", p.ID, "trigger", trig.ID, "index", index)
		r.clearDialogueLocked(p)
	})
	if err != nil {
		slog.Warn("choice presentation failed", "room", r.ID, "player", p.ID, "err", err)
		r.clearDialogueLocked(p)
		return false
	}
	return true
}

func (r *Room) clearDialogueLocked(p *Player) {
	p.activeTrigger = nil
	p.activeEntry = nil
	p.activeEntryIdx = 0
	p.dispatcher = nil
}
