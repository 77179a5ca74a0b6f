package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"Emberwick/internal/dialogue"
	"Emberwick/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// wsPresenter implements dialogue.Presenter over one websocket connection.
// Frames are queued on a buffered channel drained by the connection's writer
// goroutine, so presenter calls made under Room.Mu never block on the
// network. Lock order is always Room.Mu before the presenter's own mutex.
type wsPresenter struct {
	mu      sync.Mutex
	active  bool
	pending func(index int)
	out     chan outboundMessage
}

func newWSPresenter() *wsPresenter {
	return &wsPresenter{out: make(chan outboundMessage, 32)}
}

func (w *wsPresenter) IsDialogueActive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

func (w *wsPresenter) ShowDialogue(e dialogue.Entry) {
	w.mu.Lock()
	w.active = true
	w.mu.Unlock()
	w.send(outboundMessage{Type: "dialogue:show", Payload: dialogueShowDTO{
		Speaker:   e.Speaker,
		Text:      e.Text,
		Portrait:  e.Portrait,
		IsPlayer:  e.IsPlayer,
		DurationS: e.DurationS,
	}})
}

func (w *wsPresenter) ShowChoices(options []string, onSelected func(index int)) {
	w.mu.Lock()
	w.active = true
	w.pending = onSelected
	w.mu.Unlock()
	w.send(outboundMessage{Type: "dialogue:choices", Payload: choicesShowDTO{Options: options}})
}

// Resolve delivers a choice selection exactly once. Later or duplicate
// selections report false and are dropped by the caller.
func (w *wsPresenter) Resolve(index int) bool {
	w.mu.Lock()
	fn := w.pending
	w.pending = nil
	if fn != nil {
		w.active = false
	}
	w.mu.Unlock()
	if fn == nil {
		return false
	}
	fn(index)
	return true
}

// Dismiss clears the active flag after an entry without choices is acked.
// A pending prompt keeps the dialogue active until Resolve.
func (w *wsPresenter) Dismiss() {
	w.mu.Lock()
	if w.pending == nil {
		w.active = false
	}
	w.mu.Unlock()
}

func (w *wsPresenter) send(msg outboundMessage) {
	select {
	case w.out <- msg:
	default:
		slog.Warn("presenter frame dropped, slow client", "type", msg.Type)
	}
}

func serveWS(h *game.Hub, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	roomID := normalizeRoomID(query.Get("room"))
	name := strings.TrimSpace(query.Get("name"))
	if name == "" {
		name = "Anon"
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "err", err)
		return
	}

	pres := newWSPresenter()
	room, player, ok := h.JoinRoom(roomID, name, pres)
	if !ok {
		_ = conn.WriteJSON(outboundMessage{Type: "full", Payload: map[string]string{"message": "room full"}})
		conn.Close()
		return
	}
	playerID := player.ID

	slog.Info("player joined", "room", roomID, "player", playerID, "name", name)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader
	go func() {
		defer cancel()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var inbound inboundMessage
			if err := json.Unmarshal(data, &inbound); err != nil {
				slog.Warn("invalid JSON message", "err", err)
				continue
			}
			switch inbound.Type {
			case "join":
				var payload joinDTO
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					continue
				}
				newName := strings.TrimSpace(payload.Name)
				if newName == "" {
					continue
				}
				room.Mu.Lock()
				if p := room.Players[playerID]; p != nil {
					p.Name = newName
				}
				room.Mu.Unlock()
			case "input":
				var payload inputDTO
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					continue
				}
				v := sanitizeInput(payload.X, payload.Y)
				room.Mu.Lock()
				room.SetInputLocked(playerID, v)
				room.Mu.Unlock()
			case "interact":
				room.Mu.Lock()
				room.InteractLocked(playerID)
				room.Mu.Unlock()
			case "dialogue:ack":
				room.Mu.Lock()
				if !room.AdvanceDialogueLocked(playerID) {
					pres.Dismiss()
				}
				room.Mu.Unlock()
			case "choice:select":
				var payload choiceSelectDTO
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					continue
				}
				room.Mu.Lock()
				if !pres.Resolve(payload.Index) {
					slog.Debug("stray choice selection dropped", "player", playerID, "index", payload.Index)
				}
				room.Mu.Unlock()
			default:
				slog.Warn("unknown message type", "type", inbound.Type)
			}
		}
	}()

	// Writer: periodic state pushes plus presenter frames.
	sendTick := time.NewTicker(time.Duration(1000.0/game.UpdateRateHz) * time.Millisecond)
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-pres.out:
				if err := conn.WriteJSON(msg); err != nil {
					return
				}
			case <-sendTick.C:
				msg := buildStateMsg(room, playerID)
				if err := conn.WriteJSON(msg); err != nil {
					return
				}
			}
		}
	}()

	<-ctx.Done()
	sendTick.Stop()
	conn.Close()

	room.Mu.Lock()
	room.RemovePlayerLocked(playerID)
	room.Mu.Unlock()
	slog.Info("player left", "room", roomID, "player", playerID)
}

func buildStateMsg(room *game.Room, playerID string) stateMsg {
	room.Mu.Lock()
	defer room.Mu.Unlock()

	msg := stateMsg{
		Type:   "state",
		Now:    room.Now,
		Others: []playerDTO{},
		Meta:   roomMeta{W: room.WorldWidth, H: room.WorldHeight},
	}
	for id, p := range room.Players {
		dto := playerDTO{
			ID:          p.ID,
			Name:        p.Name,
			CanMove:     p.Gate.CanMove(),
			InSpotlight: p.Gate.InSpotlight(),
		}
		if tr := room.World.Transform(p.Avatar); tr != nil {
			dto.X, dto.Y = tr.Pos.X, tr.Pos.Y
			dto.VX, dto.VY = tr.Vel.X, tr.Vel.Y
		}
		if id == playerID {
			msg.Me = dto
			msg.Flags = copyFlags(p.Flags)
		} else {
			msg.Others = append(msg.Others, dto)
		}
	}
	for _, t := range room.Triggers {
		msg.Triggers = append(msg.Triggers, triggerDTO{
			ID:             t.ID,
			Name:           t.Name,
			X:              t.Pos.X,
			Y:              t.Pos.Y,
			InteractRadius: t.InteractRadius,
			Exhausted:      t.Sequence.Exhausted(),
		})
	}
	for _, s := range room.Spotlights {
		msg.Spotlights = append(msg.Spotlights, spotlightDTO{
			ID: s.ID, X: s.Center.X, Y: s.Center.Y, Radius: s.Radius,
		})
	}
	return msg
}

// normalizeRoomID maps user-supplied room identifiers onto a canonical form.
func normalizeRoomID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return "default"
	}
	return id
}

// sanitizeInput rejects non-finite components and leaves magnitude clamping
// to the room, which normalizes anything longer than a unit vector.
func sanitizeInput(x, y float64) game.Vec2 {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return game.Vec2{}
	}
	return game.Vec2{X: x, Y: y}
}

func copyFlags(flags map[string]bool) map[string]bool {
	if len(flags) == 0 {
		return nil
	}
	out := make(map[string]bool, len(flags))
	for k, v := range flags {
		out[k] = v
	}
	return out
}
