package dialogue

import (
	"errors"
	"log/slog"
)

var (
	// ErrPromptPending is returned when Present is called while a previous
	// prompt on the same dispatcher has not resolved yet.
	ErrPromptPending = errors.New("dialogue: prompt already pending")
	// ErrEmptyPrompt is returned when a prompt has no options to present.
	ErrEmptyPrompt = errors.New("dialogue: prompt has no options")
)

// FlowState tracks one trigger-driven dialogue+choice flow.
type FlowState int

const (
	// FlowIdle means no presentation is in flight.
	FlowIdle FlowState = iota
	// FlowAwaitingChoice means a prompt is shown and the selection callback
	// has not fired yet. The wait is indefinite: if the presentation layer is
	// dismissed without delivering a selection the flow stays here.
	FlowAwaitingChoice
	// FlowResolved means a selection was delivered and routed.
	FlowResolved
)

// Handler handles one selected choice index.
type Handler func()

// Dispatcher routes a prompt's selected index to choice-specific handlers.
// Indices with no registered handler fall through to a logged default path
// that mutates nothing. A dispatcher serves one prompt at a time; prompts are
// never re-presented.
type Dispatcher struct {
	log      *slog.Logger
	handlers map[int]Handler
	state    FlowState
}

// NewDispatcher creates a dispatcher logging diagnostics through log.
func NewDispatcher(log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		log:      log,
		handlers: make(map[int]Handler),
		state:    FlowIdle,
	}
}

// Handle registers fn for the given choice index, replacing any previous
// registration for that index.
func (d *Dispatcher) Handle(index int, fn Handler) {
	d.handlers[index] = fn
}

// Present delegates prompt presentation to p and routes the eventual
// selection. onResolved, if non-nil, runs after handler dispatch with the
// selected index. The presenter contract is exactly-once delivery; duplicate
// deliveries are dropped with a diagnostic.
func (d *Dispatcher) Present(prompt *Prompt, p Presenter, onResolved func(index int)) error {
	if d.state == FlowAwaitingChoice {
		return ErrPromptPending
	}
	if prompt == nil || len(prompt.Options) == 0 {
		return ErrEmptyPrompt
	}
	if p == nil {
		// Missing collaborator: report and no-op rather than crash.
		d.log.Warn("choice prompt has no presenter, absorbing", "options", len(prompt.Options))
		p = NoOpPresenter{}
	}

	d.state = FlowAwaitingChoice
	resolved := false
	p.ShowChoices(prompt.Options, func(index int) {
		if resolved {
			d.log.Warn("duplicate choice selection dropped", "index", index)
			return
		}
		resolved = true
		d.resolve(index, len(prompt.Options))
		if onResolved != nil {
			onResolved(index)
		}
	})
	return nil
}

// State returns the current flow state.
func (d *Dispatcher) State() FlowState { return d.state }

func (d *Dispatcher) resolve(index, optionCount int) {
	d.state = FlowResolved
	if index < 0 || index >= optionCount {
		d.log.Warn("choice index out of range, taking default path", "index", index, "options", optionCount)
		d.state = FlowIdle
		return
	}
	fn, ok := d.handlers[index]
	if !ok {
		// Default path: observable, mutates nothing.
		d.log.Debug("no handler for choice index, taking default path", "index", index)
		d.state = FlowIdle
		return
	}
	fn()
	d.state = FlowIdle
}
