package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturePresenter records presentation calls and exposes the selection
// callback so tests control when (and how often) a choice is delivered.
type capturePresenter struct {
	active     bool
	shown      []Entry
	options    []string
	onSelected func(index int)
}

func (c *capturePresenter) IsDialogueActive() bool { return c.active }

func (c *capturePresenter) ShowDialogue(e Entry) {
	c.active = true
	c.shown = append(c.shown, e)
}

func (c *capturePresenter) ShowChoices(options []string, onSelected func(index int)) {
	c.options = options
	c.onSelected = onSelected
}

func threeOptionPrompt() *Prompt {
	return &Prompt{Options: []string{"first", "second", "third"}}
}

func TestDispatcherRoutesSelectedIndexOnly(t *testing.T) {
	d := NewDispatcher(nil)
	called := map[int]int{}
	for i := 0; i < 3; i++ {
		idx := i
		d.Handle(idx, func() { called[idx]++ })
	}

	pres := &capturePresenter{}
	require.NoError(t, d.Present(threeOptionPrompt(), pres, nil))
	require.NotNil(t, pres.onSelected)
	assert.Equal(t, FlowAwaitingChoice, d.State())

	pres.onSelected(1)

	assert.Equal(t, map[int]int{1: 1}, called)
	assert.Equal(t, FlowIdle, d.State())
}

func TestDispatcherUnregisteredIndexTakesDefaultPath(t *testing.T) {
	d := NewDispatcher(nil)
	called := 0
	d.Handle(0, func() { called++ })

	pres := &capturePresenter{}
	require.NoError(t, d.Present(threeOptionPrompt(), pres, nil))
	pres.onSelected(2)

	assert.Zero(t, called, "default path must not invoke any handler")
	assert.Equal(t, FlowIdle, d.State())
}

func TestDispatcherOutOfRangeIndexTakesDefaultPath(t *testing.T) {
	d := NewDispatcher(nil)
	called := 0
	for i := 0; i < 3; i++ {
		d.Handle(i, func() { called++ })
	}

	pres := &capturePresenter{}
	require.NoError(t, d.Present(threeOptionPrompt(), pres, nil))
	pres.onSelected(7)
	assert.Zero(t, called)

	require.NoError(t, d.Present(threeOptionPrompt(), pres, nil))
	pres.onSelected(-1)
	assert.Zero(t, called)
}

func TestDispatcherDuplicateSelectionDropped(t *testing.T) {
	d := NewDispatcher(nil)
	called := 0
	resolved := 0
	d.Handle(0, func() { called++ })

	pres := &capturePresenter{}
	require.NoError(t, d.Present(threeOptionPrompt(), pres, func(int) { resolved++ }))

	pres.onSelected(0)
	pres.onSelected(0)

	assert.Equal(t, 1, called)
	assert.Equal(t, 1, resolved)
}

func TestDispatcherRefusesOverlappingPrompts(t *testing.T) {
	d := NewDispatcher(nil)
	pres := &capturePresenter{}
	require.NoError(t, d.Present(threeOptionPrompt(), pres, nil))

	err := d.Present(threeOptionPrompt(), pres, nil)
	assert.ErrorIs(t, err, ErrPromptPending)
}

func TestDispatcherEmptyPrompt(t *testing.T) {
	d := NewDispatcher(nil)
	assert.ErrorIs(t, d.Present(nil, &capturePresenter{}, nil), ErrEmptyPrompt)
	assert.ErrorIs(t, d.Present(&Prompt{}, &capturePresenter{}, nil), ErrEmptyPrompt)
}

func TestDispatcherMissingPresenterIsAbsorbed(t *testing.T) {
	d := NewDispatcher(nil)
	// No presenter: the prompt is absorbed without panic and never resolves.
	require.NoError(t, d.Present(threeOptionPrompt(), nil, nil))
	assert.Equal(t, FlowAwaitingChoice, d.State())
}

func TestDispatcherOnResolvedRunsAfterHandler(t *testing.T) {
	d := NewDispatcher(nil)
	var order []string
	d.Handle(0, func() { order = append(order, "handler") })

	pres := &capturePresenter{}
	require.NoError(t, d.Present(threeOptionPrompt(), pres, func(index int) {
		order = append(order, "resolved")
		assert.Equal(t, 0, index)
	}))
	pres.onSelected(0)

	assert.Equal(t, []string{"handler", "resolved"}, order)
}
