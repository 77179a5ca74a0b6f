package dialogue

// Presenter is the presentation port for dialogue UI. The core never renders
// anything itself; it hands entries and prompts to a Presenter and trusts it
// to report the active-dialogue flag and to deliver a choice selection
// exactly once. Implementations are injected at construction time; there is
// no global lookup.
type Presenter interface {
	// IsDialogueActive reports whether a dialogue panel is currently shown.
	// The movement gate reads this once per tick.
	IsDialogueActive() bool

	// ShowDialogue presents a single entry. When entry.DurationS is greater
	// than zero the presenter should auto-dismiss after that many seconds;
	// zero means wait for an explicit advance or choice.
	ShowDialogue(entry Entry)

	// ShowChoices presents the options and eventually invokes onSelected
	// exactly once with the 0-based index of the picked option. If the panel
	// is dismissed externally the callback may never fire; the core imposes
	// no timeout and treats that prompt as abandoned.
	ShowChoices(options []string, onSelected func(index int))
}

// NoOpPresenter is the fallback used when a presentation surface is missing.
// Presentation requests are absorbed; nothing is shown and no choice is ever
// delivered. Dialogue is reported inactive so it never suppresses movement.
type NoOpPresenter struct{}

func (NoOpPresenter) IsDialogueActive() bool                { return false }
func (NoOpPresenter) ShowDialogue(Entry)                    {}
func (NoOpPresenter) ShowChoices([]string, func(index int)) {}
