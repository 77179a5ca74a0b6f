// Package dialogue implements the narrative core: authored dialogue entries,
// per-trigger sequences with a monotone cursor, the presentation port, and
// branching choice dispatch.
//
// Sequence activation is pure with respect to (entries, cursor); all
// presentation and timing concerns live behind the Presenter interface.
package dialogue

// Entry is a single authored dialogue line. Entries are immutable after
// authoring; the sequencer hands them out by value and never mutates them.
type Entry struct {
	Speaker   string  // Name displayed above the line, e.g. "OLD MARA"
	Text      string  // Body text (supports \n newlines)
	Portrait  string  // Portrait asset key (empty = no portrait)
	IsPlayer  bool    // True when the player is the speaker
	DurationS float64 // Auto-advance after this many seconds (0 = wait for ack/choice)

	Prompt *Prompt // Choice prompt shown after the line finishes (nil = none)
}

// Prompt is a transient ordered list of selectable options shown after a
// dialogue line. Option order is the index contract between presentation and
// selection: the option at position i is reported back as index i. A prompt
// is presented once, resolved once, and discarded.
type Prompt struct {
	Options []string
}
