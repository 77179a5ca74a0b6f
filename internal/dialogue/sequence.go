package dialogue

// Sequence walks an ordered list of dialogue entries for one world trigger.
// The cursor is monotone non-decreasing while the sequence is active; once it
// reaches the end the sequence is exhausted and Activate is a silent no-op
// until Reset. Activation attempts on an exhausted sequence are deliberately
// not errors so repeated trigger checks stay cheap.
//
// Two independent channels may feed Activate (spotlight entry and proximity
// interaction); either can advance the same cursor, and ordering between them
// is decided by the caller, not here.
type Sequence struct {
	entries []Entry

	// Activation channel configuration. Both may be enabled at once; with
	// both disabled the sequence can never produce an entry.
	ActivateOnSpotlight   bool
	ActivateOnInteraction bool

	cursor    int
	exhausted bool
}

// NewSequence builds a sequence over the given entries. The slice is copied
// so later mutation of the caller's slice cannot move authored content under
// a live cursor.
func NewSequence(entries []Entry) *Sequence {
	return &Sequence{
		entries: append([]Entry(nil), entries...),
	}
}

// Activate returns the entry at the cursor and advances by one, or nil when
// the sequence is exhausted or empty. When the post-increment cursor reaches
// the sequence length the sequence transitions to exhausted.
func (s *Sequence) Activate() *Entry {
	if s.exhausted || s.cursor >= len(s.entries) {
		s.exhausted = true
		return nil
	}
	entry := s.entries[s.cursor]
	s.cursor++
	if s.cursor >= len(s.entries) {
		s.exhausted = true
	}
	return &entry
}

// Reset rewinds the cursor to the first entry and clears the exhausted state.
func (s *Sequence) Reset() {
	s.cursor = 0
	s.exhausted = false
}

// Exhausted reports whether every entry has been produced since the last Reset.
func (s *Sequence) Exhausted() bool { return s.exhausted }

// Cursor returns the index of the next entry to be produced.
func (s *Sequence) Cursor() int { return s.cursor }

// Len returns the number of authored entries.
func (s *Sequence) Len() int { return len(s.entries) }
