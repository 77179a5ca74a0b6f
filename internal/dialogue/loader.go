package dialogue

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedVersion is returned for script files with an unknown version.
	ErrUnsupportedVersion = errors.New("dialogue: unsupported script version")
	// ErrInvalidScript is returned when authored content fails validation.
	ErrInvalidScript = errors.New("dialogue: invalid script")
)

// Script is the authored narrative content for one world: dialogue triggers
// and standalone spotlight regions. Scripts are consumed read-only at room
// construction time.
type Script struct {
	Version    int          `yaml:"version"`
	Triggers   []TriggerDef `yaml:"triggers"`
	Spotlights []RegionDef  `yaml:"spotlights"`
}

// RegionDef is a circular spotlight region in world coordinates.
type RegionDef struct {
	ID     string  `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// TriggerDef describes one world trigger and the dialogue sequence it owns.
type TriggerDef struct {
	ID             string     `yaml:"id"`
	Name           string     `yaml:"name"`
	X              float64    `yaml:"x"`
	Y              float64    `yaml:"y"`
	InteractRadius float64    `yaml:"interact_radius"` // 0 = engine default
	OnSpotlight    bool       `yaml:"on_spotlight"`
	OnInteraction  bool       `yaml:"on_interaction"`
	Spotlight      *RegionDef `yaml:"spotlight"` // required when OnSpotlight
	Entries        []EntryDef `yaml:"entries"`
}

// EntryDef is one authored dialogue line plus its optional choice list.
type EntryDef struct {
	Speaker   string      `yaml:"speaker"`
	Text      string      `yaml:"text"`
	Portrait  string      `yaml:"portrait"`
	IsPlayer  bool        `yaml:"is_player"`
	DurationS float64     `yaml:"duration_s"`
	Choices   []ChoiceDef `yaml:"choices"`
}

// ChoiceDef is one selectable option. SetFlag names the story flag granted
// when the option is picked; an empty SetFlag means the option has no handler
// and selection takes the default path.
type ChoiceDef struct {
	Text    string `yaml:"text"`
	SetFlag string `yaml:"set_flag"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read script %q: %w", cleanPath, err)
	}
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script %q: %w", cleanPath, err)
	}
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("script %q: %w", cleanPath, err)
	}
	return &script, nil
}

// Validate checks authored content for the mistakes that would otherwise
// surface as silent no-ops at runtime.
func (s *Script) Validate() error {
	if s.Version != 1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	seen := make(map[string]bool, len(s.Triggers))
	for i := range s.Triggers {
		t := &s.Triggers[i]
		if t.ID == "" {
			return fmt.Errorf("%w: trigger %d has empty id", ErrInvalidScript, i)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate trigger id %s", ErrInvalidScript, t.ID)
		}
		seen[t.ID] = true
		if t.InteractRadius < 0 {
			return fmt.Errorf("%w: trigger %s has negative interact radius", ErrInvalidScript, t.ID)
		}
		if t.OnSpotlight && t.Spotlight == nil {
			return fmt.Errorf("%w: trigger %s activates on spotlight but has no region", ErrInvalidScript, t.ID)
		}
		if t.Spotlight != nil && t.Spotlight.Radius <= 0 {
			return fmt.Errorf("%w: trigger %s spotlight radius must be positive", ErrInvalidScript, t.ID)
		}
		if len(t.Entries) == 0 {
			return fmt.Errorf("%w: trigger %s has no entries", ErrInvalidScript, t.ID)
		}
		for j, e := range t.Entries {
			if e.Text == "" {
				return fmt.Errorf("%w: trigger %s entry %d has empty text", ErrInvalidScript, t.ID, j)
			}
			if e.DurationS < 0 {
				return fmt.Errorf("%w: trigger %s entry %d has negative duration", ErrInvalidScript, t.ID, j)
			}
			for k, c := range e.Choices {
				if c.Text == "" {
					return fmt.Errorf("%w: trigger %s entry %d choice %d has empty text", ErrInvalidScript, t.ID, j, k)
				}
			}
		}
	}
	for i, r := range s.Spotlights {
		if r.ID == "" {
			return fmt.Errorf("%w: spotlight %d has empty id", ErrInvalidScript, i)
		}
		if r.Radius <= 0 {
			return fmt.Errorf("%w: spotlight %s radius must be positive", ErrInvalidScript, r.ID)
		}
	}
	return nil
}

// Sequence builds the runtime sequence for this trigger from its entry defs.
func (t *TriggerDef) Sequence() *Sequence {
	entries := make([]Entry, 0, len(t.Entries))
	for _, e := range t.Entries {
		entry := Entry{
			Speaker:   e.Speaker,
			Text:      e.Text,
			Portrait:  e.Portrait,
			IsPlayer:  e.IsPlayer,
			DurationS: e.DurationS,
		}
		if len(e.Choices) > 0 {
			options := make([]string, len(e.Choices))
			for i, c := range e.Choices {
				options[i] = c.Text
			}
			entry.Prompt = &Prompt{Options: options}
		}
		entries = append(entries, entry)
	}
	seq := NewSequence(entries)
	seq.ActivateOnSpotlight = t.OnSpotlight
	seq.ActivateOnInteraction = t.OnInteraction
	return seq
}
