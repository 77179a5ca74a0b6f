package server

// JSON websocket protocol: both directions use the same envelope, a type
// string plus a payload object.

type joinDTO struct {
	Name string `json:"name"`
}

type inputDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type choiceSelectDTO struct {
	Index int `json:"index"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type dialogueShowDTO struct {
	Speaker   string  `json:"speaker"`
	Text      string  `json:"text"`
	Portrait  string  `json:"portrait,omitempty"`
	IsPlayer  bool    `json:"is_player"`
	DurationS float64 `json:"duration_s"`
}

type choicesShowDTO struct {
	Options []string `json:"options"`
}

type playerDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	VX          float64 `json:"vx"`
	VY          float64 `json:"vy"`
	CanMove     bool    `json:"can_move"`
	InSpotlight bool    `json:"in_spotlight"`
}

type triggerDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	InteractRadius float64 `json:"interact_radius"`
	Exhausted      bool    `json:"exhausted"`
}

type spotlightDTO struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type roomMeta struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type stateMsg struct {
	Type       string          `json:"type"`
	Now        float64         `json:"now"`
	Me         playerDTO       `json:"me"`
	Others     []playerDTO     `json:"others"`
	Meta       roomMeta        `json:"meta"`
	Flags      map[string]bool `json:"flags,omitempty"`
	Triggers   []triggerDTO    `json:"triggers"`
	Spotlights []spotlightDTO  `json:"spotlights"`
}
