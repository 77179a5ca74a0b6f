package game

// SpotlightRegion is a circular world region whose occupancy puts a player
// into a modal focus state. Occupancy is polled once per tick by the
// spotlight check phase; the region itself holds no per-player state.
type SpotlightRegion struct {
	ID     string
	Center Vec2
	Radius float64
}

// Contains reports whether pos is inside the region (boundary inclusive).
func (s *SpotlightRegion) Contains(pos Vec2) bool {
	return s.Center.Sub(pos).Len() <= s.Radius
}

// CheckPlayer updates the player's sticky in-spotlight flag from pos and
// reports whether the player is inside. The flag write is the side effect the
// movement gate reads later in the same tick. Rooms with multiple regions
// aggregate Contains across regions instead, so one region's false does not
// clobber another's true.
func (s *SpotlightRegion) CheckPlayer(p *Player, pos Vec2) bool {
	inside := s.Contains(pos)
	p.Gate.SetInSpotlight(inside)
	return inside
}
