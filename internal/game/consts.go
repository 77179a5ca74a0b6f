package game

const (
	SimHz        = 20.0 // server tick rate
	Dt           = 1.0 / SimHz
	UpdateRateHz = 10.0 // per-client WS state pushes

	RoomMaxPlayers = 8
	WorldW         = 64.0 // world units
	WorldH         = 36.0

	PlayerMaxSpeed = 6.0 // units/s

	// InteractRadius is the default proximity-interaction range for dialogue
	// triggers, measured center-to-center between trigger and player.
	InteractRadius = 2.0

	// MoveInputEps is the minimum sampled vector length that counts as
	// movement intent; anything shorter is treated as no input.
	MoveInputEps = 1e-3
)
