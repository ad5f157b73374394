package component

// Input stores per-frame input state for the player. MoveX/MoveY form a
// normalized direction. Cursor coordinates are in world space and only
// meaningful when CursorValid is set.
type Input struct {
	MoveX       float64
	MoveY       float64
	Shoot       bool
	Gather      bool
	PlaceTurret bool
	CursorX     float64
	CursorY     float64
	CursorValid bool
}

var InputComponent = NewComponent[Input]()

// Player stores movement tuning for the player character.
type Player struct {
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()
