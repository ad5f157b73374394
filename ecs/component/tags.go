package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type TurretTag struct{}

var TurretTagComponent = NewComponent[TurretTag]()

// Camera follows the player; Zoom scales world units to screen pixels.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
