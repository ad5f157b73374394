package component

import "math"

type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// DistanceTo returns the euclidean distance between two transforms.
func (t *Transform) DistanceTo(o *Transform) float64 {
	return math.Hypot(o.X-t.X, o.Y-t.Y)
}

var TransformComponent = NewComponent[Transform]()

// Velocity is the linear velocity in world units per second. Entities with a
// PhysicsBody hand it to the physics space; the rest are moved by MovementSystem.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
