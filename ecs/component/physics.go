package component

import "github.com/jakecoffman/cp"

// CollisionLayer picks which collision handlers a body takes part in.
type CollisionLayer uint8

const (
	LayerNone CollisionLayer = iota
	LayerPlayer
	LayerEnemy
	LayerBullet
	LayerItem
	LayerTurret
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// A positive Radius makes a circle, otherwise Width x Height makes a box.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Elasticity float64
	Static     bool
	Sensor     bool
	Layer      CollisionLayer
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
