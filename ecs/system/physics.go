package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/event"
)

var collisionTypes = map[component.CollisionLayer]cp.CollisionType{
	component.LayerPlayer: 1,
	component.LayerEnemy:  2,
	component.LayerBullet: 3,
	component.LayerItem:   4,
	component.LayerTurret: 5,
}

// PhysicsSystem mirrors PhysicsBody entities into a Chipmunk space with no
// gravity, steps it, and reports bullet/enemy contacts as CollisionStarted.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	started  []event.CollisionStarted
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	ps := &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}

	handler := space.NewCollisionHandler(collisionTypes[component.LayerBullet], collisionTypes[component.LayerEnemy])
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Shapes()
		ea, okA := ps.shapes[a]
		eb, okB := ps.shapes[b]
		if okA && okB {
			ps.started = append(ps.started, event.CollisionStarted{A: ea, B: eb})
		}
		return true
	}

	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Bodies returns how many entities currently have a body in the space.
func (ps *PhysicsSystem) Bodies() int {
	return len(ps.entities)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncVelocities(w)

	ps.started = ps.started[:0]
	ps.space.Step(w.Time().DeltaSeconds())

	ps.syncTransforms(w)
	for _, c := range ps.started {
		ecs.Emit(w, event.CollisionStartedEvent, c)
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
			if info := ps.entities[e]; info != nil {
				body.Body = info.body
				body.Shape = info.shape
				return
			}
			info := ps.createBodyInfo(transform, body)
			ps.entities[e] = info
			ps.shapes[info.shape] = e
			body.Body = info.body
			body.Shape = info.shape
		})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width, height, radius := bodyComp.Width, bodyComp.Height, bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width, height = 32, 32
	}

	info := &bodyInfo{static: bodyComp.Static}

	var shape *cp.Shape
	if bodyComp.Static {
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: transform.X, Y: transform.Y})
		} else {
			bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		info.body = ps.space.StaticBody
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// Top-down bodies never spin.
		body := cp.NewBody(mass, cp.INFINITY)
		body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		ps.space.AddBody(body)
		if radius > 0 {
			shape = cp.NewCircle(body, radius, cp.Vector{})
		} else {
			shape = cp.NewBox(body, width, height, 0)
		}
		info.body = body
	}

	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetCollisionType(collisionTypes[bodyComp.Layer])
	ps.space.AddShape(shape)
	info.shape = shape
	return info
}

func (ps *PhysicsSystem) syncVelocities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ ecs.Entity, body *component.PhysicsBody, vel *component.Velocity) {
			if body.Static || body.Body == nil {
				return
			}
			body.Body.SetVelocity(vel.X, vel.Y)
		})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
			if body.Static || body.Body == nil {
				return
			}
			pos := body.Body.Position()
			transform.X = pos.X
			transform.Y = pos.Y
			if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
				v := body.Body.Velocity()
				vel.X = v.X
				vel.Y = v.Y
			}
		})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// MovementSystem integrates velocity for entities the physics space does not
// own.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	dt := w.Time().DeltaSeconds()
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, v *component.Velocity) {
			if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
				return
			}
			t.X += v.X * dt
			t.Y += v.Y * dt
		})
}
