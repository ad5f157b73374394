package system

import (
	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

// PlayerMovementSystem turns the movement keys into player velocity.
type PlayerMovementSystem struct{}

func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

func (s *PlayerMovementSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, p *component.Player, input *component.Input, vel *component.Velocity) {
			vel.X = input.MoveX * p.MoveSpeed
			vel.Y = input.MoveY * p.MoveSpeed
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && vel.X != 0 {
				sprite.FlipX = vel.X > 0
			}
		})
}

// CameraSystem eases the camera toward the player.
type CameraSystem struct {
	smoothing float64
}

func NewCameraSystem(t *prefabs.Tuning) *CameraSystem {
	s := &CameraSystem{}
	s.Configure(t)
	return s
}

func (s *CameraSystem) Configure(t *prefabs.Tuning) {
	s.smoothing = t.World.CameraSmoothing
}

func (s *CameraSystem) Update(w *ecs.World) {
	_, target, ok := player(w)
	if !ok {
		return
	}
	ecs.ForEach2(w, component.CameraTagComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.CameraTag, t *component.Transform) {
			t.X = common.Lerp(t.X, target.X, s.smoothing)
			t.Y = common.Lerp(t.Y, target.Y, s.smoothing)
		})
}
