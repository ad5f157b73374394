package entity

import (
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

// Shot is a fired bullet: where it starts, how fast it moves and what it does.
type Shot struct {
	X, Y     float64
	VX, VY   float64
	Damage   float64
	Lifetime uint32
}

func SpawnBullet(cmds *ecs.Commands, spec prefabs.CombatSpec, shot Shot) ecs.Entity {
	bullet := cmds.Spawn()

	ecs.Insert(cmds, bullet, component.BulletTagComponent.Kind(), &component.BulletTag{})
	ecs.Insert(cmds, bullet, component.DamageComponent.Kind(), &component.Damage{Amount: shot.Damage})
	ecs.Insert(cmds, bullet, component.LifetimeComponent.Kind(), &component.Lifetime{Frames: shot.Lifetime})
	ecs.Insert(cmds, bullet, component.OriginComponent.Kind(), &component.Origin{X: shot.X, Y: shot.Y})
	ecs.Insert(cmds, bullet, component.TransformComponent.Kind(), &component.Transform{X: shot.X, Y: shot.Y, ScaleX: 1, ScaleY: 1})
	ecs.Insert(cmds, bullet, component.VelocityComponent.Kind(), &component.Velocity{X: shot.VX, Y: shot.VY})
	ecs.Insert(cmds, bullet, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: spec.BulletRadius,
		Mass:   0.1,
		Sensor: true,
		Layer:  component.LayerBullet,
	})
	insertSprite(cmds, bullet, spec.Bullet)

	return bullet
}
