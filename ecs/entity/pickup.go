package entity

import (
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

// SpawnPickup queues a collectible of kind at (x, y). Wood items bounce off
// other bodies; xp shards and magnets are moved without a body.
func SpawnPickup(cmds *ecs.Commands, spec prefabs.PickupSpec, kind component.PickupKind, value, x, y float64) ecs.Entity {
	pickup := cmds.Spawn()

	if value < 0 {
		value = 0
	}
	ecs.Insert(cmds, pickup, component.PickupComponent.Kind(), &component.Pickup{Kind: kind, Value: value})
	ecs.Insert(cmds, pickup, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	ecs.Insert(cmds, pickup, component.VelocityComponent.Kind(), &component.Velocity{})

	switch kind {
	case component.PickupWood:
		ecs.Insert(cmds, pickup, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Radius:     spec.Wood.Width / 2,
			Mass:       0.5,
			Elasticity: spec.ItemElasticity,
			Layer:      component.LayerItem,
		})
		insertSprite(cmds, pickup, spec.Wood)
	case component.PickupMagnet:
		insertSprite(cmds, pickup, spec.Magnet)
	default:
		insertSprite(cmds, pickup, spec.XP)
	}

	return pickup
}
