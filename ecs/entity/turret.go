package entity

import (
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

func SpawnTurret(cmds *ecs.Commands, spec prefabs.TurretSpec, x, y float64) ecs.Entity {
	turret := cmds.Spawn()

	ecs.Insert(cmds, turret, component.TurretTagComponent.Kind(), &component.TurretTag{})
	ecs.Insert(cmds, turret, component.TurretComponent.Kind(), &component.Turret{ViewRange: spec.ViewRange})
	ecs.Insert(cmds, turret, component.WeaponComponent.Kind(), NewWeapon(spec.Weapon))
	ecs.Insert(cmds, turret, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	ecs.Insert(cmds, turret, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  spec.Size,
		Height: spec.Size,
		Static: true,
		Layer:  component.LayerTurret,
	})
	insertSprite(cmds, turret, spec.Sprite)

	return turret
}
