package entity

import (
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

// SpawnEnemy queues a wandering enemy at (x, y). A valid owner tags the enemy
// with the spawner that produced it.
func SpawnEnemy(cmds *ecs.Commands, spec prefabs.EnemySpec, x, y float64, owner ecs.Entity) ecs.Entity {
	enemy := cmds.Spawn()

	ecs.Insert(cmds, enemy, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	ecs.Insert(cmds, enemy, component.AIComponent.Kind(), component.NewAI(spec.ViewRange))
	ecs.Insert(cmds, enemy, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	ecs.Insert(cmds, enemy, component.VelocityComponent.Kind(), &component.Velocity{})
	ecs.Insert(cmds, enemy, component.HealthComponent.Kind(), component.NewHealth(spec.Health))
	ecs.Insert(cmds, enemy, component.InvulnerableComponent.Kind(), &component.Invulnerable{})
	ecs.Insert(cmds, enemy, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: spec.Radius,
		Mass:   1,
		Sensor: true,
		Layer:  component.LayerEnemy,
	})
	if owner.Valid() {
		ecs.Insert(cmds, enemy, component.SpawnerRefComponent.Kind(), &component.SpawnerRef{Spawner: component.EntityRef(owner)})
	}
	insertSprite(cmds, enemy, spec.Sprite)

	return enemy
}
