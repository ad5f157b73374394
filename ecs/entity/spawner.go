package entity

import (
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

func SpawnSpawner(cmds *ecs.Commands, spec prefabs.SpawnerSpec, x, y float64) ecs.Entity {
	spawner := cmds.Spawn()

	ecs.Insert(cmds, spawner, component.SpawnerComponent.Kind(), &component.Spawner{
		Period:     spec.Period,
		SpawnLimit: spec.SpawnLimit,
	})
	ecs.Insert(cmds, spawner, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	insertSprite(cmds, spawner, spec.Sprite)

	return spawner
}
