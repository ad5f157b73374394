package system

import (
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

// Configurable systems take their balance values from the prefab tuning and
// accept new values when the prefabs are reloaded.
type Configurable interface {
	Configure(t *prefabs.Tuning)
}

// Configure pushes t into every configurable system.
func Configure(systems []ecs.System, t *prefabs.Tuning) {
	if t == nil {
		return
	}
	for _, s := range systems {
		if c, ok := s.(Configurable); ok {
			c.Configure(t)
		}
	}
}

// player returns the single player and its transform. Zero or several
// players make every player-relative system skip the tick.
func player(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	e, ok := w.Single(component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	return e, t, true
}

// pending reports whether e is gone or about to be.
func pending(w *ecs.World, e ecs.Entity) bool {
	return !w.IsAlive(e) || w.Commands().IsDespawning(e)
}
