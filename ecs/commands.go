package ecs

import (
	"github.com/milk9111/thicket/ecs/component"
	"go.uber.org/zap"
)

type command struct {
	entity Entity
	op     string
	apply  func(w *World) error
}

// Commands buffers structural changes raised during a tick. They are applied
// in order at the world barrier, after every system has run.
type Commands struct {
	world      *World
	ops        []command
	despawning map[Entity]struct{}
}

// Spawn reserves a new entity immediately. The entity is alive but carries no
// components until the inserts queued for it are applied.
func (c *Commands) Spawn() Entity {
	if c == nil || c.world == nil {
		return 0
	}
	return c.world.entities.create()
}

// Despawn queues e for destruction. Repeated calls for the same entity in a
// tick are no-ops.
func (c *Commands) Despawn(e Entity) {
	if c == nil || c.IsDespawning(e) {
		return
	}
	if c.despawning == nil {
		c.despawning = make(map[Entity]struct{})
	}
	c.despawning[e] = struct{}{}
	c.ops = append(c.ops, command{entity: e, op: "despawn", apply: func(w *World) error {
		if !DestroyEntity(w, e) {
			return component.ErrEntityNotAlive
		}
		return nil
	}})
}

// IsDespawning reports whether e has a pending despawn.
func (c *Commands) IsDespawning(e Entity) bool {
	if c == nil {
		return false
	}
	_, ok := c.despawning[e]
	return ok
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ops)
}

// Insert queues attaching value to e.
func Insert[T any](c *Commands, e Entity, kind component.ComponentKind[T], value *T) {
	if c == nil {
		return
	}
	c.ops = append(c.ops, command{entity: e, op: "insert", apply: func(w *World) error {
		return Add(w, e, kind, value)
	}})
}

// Detach queues removing the kind from e.
func Detach[T any](c *Commands, e Entity, kind component.ComponentKind[T]) {
	if c == nil {
		return
	}
	c.ops = append(c.ops, command{entity: e, op: "remove", apply: func(w *World) error {
		Remove(w, e, kind)
		return nil
	}})
}

func (c *Commands) apply() {
	if c == nil || c.world == nil {
		return
	}
	// Commands queued while applying (none today) run in the same pass.
	for i := 0; i < len(c.ops); i++ {
		cmd := c.ops[i]
		if err := cmd.apply(c.world); err != nil {
			c.world.Logger().Debug("ecs: command skipped",
				zap.String("op", cmd.op),
				zap.Stringer("entity", cmd.entity),
				zap.Error(err),
			)
		}
	}
	clear(c.ops)
	c.ops = c.ops[:0]
	clear(c.despawning)
}
