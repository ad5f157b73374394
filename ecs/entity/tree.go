package entity

import (
	"fmt"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

// NewTree creates a trunk at (x, y) and the choppable crown above it. The
// crown is returned.
func NewTree(w *ecs.World, spec prefabs.TreeSpec, x, y float64) (ecs.Entity, error) {
	trunk := ecs.CreateEntity(w)
	if err := ecs.Add(w, trunk, component.TreeTrunkComponent.Kind(), &component.TreeTrunk{}); err != nil {
		return 0, fmt.Errorf("tree: add trunk tag: %w", err)
	}
	if err := ecs.Add(w, trunk, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("tree: add trunk transform: %w", err)
	}
	if err := addSprite(w, trunk, spec.Trunk); err != nil {
		return 0, fmt.Errorf("tree: trunk %w", err)
	}

	crown := ecs.CreateEntity(w)
	if err := ecs.Add(w, crown, component.TreeComponent.Kind(), &component.Tree{Reward: spec.Reward}); err != nil {
		return 0, fmt.Errorf("tree: add tree: %w", err)
	}
	if err := ecs.Add(w, crown, component.HealthComponent.Kind(), component.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("tree: add health: %w", err)
	}
	if err := ecs.Add(w, crown, component.InvulnerableComponent.Kind(), &component.Invulnerable{}); err != nil {
		return 0, fmt.Errorf("tree: add invulnerable: %w", err)
	}
	if err := ecs.Add(w, crown, component.ParentComponent.Kind(), &component.Parent{
		Entity:  component.EntityRef(trunk),
		OffsetY: -spec.CrownOffset,
	}); err != nil {
		return 0, fmt.Errorf("tree: add parent: %w", err)
	}
	if err := ecs.Add(w, crown, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y - spec.CrownOffset,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("tree: add crown transform: %w", err)
	}
	if err := addSprite(w, crown, spec.Crown); err != nil {
		return 0, fmt.Errorf("tree: crown %w", err)
	}

	return crown, nil
}
