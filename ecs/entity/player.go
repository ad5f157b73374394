package entity

import (
	"fmt"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

// NewPlayer creates the player at (x, y).
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)

	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, player, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}

	if err := ecs.Add(w, player, component.HealthComponent.Kind(), component.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{}); err != nil {
		return 0, fmt.Errorf("player: add invulnerable: %w", err)
	}

	if err := ecs.Add(w, player, component.XPLevelComponent.Kind(), component.NewXPLevel(1)); err != nil {
		return 0, fmt.Errorf("player: add xp level: %w", err)
	}

	if err := ecs.Add(w, player, component.PickupRangeComponent.Kind(), &component.PickupRange{Range: spec.PickupRange}); err != nil {
		return 0, fmt.Errorf("player: add pickup range: %w", err)
	}

	if err := ecs.Add(w, player, component.GatheringComponent.Kind(), &component.Gathering{
		Damage: spec.Gathering.Damage,
		Range:  spec.Gathering.Range,
		Delay:  spec.Gathering.Delay,
	}); err != nil {
		return 0, fmt.Errorf("player: add gathering: %w", err)
	}

	if err := ecs.Add(w, player, component.SelectionComponent.Kind(), &component.Selection{}); err != nil {
		return 0, fmt.Errorf("player: add selection: %w", err)
	}

	if err := ecs.Add(w, player, component.InventoryComponent.Kind(), &component.Inventory{}); err != nil {
		return 0, fmt.Errorf("player: add inventory: %w", err)
	}

	if err := ecs.Add(w, player, component.WeaponComponent.Kind(), NewWeapon(spec.Weapon)); err != nil {
		return 0, fmt.Errorf("player: add weapon: %w", err)
	}

	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: spec.Radius,
		Mass:   1,
		Layer:  component.LayerPlayer,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := addSprite(w, player, spec.Sprite); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	return player, nil
}

// NewWeapon builds a weapon from its spec.
func NewWeapon(spec prefabs.WeaponSpec) *component.Weapon {
	return &component.Weapon{
		Delay:       spec.Delay,
		Damage:      spec.Damage,
		BulletSpeed: spec.BulletSpeed,
		Accuracy:    spec.Accuracy,
		Lifetime:    spec.Lifetime,
	}
}

func addSprite(w *ecs.World, e ecs.Entity, spec prefabs.SpriteSpec) error {
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite(spec)); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Layer}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	return nil
}

func insertSprite(cmds *ecs.Commands, e ecs.Entity, spec prefabs.SpriteSpec) {
	ecs.Insert(cmds, e, component.SpriteComponent.Kind(), sprite(spec))
	ecs.Insert(cmds, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Layer})
}

func sprite(spec prefabs.SpriteSpec) *component.Sprite {
	return &component.Sprite{Visual: spec.Visual, Width: spec.Width, Height: spec.Height}
}
