// Package event declares the per-tick message channels that connect the
// gameplay systems. Every channel is cleared at the world barrier.
package event

import (
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
)

// CollisionStarted is a pair of entities whose colliders began touching this
// tick. A is the bullet when the physics space knows it.
type CollisionStarted struct {
	A ecs.Entity
	B ecs.Entity
}

var CollisionStartedEvent = ecs.NewEventKind[CollisionStarted]()

// Sound asks the audio collaborator to play a sound.
type Sound struct {
	Kind   SoundKind
	Volume float64
}

var SoundEvent = ecs.NewEventKind[Sound]()

// XPDrop spawns an experience shard.
type XPDrop struct {
	X     float64
	Y     float64
	Value float64
}

var XPDropEvent = ecs.NewEventKind[XPDrop]()

// ItemDrop spawns Amount units of a resource item.
type ItemDrop struct {
	Item   component.PickupKind
	Amount int
	X      float64
	Y      float64
}

var ItemDropEvent = ecs.NewEventKind[ItemDrop]()

// SpawnedDeath tells a spawner that one of its enemies died.
type SpawnedDeath struct {
	Spawner ecs.Entity
}

var SpawnedDeathEvent = ecs.NewEventKind[SpawnedDeath]()

// TreeDied is raised by a tree crown in the Dead state.
type TreeDied struct {
	Tree   ecs.Entity
	X      float64
	Y      float64
	Reward float64
}

var TreeDiedEvent = ecs.NewEventKind[TreeDied]()

// BulletFired asks for a bullet to be spawned.
type BulletFired struct {
	FromX    float64
	FromY    float64
	AtX      float64
	AtY      float64
	Accuracy float64
	Damage   float64
	Lifetime uint32
	Speed    float64
}

var BulletFiredEvent = ecs.NewEventKind[BulletFired]()

// PickupTaken reports a pickup collected by the player.
type PickupTaken struct {
	Pickup ecs.Entity
	Kind   component.PickupKind
}

var PickupTakenEvent = ecs.NewEventKind[PickupTaken]()

// SpawnTurret places a turret at a world position.
type SpawnTurret struct {
	X float64
	Y float64
}

var SpawnTurretEvent = ecs.NewEventKind[SpawnTurret]()
