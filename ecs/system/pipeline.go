package system

import (
	"math/rand/v2"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/prefabs"
)

// Collaborators are the outside pieces a game run talks to. Any of them may
// be nil; the systems that need a missing one skip their work.
type Collaborators struct {
	Input    InputSource
	Sound    SoundPlayer
	Progress ProgressSink
	Aggro    *AggroScript
}

// NewScheduler returns the gameplay systems in tick order.
func NewScheduler(t *prefabs.Tuning, rng *rand.Rand, c Collaborators) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(c.Input),
		NewPlayerMovementSystem(),
		NewSpawnerPlacementSystem(t, rng),
		NewPhysicsSystem(),
		NewMovementSystem(),
		NewCameraSystem(t),
		NewDamageSystem(t),
		NewInvulnerabilitySystem(t),
		NewAISystem(t, rng, c.Aggro),
		NewTreeSystem(t),
		NewTreeSelectSystem(t),
		NewGatherSystem(t, rng),
		NewTreeDeathSystem(),
		NewSpawnerSystem(t),
		NewAmbientSpawnSystem(t, rng),
		NewPlayerWeaponSystem(),
		NewTurretPlacementSystem(),
		NewTurretSpawnSystem(t),
		NewTurretFireSystem(rng),
		NewBulletSpawnSystem(t, rng),
		NewLifetimeSystem(),
		NewDropSystem(t),
		NewMagnetSystem(t, rng),
		NewPickupAttractSystem(t),
		NewPickupCollectSystem(),
		NewProgressSystem(c.Progress),
		NewSoundSystem(c.Sound),
	)
}

// Find returns the first system of type T in the scheduler.
func Find[T ecs.System](s *ecs.Scheduler) (T, bool) {
	var zero T
	for _, sys := range s.Systems() {
		if v, ok := sys.(T); ok {
			return v, true
		}
	}
	return zero, false
}
