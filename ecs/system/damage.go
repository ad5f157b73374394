package system

import (
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/event"
	"github.com/milk9111/thicket/prefabs"
)

// DamageSystem resolves the collisions of the tick into damage. Each pair is
// tried in both orientations: the projectile carries Damage, the target
// carries Health.
type DamageSystem struct {
	spec prefabs.CombatSpec
}

func NewDamageSystem(t *prefabs.Tuning) *DamageSystem {
	s := &DamageSystem{}
	s.Configure(t)
	return s
}

func (s *DamageSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Combat
}

func (s *DamageSystem) Update(w *ecs.World) {
	collisions := ecs.Read(w, event.CollisionStartedEvent)
	if len(collisions) == 0 {
		return
	}

	consumed := make(map[ecs.Entity]struct{}, len(collisions))
	for _, c := range collisions {
		if s.hit(w, c.A, c.B, consumed) {
			continue
		}
		s.hit(w, c.B, c.A, consumed)
	}
}

// hit applies projectile to target. It reports false when the pair does not
// have the projectile/target shape, so the caller can try it reversed.
func (s *DamageSystem) hit(w *ecs.World, projectile, target ecs.Entity, consumed map[ecs.Entity]struct{}) bool {
	damage, ok := ecs.Get(w, projectile, component.DamageComponent.Kind())
	if !ok {
		return false
	}
	health, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return false
	}

	cmds := w.Commands()
	if _, done := consumed[projectile]; done || pending(w, projectile) {
		return true
	}
	// A target killed earlier this tick leaves the projectile for the next pair.
	if pending(w, target) || health.Dead() {
		return true
	}

	consumed[projectile] = struct{}{}
	cmds.Despawn(projectile)

	inv, hasInv := ecs.Get(w, target, component.InvulnerableComponent.Kind())
	if hasInv && inv.Active() && s.spec.IFramesBlockDamage {
		return true
	}

	health.Current -= damage.Amount
	if hasInv {
		inv.Remaining = s.spec.IFrames
	}

	var x, y float64
	if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}

	if health.Current <= 0 {
		health.Current = 0
		cmds.Despawn(target)
		ecs.Emit(w, event.SoundEvent, event.Sound{Kind: event.SoundDeath, Volume: 1})
		ecs.Emit(w, event.XPDropEvent, event.XPDrop{X: x, Y: y, Value: s.spec.DeathXP})
		if ref, ok := ecs.Get(w, target, component.SpawnerRefComponent.Kind()); ok && ref.Spawner.Valid() {
			ecs.Emit(w, event.SpawnedDeathEvent, event.SpawnedDeath{Spawner: ecs.Entity(ref.Spawner)})
		}
		return true
	}

	ecs.Emit(w, event.SoundEvent, event.Sound{Kind: event.SoundDamage, Volume: 1})

	if ai, ok := ecs.Get(w, target, component.AIComponent.Kind()); ok && !ai.Aggressive() {
		ox, oy := x, y
		if origin, ok := ecs.Get(w, projectile, component.OriginComponent.Kind()); ok {
			ox, oy = origin.X, origin.Y
		} else if t, ok := ecs.Get(w, projectile, component.TransformComponent.Kind()); ok {
			ox, oy = t.X, t.Y
		}
		ai.State = component.CheckLocation(ox, oy)
	}
	return true
}

// InvulnerabilitySystem closes re-hit windows at a fixed rate per tick.
type InvulnerabilitySystem struct {
	decay float64
}

func NewInvulnerabilitySystem(t *prefabs.Tuning) *InvulnerabilitySystem {
	s := &InvulnerabilitySystem{}
	s.Configure(t)
	return s
}

func (s *InvulnerabilitySystem) Configure(t *prefabs.Tuning) {
	s.decay = t.Combat.IFrameDecay
}

func (s *InvulnerabilitySystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(_ ecs.Entity, inv *component.Invulnerable) {
		inv.Remaining -= s.decay
		if inv.Remaining < 0 {
			inv.Remaining = 0
		}
	})
}

// LifetimeSystem counts frame lifetimes down and despawns what expires.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	cmds := w.Commands()
	ecs.ForEach(w, component.LifetimeComponent.Kind(), func(e ecs.Entity, l *component.Lifetime) {
		if l.Tick() {
			cmds.Despawn(e)
		}
	})
}
