package system

import (
	"math/rand/v2"

	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/entity"
	"github.com/milk9111/thicket/ecs/event"
	"github.com/milk9111/thicket/prefabs"
)

// PlayerWeaponSystem fires toward the cursor while the shoot button is held.
type PlayerWeaponSystem struct{}

func NewPlayerWeaponSystem() *PlayerWeaponSystem {
	return &PlayerWeaponSystem{}
}

func (s *PlayerWeaponSystem) Update(w *ecs.World) {
	e, pt, ok := player(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok || !input.Shoot || !input.CursorValid {
		return
	}
	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok || !weapon.Fire(w.Time().Delta) {
		return
	}
	ecs.Emit(w, event.BulletFiredEvent, fired(weapon, pt.X, pt.Y, input.CursorX, input.CursorY))
	ecs.Emit(w, event.SoundEvent, event.Sound{Kind: event.SoundPistolShoot, Volume: 1})
}

// TurretPlacementSystem turns the place-turret key into a SpawnTurret request
// at the cursor.
type TurretPlacementSystem struct {
	held bool
}

func NewTurretPlacementSystem() *TurretPlacementSystem {
	return &TurretPlacementSystem{}
}

func (s *TurretPlacementSystem) Update(w *ecs.World) {
	e, _, ok := player(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	pressed := input.PlaceTurret && !s.held
	s.held = input.PlaceTurret
	if pressed && input.CursorValid {
		ecs.Emit(w, event.SpawnTurretEvent, event.SpawnTurret{X: input.CursorX, Y: input.CursorY})
	}
}

// TurretSpawnSystem builds the turrets requested this tick.
type TurretSpawnSystem struct {
	spec prefabs.TurretSpec
}

func NewTurretSpawnSystem(t *prefabs.Tuning) *TurretSpawnSystem {
	s := &TurretSpawnSystem{}
	s.Configure(t)
	return s
}

func (s *TurretSpawnSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Turret
}

func (s *TurretSpawnSystem) Update(w *ecs.World) {
	for _, req := range ecs.Drain(w, event.SpawnTurretEvent) {
		entity.SpawnTurret(w.Commands(), s.spec, req.X, req.Y)
	}
}

// TurretFireSystem picks a random enemy in view for each turret every tick.
// The weapon timer only runs while a target exists.
type TurretFireSystem struct {
	rng     *rand.Rand
	inRange []*component.Transform
}

func NewTurretFireSystem(rng *rand.Rand) *TurretFireSystem {
	return &TurretFireSystem{rng: rng}
}

func (s *TurretFireSystem) Update(w *ecs.World) {
	enemies := w.Query(component.EnemyTagComponent.Kind(), component.TransformComponent.Kind())
	if len(enemies) == 0 {
		return
	}

	ecs.ForEach3(w, component.TurretComponent.Kind(), component.WeaponComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, turret *component.Turret, weapon *component.Weapon, t *component.Transform) {
			s.inRange = s.inRange[:0]
			for _, enemy := range enemies {
				if pending(w, enemy) {
					continue
				}
				et, ok := ecs.Get(w, enemy, component.TransformComponent.Kind())
				if ok && t.DistanceTo(et) <= turret.ViewRange {
					s.inRange = append(s.inRange, et)
				}
			}
			if len(s.inRange) == 0 {
				return
			}
			target := s.inRange[s.rng.IntN(len(s.inRange))]
			if !weapon.Fire(w.Time().Delta) {
				return
			}
			ecs.Emit(w, event.BulletFiredEvent, fired(weapon, t.X, t.Y, target.X, target.Y))
			ecs.Emit(w, event.SoundEvent, event.Sound{Kind: event.SoundMachineGunShoot, Volume: 1})
		})
}

func fired(weapon *component.Weapon, fromX, fromY, atX, atY float64) event.BulletFired {
	return event.BulletFired{
		FromX:    fromX,
		FromY:    fromY,
		AtX:      atX,
		AtY:      atY,
		Accuracy: weapon.Accuracy,
		Damage:   weapon.Damage,
		Lifetime: weapon.Lifetime,
		Speed:    weapon.BulletSpeed,
	}
}

// BulletSpawnSystem turns BulletFired requests into bullets. The aim point is
// jittered by up to Accuracy units in a random direction.
type BulletSpawnSystem struct {
	spec prefabs.CombatSpec
	rng  *rand.Rand
}

func NewBulletSpawnSystem(t *prefabs.Tuning, rng *rand.Rand) *BulletSpawnSystem {
	s := &BulletSpawnSystem{rng: rng}
	s.Configure(t)
	return s
}

func (s *BulletSpawnSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Combat
}

func (s *BulletSpawnSystem) Update(w *ecs.World) {
	for _, f := range ecs.Drain(w, event.BulletFiredEvent) {
		jx, jy := common.RandomUnitVector(s.rng)
		dx, dy := common.NormalizeOrZero(f.AtX+jx*f.Accuracy-f.FromX, f.AtY+jy*f.Accuracy-f.FromY)
		if dx == 0 && dy == 0 {
			continue
		}
		entity.SpawnBullet(w.Commands(), s.spec, entity.Shot{
			X:        f.FromX,
			Y:        f.FromY,
			VX:       dx * f.Speed,
			VY:       dy * f.Speed,
			Damage:   f.Damage,
			Lifetime: f.Lifetime,
		})
	}
}
