package system

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/entity"
	"github.com/milk9111/thicket/ecs/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerWeaponFiresAtCursor(t *testing.T) {
	f := newFixture(t)
	f.tuning.Player.Weapon.Delay = 5 * ecs.DefaultTick
	p := f.player(t, 0, 0)
	input := get(t, f.w, p, component.InputComponent.Kind())
	input.Shoot = true
	input.CursorX, input.CursorY, input.CursorValid = 100, 0, true

	shots := record(event.BulletFiredEvent)
	sounds := record(event.SoundEvent)
	f.run(20, NewPlayerWeaponSystem(), shots, sounds)

	require.Len(t, shots.seen, 4)
	assert.Equal(t, 100.0, shots.seen[0].AtX)
	assert.Equal(t, f.tuning.Player.Weapon.Damage, shots.seen[0].Damage)
	require.Len(t, sounds.seen, 4)
	assert.Equal(t, event.SoundPistolShoot, sounds.seen[0].Kind)

	input.CursorValid = false
	f.run(20, NewPlayerWeaponSystem(), shots)
	assert.Len(t, shots.seen, 4, "no shots while the cursor is outside the window")
}

func TestBulletSpawnVelocity(t *testing.T) {
	f := newFixture(t)
	fired := &emitter[event.BulletFired]{kind: event.BulletFiredEvent}
	fired.queue = append(fired.queue, event.BulletFired{
		FromX: 10, FromY: 10, AtX: 500, AtY: 10,
		Accuracy: 40, Damage: 2, Lifetime: 30, Speed: 1000,
	})

	f.run(1, fired, NewBulletSpawnSystem(f.tuning, testRand(1)))

	bullets := f.w.Query(component.BulletTagComponent.Kind())
	require.Len(t, bullets, 1)
	vel := get(t, f.w, bullets[0], component.VelocityComponent.Kind())
	assert.InDelta(t, 1000, math.Hypot(vel.X, vel.Y), 1e-6)
	// 40 units of jitter at 490 units stays within ~5 degrees.
	assert.Greater(t, vel.X, 990.0)
	assert.Equal(t, uint32(30), get(t, f.w, bullets[0], component.LifetimeComponent.Kind()).Frames)
	assert.Equal(t, 2.0, get(t, f.w, bullets[0], component.DamageComponent.Kind()).Amount)
	assert.Equal(t, component.Origin{X: 10, Y: 10}, *get(t, f.w, bullets[0], component.OriginComponent.Kind()))
}

func TestTurretTargetsEnemiesInView(t *testing.T) {
	f := newFixture(t)
	turret := entity.SpawnTurret(f.w.Commands(), f.tuning.Turret, 0, 0)
	f.w.Barrier()
	weapon := get(t, f.w, turret, component.WeaponComponent.Kind())
	require.Equal(t, 100*time.Millisecond, weapon.Delay)

	shots := record(event.BulletFiredEvent)
	sys := NewTurretFireSystem(testRand(1))

	// Nothing in view: the weapon timer does not run.
	f.enemy(t, 1000, 0, 0)
	f.run(60, sys, shots)
	assert.Empty(t, shots.seen)

	a := f.enemy(t, 100, 0, 0)
	b := f.enemy(t, 0, -200, 0)
	f.run(60, sys, shots)
	require.NotEmpty(t, shots.seen)
	assert.LessOrEqual(t, len(shots.seen), 10)

	targets := map[[2]float64]int{}
	for _, s := range shots.seen {
		targets[[2]float64{s.AtX, s.AtY}]++
		assert.Equal(t, f.tuning.Turret.Weapon.Damage, s.Damage)
		assert.Equal(t, f.tuning.Turret.Weapon.BulletSpeed, s.Speed)
	}
	at := get(t, f.w, a, component.TransformComponent.Kind())
	bt := get(t, f.w, b, component.TransformComponent.Kind())
	for pos := range targets {
		assert.True(t, pos == [2]float64{at.X, at.Y} || pos == [2]float64{bt.X, bt.Y}, "shot at %v", pos)
	}
}

func TestTurretPlacementOnKeyPress(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, 0, 0)
	input := get(t, f.w, p, component.InputComponent.Kind())
	input.PlaceTurret = true
	input.CursorX, input.CursorY, input.CursorValid = 40, 60, true

	systems := []ecs.System{NewTurretPlacementSystem(), NewTurretSpawnSystem(f.tuning)}
	s := ecs.NewScheduler(systems...)
	for i := 0; i < 5; i++ {
		s.Tick(f.w, ecs.DefaultTick)
	}
	turrets := f.w.Query(component.TurretComponent.Kind())
	require.Len(t, turrets, 1, "holding the key places one turret")
	tr := get(t, f.w, turrets[0], component.TransformComponent.Kind())
	assert.Equal(t, 40.0, tr.X)
	assert.Equal(t, 60.0, tr.Y)

	input.PlaceTurret = false
	s.Tick(f.w, ecs.DefaultTick)
	input.PlaceTurret = true
	s.Tick(f.w, ecs.DefaultTick)
	assert.Equal(t, 2, f.w.Count(component.TurretComponent.Kind()))
}
