package system

import (
	"testing"
	"time"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/entity"
	"github.com/milk9111/thicket/ecs/event"
	"github.com/milk9111/thicket/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownedBy(w *ecs.World, spawner ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(w, component.SpawnerRefComponent.Kind(), func(e ecs.Entity, ref *component.SpawnerRef) {
		if ecs.Entity(ref.Spawner) == spawner {
			out = append(out, e)
		}
	})
	return out
}

func TestSpawnerPopulationAccounting(t *testing.T) {
	f := newFixture(t)
	f.tuning.Spawner.Period = ecs.DefaultTick
	f.tuning.Spawner.SpawnLimit = 4

	spawner := entity.SpawnSpawner(f.w.Commands(), f.tuning.Spawner, 0, 0)
	f.w.Barrier()
	state := get(t, f.w, spawner, component.SpawnerComponent.Kind())

	deaths := &emitter[event.SpawnedDeath]{kind: event.SpawnedDeathEvent}
	sys := NewSpawnerSystem(f.tuning)

	f.run(10, deaths, sys)
	assert.Equal(t, uint32(4), state.AliveNow, "spawning stops at the limit")
	assert.Len(t, ownedBy(f.w, spawner), 4)

	// Kill M=3 of the N=4 owned enemies.
	owned := ownedBy(f.w, spawner)
	for _, e := range owned[:3] {
		ecs.DestroyEntity(f.w, e)
		deaths.queue = append(deaths.queue, event.SpawnedDeath{Spawner: spawner})
	}
	f.tuning.Spawner.Period = time.Hour
	state.Period = time.Hour

	f.run(1, deaths, sys)
	assert.Equal(t, uint32(1), state.AliveNow)
	assert.Len(t, ownedBy(f.w, spawner), 1)

	// More notices than live enemies saturate at zero.
	for i := 0; i < 5; i++ {
		deaths.queue = append(deaths.queue, event.SpawnedDeath{Spawner: spawner})
	}
	f.run(1, deaths, sys)
	assert.Zero(t, state.AliveNow)
}

func TestSpawnerFiresOncePerPeriod(t *testing.T) {
	f := newFixture(t)
	f.tuning.Spawner.Period = 10 * ecs.DefaultTick
	spawner := entity.SpawnSpawner(f.w.Commands(), f.tuning.Spawner, 3, 4)
	f.w.Barrier()

	f.run(9, NewSpawnerSystem(f.tuning))
	assert.Empty(t, ownedBy(f.w, spawner))

	f.run(1, NewSpawnerSystem(f.tuning))
	owned := ownedBy(f.w, spawner)
	require.Len(t, owned, 1)
	tr := get(t, f.w, owned[0], component.TransformComponent.Kind())
	assert.Equal(t, 3.0, tr.X)
	assert.Equal(t, 4.0, tr.Y)

	f.run(10, NewSpawnerSystem(f.tuning))
	assert.Len(t, ownedBy(f.w, spawner), 2)
}

func TestSpawnerDeathThroughDamage(t *testing.T) {
	f := newFixture(t)
	f.tuning.Spawner.Period = ecs.DefaultTick
	f.tuning.Spawner.SpawnLimit = 2
	spawner := entity.SpawnSpawner(f.w.Commands(), f.tuning.Spawner, 0, 0)
	f.w.Barrier()

	collisions := &emitter[event.CollisionStarted]{kind: event.CollisionStartedEvent}
	systems := []ecs.System{collisions, NewDamageSystem(f.tuning), NewSpawnerSystem(f.tuning)}
	f.run(2, systems...)
	state := get(t, f.w, spawner, component.SpawnerComponent.Kind())
	require.Equal(t, uint32(2), state.AliveNow)
	state.Period = time.Hour

	victim := ownedBy(f.w, spawner)[0]
	b := bullet(t, f.w, 1000)
	collisions.queue = append(collisions.queue, event.CollisionStarted{A: b, B: victim}, event.CollisionStarted{A: victim, B: b})

	f.run(1, systems...)
	assert.False(t, f.w.IsAlive(victim))
	assert.Equal(t, uint32(1), state.AliveNow)
	assert.Len(t, ownedBy(f.w, spawner), 1)
}

func TestSpawnerPlacementRespectsCapAndRadius(t *testing.T) {
	f := newFixture(t)
	f.player(t, 100, 100)

	f.run(1, NewSpawnerPlacementSystem(f.tuning, testRand(1)))
	assert.Equal(t, 1, f.w.Count(component.SpawnerComponent.Kind()), "one spawner per tick")

	f.run(30, NewSpawnerPlacementSystem(f.tuning, testRand(1)))
	assert.Equal(t, f.tuning.Spawner.MaxSpawners, f.w.Count(component.SpawnerComponent.Kind()))

	pt := &component.Transform{X: 100, Y: 100}
	ecs.ForEach2(f.w, component.SpawnerComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.Spawner, tr *component.Transform) {
			d := tr.DistanceTo(pt)
			assert.GreaterOrEqual(t, d, f.tuning.Spawner.MinDistance-1e-6)
			assert.LessOrEqual(t, d, f.tuning.Spawner.MaxDistance+1e-6)
		})
}

func TestSpawnerPlacementWithoutPlayer(t *testing.T) {
	f := newFixture(t)
	f.run(5, NewSpawnerPlacementSystem(f.tuning, testRand(1)))
	assert.Zero(t, f.w.Count(component.SpawnerComponent.Kind()))
}

func TestAmbientSpawnCap(t *testing.T) {
	f := newFixture(t)
	f.tuning.Spawner.Ambient.Period = ecs.DefaultTick
	f.tuning.Spawner.Ambient.MaxEnemies = 3
	f.player(t, 0, 0)

	f.run(10, NewAmbientSpawnSystem(f.tuning, testRand(2)))

	enemies := f.w.Query(component.EnemyTagComponent.Kind())
	assert.Len(t, enemies, 3)
	for _, e := range enemies {
		assert.False(t, ecs.Has(f.w, e, component.SpawnerRefComponent.Kind()))
		d := get(t, f.w, e, component.TransformComponent.Kind()).DistanceTo(&component.Transform{})
		assert.GreaterOrEqual(t, d, f.tuning.Spawner.Ambient.MinDistance-1e-6)
	}
}

func TestAmbientSpawnDisabled(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*prefabs.AmbientSpec)
	}{
		{"disabled", func(a *prefabs.AmbientSpec) { a.Disabled = true }},
		{"zero_period", func(a *prefabs.AmbientSpec) { a.Period = 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			f.tuning.Spawner.Ambient.Period = ecs.DefaultTick
			c.mutate(&f.tuning.Spawner.Ambient)
			f.player(t, 0, 0)

			f.run(60, NewAmbientSpawnSystem(f.tuning, testRand(2)))
			assert.Zero(t, f.w.Count(component.EnemyTagComponent.Kind()))
		})
	}
}
