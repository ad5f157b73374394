package system

import (
	"math/rand/v2"
	"time"

	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/entity"
	"github.com/milk9111/thicket/ecs/event"
	"github.com/milk9111/thicket/prefabs"
	"go.uber.org/zap"
)

// SpawnerPlacementSystem places at most one spawner per tick around the
// player until the global cap is reached.
type SpawnerPlacementSystem struct {
	spec   prefabs.SpawnerSpec
	rng    *rand.Rand
	capped bool
}

func NewSpawnerPlacementSystem(t *prefabs.Tuning, rng *rand.Rand) *SpawnerPlacementSystem {
	s := &SpawnerPlacementSystem{rng: rng}
	s.Configure(t)
	return s
}

func (s *SpawnerPlacementSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Spawner
	s.capped = false
}

func (s *SpawnerPlacementSystem) Update(w *ecs.World) {
	_, pt, ok := player(w)
	if !ok {
		return
	}
	if w.Count(component.SpawnerComponent.Kind()) >= s.spec.MaxSpawners {
		if !s.capped {
			w.Logger().Info("spawner: cap reached", zap.Int("spawners", s.spec.MaxSpawners))
			s.capped = true
		}
		return
	}
	s.capped = false

	x, y := common.RandomAround(s.rng, pt.X, pt.Y, s.spec.MinDistance, s.spec.MaxDistance)
	e := entity.SpawnSpawner(w.Commands(), s.spec, x, y)
	w.Logger().Debug("spawner: placed", zap.Stringer("entity", e), zap.Float64("x", x), zap.Float64("y", y))
}

// SpawnerSystem keeps each spawner's live count in step with its enemies:
// deaths release a slot, timer completions fill one.
type SpawnerSystem struct {
	enemy prefabs.EnemySpec
}

func NewSpawnerSystem(t *prefabs.Tuning) *SpawnerSystem {
	s := &SpawnerSystem{}
	s.Configure(t)
	return s
}

func (s *SpawnerSystem) Configure(t *prefabs.Tuning) {
	s.enemy = t.Enemy
}

func (s *SpawnerSystem) Update(w *ecs.World) {
	for _, death := range ecs.Read(w, event.SpawnedDeathEvent) {
		if spawner, ok := ecs.Get(w, death.Spawner, component.SpawnerComponent.Kind()); ok {
			spawner.Released()
		}
	}

	dt := w.Time().Delta
	cmds := w.Commands()
	ecs.ForEach2(w, component.SpawnerComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, spawner *component.Spawner, t *component.Transform) {
			if !spawner.Tick(dt) || !spawner.CanSpawn() {
				return
			}
			entity.SpawnEnemy(cmds, s.enemy, t.X, t.Y, e)
			spawner.AliveNow++
		})
}

// AmbientSpawnSystem drops unowned enemies around the player on its own
// timer while fewer than the ambient cap are alive.
type AmbientSpawnSystem struct {
	spec    prefabs.AmbientSpec
	enemy   prefabs.EnemySpec
	rng     *rand.Rand
	elapsed time.Duration
}

func NewAmbientSpawnSystem(t *prefabs.Tuning, rng *rand.Rand) *AmbientSpawnSystem {
	s := &AmbientSpawnSystem{rng: rng}
	s.Configure(t)
	return s
}

func (s *AmbientSpawnSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Spawner.Ambient
	s.enemy = t.Enemy
}

func (s *AmbientSpawnSystem) Update(w *ecs.World) {
	if s.spec.Disabled || s.spec.Period <= 0 {
		return
	}
	s.elapsed += w.Time().Delta
	if s.elapsed < s.spec.Period {
		return
	}
	s.elapsed %= s.spec.Period

	_, pt, ok := player(w)
	if !ok {
		return
	}

	ambient := 0
	for _, e := range w.Query(component.EnemyTagComponent.Kind()) {
		if !ecs.Has(w, e, component.SpawnerRefComponent.Kind()) {
			ambient++
		}
	}
	if ambient >= s.spec.MaxEnemies {
		return
	}

	x, y := common.RandomAround(s.rng, pt.X, pt.Y, s.spec.MinDistance, s.spec.MaxDistance)
	entity.SpawnEnemy(w.Commands(), s.enemy, x, y, 0)
}
