// Package session owns one run of the game: the world, its scheduler and the
// tuning they were built from.
package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/entity"
	"github.com/milk9111/thicket/ecs/system"
	"github.com/milk9111/thicket/prefabs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Seed turns a seed string into an RNG seed. An empty string picks a random
// seed.
func Seed(s string) uint64 {
	if s == "" {
		return rand.Uint64()
	}
	return xxhash.Sum64String(s)
}

type Session struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Player    ecs.Entity
	Tuning    *prefabs.Tuning
	Seed      uint64

	log *zap.Logger
}

// New populates a world from t and builds its scheduler. A nil Aggro in c is
// filled from the enemy prefab's aggro script.
func New(t *prefabs.Tuning, seed uint64, c system.Collaborators, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if c.Aggro == nil {
		script, err := system.LoadAggroScript(t.Enemy.AggroScript)
		if err != nil {
			return nil, err
		}
		c.Aggro = script
	}

	w := ecs.NewWorld()
	w.SetLogger(log)
	rng := common.NewRand(seed)

	player, err := entity.Populate(w, t, rng)
	if err != nil {
		return nil, fmt.Errorf("session: populate: %w", err)
	}
	log.Info("session: world ready",
		zap.Uint64("seed", seed),
		zap.Int("trees", w.Count(component.TreeComponent.Kind())),
	)

	return &Session{
		World:     w,
		Scheduler: system.NewScheduler(t, rng, c),
		Player:    player,
		Tuning:    t,
		Seed:      seed,
		log:       log,
	}, nil
}

// Step runs one fixed tick.
func (s *Session) Step() {
	s.Scheduler.Tick(s.World, ecs.DefaultTick)
}

// Apply pushes new tuning into the running systems. Entities that already
// exist keep the values they were built with, except the camera zoom.
func (s *Session) Apply(t *prefabs.Tuning) {
	if t == nil {
		return
	}
	s.Tuning = t
	system.Configure(s.Scheduler.Systems(), t)
	if t.World.CameraZoom > 0 {
		ecs.ForEach(s.World, component.CameraComponent.Kind(), func(_ ecs.Entity, c *component.Camera) {
			c.Zoom = t.World.CameraZoom
		})
	}
}

// SetAggro swaps the enemies' aggro script.
func (s *Session) SetAggro(script *system.AggroScript) {
	if ai, ok := system.Find[*system.AISystem](s.Scheduler); ok {
		ai.SetScript(script)
	}
}

// Reload handles one prefab file change reported by the watcher.
func (s *Session) Reload(name string) error {
	if prefabs.IsScript(name) {
		script, err := system.LoadAggroScript(s.Tuning.Enemy.AggroScript)
		if err != nil {
			return err
		}
		s.SetAggro(script)
		s.log.Info("session: aggro script reloaded", zap.String("file", name))
		return nil
	}

	t, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	s.Apply(t)
	s.log.Info("session: tuning reloaded", zap.String("file", name))
	return nil
}

// Summary is a snapshot of the world population, used for logging.
type Summary struct {
	Tick     uint64
	Enemies  int
	Spawners int
	Trees    int
	Pickups  int
	Turrets  int
	Level    uint32
	Wood     int
}

func (s *Session) Summary() Summary {
	w := s.World
	sum := Summary{
		Tick:     w.Time().Tick,
		Enemies:  w.Count(component.EnemyTagComponent.Kind()),
		Spawners: w.Count(component.SpawnerComponent.Kind()),
		Trees:    w.Count(component.TreeComponent.Kind()),
		Pickups:  w.Count(component.PickupComponent.Kind()),
		Turrets:  w.Count(component.TurretComponent.Kind()),
	}
	if lvl, ok := ecs.Get(w, s.Player, component.XPLevelComponent.Kind()); ok {
		sum.Level = lvl.Level
	}
	if inv, ok := ecs.Get(w, s.Player, component.InventoryComponent.Kind()); ok {
		sum.Wood = inv.Wood
	}
	return sum
}

// MarshalLogObject lets a Summary be logged with zap.Object.
func (s Summary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("tick", s.Tick)
	enc.AddInt("enemies", s.Enemies)
	enc.AddInt("spawners", s.Spawners)
	enc.AddInt("trees", s.Trees)
	enc.AddInt("pickups", s.Pickups)
	enc.AddInt("turrets", s.Turrets)
	enc.AddUint32("level", s.Level)
	enc.AddInt("wood", s.Wood)
	return nil
}
