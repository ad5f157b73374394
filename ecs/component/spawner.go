package component

import "time"

// Spawner produces enemies on a repeating timer while fewer than SpawnLimit
// of its own enemies are alive.
type Spawner struct {
	Period     time.Duration
	Elapsed    time.Duration
	SpawnLimit uint32
	AliveNow   uint32
}

// Tick advances the repeating timer and reports whether it completed this
// tick. Overflow carries into the next period.
func (s *Spawner) Tick(dt time.Duration) bool {
	if s.Period <= 0 {
		return false
	}
	s.Elapsed += dt
	if s.Elapsed < s.Period {
		return false
	}
	s.Elapsed %= s.Period
	return true
}

// CanSpawn reports whether another enemy fits under the limit.
func (s *Spawner) CanSpawn() bool {
	return s.AliveNow < s.SpawnLimit
}

// Released records the death of one owned enemy, saturating at zero.
func (s *Spawner) Released() {
	if s.AliveNow > 0 {
		s.AliveNow--
	}
}

var SpawnerComponent = NewComponent[Spawner]()

// SpawnerRef tags an enemy with the spawner that produced it. It is a
// bookkeeping back-reference only; the spawner does not own the enemy.
type SpawnerRef struct {
	Spawner EntityRef
}

var SpawnerRefComponent = NewComponent[SpawnerRef]()
