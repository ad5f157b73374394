package ecs

import "time"

// DefaultTick is the simulation step used by the game loop.
const DefaultTick = time.Second / 60

// Scheduler runs a fixed list of systems once per tick in declaration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if s == nil || system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Tick advances the world clock by dt, runs every system and then applies the
// barrier: buffered commands first, then the event channels are cleared.
func (s *Scheduler) Tick(w *World, dt time.Duration) {
	if s == nil || w == nil {
		return
	}
	w.Advance(dt)
	for _, system := range s.systems {
		system.Update(w)
	}
	w.Barrier()
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
