package ecs

import (
	"time"

	"github.com/milk9111/thicket/ecs/component"
	"go.uber.org/zap"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// Time is the frame clock shared by every system in a tick.
type Time struct {
	Delta   time.Duration
	Elapsed time.Duration
	Tick    uint64
}

// DeltaSeconds returns the frame delta in seconds.
func (t Time) DeltaSeconds() float64 {
	return t.Delta.Seconds()
}

// World owns entities, component stores, event channels and the command buffer.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   map[eventID]channel
	commands Commands
	time     Time
	log      *zap.Logger
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	w := &World{
		stores: make(map[component.ComponentID]*SparseSet),
		events: make(map[eventID]channel),
		log:    zap.NewNop(),
	}
	w.commands.world = w
	return w
}

// SetLogger replaces the world logger. A nil logger disables logging.
func (w *World) SetLogger(log *zap.Logger) {
	if w == nil {
		return
	}
	if log == nil {
		log = zap.NewNop()
	}
	w.log = log
}

// Logger returns the world logger.
func (w *World) Logger() *zap.Logger {
	if w == nil || w.log == nil {
		return zap.NewNop()
	}
	return w.log
}

// Time returns the clock of the current tick.
func (w *World) Time() Time {
	if w == nil {
		return Time{}
	}
	return w.time
}

// Advance starts a new tick of length dt.
func (w *World) Advance(dt time.Duration) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.time.Delta = dt
	w.time.Elapsed += dt
	w.time.Tick++
}

// Commands returns the structural-change buffer applied at the next barrier.
func (w *World) Commands() *Commands {
	if w == nil {
		return nil
	}
	return &w.commands
}

// Barrier applies buffered structural changes and clears every event channel.
func (w *World) Barrier() {
	if w == nil {
		return
	}
	w.commands.apply()
	for _, ch := range w.events {
		ch.clear()
	}
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s := w.stores[id]
	if s == nil {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns a snapshot of all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}
