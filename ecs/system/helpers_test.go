package system

import (
	"testing"

	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/entity"
	"github.com/milk9111/thicket/prefabs"
	"github.com/stretchr/testify/require"
)

// recorder keeps every event of one kind seen during the ticks it runs in.
type recorder[T any] struct {
	kind ecs.EventKind[T]
	seen []T
}

func record[T any](kind ecs.EventKind[T]) *recorder[T] {
	return &recorder[T]{kind: kind}
}

func (r *recorder[T]) Update(w *ecs.World) {
	r.seen = append(r.seen, ecs.Read(w, r.kind)...)
}

// emitter raises the queued events at the start of the next tick.
type emitter[T any] struct {
	kind  ecs.EventKind[T]
	queue []T
}

func (e *emitter[T]) Update(w *ecs.World) {
	for _, ev := range e.queue {
		ecs.Emit(w, e.kind, ev)
	}
	e.queue = e.queue[:0]
}

type fixture struct {
	w      *ecs.World
	tuning *prefabs.Tuning
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{w: ecs.NewWorld(), tuning: prefabs.DefaultTuning()}
}

func (f *fixture) player(t *testing.T, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(f.w, f.tuning.Player, x, y)
	require.NoError(t, err)
	return e
}

func (f *fixture) enemy(t *testing.T, x, y float64, owner ecs.Entity) ecs.Entity {
	t.Helper()
	e := entity.SpawnEnemy(f.w.Commands(), f.tuning.Enemy, x, y, owner)
	f.w.Barrier()
	return e
}

func (f *fixture) run(ticks int, systems ...ecs.System) {
	s := ecs.NewScheduler(systems...)
	for i := 0; i < ticks; i++ {
		s.Tick(f.w, ecs.DefaultTick)
	}
}

func get[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok, "entity %s has no %T", e, v)
	return v
}

func moveTo(t *testing.T, w *ecs.World, e ecs.Entity, x, y float64) {
	t.Helper()
	tr := get(t, w, e, component.TransformComponent.Kind())
	tr.X, tr.Y = x, y
}

var testRand = common.NewRand
