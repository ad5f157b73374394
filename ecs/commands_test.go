package ecs

import (
	"testing"

	"github.com/milk9111/thicket/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsApplyAtBarrier(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	cmds := w.Commands()

	e := cmds.Spawn()
	assert.True(t, w.IsAlive(e), "spawned ids are reserved immediately")
	Insert(cmds, e, kind, intPtr(5))
	assert.False(t, Has(w, e, kind))
	assert.Equal(t, 1, cmds.Len())

	w.Barrier()
	v, ok := Get(w, e, kind)
	require.True(t, ok)
	assert.Equal(t, 5, *v)
	assert.Zero(t, cmds.Len())

	Detach(cmds, e, kind)
	assert.True(t, Has(w, e, kind))
	w.Barrier()
	assert.False(t, Has(w, e, kind))
}

func TestDespawnIsIdempotent(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)
	require.NoError(t, Add(w, e, kind, intPtr(1)))

	cmds := w.Commands()
	cmds.Despawn(e)
	cmds.Despawn(e)
	cmds.Despawn(e)
	assert.True(t, cmds.IsDespawning(e))
	assert.Equal(t, 1, cmds.Len())

	w.Barrier()
	assert.False(t, w.IsAlive(e))
	assert.False(t, cmds.IsDespawning(e))

	// A despawn for an entity that is already gone is skipped.
	cmds.Despawn(e)
	assert.NotPanics(t, w.Barrier)
	assert.Zero(t, w.Count(kind))
}

func TestInsertAfterDespawnIsDropped(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)

	cmds := w.Commands()
	cmds.Despawn(e)
	Insert(cmds, e, kind, intPtr(1))
	w.Barrier()

	assert.False(t, w.IsAlive(e))
	assert.Zero(t, w.Count(kind))
}

func TestNilCommands(t *testing.T) {
	var cmds *Commands
	assert.NotPanics(t, func() {
		assert.Zero(t, cmds.Spawn())
		cmds.Despawn(1)
		Insert(cmds, 1, component.NewComponentKind[int](), intPtr(1))
		Detach(cmds, 1, component.NewComponentKind[int]())
		assert.False(t, cmds.IsDespawning(1))
		assert.Zero(t, cmds.Len())
	})
}
