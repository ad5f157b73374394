package session

import (
	"testing"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/system"
	"github.com/milk9111/thicket/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallTuning() *prefabs.Tuning {
	t := prefabs.DefaultTuning()
	t.Tree.Grid.Min, t.Tree.Grid.Max = -3, 3
	t.Tree.Grid.Step = 200
	t.Tree.Grid.OneIn = 2
	return t
}

func TestSeed(t *testing.T) {
	assert.Equal(t, Seed("thicket"), Seed("thicket"))
	assert.NotEqual(t, Seed("thicket"), Seed("thicket2"))
	assert.NotPanics(t, func() { Seed("") })
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() Summary {
		s, err := New(smallTuning(), Seed("repeat"), system.Collaborators{}, nil)
		require.NoError(t, err)
		for i := 0; i < 700; i++ {
			s.Step()
		}
		return s.Summary()
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Equal(t, uint64(700), first.Tick)
	assert.Equal(t, 10, first.Spawners)
	assert.Positive(t, first.Trees)
	assert.Equal(t, uint32(1), first.Level)
}

func TestApplyUpdatesCamera(t *testing.T) {
	s, err := New(smallTuning(), 1, system.Collaborators{}, nil)
	require.NoError(t, err)

	next := smallTuning()
	next.World.CameraZoom = 4
	next.World.CameraSmoothing = 0.5
	s.Apply(next)
	s.Apply(nil)

	cam, ok := s.World.First(component.CameraComponent.Kind())
	require.True(t, ok)
	c, _ := ecs.Get(s.World, cam, component.CameraComponent.Kind())
	assert.Equal(t, 4.0, c.Zoom)
	assert.Same(t, next, s.Tuning)
}

func TestReload(t *testing.T) {
	s, err := New(smallTuning(), 1, system.Collaborators{}, nil)
	require.NoError(t, err)

	require.NoError(t, s.Reload("enemy.yaml"))
	assert.Equal(t, "scripts/aggro.tengo", s.Tuning.Enemy.AggroScript, "tuning now comes from the prefab files")

	require.NoError(t, s.Reload("scripts/aggro.tengo"))

	s.Tuning.Enemy.AggroScript = "scripts/nope.tengo"
	assert.Error(t, s.Reload("scripts/aggro.tengo"))
}
