package system

import (
	"testing"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/entity"
	"github.com/milk9111/thicket/ecs/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aimAt(t *testing.T, w *ecs.World, p ecs.Entity, x, y float64, gather bool) {
	t.Helper()
	input := get(t, w, p, component.InputComponent.Kind())
	input.CursorX, input.CursorY = x, y
	input.CursorValid = true
	input.Gather = gather
}

func TestTreeFellingScenario(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, 0, 0)
	crown, err := entity.NewTree(f.w, f.tuning.Tree, 0, 50)
	require.NoError(t, err)
	ct := get(t, f.w, crown, component.TransformComponent.Kind())
	aimAt(t, f.w, p, ct.X, ct.Y, true)

	tree := get(t, f.w, crown, component.TreeComponent.Kind())
	health := get(t, f.w, crown, component.HealthComponent.Kind())
	died := record(event.TreeDiedEvent)
	drops := record(event.XPDropEvent)
	sounds := record(event.SoundEvent)
	s := ecs.NewScheduler(
		NewTreeSystem(f.tuning),
		NewTreeSelectSystem(f.tuning),
		NewGatherSystem(f.tuning, testRand(1)),
		NewTreeDeathSystem(),
		NewInvulnerabilitySystem(f.tuning),
		died, drops, sounds,
	)

	hits := 0
	for i := 0; i < 1000 && !health.Dead(); i++ {
		before := health.Current
		s.Tick(f.w, ecs.DefaultTick)
		if health.Current < before {
			hits++
		}
	}
	require.True(t, health.Dead())
	assert.Equal(t, 3, hits, "100 health falls to three 40-damage cuts")
	assert.Equal(t, component.TreeStanding, tree.State, "state changes on the following tick")

	s.Tick(f.w, ecs.DefaultTick)
	assert.Equal(t, component.TreeFalling, tree.State)
	assert.Zero(t, tree.Rotation)

	for i := 1; i < 18; i++ {
		s.Tick(f.w, ecs.DefaultTick)
		require.Equal(t, component.TreeFalling, tree.State, "tick %d", i)
		assert.InDelta(t, float64(i)*f.tuning.Tree.FallStep, ct.Rotation, 1e-9)
	}
	assert.Empty(t, died.seen)

	s.Tick(f.w, ecs.DefaultTick)
	assert.Equal(t, component.TreeDead, tree.State)
	require.Len(t, died.seen, 1)
	assert.Equal(t, crown, died.seen[0].Tree)
	assert.False(t, f.w.IsAlive(crown), "the crown despawns on the first notice")
	assert.Equal(t, 1, f.w.Count(component.TreeTrunkComponent.Kind()), "the stump stays")

	var reward []event.XPDrop
	for _, d := range drops.seen {
		if d.Value == f.tuning.Tree.Reward {
			reward = append(reward, d)
		}
	}
	assert.Len(t, reward, 1)

	var chops, falls int
	for _, snd := range sounds.seen {
		switch snd.Kind {
		case event.SoundAttackTree:
			chops++
		case event.SoundTreeHitGround:
			falls++
		}
	}
	assert.Equal(t, 3, chops)
	assert.Equal(t, 1, falls)
}

func TestGatherNeedsBothTimersClear(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, 0, 0)
	crown, err := entity.NewTree(f.w, f.tuning.Tree, 0, 50)
	require.NoError(t, err)
	sel := get(t, f.w, p, component.SelectionComponent.Kind())
	gathering := get(t, f.w, p, component.GatheringComponent.Kind())
	inv := get(t, f.w, crown, component.InvulnerableComponent.Kind())
	health := get(t, f.w, crown, component.HealthComponent.Kind())
	aimAt(t, f.w, p, 0, 2, true)

	gather := NewGatherSystem(f.tuning, testRand(1))
	cases := []struct {
		name     string
		cooldown float64
		inv      float64
		hit      bool
	}{
		{"player_cooling", 1, 0, false},
		{"tree_invulnerable", 0, 0.5, false},
		{"both_clear", 0, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			health.Current = 100
			gathering.Cooldown = c.cooldown
			inv.Remaining = c.inv
			sel.Target = component.EntityRef(crown)

			f.run(1, gather)

			if c.hit {
				assert.Equal(t, 100-gathering.Damage, health.Current)
				assert.Equal(t, f.tuning.Player.Gathering.Delay, gathering.Cooldown)
				assert.Equal(t, f.tuning.Tree.HitCooldown, inv.Remaining)
				assert.False(t, sel.Target.Valid(), "a cut clears the selection")
				return
			}
			assert.Equal(t, 100.0, health.Current)
		})
	}
}

func TestGatherCooldownSaturates(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, 0, 0)
	gathering := get(t, f.w, p, component.GatheringComponent.Kind())
	gathering.Cooldown = 0.05

	f.run(10, NewGatherSystem(f.tuning, testRand(1)))
	assert.Zero(t, gathering.Cooldown)
}

func TestGatherDropsWood(t *testing.T) {
	f := newFixture(t)
	f.tuning.Tree.DropOneIn = 1
	p := f.player(t, 0, 0)
	crown, err := entity.NewTree(f.w, f.tuning.Tree, 0, 50)
	require.NoError(t, err)
	aimAt(t, f.w, p, 0, 2, true)
	get(t, f.w, p, component.SelectionComponent.Kind()).Target = component.EntityRef(crown)

	items := record(event.ItemDropEvent)
	f.run(1, NewGatherSystem(f.tuning, testRand(1)), items)

	require.Len(t, items.seen, 1)
	assert.Equal(t, component.PickupWood, items.seen[0].Item)
	assert.Equal(t, 1, items.seen[0].Amount)
}

func TestTreeSelection(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, 0, 0)
	near, err := entity.NewTree(f.w, f.tuning.Tree, 0, 50)
	require.NoError(t, err)
	_, err = entity.NewTree(f.w, f.tuning.Tree, 20, 50)
	require.NoError(t, err)
	far, err := entity.NewTree(f.w, f.tuning.Tree, 1000, 1000)
	require.NoError(t, err)
	sel := get(t, f.w, p, component.SelectionComponent.Kind())
	sys := NewTreeSelectSystem(f.tuning)

	cases := []struct {
		name   string
		x, y   float64
		valid  bool
		want   ecs.Entity
		inside bool
	}{
		{"nearest_to_cursor", 4, 2, true, near, true},
		{"outside_pick_radius", 0, 200, true, 0, true},
		{"beyond_gathering_range", 1000, 952, true, 0, true},
		{"cursor_outside_window", 0, 2, false, 0, false},
	}
	_ = far
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := get(t, f.w, p, component.InputComponent.Kind())
			input.CursorX, input.CursorY, input.CursorValid = c.x, c.y, c.inside

			f.run(1, sys)

			assert.Equal(t, c.valid && c.want.Valid(), sel.Target.Valid())
			if c.want.Valid() {
				assert.Equal(t, c.want, ecs.Entity(sel.Target))
			}
		})
	}
}
