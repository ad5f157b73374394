package system

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/event"
	"github.com/milk9111/thicket/prefabs"
)

// TreeSystem advances the felling state machine and raises TreeDied for
// every crown that is Dead.
type TreeSystem struct {
	spec prefabs.TreeSpec
}

func NewTreeSystem(t *prefabs.Tuning) *TreeSystem {
	s := &TreeSystem{}
	s.Configure(t)
	return s
}

func (s *TreeSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Tree
}

func (s *TreeSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.TreeComponent.Kind(), component.HealthComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, tree *component.Tree, health *component.Health, t *component.Transform) {
			switch tree.State {
			case component.TreeStanding:
				if health.Dead() {
					tree.State = component.TreeFalling
				}
			case component.TreeFalling:
				tree.Rotation += s.spec.FallStep
				t.Rotation = tree.Rotation
				if math.Abs(tree.Rotation) > s.spec.FallLimit {
					tree.State = component.TreeDead
				}
			}
			if tree.State == component.TreeDead {
				ecs.Emit(w, event.TreeDiedEvent, event.TreeDied{Tree: e, X: t.X, Y: t.Y, Reward: tree.Reward})
			}
		})
}

// TreeDeathSystem removes dead crowns. The trunk stays behind as a stump.
type TreeDeathSystem struct{}

func NewTreeDeathSystem() *TreeDeathSystem {
	return &TreeDeathSystem{}
}

func (s *TreeDeathSystem) Update(w *ecs.World) {
	cmds := w.Commands()
	for _, died := range ecs.Read(w, event.TreeDiedEvent) {
		if pending(w, died.Tree) {
			continue
		}
		cmds.Despawn(died.Tree)
		ecs.Emit(w, event.SoundEvent, event.Sound{Kind: event.SoundTreeHitGround, Volume: 1})
		ecs.Emit(w, event.XPDropEvent, event.XPDrop{X: died.X, Y: died.Y, Value: died.Reward})
	}
}

// TreeSelectSystem points the player's Selection at the standing tree nearest
// the cursor, if it is within the pick radius of the cursor and within
// gathering range of the player.
type TreeSelectSystem struct {
	pickRadius float64
}

func NewTreeSelectSystem(t *prefabs.Tuning) *TreeSelectSystem {
	s := &TreeSelectSystem{}
	s.Configure(t)
	return s
}

func (s *TreeSelectSystem) Configure(t *prefabs.Tuning) {
	s.pickRadius = t.Tree.PickRadius
}

func (s *TreeSelectSystem) Update(w *ecs.World) {
	e, pt, ok := player(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	gathering, ok := ecs.Get(w, e, component.GatheringComponent.Kind())
	if !ok {
		return
	}
	selection, ok := ecs.Get(w, e, component.SelectionComponent.Kind())
	if !ok {
		return
	}

	selection.Target = 0
	if !input.CursorValid {
		return
	}

	best := math.Inf(1)
	ecs.ForEach2(w, component.TreeComponent.Kind(), component.TransformComponent.Kind(),
		func(tree ecs.Entity, state *component.Tree, t *component.Transform) {
			if state.State != component.TreeStanding || pending(w, tree) {
				return
			}
			d := math.Hypot(t.X-input.CursorX, t.Y-input.CursorY)
			if d > s.pickRadius || d >= best {
				return
			}
			if t.DistanceTo(pt) > gathering.Range {
				return
			}
			best = d
			selection.Target = component.EntityRef(tree)
		})
}

// GatherSystem decays the gathering cooldown and cuts the selected tree while
// the gather button is held.
type GatherSystem struct {
	spec prefabs.TreeSpec
	rng  *rand.Rand
}

func NewGatherSystem(t *prefabs.Tuning, rng *rand.Rand) *GatherSystem {
	s := &GatherSystem{rng: rng}
	s.Configure(t)
	return s
}

func (s *GatherSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Tree
}

func (s *GatherSystem) Update(w *ecs.World) {
	e, _, ok := player(w)
	if !ok {
		return
	}
	gathering, ok := ecs.Get(w, e, component.GatheringComponent.Kind())
	if !ok {
		return
	}
	gathering.Cool(w.Time().DeltaSeconds())

	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok || !input.Gather {
		return
	}
	selection, ok := ecs.Get(w, e, component.SelectionComponent.Kind())
	if !ok || !selection.Target.Valid() {
		return
	}
	s.cut(w, gathering, selection)
}

func (s *GatherSystem) cut(w *ecs.World, gathering *component.Gathering, selection *component.Selection) {
	target := ecs.Entity(selection.Target)
	if pending(w, target) || !gathering.Ready() {
		return
	}
	tree, ok := ecs.Get(w, target, component.TreeComponent.Kind())
	if !ok || tree.State != component.TreeStanding {
		return
	}
	health, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return
	}
	inv, ok := ecs.Get(w, target, component.InvulnerableComponent.Kind())
	if ok && inv.Active() {
		return
	}

	gathering.Cooldown = gathering.Delay
	if inv != nil {
		inv.Remaining = s.spec.HitCooldown
	}
	health.Current -= gathering.Damage
	selection.Target = 0
	ecs.Emit(w, event.SoundEvent, event.Sound{Kind: event.SoundAttackTree, Volume: 1})

	if common.ChanceOneIn(s.rng, s.spec.DropOneIn) {
		if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
			ecs.Emit(w, event.ItemDropEvent, event.ItemDrop{Item: component.PickupWood, Amount: 1, X: t.X, Y: t.Y})
		}
	}
}
