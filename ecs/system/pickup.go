package system

import (
	"math/rand/v2"

	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/entity"
	"github.com/milk9111/thicket/ecs/event"
	"github.com/milk9111/thicket/prefabs"
)

// itemFriction slows loose items that are not being pulled in.
const itemFriction = 0.9

// DropSystem turns XPDrop and ItemDrop events into pickups.
type DropSystem struct {
	spec prefabs.PickupSpec
}

func NewDropSystem(t *prefabs.Tuning) *DropSystem {
	s := &DropSystem{}
	s.Configure(t)
	return s
}

func (s *DropSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Pickup
}

func (s *DropSystem) Update(w *ecs.World) {
	cmds := w.Commands()
	for _, drop := range ecs.Drain(w, event.XPDropEvent) {
		entity.SpawnPickup(cmds, s.spec, component.PickupXP, drop.Value, drop.X, drop.Y)
	}
	for _, drop := range ecs.Drain(w, event.ItemDropEvent) {
		for i := 0; i < drop.Amount; i++ {
			entity.SpawnPickup(cmds, s.spec, drop.Item, 1, drop.X, drop.Y)
		}
	}
}

// MagnetSystem keeps the world stocked with magnets, adding one per tick
// while under the cap.
type MagnetSystem struct {
	spec prefabs.PickupSpec
	rng  *rand.Rand
}

func NewMagnetSystem(t *prefabs.Tuning, rng *rand.Rand) *MagnetSystem {
	s := &MagnetSystem{rng: rng}
	s.Configure(t)
	return s
}

func (s *MagnetSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Pickup
}

func (s *MagnetSystem) Update(w *ecs.World) {
	magnets := 0
	ecs.ForEach(w, component.PickupComponent.Kind(), func(_ ecs.Entity, p *component.Pickup) {
		if p.Kind == component.PickupMagnet {
			magnets++
		}
	})
	if magnets >= s.spec.MaxMagnets {
		return
	}
	r := s.spec.MagnetRange
	x := common.RandomRange(s.rng, -r, r)
	y := common.RandomRange(s.rng, -r, r)
	entity.SpawnPickup(w.Commands(), s.spec, component.PickupMagnet, 1, x, y)
}

// PickupAttractSystem pulls xp shards toward the player. Shards within twice
// the pickup range, or marked Attracted, move at a speed proportional to
// their distance.
type PickupAttractSystem struct {
	spec prefabs.PickupSpec
}

func NewPickupAttractSystem(t *prefabs.Tuning) *PickupAttractSystem {
	s := &PickupAttractSystem{}
	s.Configure(t)
	return s
}

func (s *PickupAttractSystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Pickup
}

func (s *PickupAttractSystem) Update(w *ecs.World) {
	e, pt, ok := player(w)
	if !ok {
		return
	}
	reach := 0.0
	if r, ok := ecs.Get(w, e, component.PickupRangeComponent.Kind()); ok {
		reach = r.Range * 2
	}
	dt := w.Time().DeltaSeconds()

	ecs.ForEach3(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(p ecs.Entity, pickup *component.Pickup, t *component.Transform, vel *component.Velocity) {
			dist := t.DistanceTo(pt)
			attracted := ecs.Has(w, p, component.AttractedComponent.Kind())
			if pickup.Kind != component.PickupXP || (!attracted && dist > reach) {
				vel.X *= itemFriction
				vel.Y *= itemFriction
				return
			}
			dx, dy := common.NormalizeOrZero(pt.X-t.X, pt.Y-t.Y)
			speed := dt * s.spec.AttractSpeed * dist
			vel.X, vel.Y = common.ClampLength(dx*speed, dy*speed, s.spec.MaxAttractSpeed)
		})
}

// PickupCollectSystem hands the player everything within pickup range.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem {
	return &PickupCollectSystem{}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	e, pt, ok := player(w)
	if !ok {
		return
	}
	reach, ok := ecs.Get(w, e, component.PickupRangeComponent.Kind())
	if !ok {
		return
	}
	cmds := w.Commands()

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
		func(p ecs.Entity, pickup *component.Pickup, t *component.Transform) {
			if pending(w, p) || t.DistanceTo(pt) > reach.Range {
				return
			}
			cmds.Despawn(p)

			switch pickup.Kind {
			case component.PickupXP:
				if lvl, ok := ecs.Get(w, e, component.XPLevelComponent.Kind()); ok {
					lvl.AddXP(pickup.Value)
				}
				ecs.Emit(w, event.SoundEvent, event.Sound{Kind: event.SoundXPPickup, Volume: 1})
			case component.PickupWood:
				if inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind()); ok {
					inv.Wood += int(pickup.Value)
				}
			}
			ecs.Emit(w, event.PickupTakenEvent, event.PickupTaken{Pickup: p, Kind: pickup.Kind})
		})

	for _, taken := range ecs.Read(w, event.PickupTakenEvent) {
		if taken.Kind != component.PickupMagnet {
			continue
		}
		ecs.ForEach(w, component.PickupComponent.Kind(), func(shard ecs.Entity, pickup *component.Pickup) {
			if pickup.Kind == component.PickupXP && !ecs.Has(w, shard, component.AttractedComponent.Kind()) {
				ecs.Insert(cmds, shard, component.AttractedComponent.Kind(), &component.Attracted{})
			}
		})
		break
	}
}
