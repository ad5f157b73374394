package system

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
	"go.uber.org/zap"
)

// AISystem runs the enemy state machine once per enemy per tick against the
// distance to the player.
type AISystem struct {
	spec   prefabs.EnemySpec
	rng    *rand.Rand
	script *AggroScript
}

func NewAISystem(t *prefabs.Tuning, rng *rand.Rand, script *AggroScript) *AISystem {
	s := &AISystem{rng: rng, script: script}
	s.Configure(t)
	return s
}

func (s *AISystem) Configure(t *prefabs.Tuning) {
	s.spec = t.Enemy
}

// SetScript replaces the KillMode trigger. A nil script disables it.
func (s *AISystem) SetScript(script *AggroScript) {
	s.script = script
}

func (s *AISystem) Update(w *ecs.World) {
	_, target, ok := player(w)
	if !ok {
		return
	}

	ecs.ForEach4(w, component.AIComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), component.SpriteComponent.Kind(),
		func(e ecs.Entity, ai *component.AI, t *component.Transform, vel *component.Velocity, sprite *component.Sprite) {
			dist := t.DistanceTo(target)
			s.checkKillMode(w, e, ai, dist)
			s.step(ai, t, vel, target, dist)
			if vel.X != 0 {
				sprite.FlipX = vel.X > 0
			}
		})
}

func (s *AISystem) checkKillMode(w *ecs.World, e ecs.Entity, ai *component.AI, dist float64) {
	if s.script == nil || ai.State.Kind == component.AIKillMode {
		return
	}
	fraction := 1.0
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		fraction = h.Fraction()
	}
	kill, err := s.script.KillMode(AggroInput{
		Distance:       dist,
		ViewRange:      ai.ViewRange,
		HealthFraction: fraction,
		Elapsed:        w.Time().Elapsed.Seconds(),
	})
	if err != nil {
		w.Logger().Warn("ai: aggro script disabled", zap.Error(err))
		s.script = nil
		return
	}
	if kill {
		ai.EnterKillMode()
	}
}

func (s *AISystem) step(ai *component.AI, t *component.Transform, vel *component.Velocity, target *component.Transform, dist float64) {
	switch ai.State.Kind {
	case component.AIImmediateWander:
		x, y := common.RandomAround(s.rng, t.X, t.Y, s.spec.WanderMin, s.spec.WanderMax)
		ai.State = component.Wander(x, y)
	case component.AIWander:
		if dist < ai.ViewRange {
			ai.State = component.AIState{Kind: component.AIAttack}
			return
		}
		s.moveToPoint(ai, t, vel, s.spec.WanderSpeed)
	case component.AIStand:
		if dist < ai.ViewRange {
			ai.State = component.AIState{Kind: component.AIAttack}
			return
		}
		if common.ChanceOneIn(s.rng, s.spec.WanderOneIn) {
			x, y := common.RandomAround(s.rng, t.X, t.Y, s.spec.WanderMin, s.spec.WanderMax)
			ai.State = component.Wander(x, y)
		}
	case component.AIAttack:
		if dist > ai.ViewRange*s.spec.LoseAggroFactor {
			vel.X, vel.Y = 0, 0
			ai.State = component.AIState{Kind: component.AIStand}
			return
		}
		moveToward(t, vel, target.X, target.Y, s.spec.AttackSpeed)
	case component.AICheckLocation:
		if dist < ai.ViewRange {
			ai.State = component.AIState{Kind: component.AIAttack}
			return
		}
		s.moveToPoint(ai, t, vel, s.spec.AttackSpeed)
	case component.AIKillMode:
		moveToward(t, vel, target.X, target.Y, s.spec.AttackSpeed)
	}
}

// moveToPoint heads for the state's point and stands once it arrives.
func (s *AISystem) moveToPoint(ai *component.AI, t *component.Transform, vel *component.Velocity, speed float64) {
	if math.Hypot(ai.State.PointX-t.X, ai.State.PointY-t.Y) < s.spec.ArriveRadius {
		vel.X, vel.Y = 0, 0
		ai.State = component.AIState{Kind: component.AIStand}
		return
	}
	moveToward(t, vel, ai.State.PointX, ai.State.PointY, speed)
}

func moveToward(t *component.Transform, vel *component.Velocity, x, y, speed float64) {
	dx, dy := common.NormalizeOrZero(x-t.X, y-t.Y)
	vel.X = dx * speed
	vel.Y = dy * speed
}
