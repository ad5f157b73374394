package prefabs

import (
	"fmt"
	"time"
)

// Tuning is every balance value the game reads from prefabs/*.yaml.
type Tuning struct {
	Player  PlayerSpec
	Enemy   EnemySpec
	Spawner SpawnerSpec
	Tree    TreeSpec
	Turret  TurretSpec
	Pickup  PickupSpec
	Combat  CombatSpec
	World   WorldSpec
	Audio   AudioSpec
}

// LoadTuning reads all prefab specs. Fields left out of a file keep their
// default value.
func LoadTuning() (*Tuning, error) {
	t := &Tuning{}
	var err error
	if t.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if t.Enemy, err = LoadSpec[EnemySpec]("enemy.yaml"); err != nil {
		return nil, err
	}
	if t.Spawner, err = LoadSpec[SpawnerSpec]("spawner.yaml"); err != nil {
		return nil, err
	}
	if t.Tree, err = LoadSpec[TreeSpec]("tree.yaml"); err != nil {
		return nil, err
	}
	if t.Turret, err = LoadSpec[TurretSpec]("turret.yaml"); err != nil {
		return nil, err
	}
	if t.Pickup, err = LoadSpec[PickupSpec]("pickup.yaml"); err != nil {
		return nil, err
	}
	if t.Combat, err = LoadSpec[CombatSpec]("combat.yaml"); err != nil {
		return nil, err
	}
	if t.World, err = LoadSpec[WorldSpec]("world.yaml"); err != nil {
		return nil, err
	}
	if t.Audio, err = LoadSpec[AudioSpec]("audio.yaml"); err != nil {
		return nil, err
	}
	t.withDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// DefaultTuning returns the built-in balance without touching any file.
func DefaultTuning() *Tuning {
	t := &Tuning{}
	t.withDefaults()
	return t
}

func (t *Tuning) withDefaults() {
	p := &t.Player
	setDefault(&p.MoveSpeed, 100)
	setDefault(&p.Health, 1000)
	setDefault(&p.PickupRange, 48)
	setDefault(&p.Radius, 16)
	setDefault(&p.Gathering.Damage, 40)
	setDefault(&p.Gathering.Range, 96)
	setDefault(&p.Gathering.Delay, 0.3)
	setDefault(&p.Weapon.Damage, 5)
	setDefault(&p.Weapon.Delay, 250*time.Millisecond)
	setDefault(&p.Weapon.BulletSpeed, 700)
	setDefault(&p.Weapon.Accuracy, 10)
	setDefault(&p.Weapon.Lifetime, 90)
	spriteDefaults(&p.Sprite, "player", 32, 32, 10)

	e := &t.Enemy
	setDefault(&e.Health, 10)
	setDefault(&e.Radius, 24)
	setDefault(&e.ViewRange, 200)
	setDefault(&e.WanderSpeed, 20)
	setDefault(&e.AttackSpeed, 80)
	setDefault(&e.ArriveRadius, 4)
	setDefault(&e.WanderMin, 50)
	setDefault(&e.WanderMax, 300)
	setDefault(&e.WanderOneIn, 1000)
	setDefault(&e.LoseAggroFactor, 1.5)
	spriteDefaults(&e.Sprite, "enemy", 48, 48, 9)

	s := &t.Spawner
	setDefault(&s.MaxSpawners, 10)
	setDefault(&s.MinDistance, 2000)
	setDefault(&s.MaxDistance, 8000)
	setDefault(&s.Period, 10*time.Second)
	setDefault(&s.SpawnLimit, 16)
	setDefault(&s.Ambient.Period, 8*time.Second)
	setDefault(&s.Ambient.MaxEnemies, 20)
	setDefault(&s.Ambient.MinDistance, 600)
	setDefault(&s.Ambient.MaxDistance, 1000)
	spriteDefaults(&s.Sprite, "spawner", 96, 96, 2)

	tr := &t.Tree
	setDefault(&tr.Health, 100)
	setDefault(&tr.Reward, 100)
	setDefault(&tr.FallStep, 0.04)
	setDefault(&tr.FallLimit, 0.7)
	setDefault(&tr.HitCooldown, 0.3)
	setDefault(&tr.DropOneIn, 10)
	setDefault(&tr.PickRadius, 32)
	setDefault(&tr.CrownOffset, 48)
	setDefault(&tr.Grid.Min, -1000)
	setDefault(&tr.Grid.Max, 1000)
	setDefault(&tr.Grid.Step, 10)
	setDefault(&tr.Grid.OneIn, 1000)
	spriteDefaults(&tr.Trunk, "trunk", 16, 32, 3)
	spriteDefaults(&tr.Crown, "crown", 80, 96, 11)

	tu := &t.Turret
	setDefault(&tu.ViewRange, 350)
	setDefault(&tu.Size, 32)
	setDefault(&tu.Weapon.Damage, 0.5)
	setDefault(&tu.Weapon.Delay, 100*time.Millisecond)
	setDefault(&tu.Weapon.BulletSpeed, 1000)
	setDefault(&tu.Weapon.Accuracy, 40)
	setDefault(&tu.Weapon.Lifetime, 30)
	spriteDefaults(&tu.Sprite, "turret", 32, 32, 8)

	pk := &t.Pickup
	setDefault(&pk.AttractSpeed, 500)
	setDefault(&pk.MaxAttractSpeed, 2000)
	setDefault(&pk.MaxMagnets, 10)
	setDefault(&pk.MagnetRange, 10000)
	setDefault(&pk.ItemElasticity, 2)
	spriteDefaults(&pk.XP, "xp", 8, 8, 5)
	spriteDefaults(&pk.Wood, "wood", 12, 12, 5)
	spriteDefaults(&pk.Magnet, "magnet", 16, 16, 5)

	c := &t.Combat
	setDefault(&c.IFrames, 0.2)
	setDefault(&c.IFrameDecay, 0.01)
	setDefault(&c.DeathXP, 10)
	setDefault(&c.BulletRadius, 3)
	spriteDefaults(&c.Bullet, "bullet", 6, 6, 7)

	setDefault(&t.World.CameraZoom, 2.5)
	setDefault(&t.World.CameraSmoothing, 0.15)
}

// Validate rejects specs that would make a system misbehave.
func (t *Tuning) Validate() error {
	if t.Spawner.MinDistance > t.Spawner.MaxDistance {
		return fmt.Errorf("prefabs: spawner min_distance %.0f exceeds max_distance %.0f", t.Spawner.MinDistance, t.Spawner.MaxDistance)
	}
	if t.Spawner.Ambient.MinDistance > t.Spawner.Ambient.MaxDistance {
		return fmt.Errorf("prefabs: ambient min_distance %.0f exceeds max_distance %.0f", t.Spawner.Ambient.MinDistance, t.Spawner.Ambient.MaxDistance)
	}
	if t.Enemy.WanderMin > t.Enemy.WanderMax {
		return fmt.Errorf("prefabs: enemy wander_min %.0f exceeds wander_max %.0f", t.Enemy.WanderMin, t.Enemy.WanderMax)
	}
	if t.Tree.Grid.Min > t.Tree.Grid.Max {
		return fmt.Errorf("prefabs: tree grid min %d exceeds max %d", t.Tree.Grid.Min, t.Tree.Grid.Max)
	}
	return nil
}

func setDefault[T int | uint32 | float64 | time.Duration](v *T, def T) {
	if *v == 0 {
		*v = def
	}
}

func spriteDefaults(s *SpriteSpec, visual string, w, h float64, layer int) {
	if s.Visual == "" {
		s.Visual = visual
	}
	setDefault(&s.Width, w)
	setDefault(&s.Height, h)
	setDefault(&s.Layer, layer)
}
