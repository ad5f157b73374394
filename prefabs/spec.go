package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name        string        `yaml:"name"`
	MoveSpeed   float64       `yaml:"move_speed"`
	Health      float64       `yaml:"health"`
	PickupRange float64       `yaml:"pickup_range"`
	Radius      float64       `yaml:"radius"`
	Gathering   GatheringSpec `yaml:"gathering"`
	Weapon      WeaponSpec    `yaml:"weapon"`
	Sprite      SpriteSpec    `yaml:"sprite"`
}

type GatheringSpec struct {
	Damage float64 `yaml:"damage"`
	Range  float64 `yaml:"range"`
	Delay  float64 `yaml:"delay"`
}

type WeaponSpec struct {
	Damage      float64       `yaml:"damage"`
	Delay       time.Duration `yaml:"delay"`
	BulletSpeed float64       `yaml:"bullet_speed"`
	Accuracy    float64       `yaml:"accuracy"`
	Lifetime    uint32        `yaml:"lifetime"`
}

type EnemySpec struct {
	Name            string     `yaml:"name"`
	Health          float64    `yaml:"health"`
	Radius          float64    `yaml:"radius"`
	ViewRange       float64    `yaml:"view_range"`
	WanderSpeed     float64    `yaml:"wander_speed"`
	AttackSpeed     float64    `yaml:"attack_speed"`
	ArriveRadius    float64    `yaml:"arrive_radius"`
	WanderMin       float64    `yaml:"wander_min"`
	WanderMax       float64    `yaml:"wander_max"`
	WanderOneIn     int        `yaml:"wander_one_in"`
	LoseAggroFactor float64    `yaml:"lose_aggro_factor"`
	AggroScript     string     `yaml:"aggro_script"`
	Sprite          SpriteSpec `yaml:"sprite"`
}

type SpawnerSpec struct {
	MaxSpawners int           `yaml:"max_spawners"`
	MinDistance float64       `yaml:"min_distance"`
	MaxDistance float64       `yaml:"max_distance"`
	Period      time.Duration `yaml:"period"`
	SpawnLimit  uint32        `yaml:"spawn_limit"`
	Ambient     AmbientSpec   `yaml:"ambient"`
	Sprite      SpriteSpec    `yaml:"sprite"`
}

// AmbientSpec drives unowned enemy spawns. A zero Period falls back to the
// default, so Disabled is the only way to turn them off.
type AmbientSpec struct {
	Disabled    bool          `yaml:"disabled"`
	Period      time.Duration `yaml:"period"`
	MaxEnemies  int           `yaml:"max_enemies"`
	MinDistance float64       `yaml:"min_distance"`
	MaxDistance float64       `yaml:"max_distance"`
}

type TreeSpec struct {
	Health      float64    `yaml:"health"`
	Reward      float64    `yaml:"reward"`
	FallStep    float64    `yaml:"fall_step"`
	FallLimit   float64    `yaml:"fall_limit"`
	HitCooldown float64    `yaml:"hit_cooldown"`
	DropOneIn   int        `yaml:"drop_one_in"`
	PickRadius  float64    `yaml:"pick_radius"`
	CrownOffset float64    `yaml:"crown_offset"`
	Grid        GridSpec   `yaml:"grid"`
	Trunk       SpriteSpec `yaml:"trunk"`
	Crown       SpriteSpec `yaml:"crown"`
}

type GridSpec struct {
	Min   int     `yaml:"min"`
	Max   int     `yaml:"max"`
	Step  float64 `yaml:"step"`
	OneIn int     `yaml:"one_in"`
}

type TurretSpec struct {
	ViewRange float64    `yaml:"view_range"`
	Size      float64    `yaml:"size"`
	Weapon    WeaponSpec `yaml:"weapon"`
	Sprite    SpriteSpec `yaml:"sprite"`
}

type PickupSpec struct {
	AttractSpeed    float64    `yaml:"attract_speed"`
	MaxAttractSpeed float64    `yaml:"max_attract_speed"`
	MaxMagnets      int        `yaml:"max_magnets"`
	MagnetRange     float64    `yaml:"magnet_range"`
	ItemElasticity  float64    `yaml:"item_elasticity"`
	XP              SpriteSpec `yaml:"xp"`
	Wood            SpriteSpec `yaml:"wood"`
	Magnet          SpriteSpec `yaml:"magnet"`
}

type CombatSpec struct {
	IFrames            float64    `yaml:"iframes"`
	IFrameDecay        float64    `yaml:"iframe_decay"`
	IFramesBlockDamage bool       `yaml:"iframes_block_damage"`
	DeathXP            float64    `yaml:"death_xp"`
	BulletRadius       float64    `yaml:"bullet_radius"`
	Bullet             SpriteSpec `yaml:"bullet"`
}

type WorldSpec struct {
	CameraZoom      float64      `yaml:"camera_zoom"`
	CameraSmoothing float64      `yaml:"camera_smoothing"`
	Visuals         []VisualSpec `yaml:"visuals"`
}

// VisualSpec describes the placeholder image drawn for a visual key.
type VisualSpec struct {
	Name   string     `yaml:"name"`
	Color  *YAMLColor `yaml:"color"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Round  bool       `yaml:"round"`
}

type AudioSpec struct {
	Sounds []SoundSpec `yaml:"sounds"`
}

// SoundSpec describes the synthesized tone played for a sound kind.
type SoundSpec struct {
	Name      string        `yaml:"name"`
	Frequency float64       `yaml:"frequency"`
	Slide     float64       `yaml:"slide"`
	Duration  time.Duration `yaml:"duration"`
	Volume    float64       `yaml:"volume"`
	Noise     bool          `yaml:"noise"`
}

type SpriteSpec struct {
	Visual string  `yaml:"visual"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Layer  int     `yaml:"layer"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
