package component

import "time"

// Weapon is a cooldown-gated gun shared by the player and turrets.
type Weapon struct {
	Delay       time.Duration
	Damage      float64
	BulletSpeed float64
	Accuracy    float64
	Lifetime    uint32

	elapsed time.Duration
}

// Fire advances the cooldown by elapsed. Once it reaches Delay the cooldown
// resets and Fire reports true; otherwise it reports false.
func (w *Weapon) Fire(elapsed time.Duration) bool {
	w.elapsed += elapsed
	if w.elapsed >= w.Delay {
		w.elapsed = 0
		return true
	}
	return false
}

var WeaponComponent = NewComponent[Weapon]()

// Turret shoots at enemies within ViewRange.
type Turret struct {
	ViewRange float64
}

var TurretComponent = NewComponent[Turret]()
