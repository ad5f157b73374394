package event

// SoundKind is the closed set of sounds the game can request.
type SoundKind uint8

const (
	SoundDamage SoundKind = iota
	SoundDeath
	SoundXPPickup
	SoundAttackTree
	SoundTreeHitGround
	SoundPistolShoot
	SoundMachineGunShoot
)

// SoundKinds lists every sound kind in declaration order.
var SoundKinds = []SoundKind{
	SoundDamage,
	SoundDeath,
	SoundXPPickup,
	SoundAttackTree,
	SoundTreeHitGround,
	SoundPistolShoot,
	SoundMachineGunShoot,
}

func (k SoundKind) String() string {
	switch k {
	case SoundDamage:
		return "damage"
	case SoundDeath:
		return "death"
	case SoundXPPickup:
		return "xp_pickup"
	case SoundAttackTree:
		return "attack_tree"
	case SoundTreeHitGround:
		return "tree_hit_ground"
	case SoundPistolShoot:
		return "pistol_shoot"
	case SoundMachineGunShoot:
		return "machine_gun_shoot"
	}
	return "unknown"
}
