package component

// Damage is the amount a projectile subtracts from the health of what it hits.
type Damage struct {
	Amount float64
}

var DamageComponent = NewComponent[Damage]()

// Lifetime is a frame countdown. The entity is destroyed when it reaches zero.
type Lifetime struct {
	Frames uint32
}

// Tick decrements the countdown, saturating at zero, and reports expiry.
func (l *Lifetime) Tick() bool {
	if l.Frames > 0 {
		l.Frames--
	}
	return l.Frames == 0
}

var LifetimeComponent = NewComponent[Lifetime]()

// Origin is where a projectile was fired from.
type Origin struct {
	X float64
	Y float64
}

var OriginComponent = NewComponent[Origin]()

type BulletTag struct{}

var BulletTagComponent = NewComponent[BulletTag]()
