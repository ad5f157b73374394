package component

// Invulnerable is the re-hit window of a damageable entity. Remaining decays
// toward zero every tick; the renderer tints the entity while it is positive.
type Invulnerable struct {
	Remaining float64
}

// Active reports whether the window is still open.
func (i *Invulnerable) Active() bool {
	return i.Remaining > 0
}

var InvulnerableComponent = NewComponent[Invulnerable]()
