package component

// Gathering is the player's melee harvesting stats. Cooldown counts down in
// seconds and never goes below zero.
type Gathering struct {
	Damage   float64
	Range    float64
	Delay    float64
	Cooldown float64
}

// Ready reports whether the cooldown has elapsed.
func (g *Gathering) Ready() bool {
	return g.Cooldown <= 0
}

// Cool decays the cooldown by dt seconds.
func (g *Gathering) Cool(dt float64) {
	g.Cooldown -= dt
	if g.Cooldown < 0 {
		g.Cooldown = 0
	}
}

var GatheringComponent = NewComponent[Gathering]()

// Selection is the tree currently under the cursor and in gathering range.
type Selection struct {
	Target EntityRef
}

var SelectionComponent = NewComponent[Selection]()
