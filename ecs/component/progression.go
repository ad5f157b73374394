package component

import "math"

// XPPerLevel scales the experience needed for the next level.
const XPPerLevel = 100.0

// XPLevel is the player's progression ledger.
type XPLevel struct {
	XP     float64
	ToNext float64
	Level  uint32
}

// NewXPLevel starts a ledger at level with an empty bar.
func NewXPLevel(level uint32) *XPLevel {
	return &XPLevel{Level: level, ToNext: float64(level) * XPPerLevel}
}

// AddXP adds experience and applies every level-up it pays for in one step:
// the level grows by floor(total/threshold), the remainder stays in the bar,
// and the threshold is recomputed from the new level.
func (l *XPLevel) AddXP(amount float64) {
	if l.ToNext <= 0 {
		if l.Level == 0 {
			l.Level = 1
		}
		l.ToNext = float64(l.Level) * XPPerLevel
	}
	total := l.XP + amount
	if total < 0 {
		total = 0
	}
	gained := math.Floor(total / l.ToNext)
	l.Level += uint32(gained)
	l.XP = math.Mod(total, l.ToNext)
	l.ToNext = float64(l.Level) * XPPerLevel
}

// Fraction is the share of the current level already earned, in [0,1].
func (l *XPLevel) Fraction() float64 {
	if l.ToNext <= 0 {
		return 0
	}
	return math.Min(1, l.XP/l.ToNext)
}

var XPLevelComponent = NewComponent[XPLevel]()
