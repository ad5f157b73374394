package component

// Health holds current and maximum hit points. Current never exceeds Max.
type Health struct {
	Current float64
	Max     float64
}

func NewHealth(max float64) *Health {
	return &Health{Current: max, Max: max}
}

// Dead reports whether the entity has run out of health.
func (h *Health) Dead() bool {
	return h.Current <= 0
}

// Fraction returns Current/Max in [0,1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := h.Current / h.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

var HealthComponent = NewComponent[Health]()
