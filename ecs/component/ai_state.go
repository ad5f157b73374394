package component

// AIStateKind enumerates the enemy behaviour states.
type AIStateKind uint8

const (
	// AIImmediateWander is entered on spawn and left on the first tick.
	AIImmediateWander AIStateKind = iota
	AIWander
	AIStand
	AIAttack
	AICheckLocation
	// AIKillMode is permanent pursuit; nothing transitions out of it.
	AIKillMode
)

var aiStateNames = [...]string{
	AIImmediateWander: "immediate_wander",
	AIWander:          "wander",
	AIStand:           "stand",
	AIAttack:          "attack",
	AICheckLocation:   "check_location",
	AIKillMode:        "kill_mode",
}

func (k AIStateKind) String() string {
	if int(k) < len(aiStateNames) {
		return aiStateNames[k]
	}
	return "unknown"
}

// AIState is the current state plus its point payload. PointX/PointY are only
// meaningful for AIWander and AICheckLocation.
type AIState struct {
	Kind   AIStateKind
	PointX float64
	PointY float64
}

// Wander returns a Wander state heading to (x, y).
func Wander(x, y float64) AIState {
	return AIState{Kind: AIWander, PointX: x, PointY: y}
}

// CheckLocation returns a CheckLocation state heading to (x, y).
func CheckLocation(x, y float64) AIState {
	return AIState{Kind: AICheckLocation, PointX: x, PointY: y}
}

// AI drives an enemy. ViewRange is the aggro distance to the player.
type AI struct {
	ViewRange float64
	State     AIState
}

// NewAI returns an AI that wanders immediately after spawning.
func NewAI(viewRange float64) *AI {
	return &AI{ViewRange: viewRange, State: AIState{Kind: AIImmediateWander}}
}

// EnterKillMode switches to permanent pursuit.
func (a *AI) EnterKillMode() {
	a.State = AIState{Kind: AIKillMode}
}

// Aggressive reports whether the enemy is already pursuing the player.
func (a *AI) Aggressive() bool {
	return a.State.Kind == AIAttack || a.State.Kind == AIKillMode
}

var AIComponent = NewComponent[AI]()
