package component

// TreeState is the felling state machine: Standing, then Falling, then Dead.
type TreeState uint8

const (
	TreeStanding TreeState = iota
	TreeFalling
	TreeDead
)

func (s TreeState) String() string {
	switch s {
	case TreeStanding:
		return "standing"
	case TreeFalling:
		return "falling"
	case TreeDead:
		return "dead"
	}
	return "unknown"
}

// Tree is the choppable crown of a tree. Rotation accumulates while falling.
type Tree struct {
	State    TreeState
	Rotation float64
	Reward   float64
}

var TreeComponent = NewComponent[Tree]()

// TreeTrunk marks the stump a crown stands on. It survives the crown.
type TreeTrunk struct{}

var TreeTrunkComponent = NewComponent[TreeTrunk]()

// Parent points a child entity at the entity it hangs off.
type Parent struct {
	Entity  EntityRef
	OffsetX float64
	OffsetY float64
}

var ParentComponent = NewComponent[Parent]()
