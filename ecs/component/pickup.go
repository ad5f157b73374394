package component

// PickupKind is what the player receives when walking over a pickup.
type PickupKind uint8

const (
	PickupXP PickupKind = iota + 1
	PickupWood
	PickupMagnet
)

func (k PickupKind) String() string {
	switch k {
	case PickupXP:
		return "xp"
	case PickupWood:
		return "wood"
	case PickupMagnet:
		return "magnet"
	}
	return "unknown"
}

// Pickup is a collectible lying in the world. Value is the xp amount or the
// item count and is never negative.
type Pickup struct {
	Kind  PickupKind
	Value float64
}

var PickupComponent = NewComponent[Pickup]()

// Attracted makes an xp shard home in on the player regardless of distance.
type Attracted struct{}

var AttractedComponent = NewComponent[Attracted]()

// PickupRange is how close the player has to be to collect something.
type PickupRange struct {
	Range float64
}

var PickupRangeComponent = NewComponent[PickupRange]()

// Inventory counts gathered resources.
type Inventory struct {
	Wood int
}

var InventoryComponent = NewComponent[Inventory]()
