package component

// Pickup is a collectible that counts toward the trophy tracker. It comes
// back whenever its room is respawned.
type Pickup struct {
	// ID is unique across the world, so collecting a respawned pickup
	// again does not count twice.
	ID     string
	Kind   string
	Width  float64
	Height float64
}

var PickupComponent = NewComponent[Pickup]()
