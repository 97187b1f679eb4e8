package component

// Hazard kills the player on overlap. Bounds are centered on Transform.
type Hazard struct {
	Width  float64
	Height float64
}

var HazardComponent = NewComponent[Hazard]()
