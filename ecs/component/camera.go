package component

// Camera marks the viewport entity. Its Transform is the center of the view.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
