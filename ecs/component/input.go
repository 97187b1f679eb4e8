package component

// Input stores per-tick movement intent. Axis values are in [-1, 1], +Y up.
// While Disabled the axes are held at zero.
type Input struct {
	MoveX    float64
	MoveY    float64
	Disabled bool
}

var InputComponent = NewComponent[Input]()
