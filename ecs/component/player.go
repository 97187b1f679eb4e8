package component

type Player struct {
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()

// Dead marks the player after a hazard hit until the scene is reloaded.
type Dead struct{}

var DeadComponent = NewComponent[Dead]()
