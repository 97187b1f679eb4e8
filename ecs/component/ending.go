package component

import "time"

// Ending is authored on a room. Condition is a tengo expression; Script a
// tengo file that sets `ready`. With neither the ending always plays.
type Ending struct {
	Message   string
	Condition string
	Script    string
	Duration  time.Duration
}

var EndingComponent = NewComponent[Ending]()

// EndingRuntime exists while the ending message is on screen.
type EndingRuntime struct {
	Message   string
	Remaining time.Duration
}

var EndingRuntimeComponent = NewComponent[EndingRuntime]()
