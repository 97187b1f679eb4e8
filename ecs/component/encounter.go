package component

import "time"

// Encounter locks the player inside its room until it has run for
// Duration. Cleared encounters stay cleared until the room is respawned.
type Encounter struct {
	Name      string
	Duration  time.Duration
	Remaining time.Duration
	Active    bool
	Cleared   bool
}

var EncounterComponent = NewComponent[Encounter]()
