package component

// Persistent entities survive scene reloads that have KeepOnReload set.
// Nothing survives a reset to the initial room.
type Persistent struct {
	ID           string
	KeepOnReload bool
}

var PersistentComponent = NewComponent[Persistent]()
