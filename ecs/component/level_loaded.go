package component

// LevelLoaded is added after every (re)load. Sequence increases by one per
// load.
type LevelLoaded struct {
	Sequence uint64
}

var LevelLoadedComponent = NewComponent[LevelLoaded]()
