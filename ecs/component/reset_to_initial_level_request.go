package component

// ResetToInitialLevelRequest asks for a reload that forgets the session, so
// the world starts again from the first room.
type ResetToInitialLevelRequest struct{}

var ResetToInitialLevelRequestComponent = NewComponent[ResetToInitialLevelRequest]()
