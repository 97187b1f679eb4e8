package component

// ReloadRequest is a one-shot marker asking the persistence system to tear
// the scene down and restore it. Death reloads skip saving the agent
// position so the restart point armed by the death handler is used.
type ReloadRequest struct {
	Death bool
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
