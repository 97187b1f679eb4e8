package rooms

import "github.com/jakecoffman/cp"

// Session is process memory that outlives a scene reload. It is never
// written to disk.
type Session struct {
	saved      cp.Vector
	hasSaved   bool
	restart    cp.Vector
	hasRestart bool
}

func NewSession() *Session {
	return &Session{}
}

// SavePosition records where the agent should resume after a reload.
func (s *Session) SavePosition(p cp.Vector) {
	s.saved = p
	s.hasSaved = true
}

func (s *Session) SavedPosition() (cp.Vector, bool) {
	return s.saved, s.hasSaved
}

// SetRestartOverride arms a one-shot restart position, set by the death
// handler before the scene is reloaded.
func (s *Session) SetRestartOverride(p cp.Vector) {
	s.restart = p
	s.hasRestart = true
}

func (s *Session) HasRestartOverride() bool {
	return s.hasRestart
}

// TakeRestartOverride returns and clears the restart override.
func (s *Session) TakeRestartOverride() (cp.Vector, bool) {
	if !s.hasRestart {
		return cp.Vector{}, false
	}
	p := s.restart
	s.restart = cp.Vector{}
	s.hasRestart = false
	return p, true
}

// Clear forgets everything, so the next restore is a first boot.
func (s *Session) Clear() {
	*s = Session{}
}
