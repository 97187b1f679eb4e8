package rooms

import "github.com/jakecoffman/cp"

// RestoreOrInit establishes the current room on scene entry. A pending
// restart override wins, then the saved position, and with neither the
// start room is loaded as on first boot. It runs once per scene; call
// Unload before entering again.
func (s *WorldStreamer) RestoreOrInit() {
	if s.entered {
		s.logger.Warn("restore called twice for the same scene")
		return
	}
	s.entered = true

	if pos, ok := s.session.TakeRestartOverride(); ok {
		s.logger.Info("restoring at restart point", "x", pos.X, "y", pos.Y)
		s.placeAgent(pos)
		s.restoreAt(pos)
		return
	}

	if pos, ok := s.session.SavedPosition(); ok {
		s.logger.Info("restoring at saved position", "x", pos.X, "y", pos.Y)
		s.placeAgent(pos)
		s.restoreAt(pos)
		return
	}

	s.initFirstRoom()
}

// ResyncAfterTeleport re-derives the current room from wherever the agent
// is now. Used when something moves the agent without a transition.
func (s *WorldStreamer) ResyncAfterTeleport() bool {
	if s.transitioning {
		s.logger.Warn("resync ignored during transition")
		return false
	}
	if s.agent == nil {
		return false
	}
	return s.restoreAt(s.agent.Position())
}

func (s *WorldStreamer) restoreAt(pos cp.Vector) bool {
	coord := s.grid.CoordOf(pos)
	room, ok := s.registry.ByCoord(coord)
	if !ok {
		s.logger.Warn("no room at coordinate", "coord", coord.String(), "x", pos.X, "y", pos.Y)
		return false
	}

	s.current = room
	if !s.cache.IsLoaded(room.ID) {
		s.cache.Spawn(room, s.grid.Anchor(room.Coord))
	}
	Reconcile(s.cache, s.grid, room)
	s.SyncToAgent()
	s.recordSafeEntry()

	s.logger.Info("room restored", "room", room.ID, "coord", coord.String())
	return true
}

func (s *WorldStreamer) initFirstRoom() {
	start := s.registry.Start()
	if s.settings.StartRoom != "" {
		d, ok := s.registry.ByID(s.settings.StartRoom)
		if !ok {
			s.logger.Error("start room not found", "room", s.settings.StartRoom)
			return
		}
		start = d
	}
	if start == nil {
		s.logger.Error("world has no start room")
		return
	}

	anchor := s.grid.Anchor(start.Coord)
	s.current = start
	s.cache.Spawn(start, anchor)
	Reconcile(s.cache, s.grid, start)

	if s.viewport != nil {
		s.viewport.SetPosition(anchor)
	}
	s.placeAgent(anchor.Add(s.settings.StartOffset()))
	s.recordSafeEntry()
	s.startCooldown(s.settings.SpawnProtection)

	s.logger.Info("first room initialized", "room", start.ID)
}

func (s *WorldStreamer) placeAgent(pos cp.Vector) {
	if s.agent == nil {
		return
	}
	s.agent.SetPosition(pos)
	s.agent.ZeroVelocity()
}

// SyncToAgent snaps the viewport to the cell containing the agent.
func (s *WorldStreamer) SyncToAgent() {
	if s.agent == nil || s.viewport == nil {
		return
	}
	s.viewport.SetPosition(s.grid.Snap(s.agent.Position()))
}
