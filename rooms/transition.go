package rooms

import (
	"time"

	"github.com/jakecoffman/cp"
)

type transition struct {
	dir      Direction
	dest     *Descriptor
	elapsed  time.Duration
	duration time.Duration

	viewStart   cp.Vector
	viewTarget  cp.Vector
	agentStart  cp.Vector
	agentTarget cp.Vector
}

// RequestMove starts an animated move into dest. It is dropped, returning
// false, while the activity gate blocks, while another move is animating or
// settling, or when direction is not a cardinal unit vector. Doors are
// expected to call again on the next tick if the player is still pushing.
func (s *WorldStreamer) RequestMove(direction cp.Vector, dest *Descriptor, distanceOverride float64) bool {
	if s.Blocking() || s.transitioning || s.coolingDown {
		return false
	}
	if dest == nil {
		s.logger.Warn("move requested without destination")
		return false
	}
	dir, ok := DirectionOf(direction)
	if !ok {
		s.logger.Warn("move requested with non-cardinal direction", "x", direction.X, "y", direction.Y, "room", dest.ID)
		return false
	}

	s.transitioning = true
	if s.agent != nil {
		s.agent.SetInputEnabled(false)
	}

	s.cache.Refresh(dest, s.grid.Anchor(dest.Coord))

	distance := s.grid.Spacing(dir)
	if distanceOverride > 0 {
		distance = distanceOverride
	}

	t := &transition{
		dir:      dir,
		dest:     dest,
		duration: s.settings.TransitionTime,
	}
	if s.viewport != nil {
		t.viewStart = s.viewport.Position()
	}
	t.viewTarget = t.viewStart.Add(dir.Vector().Mult(distance))
	if s.agent != nil {
		t.agentStart = s.agent.Position()
	}
	t.agentTarget = s.landingPoint(dir, t.agentStart, t.viewTarget)
	s.active = t

	s.logger.Info("room transition started", "from", s.current.String(), "to", dest.ID, "direction", dir.String(), "distance", distance)
	return true
}

// landingPoint puts the agent just inside the playable edge of the room
// centered on view, on the side it enters from. The cross axis is kept.
func (s *WorldStreamer) landingPoint(dir Direction, agent, view cp.Vector) cp.Vector {
	halfW := s.settings.PlayableWidth / 2
	halfH := s.settings.PlayableHeight / 2
	off := s.settings.SpawnOffset

	switch dir {
	case North:
		return cp.Vector{X: agent.X, Y: view.Y - halfH + off}
	case South:
		return cp.Vector{X: agent.X, Y: view.Y + halfH - off}
	case East:
		return cp.Vector{X: view.X - halfW + off, Y: agent.Y}
	case West:
		return cp.Vector{X: view.X + halfW - off, Y: agent.Y}
	default:
		return agent
	}
}

// Advance moves the controller forward by dt. It returns true once the
// controller is idle and will accept a new move.
func (s *WorldStreamer) Advance(dt time.Duration) bool {
	if dt < 0 {
		dt = 0
	}

	if t := s.active; t != nil {
		t.elapsed += dt
		if t.elapsed >= t.duration {
			s.completeTransition()
			return false
		}
		frac := float64(t.elapsed) / float64(t.duration)
		if s.viewport != nil {
			s.viewport.SetPosition(t.viewStart.Lerp(t.viewTarget, frac))
		}
		if s.agent != nil {
			s.agent.SetPosition(t.agentStart.Lerp(t.agentTarget, frac))
		}
		return false
	}

	if s.coolingDown {
		s.cooldownLeft -= dt
		if s.cooldownLeft <= 0 {
			s.coolingDown = false
			s.cooldownLeft = 0
		}
	}

	return !s.transitioning && !s.coolingDown
}

func (s *WorldStreamer) completeTransition() {
	t := s.active
	s.active = nil

	// Snap so repeated moves never accumulate lerp error.
	if s.viewport != nil {
		s.viewport.SetPosition(t.viewTarget)
	}
	if s.agent != nil {
		s.agent.SetPosition(t.agentTarget)
		s.agent.ZeroVelocity()
	}

	s.current = t.dest
	Reconcile(s.cache, s.grid, s.current)

	if s.agent != nil {
		s.agent.SetInputEnabled(true)
	}
	s.recordSafeEntry()

	if inst, ok := s.cache.Instance(t.dest.ID); ok && inst.Content != nil {
		if ending := inst.Content.Ending(); ending != nil {
			s.logger.Info("ending triggered", "room", t.dest.ID)
			ending.Play()
		}
	}

	s.transitioning = false
	s.startCooldown(s.settings.LandingCooldown)

	s.logger.Info("room transition settled", "room", t.dest.ID, "loaded", len(s.cache.instances))
}
