// Package rooms streams a grid of rooms in and out of memory around a single
// agent and sequences the animated moves between them.
package rooms

import (
	"log/slog"
	"time"

	"github.com/jakecoffman/cp"
)

// Phase is the transition controller's position in its cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnimating
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimating:
		return "animating"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// WorldStreamer owns the room cache and the current room. Construct one per
// process and hand it to the door, agent and death-handler code that needs
// it. It is driven from the game loop and is not safe for concurrent use.
type WorldStreamer struct {
	registry *Registry
	settings Settings
	grid     Grid
	cache    *Cache
	session  *Session
	logger   *slog.Logger

	agent    Agent
	viewport Viewport
	gate     ActivityGate

	current   *Descriptor
	safeEntry cp.Vector
	hasSafe   bool
	entered   bool

	transitioning bool
	coolingDown   bool
	cooldownLeft  time.Duration
	active        *transition
}

type Option func(*WorldStreamer)

// WithLogger sets the logger used by the streamer and its cache.
func WithLogger(l *slog.Logger) Option {
	return func(s *WorldStreamer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithActivityGate wires the collaborator that can veto transitions.
func WithActivityGate(g ActivityGate) Option {
	return func(s *WorldStreamer) { s.gate = g }
}

// WithSession shares process memory between streamers. Without it a fresh
// Session is created.
func WithSession(sess *Session) Option {
	return func(s *WorldStreamer) {
		if sess != nil {
			s.session = sess
		}
	}
}

func NewWorldStreamer(registry *Registry, settings Settings, spawner Spawner, agent Agent, viewport Viewport, opts ...Option) *WorldStreamer {
	s := &WorldStreamer{
		registry: registry,
		settings: settings,
		grid:     settings.Grid(),
		session:  NewSession(),
		logger:   slog.Default(),
		agent:    agent,
		viewport: viewport,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = NewCache(spawner, s.logger)
	return s
}

func (s *WorldStreamer) Registry() *Registry { return s.registry }
func (s *WorldStreamer) Settings() Settings  { return s.settings }
func (s *WorldStreamer) Grid() Grid          { return s.grid }
func (s *WorldStreamer) Cache() *Cache       { return s.cache }
func (s *WorldStreamer) Session() *Session   { return s.session }

// Current returns the occupied room, or nil before the first successful
// restore.
func (s *WorldStreamer) Current() *Descriptor { return s.current }

// Loaded returns the resident room ids.
func (s *WorldStreamer) Loaded() []string { return s.cache.Loaded() }

// SafeEntry returns the agent position recorded when it last settled.
func (s *WorldStreamer) SafeEntry() (cp.Vector, bool) { return s.safeEntry, s.hasSafe }

func (s *WorldStreamer) IsTransitioning() bool { return s.transitioning }
func (s *WorldStreamer) IsCoolingDown() bool   { return s.coolingDown }

func (s *WorldStreamer) State() Phase {
	switch {
	case s.transitioning:
		return PhaseAnimating
	case s.coolingDown:
		return PhaseSettling
	default:
		return PhaseIdle
	}
}

// Blocking reports whether the activity gate currently forbids leaving.
func (s *WorldStreamer) Blocking() bool {
	return s.gate != nil && s.gate.IsBlocking()
}

// MarkSafeEntryAsRestartPoint arms the session so the next RestoreOrInit
// places the agent where it last settled. Called by the death handler before
// the scene is reloaded.
func (s *WorldStreamer) MarkSafeEntryAsRestartPoint() {
	if !s.hasSafe {
		s.logger.Warn("no safe entry recorded, restart point unchanged")
		return
	}
	s.session.SetRestartOverride(s.safeEntry)
	s.logger.Info("restart point marked", "x", s.safeEntry.X, "y", s.safeEntry.Y)
}

// SaveAgentPosition stores where the agent should resume after an ordinary
// reload. Mid-transition positions are never saved; the last safe entry is
// used instead.
func (s *WorldStreamer) SaveAgentPosition() {
	if s.transitioning {
		if s.hasSafe {
			s.session.SavePosition(s.safeEntry)
		}
		return
	}
	if s.agent == nil {
		return
	}
	s.session.SavePosition(s.agent.Position())
}

// Unload drops every room instance and any in-flight transition, ready for
// the next RestoreOrInit. The current room is kept so it is never nil once
// the world has been initialized.
func (s *WorldStreamer) Unload() {
	if s.transitioning && s.agent != nil {
		s.agent.SetInputEnabled(true)
	}
	s.active = nil
	s.transitioning = false
	s.coolingDown = false
	s.cooldownLeft = 0
	s.entered = false
	s.cache.Clear()
}

func (s *WorldStreamer) recordSafeEntry() {
	if s.agent == nil {
		return
	}
	s.safeEntry = s.agent.Position()
	s.hasSafe = true
	s.session.SavePosition(s.safeEntry)
}

func (s *WorldStreamer) startCooldown(d time.Duration) {
	if d <= 0 {
		s.coolingDown = false
		s.cooldownLeft = 0
		return
	}
	s.coolingDown = true
	s.cooldownLeft = d
}
