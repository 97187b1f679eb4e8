package rooms

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jakecoffman/cp"
	"github.com/pixil98/go-errors"
)

// Settings tunes grid geometry and transition timing.
type Settings struct {
	TransitionTime  time.Duration `env:"ROOMSTREAM_TRANSITION_TIME"  envDefault:"400ms"`
	LandingCooldown time.Duration `env:"ROOMSTREAM_LANDING_COOLDOWN" envDefault:"100ms"`
	SpawnProtection time.Duration `env:"ROOMSTREAM_SPAWN_PROTECTION" envDefault:"500ms"`

	// SpawnOffset is how far inside the new room's playable edge the agent
	// lands after a transition.
	SpawnOffset float64 `env:"ROOMSTREAM_SPAWN_OFFSET" envDefault:"1.5"`

	GridWidth      float64 `env:"ROOMSTREAM_GRID_WIDTH"      envDefault:"32"`
	GridHeight     float64 `env:"ROOMSTREAM_GRID_HEIGHT"     envDefault:"18"`
	PlayableWidth  float64 `env:"ROOMSTREAM_PLAYABLE_WIDTH"  envDefault:"28"`
	PlayableHeight float64 `env:"ROOMSTREAM_PLAYABLE_HEIGHT" envDefault:"18"`

	// StartRoom is used on first boot. Empty means the first authored room.
	StartRoom    string  `env:"ROOMSTREAM_START_ROOM"`
	StartOffsetX float64 `env:"ROOMSTREAM_START_OFFSET_X" envDefault:"0"`
	StartOffsetY float64 `env:"ROOMSTREAM_START_OFFSET_Y" envDefault:"-2"`
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		TransitionTime:  400 * time.Millisecond,
		LandingCooldown: 100 * time.Millisecond,
		SpawnProtection: 500 * time.Millisecond,
		SpawnOffset:     1.5,
		GridWidth:       32,
		GridHeight:      18,
		PlayableWidth:   28,
		PlayableHeight:  18,
		StartOffsetY:    -2,
	}
}

// LoadSettingsFromEnv reads ROOMSTREAM_* variables over the defaults.
func LoadSettingsFromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

func (s Settings) Validate() error {
	el := errors.NewErrorList()

	if s.TransitionTime <= 0 {
		el.Add(fmt.Errorf("transition time must be positive, got %s", s.TransitionTime))
	}
	if s.LandingCooldown < 0 {
		el.Add(fmt.Errorf("landing cooldown must not be negative, got %s", s.LandingCooldown))
	}
	if s.SpawnProtection < 0 {
		el.Add(fmt.Errorf("spawn protection must not be negative, got %s", s.SpawnProtection))
	}
	if s.GridWidth <= 0 || s.GridHeight <= 0 {
		el.Add(fmt.Errorf("grid size must be positive, got %gx%g", s.GridWidth, s.GridHeight))
	}
	if s.PlayableWidth <= 0 || s.PlayableHeight <= 0 {
		el.Add(fmt.Errorf("playable size must be positive, got %gx%g", s.PlayableWidth, s.PlayableHeight))
	}
	if s.PlayableWidth > s.GridWidth || s.PlayableHeight > s.GridHeight {
		el.Add(fmt.Errorf("playable size %gx%g exceeds grid %gx%g", s.PlayableWidth, s.PlayableHeight, s.GridWidth, s.GridHeight))
	}
	if s.SpawnOffset < 0 {
		el.Add(fmt.Errorf("spawn offset must not be negative, got %g", s.SpawnOffset))
	}

	return el.Err()
}

func (s Settings) Grid() Grid {
	return Grid{Width: s.GridWidth, Height: s.GridHeight}
}

func (s Settings) StartOffset() cp.Vector {
	return cp.Vector{X: s.StartOffsetX, Y: s.StartOffsetY}
}
