package rooms

import (
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("ROOMSTREAM_TRANSITION_TIME", "250ms")
	t.Setenv("ROOMSTREAM_START_ROOM", "hub")
	t.Setenv("ROOMSTREAM_SPAWN_OFFSET", "2")

	s, err := LoadSettingsFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "transition", s.TransitionTime, 250*time.Millisecond)
	testutil.AssertEqual(t, "start room", s.StartRoom, "hub")
	testutil.AssertEqual(t, "spawn offset", s.SpawnOffset, 2.0)
	testutil.AssertEqual(t, "landing cooldown default", s.LandingCooldown, 100*time.Millisecond)
	testutil.AssertEqual(t, "grid width default", s.GridWidth, 32.0)
	testutil.AssertEqual(t, "start offset y default", s.StartOffsetY, -2.0)
}

func TestLoadSettingsFromEnvErrors(t *testing.T) {
	tests := map[string]struct {
		key    string
		value  string
		expErr string
	}{
		"unparseable": {
			key:    "ROOMSTREAM_TRANSITION_TIME",
			value:  "soon",
			expErr: "parse env",
		},
		"invalid": {
			key:    "ROOMSTREAM_PLAYABLE_WIDTH",
			value:  "40",
			expErr: "exceeds grid",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			s, err := LoadSettingsFromEnv()
			testutil.AssertErrorContains(t, err, tt.expErr)
			testutil.AssertEqual(t, "falls back to defaults", s, DefaultSettings())
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Settings)
		expErr string
	}{
		"defaults": {
			mutate: func(*Settings) {},
		},
		"zero transition": {
			mutate: func(s *Settings) { s.TransitionTime = 0 },
			expErr: "transition time must be positive",
		},
		"negative cooldown": {
			mutate: func(s *Settings) { s.LandingCooldown = -time.Millisecond },
			expErr: "landing cooldown must not be negative",
		},
		"flat grid": {
			mutate: func(s *Settings) { s.GridHeight = 0 },
			expErr: "grid size must be positive",
		},
		"negative offset": {
			mutate: func(s *Settings) { s.SpawnOffset = -1 },
			expErr: "spawn offset must not be negative",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}
