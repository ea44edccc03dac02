// Package config provides YAML-based game configuration loading for tui-flappy.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipesConfig      `yaml:"pipes"`
	Ground     GroundConfig     `yaml:"ground"`
	Background BackgroundConfig `yaml:"background"`
	Sounds     SoundsConfig     `yaml:"sounds"`
	Timing     TimingConfig     `yaml:"timing"`
	Input      InputConfig      `yaml:"input"`
}

// PlayfieldConfig defines the logical playfield in pixels.
type PlayfieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Ground line distance from the bottom
}

// GroundY returns the y-coordinate of the ground line.
func (p PlayfieldConfig) GroundY() float64 {
	return p.Height - p.GroundOffset
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	FlapImpulse    float64 `yaml:"flap_impulse"`
	ScrollSpeed    float64 `yaml:"scroll_speed"`
	RotationFactor float64 `yaml:"rotation_factor"`
}

// BirdConfig defines the bird's spawn point and sprite.
type BirdConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Sprite string  `yaml:"sprite"`
	Scale  float64 `yaml:"scale"`
}

// PipesConfig defines pipe spawning and hitbox parameters.
type PipesConfig struct {
	Gap           float64       `yaml:"gap"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	MinCenter     int           `yaml:"min_center"`
	MaxCenter     int           `yaml:"max_center"`
	HitboxInset   float64       `yaml:"hitbox_inset"`
	Sprite        string        `yaml:"sprite"`
	Scale         float64       `yaml:"scale"`
}

// GroundConfig defines the scrolling ground strip.
type GroundConfig struct {
	Sprite string  `yaml:"sprite"`
	Scale  float64 `yaml:"scale"`
	Tiles  int     `yaml:"tiles"`
}

// BackgroundConfig defines the static background.
type BackgroundConfig struct {
	Sprite string `yaml:"sprite"`
}

// SoundsConfig names the one-shot sound effects.
type SoundsConfig struct {
	Flap   string  `yaml:"flap"`
	Point  string  `yaml:"point"`
	Volume float64 `yaml:"volume"`
}

// TimingConfig defines the simulation rate.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"`
	// ResetSpawnTimerOnRestart restarts the pipe timer from a full interval
	// on restart instead of keeping its phase.
	ResetSpawnTimerOnRestart bool `yaml:"reset_spawn_timer_on_restart"`
}

// TickDuration returns the wall-clock length of one tick.
func (t TimingConfig) TickDuration() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.TickRate)
}

// InputConfig tunes input handling of the terminal frontend.
type InputConfig struct {
	// ReleaseDelay is how long after the last flap key repeat the key is
	// considered released. Terminals do not report key releases.
	ReleaseDelay time.Duration `yaml:"release_delay"`
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield size must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Playfield.GroundOffset < 0 || c.Playfield.GroundOffset >= c.Playfield.Height {
		errs = append(errs, fmt.Errorf("ground_offset %v must be within [0, %v)", c.Playfield.GroundOffset, c.Playfield.Height))
	}
	if c.Physics.FlapImpulse >= 0 {
		errs = append(errs, fmt.Errorf("flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse))
	}
	if c.Physics.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("scroll_speed must be positive, got %v", c.Physics.ScrollSpeed))
	}
	if c.Pipes.Gap <= 0 {
		errs = append(errs, fmt.Errorf("pipe gap must be positive, got %v", c.Pipes.Gap))
	}
	if c.Pipes.MinCenter > c.Pipes.MaxCenter {
		errs = append(errs, fmt.Errorf("pipes min_center %d exceeds max_center %d", c.Pipes.MinCenter, c.Pipes.MaxCenter))
	}
	if c.Pipes.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %v", c.Pipes.SpawnInterval))
	}
	if c.Pipes.HitboxInset < 0 {
		errs = append(errs, fmt.Errorf("hitbox_inset must not be negative, got %v", c.Pipes.HitboxInset))
	}
	if c.Ground.Tiles < 2 {
		errs = append(errs, fmt.Errorf("ground needs at least 2 tiles to scroll seamlessly, got %d", c.Ground.Tiles))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Sounds.Volume < 0 || c.Sounds.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound volume must be within [0, 1], got %v", c.Sounds.Volume))
	}
	for _, s := range []struct{ field, value string }{
		{"bird.sprite", c.Bird.Sprite},
		{"pipes.sprite", c.Pipes.Sprite},
		{"ground.sprite", c.Ground.Sprite},
		{"background.sprite", c.Background.Sprite},
		{"sounds.flap", c.Sounds.Flap},
		{"sounds.point", c.Sounds.Point},
	} {
		if s.value == "" {
			errs = append(errs, fmt.Errorf("%s must name an asset", s.field))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
