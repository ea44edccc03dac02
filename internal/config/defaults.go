package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default game configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: PlayfieldConfig{
			Width:        400,
			Height:       600,
			GroundOffset: 50,
		},
		Physics: PhysicsConfig{
			Gravity:        0.25,
			FlapImpulse:    -7,
			ScrollSpeed:    3,
			RotationFactor: 3,
		},
		Bird: BirdConfig{
			SpawnX: 100,
			SpawnY: 300,
			Sprite: "bird.png",
			Scale:  0.5,
		},
		Pipes: PipesConfig{
			Gap:           150,
			SpawnInterval: 1500 * time.Millisecond,
			MinCenter:     200,
			MaxCenter:     400,
			HitboxInset:   30,
			Sprite:        "pipe.png",
			Scale:         0.5,
		},
		Ground: GroundConfig{
			Sprite: "ground.png",
			Scale:  0.5,
			Tiles:  2,
		},
		Background: BackgroundConfig{
			Sprite: "bg.png",
		},
		Sounds: SoundsConfig{
			Flap:   "wing.wav",
			Point:  "point.wav",
			Volume: 0.3,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			ReleaseDelay: 120 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
