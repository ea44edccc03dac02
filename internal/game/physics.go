package game

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player. X stays at the spawn column; Y is the vertical center.
type Bird struct {
	X, Y     float64
	Velocity float64 // Pixels per tick, positive is down

	canFlap bool
	flapped bool // A flap happened since the last Update

	physics   config.PhysicsConfig
	groundY   float64
	sprite    assets.Sprite
	flapSound assets.Sound
}

// NewBird creates a bird at (x, y) at rest.
func NewBird(sprite assets.Sprite, flapSound assets.Sound, physics config.PhysicsConfig, x, y, groundY float64) *Bird {
	return &Bird{
		X:         x,
		Y:         y,
		canFlap:   true,
		physics:   physics,
		groundY:   groundY,
		sprite:    sprite,
		flapSound: flapSound,
	}
}

// Kind implements Entity.
func (b *Bird) Kind() EntityKind { return KindBird }

// Sprite implements Entity.
func (b *Bird) Sprite() assets.Sprite { return b.sprite }

// Bounds returns the bird's full rectangle.
func (b *Bird) Bounds() core.Rect {
	return core.NewRectCentered(b.X, b.Y, b.sprite.Width(), b.sprite.Height())
}

// CanFlap reports whether the next Flap will take effect.
func (b *Bird) CanFlap() bool { return b.canFlap }

// Flap launches the bird upward. A held key flaps only once: further calls
// are no-ops until ResetFlap. Returns whether the flap happened.
func (b *Bird) Flap() bool {
	if !b.canFlap {
		return false
	}
	b.Velocity = b.physics.FlapImpulse
	b.flapped = true
	b.canFlap = false
	b.flapSound.Play()
	return true
}

// ResetFlap re-arms flapping; called when the flap key is released.
func (b *Bird) ResetFlap() {
	b.canFlap = true
}

// Update advances the bird by one tick. Gravity is applied unless the bird
// flapped this tick, in which case the velocity stays at the flap impulse.
func (b *Bird) Update() {
	if b.flapped {
		b.flapped = false
	} else {
		b.Velocity += b.physics.Gravity
	}
	b.Y += b.Velocity

	// Resting on the ground re-arms the flap.
	if b.Bounds().Bottom() >= b.groundY {
		b.canFlap = true
	}
}

// Rotation returns the sprite rotation in degrees, counter-clockwise
// positive: nose up while rising, nose down while falling.
func (b *Bird) Rotation() float64 {
	return -b.Velocity * b.physics.RotationFactor
}

// Reset moves the bird back to (x, y) at rest. The flap lock is untouched;
// the next key release re-arms it.
func (b *Bird) Reset(x, y float64) {
	b.X = x
	b.Y = y
	b.Velocity = 0
	b.flapped = false
}
