package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SpawnTimer fires every interval, counted in simulation ticks so that runs
// are reproducible regardless of frame timing.
type SpawnTimer struct {
	every int // Ticks between fires
	count int // Ticks since the last fire
}

// NewSpawnTimer creates a timer firing every interval at the given tick length.
func NewSpawnTimer(interval, tick time.Duration) SpawnTimer {
	every := int(math.Round(float64(interval) / float64(tick)))
	if every < 1 {
		every = 1
	}
	return SpawnTimer{every: every}
}

// Advance moves the timer by one tick and reports whether it fired.
func (t *SpawnTimer) Advance() bool {
	t.count++
	if t.count >= t.every {
		t.count = 0
		return true
	}
	return false
}

// Reset restarts the timer from a full interval.
func (t *SpawnTimer) Reset() {
	t.count = 0
}

// Every returns the firing period in ticks.
func (t SpawnTimer) Every() int { return t.every }

// Remaining returns the ticks left until the next fire.
func (t SpawnTimer) Remaining() int { return t.every - t.count }

// Spawner builds pipe pairs at the right edge of the playfield.
type Spawner struct {
	cfg    config.PipesConfig
	x      float64 // Spawn column (center of the pipe)
	speed  float64
	sprite assets.Sprite
	rng    *rand.Rand
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(cfg config.PipesConfig, sprite assets.Sprite, fieldW, speed float64, seed int64) *Spawner {
	return &Spawner{
		cfg:    cfg,
		x:      fieldW,
		speed:  speed,
		sprite: sprite,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Spawn creates a bottom and a top pipe around a random gap center.
// Both halves share the same x; their facing visual edges are exactly one
// gap apart, and each hitbox is inset on all four sides.
func (s *Spawner) Spawn() (bottom, top *PipeHalf) {
	center := float64(s.cfg.MinCenter + s.rng.Intn(s.cfg.MaxCenter-s.cfg.MinCenter+1))
	return s.SpawnAt(center)
}

// SpawnAt creates a pipe pair around the given gap center.
func (s *Spawner) SpawnAt(center float64) (bottom, top *PipeHalf) {
	w, h := s.sprite.Width(), s.sprite.Height()
	half := s.cfg.Gap / 2

	bottomRect := core.NewRectMidTop(s.x, center+half, w, h)
	topRect := core.NewRectMidBottom(s.x, center-half, w, h)

	bottom = &PipeHalf{
		Rect:   bottomRect,
		Hitbox: bottomRect.Inset(s.cfg.HitboxInset),
		sprite: s.sprite,
		speed:  s.speed,
	}
	top = &PipeHalf{
		Rect:     topRect,
		Hitbox:   topRect.Inset(s.cfg.HitboxInset),
		Inverted: true,
		sprite:   s.sprite,
		speed:    s.speed,
	}
	return bottom, top
}
