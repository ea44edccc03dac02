package game

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// countingSound records how often it was played.
type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }

// countingSounds hands out one countingSound per name.
type countingSounds struct {
	sounds map[string]*countingSound
}

func newCountingSounds() *countingSounds {
	return &countingSounds{sounds: make(map[string]*countingSound)}
}

func (c *countingSounds) Load(name string) (assets.Sound, error) {
	s, ok := c.sounds[name]
	if !ok {
		s = &countingSound{}
		c.sounds[name] = s
	}
	return s, nil
}

func (c *countingSounds) plays(name string) int {
	if s, ok := c.sounds[name]; ok {
		return s.plays
	}
	return 0
}

// testImages provides solid sprites with the bundled asset dimensions:
// bird 34x24, pipe 104x320, ground 480x56 after the default scales.
func testImages() *assets.MemoryImages {
	m := assets.NewMemoryImages()
	m.AddSolid("bird.png", 68, 48, color.RGBA{R: 250, G: 200, B: 40, A: 255})
	m.AddSolid("pipe.png", 208, 640, color.RGBA{G: 180, A: 255})
	m.AddSolid("ground.png", 960, 112, color.RGBA{R: 220, G: 200, B: 140, A: 255})
	m.AddSolid("bg.png", 400, 600, color.RGBA{R: 90, G: 180, B: 230, A: 255})
	return m
}

func newTestGame(t *testing.T, mutate func(*config.FlappyConfig)) (*Game, *countingSounds) {
	t.Helper()

	cfg := config.DefaultFlappyConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	sounds := newCountingSounds()
	g, err := New(cfg, testImages(), sounds, 42)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g, sounds
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Push(a)
	}
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// placePair spawns a pipe pair around gapCenter whose center column will be
// at centerX after the next update.
func placePair(g *Game, centerX, gapCenter float64) (bottom, top *PipeHalf) {
	s := g.session
	bottom, top = s.Spawner.SpawnAt(gapCenter)
	dx := centerX - g.cfg.Playfield.Width + g.cfg.Physics.ScrollSpeed
	for _, p := range []*PipeHalf{bottom, top} {
		p.Rect = p.Rect.Translate(dx, 0)
		p.Hitbox = p.Hitbox.Translate(dx, 0)
	}
	s.Pipes = append(s.Pipes, bottom, top)
	return bottom, top
}
