package tui

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()

	images := assets.NewMemoryImages()
	images.AddSolid("bird.png", 68, 48, color.RGBA{R: 250, G: 200, B: 40, A: 255})
	images.AddSolid("pipe.png", 208, 640, color.RGBA{G: 180, A: 255})
	images.AddSolid("ground.png", 960, 112, color.RGBA{R: 220, G: 200, B: 140, A: 255})
	images.AddSolid("bg.png", 400, 600, color.RGBA{R: 90, G: 180, B: 230, A: 255})

	g, err := game.New(config.DefaultFlappyConfig(), images, assets.SilentSounds{}, 7)
	if err != nil {
		t.Fatalf("game.New() error: %v", err)
	}
	return g
}

// solidSprite returns a w x h sprite of one color.
func solidSprite(w, h int, c color.Color) assets.Sprite {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return assets.NewSprite("solid", img)
}

// splitSprite returns a sprite whose top half is top and bottom half is bottom.
func splitSprite(w, h int, top, bottom color.Color) assets.Sprite {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := top
		if y >= h/2 {
			c = bottom
		}
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return assets.NewSprite("split", img)
}
