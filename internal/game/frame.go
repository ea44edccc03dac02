package game

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Text shown on screen.
const (
	GameOverText      = "Game Over! Press SPACE to Restart"
	HitboxHintText    = "Press H to toggle hitboxes"
	scoreTextTemplate = "Score: %d"
)

// SpriteDraw places one sprite on the playfield.
type SpriteDraw struct {
	Kind     EntityKind
	Sprite   assets.Sprite
	Rect     core.Rect // Destination rectangle before rotation
	Rotation float64   // Degrees, counter-clockwise positive, around the rect center
	FlipY    bool      // Draw upside down (top pipes)
}

// TextLine is a line of text centered on (X, Y) in playfield coordinates.
type TextLine struct {
	Text string
	X, Y float64
}

// Frame describes everything to draw for one tick, back to front:
// background, sprites, hitbox outlines, then text.
type Frame struct {
	Width, Height float64
	Background    SpriteDraw
	Sprites       []SpriteDraw
	Hitboxes      []core.Rect
	Texts         []TextLine
	State         GameState
	Score         int
}

// RenderSink consumes frames. Implemented by the terminal and window frontends.
type RenderSink interface {
	Render(f *Frame)
}

// Frame builds the render description of the current session.
// While the game is over the scene stays frozen under the game-over text.
func (g *Game) Frame() *Frame {
	s := g.session
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	f := &Frame{
		Width:  w,
		Height: h,
		Background: SpriteDraw{
			Kind:   KindBackground,
			Sprite: g.background,
			Rect:   core.NewRect(0, 0, w, h),
		},
		State: s.State,
		Score: s.Score.Display(),
	}

	entities := s.Entities()
	f.Sprites = make([]SpriteDraw, 0, len(entities))
	for _, e := range entities {
		d := SpriteDraw{Kind: e.Kind(), Sprite: e.Sprite(), Rect: e.Bounds()}
		switch v := e.(type) {
		case *PipeHalf:
			d.FlipY = v.Inverted
		case *Bird:
			d.Rotation = v.Rotation()
		}
		f.Sprites = append(f.Sprites, d)
	}

	scoreLine := TextLine{Text: fmt.Sprintf(scoreTextTemplate, s.Score.Display()), X: w / 2, Y: 50}

	if s.State == StatePlaying {
		if s.ShowHitboxes {
			f.Hitboxes = make([]core.Rect, 0, len(s.Pipes))
			for _, p := range s.Pipes {
				f.Hitboxes = append(f.Hitboxes, p.Hitbox)
			}
		}
		f.Texts = []TextLine{scoreLine}
		return f
	}

	f.Texts = []TextLine{
		{Text: GameOverText, X: w / 2, Y: h / 2},
		scoreLine,
		{Text: HitboxHintText, X: w / 2, Y: h/2 + 40},
	}
	return f
}

// Render hands the current frame to sink.
func (g *Game) Render(sink RenderSink) {
	sink.Render(g.Frame())
}
