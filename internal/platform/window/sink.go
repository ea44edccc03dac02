package window

import (
	"bytes"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

const fontSize = 11

var hitboxColor = color.RGBA{R: 255, A: 255}

// Sink is a game.RenderSink drawing onto an Ebitengine image.
// Sprite images are uploaded once and reused; rotation and flipping are
// applied at draw time from the unrotated source.
type Sink struct {
	dst    *ebiten.Image
	images map[assets.Sprite]*ebiten.Image
	face   *text.GoTextFace
}

var (
	faceSourceOnce sync.Once
	faceSource     *text.GoTextFaceSource
	faceSourceErr  error
)

// NewSink creates a sink. Call SetTarget before each Render.
func NewSink() (*Sink, error) {
	faceSourceOnce.Do(func() {
		faceSource, faceSourceErr = text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	})
	if faceSourceErr != nil {
		return nil, faceSourceErr
	}
	return &Sink{
		images: make(map[assets.Sprite]*ebiten.Image),
		face:   &text.GoTextFace{Source: faceSource, Size: fontSize},
	}, nil
}

// SetTarget sets the image the next frames are drawn on.
func (s *Sink) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Render implements game.RenderSink.
func (s *Sink) Render(f *game.Frame) {
	if s.dst == nil {
		return
	}

	s.drawSprite(f.Background)
	for _, d := range f.Sprites {
		s.drawSprite(d)
	}
	for _, hb := range f.Hitboxes {
		vector.StrokeRect(s.dst, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), 2, hitboxColor, false)
	}
	for _, t := range f.Texts {
		op := &text.DrawOptions{}
		op.GeoM.Translate(t.X, t.Y)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(s.dst, t.Text, s.face, op)
	}
}

func (s *Sink) image(sp assets.Sprite) *ebiten.Image {
	img, ok := s.images[sp]
	if !ok {
		img = ebiten.NewImageFromImage(sp.Image())
		s.images[sp] = img
	}
	return img
}

func (s *Sink) drawSprite(d game.SpriteDraw) {
	if d.Sprite == nil {
		return
	}
	img := s.image(d.Sprite)
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM = SpriteGeoM(d, float64(b.Dx()), float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

// SpriteGeoM maps a w x h source image onto the draw's rectangle: flipped
// upside down if requested, scaled to the rect, rotated around its center.
// Rotation is counter-clockwise positive on screen.
func SpriteGeoM(d game.SpriteDraw, w, h float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-w/2, -h/2)
	if d.FlipY {
		m.Scale(1, -1)
	}
	m.Scale(d.Rect.W/w, d.Rect.H/h)
	if d.Rotation != 0 {
		// GeoM rotates clockwise on a y-down screen.
		m.Rotate(-d.Rotation * math.Pi / 180)
	}
	cx, cy := d.Rect.Center()
	m.Translate(cx, cy)
	return m
}
