package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

const (
	pixelRune = '█'

	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2.0

	// Pixels below this alpha are treated as transparent.
	alphaCutoff = 128
)

// Rasterizer is a game.RenderSink that draws frames into a core.Screen.
// The playfield is scaled uniformly to fit the screen and centered; each
// cell shows the sprite pixel under its center.
type Rasterizer struct {
	screen *core.Screen

	scale      float64 // Playfield pixels per cell column
	offX, offY int     // Top-left cell of the playfield
	fieldW     float64
	fieldH     float64
}

// NewRasterizer creates a rasterizer drawing into a cols x rows screen.
func NewRasterizer(cols, rows int) *Rasterizer {
	return &Rasterizer{screen: core.NewScreen(cols, rows)}
}

// Screen returns the cell buffer holding the last rendered frame.
func (r *Rasterizer) Screen() *core.Screen {
	return r.screen
}

// Resize changes the target screen size. The next frame is refit to it.
func (r *Rasterizer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
}

// Render implements game.RenderSink.
func (r *Rasterizer) Render(f *game.Frame) {
	r.screen.Clear()
	if !r.fit(f.Width, f.Height) {
		return
	}

	r.drawSprite(f.Background)
	for _, d := range f.Sprites {
		r.drawSprite(d)
	}
	for _, hb := range f.Hitboxes {
		r.drawOutline(hb)
	}
	for _, t := range f.Texts {
		r.drawText(t)
	}
}

// fit computes the scale and offsets for a w x h playfield.
func (r *Rasterizer) fit(w, h float64) bool {
	cols, rows := r.screen.Width(), r.screen.Height()
	if cols < 1 || rows < 1 || w <= 0 || h <= 0 {
		return false
	}

	r.fieldW, r.fieldH = w, h
	r.scale = math.Max(w/float64(cols), h/(cellAspect*float64(rows)))

	usedCols := int(math.Ceil(w / r.scale))
	usedRows := int(math.Ceil(h / (cellAspect * r.scale)))
	r.offX = (cols - usedCols) / 2
	r.offY = (rows - usedRows) / 2
	return true
}

// cellWidth and cellHeight return the playfield size of one cell.
func (r *Rasterizer) cellWidth() float64  { return r.scale }
func (r *Rasterizer) cellHeight() float64 { return r.scale * cellAspect }

// ToCell converts a playfield point to screen cell coordinates.
func (r *Rasterizer) ToCell(x, y float64) (int, int) {
	return r.offX + int(math.Floor(x/r.cellWidth())), r.offY + int(math.Floor(y/r.cellHeight()))
}

// clip limits rect to the playfield.
func (r *Rasterizer) clip(rect core.Rect) (core.Rect, bool) {
	left := math.Max(rect.Left(), 0)
	top := math.Max(rect.Top(), 0)
	right := math.Min(rect.Right(), r.fieldW)
	bottom := math.Min(rect.Bottom(), r.fieldH)
	if right <= left || bottom <= top {
		return core.Rect{}, false
	}
	return core.NewRect(left, top, right-left, bottom-top), true
}

// drawSprite samples the sprite at every cell center it covers.
// Rotation is applied by rotating the sample point back into the
// unrotated source image.
func (r *Rasterizer) drawSprite(d game.SpriteDraw) {
	if d.Sprite == nil || d.Rect.W <= 0 || d.Rect.H <= 0 {
		return
	}

	cx, cy := d.Rect.Center()
	area := d.Rect
	if d.Rotation != 0 {
		diag := math.Hypot(d.Rect.W, d.Rect.H)
		area = core.NewRectCentered(cx, cy, diag, diag)
	}
	area, ok := r.clip(area)
	if !ok {
		return
	}

	sin, cos := math.Sincos(d.Rotation * math.Pi / 180)
	img := d.Sprite.Image()
	b := img.Bounds()

	col0 := int(math.Floor(area.Left() / r.cellWidth()))
	col1 := int(math.Ceil(area.Right() / r.cellWidth()))
	row0 := int(math.Floor(area.Top() / r.cellHeight()))
	row1 := int(math.Ceil(area.Bottom() / r.cellHeight()))

	for row := row0; row < row1; row++ {
		py := (float64(row) + 0.5) * r.cellHeight()
		for col := col0; col < col1; col++ {
			px := (float64(col) + 0.5) * r.cellWidth()

			sx, sy := px, py
			if d.Rotation != 0 {
				dx, dy := px-cx, py-cy
				sx = cx + dx*cos - dy*sin
				sy = cy + dx*sin + dy*cos
			}

			u := (sx - d.Rect.X) / d.Rect.W
			v := (sy - d.Rect.Y) / d.Rect.H
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}

			ix := b.Min.X + int(u*float64(b.Dx()))
			iy := b.Min.Y + int(v*float64(b.Dy()))
			if d.FlipY {
				iy = b.Max.Y - 1 - (iy - b.Min.Y)
			}

			c := color.NRGBAModel.Convert(img.At(ix, iy)).(color.NRGBA)
			if c.A < alphaCutoff {
				continue
			}
			r.screen.SetTinted(r.offX+col, r.offY+row, pixelRune, core.RGB{R: c.R, G: c.G, B: c.B})
		}
	}
}

// drawOutline draws a hitbox as a red box.
func (r *Rasterizer) drawOutline(rect core.Rect) {
	rect, ok := r.clip(rect)
	if !ok {
		return
	}
	x0, y0 := r.ToCell(rect.Left(), rect.Top())
	x1, y1 := r.ToCell(rect.Right(), rect.Bottom())
	r.screen.DrawBox(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1), core.ColorBrightRed)
}

// drawText centers a line of text on its anchor.
func (r *Rasterizer) drawText(t game.TextLine) {
	x, y := r.ToCell(t.X, t.Y)
	r.screen.DrawTextCentered(x, y, t.Text, core.ColorBrightWhite)
}
