package game

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// EntityKind tags the concrete entity behind an Entity.
type EntityKind int

const (
	KindBackground EntityKind = iota
	KindPipe
	KindGround
	KindBird
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindBackground:
		return "background"
	case KindPipe:
		return "pipe"
	case KindGround:
		return "ground"
	case KindBird:
		return "bird"
	default:
		return "unknown"
	}
}

// Entity is a moving axis-aligned rectangle with a sprite.
// Implemented by *Bird, *PipeHalf and *GroundTile.
type Entity interface {
	Kind() EntityKind
	Update()
	Bounds() core.Rect
	Sprite() assets.Sprite
}

// PipeHalf is one half (top or bottom) of a spawned pipe pair.
type PipeHalf struct {
	Rect     core.Rect // Visual rectangle
	Hitbox   core.Rect // Rect inset on all sides; used for collisions
	Inverted bool      // Top half, drawn upside down
	Passed   bool      // Already counted by the score tracker

	sprite assets.Sprite
	speed  float64
}

// Kind implements Entity.
func (p *PipeHalf) Kind() EntityKind { return KindPipe }

// Bounds returns the visual rectangle.
func (p *PipeHalf) Bounds() core.Rect { return p.Rect }

// Sprite implements Entity.
func (p *PipeHalf) Sprite() assets.Sprite { return p.sprite }

// Update scrolls the pipe left; the hitbox moves in lockstep.
func (p *PipeHalf) Update() {
	p.Rect = p.Rect.Translate(-p.speed, 0)
	p.Hitbox = p.Hitbox.Translate(-p.speed, 0)
}

// OffScreen reports whether the pipe has fully left the playfield on the left.
func (p *PipeHalf) OffScreen() bool {
	return p.Rect.Right() < 0
}

// GroundTile is one tile of the scrolling ground strip.
type GroundTile struct {
	Rect core.Rect

	sprite assets.Sprite
	speed  float64
}

// Kind implements Entity.
func (t *GroundTile) Kind() EntityKind { return KindGround }

// Bounds implements Entity.
func (t *GroundTile) Bounds() core.Rect { return t.Rect }

// Sprite implements Entity.
func (t *GroundTile) Sprite() assets.Sprite { return t.sprite }

// Update scrolls the tile left.
func (t *GroundTile) Update() {
	t.Rect = t.Rect.Translate(-t.speed, 0)
}

// Ground is a horizontally tiled strip at the ground line.
type Ground struct {
	Tiles []*GroundTile
}

// NewGround lays n tiles edge to edge starting at x=0 with their tops at groundY.
func NewGround(sprite assets.Sprite, n int, groundY, speed float64) *Ground {
	g := &Ground{Tiles: make([]*GroundTile, n)}
	for i := range g.Tiles {
		g.Tiles[i] = &GroundTile{
			Rect:   core.NewRect(float64(i)*sprite.Width(), groundY, sprite.Width(), sprite.Height()),
			sprite: sprite,
			speed:  speed,
		}
	}
	return g
}

// Wrap moves tiles that fully left the screen to the right of the right-most
// tile, so the scrolling strip never shows a seam. Call after the tiles moved.
func (g *Ground) Wrap() {
	for _, t := range g.Tiles {
		if t.Rect.Right() > 0 {
			continue
		}
		t.Rect.X = g.rightEdge()
	}
}

// rightEdge returns the right edge of the right-most tile.
func (g *Ground) rightEdge() float64 {
	edge := g.Tiles[0].Rect.Right()
	for _, t := range g.Tiles[1:] {
		if r := t.Rect.Right(); r > edge {
			edge = r
		}
	}
	return edge
}
