package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder for image.Decode
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// ImageSprite is a decoded, already scaled sprite image.
type ImageSprite struct {
	name string
	img  image.Image
}

// NewSprite wraps an image as a sprite.
func NewSprite(name string, img image.Image) *ImageSprite {
	return &ImageSprite{name: name, img: img}
}

// Name returns the logical asset name.
func (s *ImageSprite) Name() string { return s.name }

// Width returns the sprite width in pixels.
func (s *ImageSprite) Width() float64 { return float64(s.img.Bounds().Dx()) }

// Height returns the sprite height in pixels.
func (s *ImageSprite) Height() float64 { return float64(s.img.Bounds().Dy()) }

// Image returns the unrotated source image.
func (s *ImageSprite) Image() image.Image { return s.img }

type imageKey struct {
	name  string
	scale float64
}

// Images loads PNG sprites through a Resolver. Loaded sprites are cached, so
// every caller shares one decoded image per (name, scale).
type Images struct {
	res   *Resolver
	mu    sync.Mutex
	cache map[imageKey]*ImageSprite
}

// NewImages creates an image provider backed by res.
func NewImages(res *Resolver) *Images {
	return &Images{
		res:   res,
		cache: make(map[imageKey]*ImageSprite),
	}
}

// Load decodes the named image and scales it uniformly.
func (p *Images) Load(name string, scale float64) (Sprite, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := imageKey{name: name, scale: scale}
	if s, ok := p.cache[key]; ok {
		return s, nil
	}

	data, _, err := p.res.Open(KindImages, name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	scaled, err := scaleImage(img, scale)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}

	s := NewSprite(name, scaled)
	p.cache[key] = s
	return s, nil
}

// MemoryImages serves sprites from in-memory images. Useful for headless
// runs and tests where no files are involved.
type MemoryImages struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewMemoryImages creates an empty in-memory provider.
func NewMemoryImages() *MemoryImages {
	return &MemoryImages{images: make(map[string]image.Image)}
}

// Add registers an image under name.
func (m *MemoryImages) Add(name string, img image.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[name] = img
}

// AddSolid registers a w×h image filled with c.
func (m *MemoryImages) AddSolid(name string, w, h int, c color.Color) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	m.Add(name, img)
}

// Load returns the named image scaled uniformly.
func (m *MemoryImages) Load(name string, scale float64) (Sprite, error) {
	m.mu.RLock()
	img, ok := m.images[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("assets: %s/%s: %w", KindImages, name, ErrAssetNotFound)
	}
	scaled, err := scaleImage(img, scale)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	return NewSprite(name, scaled), nil
}

// scaleImage resizes img by a uniform factor. Scale 1 returns img untouched.
func scaleImage(img image.Image, scale float64) (image.Image, error) {
	if scale == 1 {
		return img, nil
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("invalid scale %v", scale)
	}

	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}
