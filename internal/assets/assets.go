// Package assets resolves the game's images and sounds.
//
// Assets are looked up in two roots: a development directory on disk
// (./assets by default) and the bundle embedded into the binary. The first
// root that has the file wins, so a checkout can override any bundled asset.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

// ErrAssetNotFound is returned when an asset exists in neither root.
var ErrAssetNotFound = errors.New("asset not found")

// Asset kinds, also the sub-directory names under each root.
const (
	KindImages = "images"
	KindSounds = "sounds"
)

// Origin names of the two roots.
const (
	OriginDir    = "dir"
	OriginBundle = "bundle"
)

//go:embed bundle
var bundleFS embed.FS

// Sprite is a drawable image with known dimensions in playfield pixels.
type Sprite interface {
	Name() string
	Width() float64
	Height() float64
	Image() image.Image
}

// ImageProvider loads sprites by logical name and uniform scale factor.
type ImageProvider interface {
	Load(name string, scale float64) (Sprite, error)
}

// Sound is a one-shot sound effect. Play never blocks and plays may overlap.
type Sound interface {
	Play()
}

// SoundProvider loads sounds by logical name.
type SoundProvider interface {
	Load(name string) (Sound, error)
}

// Resolver finds asset files in the development directory or the bundle.
type Resolver struct {
	dir    string
	bundle fs.FS
	logger *log.Logger
}

// NewResolver creates a resolver rooted at dir. An empty dir disables the
// on-disk root. A nil logger discards resolution logs.
func NewResolver(dir string, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bundle, err := fs.Sub(bundleFS, "bundle")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(fmt.Sprintf("assets: embedded bundle missing: %v", err))
	}
	return &Resolver{dir: dir, bundle: bundle, logger: logger}
}

// Dir returns the development directory, possibly empty.
func (r *Resolver) Dir() string {
	return r.dir
}

// Open reads an asset and reports which root it came from.
func (r *Resolver) Open(kind, name string) ([]byte, string, error) {
	rel := path.Join(kind, name)
	if !fs.ValidPath(rel) {
		return nil, "", fmt.Errorf("assets: invalid name %q", name)
	}

	if r.dir != "" {
		p := filepath.Join(r.dir, filepath.FromSlash(rel))
		data, err := os.ReadFile(p)
		switch {
		case err == nil:
			r.logger.Debug("asset resolved", "name", rel, "origin", OriginDir, "path", p)
			return data, OriginDir, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, "", fmt.Errorf("assets: read %s: %w", p, err)
		}
	}

	data, err := fs.ReadFile(r.bundle, rel)
	if err == nil {
		r.logger.Debug("asset resolved", "name", rel, "origin", OriginBundle)
		return data, OriginBundle, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("assets: %s: %w", rel, ErrAssetNotFound)
	}
	return nil, "", fmt.Errorf("assets: read bundled %s: %w", rel, err)
}

// Entry describes one bundled asset and where it currently resolves from.
type Entry struct {
	Kind   string
	Name   string
	Origin string
	Size   int64
}

// List returns every bundled asset, sorted by kind and name, noting whether
// the development directory overrides it.
func (r *Resolver) List() ([]Entry, error) {
	var entries []Entry
	err := fs.WalkDir(r.bundle, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		kind, name := path.Split(p)
		e := Entry{Kind: path.Clean(kind), Name: name, Origin: OriginBundle}
		if info, infoErr := d.Info(); infoErr == nil {
			e.Size = info.Size()
		}
		if r.dir != "" {
			if info, statErr := os.Stat(filepath.Join(r.dir, filepath.FromSlash(p))); statErr == nil {
				e.Origin = OriginDir
				e.Size = info.Size()
			}
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: list bundle: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Export writes the bundled assets into dir using the on-disk layout.
// Existing files are left alone unless overwrite is set. Returns the paths written.
func (r *Resolver) Export(dir string, overwrite bool) ([]string, error) {
	var written []string
	err := fs.WalkDir(r.bundle, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !overwrite {
			if _, statErr := os.Stat(target); statErr == nil {
				return nil
			}
		}
		data, readErr := fs.ReadFile(r.bundle, p)
		if readErr != nil {
			return readErr
		}
		if writeErr := os.WriteFile(target, data, 0o644); writeErr != nil {
			return writeErr
		}
		written = append(written, target)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("assets: export to %s: %w", dir, err)
	}
	return written, nil
}
