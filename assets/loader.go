package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/tilepaint/engine"
)

// Loader resolves resource paths against Root and loads them from disk.
type Loader struct {
	Root string
}

func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Resolve makes path absolute. Relative paths are taken from Root, and a
// leading "assets/" is dropped when Root already names the assets directory.
func (l *Loader) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	s := filepath.ToSlash(path)
	if filepath.Base(l.Root) == "assets" {
		s = strings.TrimPrefix(s, "assets/")
	}
	return filepath.Join(l.Root, filepath.FromSlash(s))
}

// LoadTexture loads an image file as a texture.
func (l *Loader) LoadTexture(path string) (*engine.Texture, error) {
	if path == "" {
		return nil, fmt.Errorf("assets: empty texture path")
	}
	return engine.LoadTexture(l.Resolve(path))
}

// LoadFile reads a resource file.
func (l *Loader) LoadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(l.Resolve(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return b, nil
}

// LoadFont loads a TTF/OTF font, or the built-in Go font when path is empty.
func (l *Loader) LoadFont(path string, px float64) (*engine.Font, error) {
	if path == "" {
		return engine.DefaultFont(px)
	}
	return engine.LoadFont(l.Resolve(path), px)
}
