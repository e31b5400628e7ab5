package engine

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilepaint/common"
)

// Texture is a loaded image plus its pixel size. Image may be nil for
// textures that only carry dimensions.
type Texture struct {
	Image  *ebiten.Image
	Width  int
	Height int
	Path   string
}

// TextureLoader loads a texture from a file path.
type TextureLoader func(path string) (*Texture, error)

// LoadTexture decodes a png or jpeg file into a GPU image.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	t := NewTexture(img)
	t.Path = path
	return t, nil
}

func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	return &Texture{
		Image:  ebiten.NewImageFromImage(img),
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// Release frees the GPU image. The texture must not be drawn afterwards.
func (t *Texture) Release() {
	if t == nil || t.Image == nil {
		return
	}
	t.Image.Deallocate()
	t.Image = nil
}

// PixelRect converts a normalised source rectangle into pixel bounds.
func (t *Texture) PixelRect(src common.Rect) image.Rectangle {
	x0 := int(src.X*float64(t.Width) + 0.5)
	y0 := int(src.Y*float64(t.Height) + 0.5)
	x1 := int((src.X+src.Width)*float64(t.Width) + 0.5)
	y1 := int((src.Y+src.Height)*float64(t.Height) + 0.5)
	return image.Rect(x0, y0, x1, y1)
}
