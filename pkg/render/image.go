package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// ToImage converts the color buffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.color.Get(x, y)
			img.SetRGBA(x, y, color.RGBA{c.R, c.G, c.B, c.A})
		}
	}
	return img
}

// SavePNG saves the color buffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}

// SaveWebP saves the color buffer as a lossless WebP file.
func (fb *Framebuffer) SaveWebP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return nativewebp.Encode(f, fb.ToImage(), nil)
}
