package renderer

import (
	"image"
	"image/color"

	"github.com/achilleasa/spheretrace/types"
)

// A rendered frame. Pixels are stored row-major with the top image row
// first.
type Frame struct {
	Width  uint32
	Height uint32
	Pixels []types.Pixel
}

// Allocate a black frame.
func NewFrame(width, height uint32) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]types.Pixel, width*height),
	}
}

// Get the pixels of row y where row 0 is the top image row. The returned
// slice aliases the frame storage.
func (f *Frame) Row(y uint32) []types.Pixel {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}

// Get the pixel at (x, y) where (0, 0) is the top-left corner.
func (f *Frame) At(x, y uint32) types.Pixel {
	return f.Pixels[y*f.Width+x]
}

// Convert the frame into an RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(f.Width), int(f.Height)))
	for y := uint32(0); y < f.Height; y++ {
		for x, p := range f.Row(y) {
			img.SetRGBA(x, int(y), color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
