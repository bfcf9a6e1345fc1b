package writer

import (
	"github.com/achilleasa/spheretrace/renderer"
	"github.com/fogleman/gg"
)

// Write frame as a PNG image.
func WritePNG(path string, frame *renderer.Frame) error {
	return gg.SavePNG(path, frame.Image())
}
