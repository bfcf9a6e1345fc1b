package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/achilleasa/spheretrace/renderer"
)

// The output name that selects PPM output to stdout.
const Stdout = "-"

// Write frame to the given destination. The image format is selected by
// the file extension; "-" streams a PPM image to stdout.
func WriteFrame(dest string, frame *renderer.Frame) error {
	if dest == Stdout {
		return WritePPM(os.Stdout, frame)
	}

	switch strings.ToLower(filepath.Ext(dest)) {
	case ".ppm":
		f, err := os.Create(dest)
		if err != nil {
			return err
		}
		if err = WritePPM(f, frame); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".png":
		return WritePNG(dest, frame)
	}

	return fmt.Errorf("writer: unsupported image format for %q; use .ppm or .png", dest)
}
