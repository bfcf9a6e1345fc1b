package writer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/achilleasa/spheretrace/renderer"
)

// Write frame as a plain-text (P3) PPM image. Pixels are emitted top row
// first, one "R G B" triplet per line.
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}
	for _, p := range frame.Pixels {
		if _, err := fmt.Fprintf(buf, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return err
		}
	}
	return buf.Flush()
}
