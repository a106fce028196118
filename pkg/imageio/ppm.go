package imageio

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// PPMWriter streams an ASCII P3 image. Pixels must arrive in row-major order,
// top row first, which is the order the renderer emits them in.
type PPMWriter struct {
	out    *bufio.Writer
	width  int
	height int
	next   int // Row-major index of the next expected pixel
}

// NewPPMWriter writes the P3 header and returns a writer for the pixel data
func NewPPMWriter(w io.Writer, width, height int) (*PPMWriter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	out := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(out, "P3\n%d %d\n255\n", width, height); err != nil {
		return nil, err
	}

	return &PPMWriter{
		out:    out,
		width:  width,
		height: height,
	}, nil
}

// WritePixel appends one "r g b" line
func (p *PPMWriter) WritePixel(x, y int, c color.RGBA) error {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	if index := y*p.width + x; index != p.next {
		return fmt.Errorf("%w: got (%d, %d), expected (%d, %d)",
			ErrOutOfOrder, x, y, p.next%p.width, p.next/p.width)
	}

	if _, err := fmt.Fprintf(p.out, "%d %d %d\n", c.R, c.G, c.B); err != nil {
		return err
	}
	p.next++
	return nil
}

// Flush writes any buffered data to the underlying writer
func (p *PPMWriter) Flush() error {
	return p.out.Flush()
}

// Close flushes the stream and reports whether the image is complete.
// It does not close the underlying writer.
func (p *PPMWriter) Close() error {
	if err := p.Flush(); err != nil {
		return err
	}
	if p.next != p.width*p.height {
		return fmt.Errorf("%w: %d of %d pixels", ErrIncomplete, p.next, p.width*p.height)
	}
	return nil
}
