package recording

import (
	"image"
	"io"

	"github.com/gogpu/anatomy/text"
)

// Backend is the interface that all output backends must implement.
// Backends receive drawing commands and translate them to their output
// format (raster pixels, SVG elements, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Accept commands only between Begin and End
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	End() error

	// BeginGroup opens a named group of drawing operations.
	BeginGroup(name string)

	// EndGroup closes the innermost open group.
	EndGroup()

	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c RGBA)

	// StrokeLine strokes a straight line.
	StrokeLine(x1, y1, x2, y2 float64, s Stroke)

	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c RGBA)

	// DrawText draws s with its baseline at y, aligned to x by the style.
	DrawText(s string, x, y float64, face text.Face, style TextStyle)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before End().
	Image() image.Image
}
