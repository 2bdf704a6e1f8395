// Package raster provides a raster backend for the recording system.
// It renders recordings to an RGBA image with golang.org/x/image/vector
// and sets text with golang.org/x/image/font/opentype.
//
// # Supported Features
//
//   - Solid color rectangles and circles
//   - Straight lines of any width, solid or dashed
//   - Anchored single-line text for faces backed by font data
//   - PNG output
//
// Groups have no pixel representation and are ignored.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/anatomy/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("diagram.png")
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/anatomy/recording"
	"github.com/gogpu/anatomy/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Backend renders recordings to a pixel image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend and recording.ImageBackend.
type Backend struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	width  int
	height int

	// fonts caches parsed font data per source for the lifetime of the
	// backend.
	fonts map[*text.FontSource]*opentype.Font
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{fonts: make(map[*text.FontSource]*opentype.Font)}
}

// Begin allocates a transparent canvas of the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.ras = vector.NewRasterizer(width, height)
	return nil
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	return nil
}

// BeginGroup is a no-op.
func (b *Backend) BeginGroup(string) {}

// EndGroup is a no-op.
func (b *Backend) EndGroup() {}

// FillRect fills an axis-aligned rectangle.
func (b *Backend) FillRect(r recording.Rect, c recording.RGBA) {
	b.ras.Reset(b.width, b.height)
	b.ras.MoveTo(f32(r.X), f32(r.Y))
	b.ras.LineTo(f32(r.X+r.Width), f32(r.Y))
	b.ras.LineTo(f32(r.X+r.Width), f32(r.Y+r.Height))
	b.ras.LineTo(f32(r.X), f32(r.Y+r.Height))
	b.ras.ClosePath()
	b.paint(c)
}

// StrokeLine strokes a line as one quad per dash.
func (b *Backend) StrokeLine(x1, y1, x2, y2 float64, s recording.Stroke) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || s.Width <= 0 {
		return
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy*s.Width/2, ux*s.Width/2

	b.ras.Reset(b.width, b.height)
	for _, seg := range DashSegments(length, s.Dash) {
		ax, ay := x1+ux*seg[0], y1+uy*seg[0]
		bx, by := x1+ux*seg[1], y1+uy*seg[1]
		b.ras.MoveTo(f32(ax+nx), f32(ay+ny))
		b.ras.LineTo(f32(bx+nx), f32(by+ny))
		b.ras.LineTo(f32(bx-nx), f32(by-ny))
		b.ras.LineTo(f32(ax-nx), f32(ay-ny))
		b.ras.ClosePath()
	}
	b.paint(s.Color)
}

// FillCircle fills a circle built from four cubic arcs.
func (b *Backend) FillCircle(cx, cy, r float64, c recording.RGBA) {
	if r <= 0 {
		return
	}
	k := r * kappa
	b.ras.Reset(b.width, b.height)
	b.ras.MoveTo(f32(cx+r), f32(cy))
	b.ras.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
	b.ras.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
	b.ras.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
	b.ras.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
	b.ras.ClosePath()
	b.paint(c)
}

// DrawText sets s with the face's font data. Faces without a source or
// with unparsable data draw nothing.
func (b *Backend) DrawText(s string, x, y float64, face text.Face, style recording.TextStyle) {
	if s == "" || face == nil || face.Source() == nil {
		return
	}
	f, err := b.font(face.Source())
	if err != nil {
		return
	}
	otFace, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    face.Size(),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return
	}
	defer func() {
		_ = otFace.Close()
	}()

	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(style.Color.Color()),
		Face: otFace,
	}
	advance := float64(d.MeasureString(s)) / 64
	x -= style.Anchor.Offset(advance)
	d.Dot = fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
	d.DrawString(s)
}

func (b *Backend) font(src *text.FontSource) (*opentype.Font, error) {
	if f, ok := b.fonts[src]; ok {
		return f, nil
	}
	f, err := opentype.Parse(src.Data())
	if err != nil {
		return nil, fmt.Errorf("raster: parse %s: %w", src.Name(), err)
	}
	b.fonts[src] = f
	return f, nil
}

// paint composites the rasterizer's coverage over the canvas.
func (b *Backend) paint(c recording.RGBA) {
	b.ras.DrawOp = draw.Over
	b.ras.Draw(b.img, b.img.Bounds(), image.NewUniform(c.Color()), image.Point{})
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, fmt.Errorf("raster: nothing rendered")
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = b.WriteTo(f)
	return err
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.img == nil {
		return nil
	}
	return b.img
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// DashSegments splits a line of the given length into the [start, end]
// intervals that are drawn under the dash pattern. A pattern that is empty
// or has no positive length yields the whole line. Odd patterns repeat
// twice, as in SVG.
func DashSegments(length float64, dash []float64) [][2]float64 {
	var period float64
	for _, d := range dash {
		period += max(d, 0)
	}
	if period == 0 {
		return [][2]float64{{0, length}}
	}
	if len(dash)%2 == 1 {
		dash = append(dash[:len(dash):len(dash)], dash...)
	}

	var segs [][2]float64
	pos := 0.0
	for i := 0; pos < length; i = (i + 1) % len(dash) {
		end := math.Min(pos+max(dash[i], 0), length)
		if i%2 == 0 && end > pos {
			segs = append(segs, [2]float64{pos, end})
		}
		pos = end
	}
	return segs
}

func f32(v float64) float32 { return float32(v) }

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
