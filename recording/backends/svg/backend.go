// Package svg provides an SVG backend for the recording system.
//
// Groups become <g> elements, lines, circles and rectangles map to the
// matching SVG shapes and text is written as <text> with its anchor,
// family and weight so the viewer sets it with its own fonts.
//
//	import _ "github.com/gogpu/anatomy/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	rec.Playback(backend)
//	backend.(recording.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/anatomy/recording"
	"github.com/gogpu/anatomy/text"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return New()
	})
}

// defaultFontSize is used for text drawn without a face.
const defaultFontSize = 16.0

// Backend writes recordings as an SVG document.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	buf    bytes.Buffer
	depth  int
	done   bool
	width  int
	height int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// New creates an SVG backend.
func New() *Backend {
	return &Backend{}
}

// Begin starts a document of the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %dx%d", width, height)
	}
	b.buf.Reset()
	b.depth = 0
	b.done = false
	b.width, b.height = width, height
	fmt.Fprintf(&b.buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	return nil
}

// End closes open groups and the document.
func (b *Backend) End() error {
	for b.depth > 0 {
		b.EndGroup()
	}
	b.buf.WriteString("</svg>\n")
	b.done = true
	return nil
}

// BeginGroup opens a <g> element labelled by class.
func (b *Backend) BeginGroup(name string) {
	b.indent()
	if name == "" {
		b.buf.WriteString("<g>\n")
	} else {
		fmt.Fprintf(&b.buf, `<g class="%s">`+"\n", escape(name))
	}
	b.depth++
}

// EndGroup closes the innermost <g>.
func (b *Backend) EndGroup() {
	if b.depth == 0 {
		return
	}
	b.depth--
	b.indent()
	b.buf.WriteString("</g>\n")
}

// FillRect writes a <rect>.
func (b *Backend) FillRect(r recording.Rect, c recording.RGBA) {
	b.indent()
	fmt.Fprintf(&b.buf, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(r.X), num(r.Y), num(r.Width), num(r.Height), paint("fill", c))
}

// StrokeLine writes a <line>.
func (b *Backend) StrokeLine(x1, y1, x2, y2 float64, s recording.Stroke) {
	b.indent()
	fmt.Fprintf(&b.buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s stroke-width="%s"`,
		num(x1), num(y1), num(x2), num(y2), paint("stroke", s.Color), num(s.Width))
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = num(d)
		}
		fmt.Fprintf(&b.buf, ` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	b.buf.WriteString("/>\n")
}

// FillCircle writes a <circle>.
func (b *Backend) FillCircle(cx, cy, r float64, c recording.RGBA) {
	b.indent()
	fmt.Fprintf(&b.buf, `<circle cx="%s" cy="%s" r="%s"%s/>`+"\n", num(cx), num(cy), num(r), paint("fill", c))
}

// DrawText writes a <text> element.
func (b *Backend) DrawText(s string, x, y float64, face text.Face, style recording.TextStyle) {
	size := defaultFontSize
	if face != nil {
		size = face.Size()
	}
	b.indent()
	fmt.Fprintf(&b.buf, `<text x="%s" y="%s" font-size="%s"`, num(x), num(y), num(size))
	if style.Family != "" {
		fmt.Fprintf(&b.buf, ` font-family="%s"`, escape(style.Family))
	}
	if style.Weight != 0 {
		fmt.Fprintf(&b.buf, ` font-weight="%d"`, style.Weight)
	}
	if style.Anchor != recording.AnchorStart {
		fmt.Fprintf(&b.buf, ` text-anchor="%s"`, style.Anchor)
	}
	fmt.Fprintf(&b.buf, `%s>%s</text>`+"\n", paint("fill", style.Color), escape(s))
}

// WriteTo writes the document. It must be called after End.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, fmt.Errorf("svg: document not finished")
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return fmt.Errorf("svg: document not finished")
	}
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}

// String returns the document written so far.
func (b *Backend) String() string {
	return b.buf.String()
}

func (b *Backend) indent() {
	b.buf.WriteString(strings.Repeat("  ", b.depth+1))
}

// paint formats a fill or stroke attribute pair for c.
func paint(attr string, c recording.RGBA) string {
	if c.A <= 0 {
		return fmt.Sprintf(` %s="none"`, attr)
	}
	s := fmt.Sprintf(` %s="%s"`, attr, c.Hex())
	if c.A < 1 {
		s += fmt.Sprintf(` %s-opacity="%s"`, attr, num(c.A))
	}
	return s
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
