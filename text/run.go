package text

// Run is a single line of shaped text placed with its pen starting at
// (X, Baseline). It answers the geometry queries a diagram needs: the
// extent of the whole line and of every character cell.
//
// A Run is immutable and safe for concurrent use.
type Run struct {
	text     []rune
	face     Face
	glyphs   []ShapedGlyph
	x        float64
	baseline float64
	advance  float64
	metrics  Metrics

	// cellX and cellW are per-character offsets from x and widths.
	cellX []float64
	cellW []float64
}

// LayoutRun shapes s with face and places it at (x, baseline).
// A nil shaper uses the global shaper.
func LayoutRun(s string, face Face, shaper Shaper, x, baseline float64) *Run {
	if shaper == nil {
		shaper = GetShaper()
	}
	r := &Run{
		text:     []rune(s),
		face:     face,
		x:        x,
		baseline: baseline,
	}
	if face != nil {
		r.metrics = face.Metrics()
	}
	r.glyphs = shaper.Shape(s, face)
	r.buildCells()
	return r
}

// buildCells assigns every character a cell. Glyphs are grouped by
// cluster; a cluster covers the characters up to the next cluster and its
// advance is split evenly among them.
func (r *Run) buildCells() {
	n := len(r.text)
	r.cellX = make([]float64, n)
	r.cellW = make([]float64, n)

	type span struct {
		first   int
		start   float64
		advance float64
	}
	var spans []span
	var pen float64
	for _, g := range r.glyphs {
		if len(spans) == 0 || g.Cluster > spans[len(spans)-1].first {
			spans = append(spans, span{first: g.Cluster, start: pen})
		}
		spans[len(spans)-1].advance += g.XAdvance
		pen += g.XAdvance
	}
	r.advance = pen

	for k, sp := range spans {
		end := n
		if k+1 < len(spans) {
			end = spans[k+1].first
		}
		first := min(max(sp.first, 0), n)
		end = min(end, n)
		if end <= first {
			continue
		}
		w := sp.advance / float64(end-first)
		for i := first; i < end; i++ {
			r.cellX[i] = sp.start + w*float64(i-first)
			r.cellW[i] = w
		}
	}
}

// Text returns the laid-out text.
func (r *Run) Text() string { return string(r.text) }

// Face returns the face the run was shaped with.
func (r *Run) Face() Face { return r.face }

// Glyphs returns the shaped glyphs, positioned relative to the pen origin.
func (r *Run) Glyphs() []ShapedGlyph { return r.glyphs }

// Origin returns the pen origin of the run.
func (r *Run) Origin() (x, baseline float64) { return r.x, r.baseline }

// Advance returns the total advance of the run.
func (r *Run) Advance() float64 { return r.advance }

// NumChars returns the number of characters in the run.
func (r *Run) NumChars() int { return len(r.text) }

// Bounds returns the horizontal extent of the whole run.
func (r *Run) Bounds() (x, width float64) {
	return r.x, r.advance
}

// CharExtent returns the horizontal extent of the i-th character cell.
// It panics if i is out of range.
func (r *Run) CharExtent(i int) (x, width float64) {
	return r.x + r.cellX[i], r.cellW[i]
}

// Cell returns the full cell of the i-th character, from the font's
// ascent above the baseline to its descent below.
func (r *Run) Cell(i int) Rect {
	x, w := r.CharExtent(i)
	return Rect{
		MinX: x,
		MinY: r.baseline - r.metrics.Ascent,
		MaxX: x + w,
		MaxY: r.baseline + r.metrics.Descent,
	}
}

// BBox returns the union of all character cells.
func (r *Run) BBox() Rect {
	var bb Rect
	for i := range r.text {
		bb = bb.Union(r.Cell(i))
	}
	return bb
}

// At returns a copy of the run with its pen origin moved to (x, baseline).
func (r *Run) At(x, baseline float64) *Run {
	c := *r
	c.x, c.baseline = x, baseline
	return &c
}
