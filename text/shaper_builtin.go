package text

// BuiltinShaper positions one glyph per character from the font's advance
// widths, applying pair kerning from the font's kern table when the face
// asks for it.
//
// It does not substitute ligatures or reorder right-to-left text; use
// GoTextShaper for that.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}
	source := face.Source()
	if source == nil {
		return nil
	}
	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	kern := face.Kerning()
	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	var prev GlyphID
	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)
		if kern && cluster > 0 {
			// Kerning widens or narrows the previous glyph, as in HarfBuzz.
			k := parsed.Kern(prev, gid, size)
			result[cluster-1].XAdvance += k
			x += k
		}
		advance := parsed.GlyphAdvance(gid, size)
		result = append(result, ShapedGlyph{
			GID:      gid,
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})
		x += advance
		prev = gid
	}
	return result
}
