// Package text lays words out in real fonts and answers geometry queries
// about the result.
//
// The package follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific size
//   - Shaper: turns text into positioned glyphs (builtin or HarfBuzz)
//   - Run: a shaped line placed on the page, queried per character
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	run := text.LayoutRun("Sphinx", source.Face(80), text.NewGoTextShaper(), 120, 185)
//	for i := range run.NumChars() {
//	    x, w := run.CharExtent(i)
//	    fmt.Println(i, x, w)
//	}
//
// A Run reports character cells the way an SVG text element does: each
// cell starts at the character's pen position and is as wide as its
// advance. Characters merged into one glyph cluster (ligatures) share the
// cluster's advance evenly.
package text
