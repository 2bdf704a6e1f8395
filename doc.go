// Package anatomy annotates the typographic anatomy of a word.
//
// # Overview
//
// Given a word laid out in a font, anatomy decides which of its characters
// illustrate which typographic features (stem, serif, ascender, descender,
// shoulder, bowl, spine, apex, vertex, tittle, leg) and where the labels
// for those features go, so that a renderer can draw a callout diagram:
//
//	       Stem    Ascender   Shoulder
//	        |          |         |
//	    - - S - - - -  h - - - - n - - -  cap height
//	        S   p      h  i      n   x    x-height   ]
//	    ____S___p______h__i______n___x__  baseline   ] x-Height
//	            p
//	      Serif                   Vertex
//
// Feature membership is a heuristic over fixed letter sets, not an analysis
// of glyph outlines.
//
// # Pipeline
//
// Annotation is a two phase process:
//
//   - Extract turns the text and a Measurer into CharacterRecords and the
//     word's Metrics. Measuring depends on a rendering surface having laid
//     the text out at the current font size.
//   - Select is a pure function from records, metrics and ReferenceLines to
//     the ordered list of Annotations.
//
// A Pipeline connects the two through a LayoutHost. It re-runs both phases
// whenever the text changes and only ever publishes the result for the most
// recent text:
//
//	p := anatomy.NewPipeline(host, anatomy.WithOnResult(redraw))
//	p.Update("Sphinx")
//	p.Update("Raven") // supersedes "Sphinx" if it is still measuring
//
// Package diagram provides a LayoutHost backed by package text and records
// results for the backends in package recording.
//
// # Coordinate System
//
// All values share one 2D space: the origin is the top left corner of the
// diagram, x grows to the right and y grows downwards. The word starts at
// StartX on the Baseline row.
package anatomy
