package anatomy

import (
	"math"
	"unicode/utf8"
)

// Diagram geometry. All values are in diagram units; the origin is the top
// left corner and y grows downwards.
const (
	// StartX is where the word's pen position starts.
	StartX = 120.0

	// Baseline is the y coordinate of the baseline row.
	Baseline = 185.0

	// DiagramHeight is the fixed height of the diagram.
	DiagramHeight = 300.0

	// MinDiagramWidth is the width used when the word is short or empty.
	MinDiagramWidth = 600.0

	// GuideStartX is where the horizontal guide lines begin; guide labels
	// are right-aligned a few units to its left.
	GuideStartX = 95.0

	// GuideLabelX is the right edge of the guide line labels.
	GuideLabelX = 90.0

	// DefaultGuideEndX is where guide lines end when no metrics are known.
	DefaultGuideEndX = 560.0

	minFontSize    = 42.0
	maxFontSize    = 100.0
	fontSizeBudget = 480.0

	labelRowOffset = 50.0
	widthPadding   = 130.0
	guidePadding   = 70.0
	bracketOffset  = 30.0
)

// FontSize returns the display size for text: 480 divided by the number of
// characters, clamped to [42, 100].
func FontSize(text string) float64 {
	n := max(utf8.RuneCountInString(text), 1)
	return math.Min(maxFontSize, math.Max(minFontSize, fontSizeBudget/float64(n)))
}

// DiagramWidth returns the width needed to show the word and its bracket.
// A nil m yields MinDiagramWidth.
func DiagramWidth(m *Metrics) float64 {
	if m == nil {
		return MinDiagramWidth
	}
	return math.Max(MinDiagramWidth, m.Right+widthPadding)
}

// GuideEndX returns the x coordinate where guide lines end.
func GuideEndX(m *Metrics) float64 {
	if m == nil {
		return DefaultGuideEndX
	}
	return m.Right + guidePadding
}
