package anatomy

// CharacterRecord describes one rendered character of the word: its
// horizontal extent in diagram coordinates and the features it exhibits.
// Records are values; a new slice is produced for every text change.
type CharacterRecord struct {
	// Char is the literal character.
	Char rune

	// Index is the zero-based position of Char in the input (in runes).
	Index int

	// IsUpper reports whether Char has a distinct case and is upper case.
	IsUpper bool

	// X and Width are the horizontal extent of the glyph cell.
	X, Width float64

	// Features holds the heuristic feature flags of Char.
	Features FeatureSet
}

// CX returns the horizontal center of the glyph cell.
func (c CharacterRecord) CX() float64 { return c.X + c.Width/2 }

// Right returns the right edge of the glyph cell.
func (c CharacterRecord) Right() float64 { return c.X + c.Width }

// Has reports whether the character exhibits f.
func (c CharacterRecord) Has(f Feature) bool { return c.Features.Has(f) }

func (c CharacterRecord) HasDescender() bool { return c.Has(FeatureDescender) }
func (c CharacterRecord) HasAscender() bool  { return c.Has(FeatureAscender) }
func (c CharacterRecord) HasBowl() bool      { return c.Has(FeatureBowl) }
func (c CharacterRecord) HasTittle() bool    { return c.Has(FeatureTittle) }
func (c CharacterRecord) HasShoulder() bool  { return c.Has(FeatureShoulder) }
func (c CharacterRecord) HasSpine() bool     { return c.Has(FeatureSpine) }
func (c CharacterRecord) HasApex() bool      { return c.Has(FeatureApex) }
func (c CharacterRecord) HasVertex() bool    { return c.Has(FeatureVertex) }
func (c CharacterRecord) HasLeg() bool       { return c.Has(FeatureLeg) }

// Metrics summarizes the bounding box of the whole rendered word.
type Metrics struct {
	Width float64
	Right float64
}

// ReferenceLines are the horizontal guides of the diagram, all derived from
// the font size and the fixed baseline. Y grows downwards.
type ReferenceLines struct {
	FontSize      float64
	Baseline      float64
	CapHeight     float64
	XHeight       float64
	DescenderLine float64

	// TopLabelY and BottomLabelY are the rows on which all top and bottom
	// labels are set, independent of each label's anchor.
	TopLabelY    float64
	BottomLabelY float64
}

// NewReferenceLines derives the guide lines for fontSize around baseline.
func NewReferenceLines(fontSize, baseline float64) ReferenceLines {
	l := ReferenceLines{
		FontSize:      fontSize,
		Baseline:      baseline,
		CapHeight:     baseline - fontSize*0.68,
		XHeight:       baseline - fontSize*0.44,
		DescenderLine: baseline + fontSize*0.28,
	}
	l.TopLabelY = l.CapHeight - labelRowOffset
	l.BottomLabelY = l.DescenderLine + labelRowOffset
	return l
}

// Side tells a renderer where an annotation's label sits.
type Side uint8

const (
	SideTop Side = iota
	SideBottom
	SideBracket
)

// String returns "top", "bottom" or "bracket".
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideBracket:
		return "bracket"
	default:
		return "Unknown"
	}
}

// Annotation is one placed callout.
//
// Top and bottom annotations mark a dot at (X, DotY) and connect it to a
// label centered at X on the side's label row. A bracket annotation spans
// Y to Y2 at X.
type Annotation struct {
	Feature Feature
	Label   string
	Side    Side
	X       float64
	DotY    float64
	Y, Y2   float64

	// Char is the index of the character the annotation consumed, or -1.
	Char int
}
