package anatomy

import "math"

const (
	// MaxAnnotations is the number of feature annotations a diagram may carry.
	// The x-height bracket is always added on top of this budget.
	MaxAnnotations = 5

	// LabelMinDist is the minimum horizontal distance between two labels on
	// the same side of the word.
	LabelMinDist = 70.0
)

// anchorFunc computes where a feature's dot sits on a character.
type anchorFunc func(c CharacterRecord, l ReferenceLines) (x, dotY float64)

// rule is one step of the fixed selection order.
type rule struct {
	feature Feature
	side    Side

	// first pins the rule to the first character regardless of its flags.
	first bool

	// start is the first index searched for a character exhibiting feature.
	start int

	// spaced skips candidates whose center would crowd a label already
	// placed on the same side, so the search can fall through to a later
	// character instead of failing at placement.
	spaced bool

	// marks reports whether an accepted annotation consumes its character.
	marks bool

	anchor anchorFunc
}

// selectionRules is the priority order in which features are annotated.
// Every searched feature is keyed into featureLetters.
var selectionRules = []rule{
	{feature: FeatureStem, side: SideTop, first: true, marks: true, anchor: stemAnchor},
	{feature: FeatureSerif, side: SideBottom, first: true, anchor: serifAnchor},
	{feature: FeatureAscender, side: SideTop, start: 1, marks: true, anchor: ascenderAnchor},
	{feature: FeatureDescender, side: SideBottom, start: 0, marks: true, anchor: descenderAnchor},
	{feature: FeatureShoulder, side: SideTop, start: 1, spaced: true, marks: true, anchor: shoulderAnchor},
	{feature: FeatureBowl, side: SideBottom, start: 0, spaced: true, marks: true, anchor: baselineAnchor},
	{feature: FeatureSpine, side: SideTop, start: 0, spaced: true, marks: true, anchor: caseHeightAnchor},
	{feature: FeatureApex, side: SideTop, start: 1, marks: true, anchor: caseHeightAnchor},
	{feature: FeatureVertex, side: SideBottom, start: 1, marks: true, anchor: baselineAnchor},
	{feature: FeatureTittle, side: SideTop, start: 1, marks: true, anchor: tittleAnchor},
	{feature: FeatureLeg, side: SideBottom, start: 1, marks: true, anchor: legAnchor},
}

func stemX(c CharacterRecord) float64 {
	if c.IsUpper {
		return c.X + c.Width*0.18
	}
	return c.X + c.Width*0.22
}

func caseHeight(c CharacterRecord, l ReferenceLines) float64 {
	if c.IsUpper {
		return l.CapHeight
	}
	return l.XHeight
}

func stemAnchor(c CharacterRecord, l ReferenceLines) (float64, float64) {
	return stemX(c), caseHeight(c, l)
}

func serifAnchor(c CharacterRecord, l ReferenceLines) (float64, float64) {
	return stemX(c), l.Baseline
}

func ascenderAnchor(c CharacterRecord, l ReferenceLines) (float64, float64) {
	return c.X + c.Width*0.3, l.CapHeight
}

func descenderAnchor(c CharacterRecord, l ReferenceLines) (float64, float64) {
	return c.CX(), l.DescenderLine
}

func shoulderAnchor(c CharacterRecord, l ReferenceLines) (float64, float64) {
	return c.X + c.Width*0.65, l.XHeight
}

func baselineAnchor(c CharacterRecord, l ReferenceLines) (float64, float64) {
	return c.CX(), l.Baseline
}

func caseHeightAnchor(c CharacterRecord, l ReferenceLines) (float64, float64) {
	return c.CX(), caseHeight(c, l)
}

func tittleAnchor(c CharacterRecord, l ReferenceLines) (float64, float64) {
	return c.CX(), l.XHeight - l.FontSize*0.2
}

func legAnchor(c CharacterRecord, l ReferenceLines) (float64, float64) {
	return c.X + c.Width*0.7, l.Baseline
}

// placement is the accumulator threaded through the selection rules.
type placement struct {
	annotations []Annotation
	used        []bool
	top, bottom []float64
}

func (p placement) full() bool {
	return len(p.annotations) >= MaxAnnotations
}

func (p placement) crowded(side Side, x float64) bool {
	xs := p.top
	if side == SideBottom {
		xs = p.bottom
	}
	for _, lx := range xs {
		if math.Abs(lx-x) < LabelMinDist {
			return true
		}
	}
	return false
}

// place adds a, unless the budget is spent or its label would crowd another
// label on the same side.
func (p placement) place(a Annotation) placement {
	if p.full() || p.crowded(a.Side, a.X) {
		Logger().Debug("anatomy: annotation rejected",
			"feature", a.Feature, "x", a.X, "full", p.full())
		return p
	}
	p.annotations = append(p.annotations, a)
	if a.Side == SideBottom {
		p.bottom = append(p.bottom, a.X)
	} else {
		p.top = append(p.top, a.X)
	}
	if a.Char >= 0 {
		p.used[a.Char] = true
	}
	return p
}

// candidate returns the character the rule annotates, if any.
func (r rule) candidate(p placement, records []CharacterRecord) (CharacterRecord, bool) {
	if r.first {
		return records[0], true
	}
	for _, c := range records[min(r.start, len(records)):] {
		if !c.Has(r.feature) || p.used[c.Index] {
			continue
		}
		if r.spaced && p.crowded(r.side, c.CX()) {
			continue
		}
		return c, true
	}
	return CharacterRecord{}, false
}

func (r rule) apply(p placement, records []CharacterRecord, l ReferenceLines) placement {
	if p.full() {
		return p
	}
	c, ok := r.candidate(p, records)
	if !ok {
		return p
	}
	x, dotY := r.anchor(c, l)
	char := -1
	if r.marks {
		char = c.Index
	}
	return p.place(Annotation{
		Feature: r.feature,
		Label:   r.feature.String(),
		Side:    r.side,
		X:       x,
		DotY:    dotY,
		Char:    char,
	})
}

// Select chooses the annotations for a word.
//
// Features are visited in a fixed priority order; each step annotates at
// most one character and never revisits an earlier decision. A character
// consumed by one step is skipped by every later step. At most
// MaxAnnotations feature annotations are placed and labels on the same side
// are kept LabelMinDist apart. The x-height bracket is always appended.
//
// Records must be index-ordered as produced by Extract. Select returns nil
// when there are no records or no metrics.
func Select(records []CharacterRecord, m *Metrics, l ReferenceLines) []Annotation {
	if len(records) == 0 || m == nil {
		return nil
	}

	p := placement{
		annotations: make([]Annotation, 0, MaxAnnotations+1),
		used:        make([]bool, len(records)),
	}
	for _, r := range selectionRules {
		p = r.apply(p, records, l)
	}

	return append(p.annotations, Annotation{
		Feature: FeatureXHeight,
		Label:   FeatureXHeight.String(),
		Side:    SideBracket,
		X:       m.Right + bracketOffset,
		Y:       l.XHeight,
		Y2:      l.Baseline,
		Char:    -1,
	})
}
