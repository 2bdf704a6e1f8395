package anatomy

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Feature identifies a typographic feature that can be called out on a word.
type Feature uint8

const (
	FeatureStem Feature = iota
	FeatureSerif
	FeatureAscender
	FeatureDescender
	FeatureShoulder
	FeatureBowl
	FeatureSpine
	FeatureApex
	FeatureVertex
	FeatureTittle
	FeatureLeg
	FeatureXHeight
)

// featureNames maps Feature values to the labels drawn on the diagram.
var featureNames = [...]string{
	FeatureStem:      "Stem",
	FeatureSerif:     "Serif",
	FeatureAscender:  "Ascender",
	FeatureDescender: "Descender",
	FeatureShoulder:  "Shoulder",
	FeatureBowl:      "Bowl",
	FeatureSpine:     "Spine",
	FeatureApex:      "Apex",
	FeatureVertex:    "Vertex",
	FeatureTittle:    "Tittle",
	FeatureLeg:       "Leg",
	FeatureXHeight:   "x-Height",
}

// String returns the label of the feature.
func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}
	return "Unknown"
}

// FeatureSet is a bit set of the features a character exhibits.
type FeatureSet uint16

// Has reports whether f is in the set.
func (s FeatureSet) Has(f Feature) bool {
	return s&(1<<f) != 0
}

// With returns the set with f added.
func (s FeatureSet) With(f Feature) FeatureSet {
	return s | 1<<f
}

// String lists the features in the set, e.g. "Ascender|Shoulder".
func (s FeatureSet) String() string {
	if s == 0 {
		return "none"
	}
	var b strings.Builder
	for f := FeatureStem; f <= FeatureXHeight; f++ {
		if !s.Has(f) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(f.String())
	}
	return b.String()
}

// letterSet is a fixed membership test for one feature. When fold is set the
// character is lowercased before the lookup.
type letterSet struct {
	letters string
	fold    bool
}

// featureLetters holds the heuristic letter sets behind every classifiable
// feature. Stem, Serif and the x-height bracket are positional and have no entry.
var featureLetters = map[Feature]letterSet{
	FeatureDescender: {letters: "gjpqy", fold: true},
	FeatureAscender:  {letters: "bdfhklt", fold: true},
	FeatureBowl:      {letters: "bdgopqDOPQR"},
	FeatureTittle:    {letters: "ij", fold: true},
	FeatureShoulder:  {letters: "hmnrHMNR"},
	FeatureSpine:     {letters: "sS"},
	FeatureApex:      {letters: "AvVwWMxX"},
	FeatureVertex:    {letters: "vVwWxXyY"},
	FeatureLeg:       {letters: "KRk"},
}

// contains reports whether c belongs to the set. For folding sets the lower
// case mapping must be a single rune.
func (ls letterSet) contains(c rune, lower string) bool {
	if !ls.fold {
		return strings.ContainsRune(ls.letters, c)
	}
	r, n := utf8.DecodeRuneInString(lower)
	if n == 0 || n != len(lower) {
		return false
	}
	return strings.ContainsRune(ls.letters, r)
}

// Classify returns the feature set and case of c.
//
// A character is upper case when it has a distinct case mapping and equals
// its own upper-case form. Case mapping follows full Unicode rules, so
// characters like 'ß' (which upper-cases to "SS") are not upper case.
func Classify(c rune) (set FeatureSet, isUpper bool) {
	// Casers carry state and are not shared across goroutines.
	s := string(c)
	lower := cases.Lower(language.Und).String(s)
	isUpper = s == cases.Upper(language.Und).String(s) && s != lower

	for f, ls := range featureLetters {
		if ls.contains(c, lower) {
			set = set.With(f)
		}
	}
	return set, isUpper
}
