package anatomy

// Measurer answers geometry queries about text that has been laid out on a
// rendering surface. All values share the diagram's coordinate space.
type Measurer interface {
	// NumChars returns the number of characters that have been laid out.
	NumChars() int

	// Bounds returns the horizontal extent of the whole text.
	Bounds() (x, width float64)

	// CharExtent returns the horizontal extent of the i-th character cell.
	CharExtent(i int) (x, width float64)
}

// Extract builds one CharacterRecord per character of text using m, together
// with the word's Metrics.
//
// Empty text yields no records and nil Metrics. If m has not laid out every
// character of text, Extract returns ErrLayoutPending and no records.
func Extract(text string, m Measurer) ([]CharacterRecord, *Metrics, error) {
	if text == "" {
		return nil, nil, nil
	}
	runes := []rune(text)
	if m == nil || m.NumChars() != len(runes) {
		return nil, nil, ErrLayoutPending
	}

	bx, bw := m.Bounds()
	metrics := &Metrics{Width: bw, Right: bx + bw}

	records := make([]CharacterRecord, len(runes))
	for i, c := range runes {
		x, w := m.CharExtent(i)
		set, upper := Classify(c)
		records[i] = CharacterRecord{
			Char:     c,
			Index:    i,
			IsUpper:  upper,
			X:        x,
			Width:    w,
			Features: set,
		}
	}
	return records, metrics, nil
}
