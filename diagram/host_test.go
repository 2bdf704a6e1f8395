package diagram

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/anatomy"
)

func testHost(t *testing.T) *Host {
	t.Helper()
	fonts, err := defaultFonts()
	if err != nil {
		t.Fatalf("default fonts: %v", err)
	}
	h, err := NewHost(fonts.regular, nil)
	if err != nil {
		t.Fatalf("NewHost error = %v", err)
	}
	return h
}

func TestNewHostWithoutFont(t *testing.T) {
	if _, err := NewHost(nil, nil); !errors.Is(err, ErrNoFont) {
		t.Errorf("NewHost(nil) error = %v, want ErrNoFont", err)
	}
}

func TestHostLayout(t *testing.T) {
	h := testHost(t)
	m, err := h.Layout(context.Background(), "Sphinx", 80)
	if err != nil {
		t.Fatalf("Layout error = %v", err)
	}
	if m.NumChars() != 6 {
		t.Fatalf("NumChars() = %d, want 6", m.NumChars())
	}
	x, w := m.Bounds()
	if x != anatomy.StartX || w <= 0 {
		t.Errorf("Bounds() = %v, %v; want x = %v and a positive width", x, w, anatomy.StartX)
	}
	prev := anatomy.StartX
	for i := 0; i < m.NumChars(); i++ {
		cx, cw := m.CharExtent(i)
		if math.Abs(cx-prev) > 1e-9 || cw <= 0 {
			t.Errorf("CharExtent(%d) = %v, %v; want x = %v", i, cx, cw, prev)
		}
		prev = cx + cw
	}
	if math.Abs(prev-(x+w)) > 1e-9 {
		t.Errorf("cells end at %v, bounds end at %v", prev, x+w)
	}
}

func TestHostLayoutCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := testHost(t).Layout(ctx, "a", 80); !errors.Is(err, context.Canceled) {
		t.Errorf("Layout error = %v, want context.Canceled", err)
	}
}

func TestHostDrivesPipeline(t *testing.T) {
	res, err := anatomy.NewPipeline(testHost(t)).Evaluate(context.Background(), "Sphinx")
	if err != nil {
		t.Fatalf("Evaluate error = %v", err)
	}
	if len(res.Records) != 6 || res.Metrics == nil {
		t.Fatalf("got %d records, metrics %v", len(res.Records), res.Metrics)
	}
	first, last := res.Annotations[0], res.Annotations[len(res.Annotations)-1]
	if first.Feature != anatomy.FeatureStem || last.Side != anatomy.SideBracket {
		t.Errorf("annotations start with %s and end with %s", first.Feature, last.Side)
	}
}
