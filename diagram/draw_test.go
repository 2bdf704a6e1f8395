package diagram

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/anatomy"
	"github.com/gogpu/anatomy/recording"
)

func fixedResult() *anatomy.Result {
	l := anatomy.NewReferenceLines(100, anatomy.Baseline)
	return &anatomy.Result{
		Text:     "ab",
		FontSize: 100,
		Lines:    l,
		Records: []anatomy.CharacterRecord{
			{Char: 'a', Index: 0, X: 120, Width: 50},
			{Char: 'b', Index: 1, X: 170, Width: 50},
		},
		Metrics: &anatomy.Metrics{Width: 100, Right: 220},
		Annotations: []anatomy.Annotation{
			{Feature: anatomy.FeatureStem, Label: "Stem", Side: anatomy.SideTop, X: 131, DotY: l.XHeight, Char: 0},
			{Feature: anatomy.FeatureSerif, Label: "Serif", Side: anatomy.SideBottom, X: 131, DotY: l.Baseline, Char: -1},
			{Feature: anatomy.FeatureXHeight, Label: "x-Height", Side: anatomy.SideBracket, X: 250, Y: l.XHeight, Y2: l.Baseline, Char: -1},
		},
	}
}

func commandsOf[T recording.Command](r *recording.Recording) []T {
	var out []T
	for _, c := range r.Commands() {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func TestDrawTexts(t *testing.T) {
	res := fixedResult()
	r := Draw(res, Style{Palette: DefaultPalette()})

	if r.Width() != 600 || r.Height() != 300 {
		t.Errorf("canvas = %dx%d, want 600x300", r.Width(), r.Height())
	}

	type placed struct {
		Text   string
		X, Y   float64
		Anchor recording.Anchor
	}
	var got []placed
	for _, c := range commandsOf[recording.DrawTextCommand](r) {
		got = append(got, placed{c.Text, c.X, c.Y, c.Style.Anchor})
	}
	l := res.Lines
	want := []placed{
		{"Cap Height", 90, l.CapHeight + 4, recording.AnchorEnd},
		{"x-Height", 90, l.XHeight + 4, recording.AnchorEnd},
		{"Baseline", 90, l.Baseline + 4, recording.AnchorEnd},
		{"ab", 120, 185, recording.AnchorStart},
		{"Stem", 131, l.TopLabelY, recording.AnchorMiddle},
		{"Serif", 131, l.BottomLabelY, recording.AnchorMiddle},
		{"x-Height", 262, (l.XHeight+l.Baseline)/2 + 4, recording.AnchorStart},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawMarks(t *testing.T) {
	res := fixedResult()
	r := Draw(res, Style{Palette: DefaultPalette()})
	l := res.Lines
	pink := DefaultPalette().Mark

	circles := commandsOf[recording.FillCircleCommand](r)
	wantCircles := []recording.FillCircleCommand{
		{CX: 131, CY: l.XHeight, R: 4, Color: pink},
		{CX: 131, CY: l.Baseline, R: 4, Color: pink},
	}
	if diff := cmp.Diff(wantCircles, circles); diff != "" {
		t.Errorf("dots mismatch (-want +got):\n%s", diff)
	}

	type seg struct{ X1, Y1, X2, Y2, W float64 }
	var lines []seg
	for _, c := range commandsOf[recording.StrokeLineCommand](r) {
		if c.Stroke.Color == pink {
			lines = append(lines, seg{c.X1, c.Y1, c.X2, c.Y2, c.Stroke.Width})
		}
	}
	wantLines := []seg{
		{131, l.XHeight - 6, 131, l.TopLabelY + 12, 1},
		{131, l.Baseline + 6, 131, l.BottomLabelY - 12, 1},
		{250, l.XHeight, 250, l.Baseline, 1.5},
		{245, l.XHeight, 255, l.XHeight, 1.5},
		{245, l.Baseline, 255, l.Baseline, 1.5},
	}
	if diff := cmp.Diff(wantLines, lines); diff != "" {
		t.Errorf("mark lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawGuides(t *testing.T) {
	res := fixedResult()
	r := Draw(res, Style{Palette: DefaultPalette()})
	l := res.Lines

	var guides []recording.StrokeLineCommand
	for _, c := range commandsOf[recording.StrokeLineCommand](r) {
		if c.X1 == anatomy.GuideStartX {
			guides = append(guides, c)
		}
	}
	if len(guides) != 4 {
		t.Fatalf("got %d guide lines, want 4", len(guides))
	}
	wantY := []float64{l.CapHeight, l.XHeight, l.DescenderLine, l.Baseline}
	for i, g := range guides {
		if g.Y1 != wantY[i] || g.X2 != res.GuideEndX() {
			t.Errorf("guide %d = %+v, want y %v ending at %v", i, g, wantY[i], res.GuideEndX())
		}
		dashed := i < 3
		if dashed != (len(g.Stroke.Dash) > 0) {
			t.Errorf("guide %d dash = %v", i, g.Stroke.Dash)
		}
	}
	if guides[3].Stroke.Color.A != 0.5 || guides[0].Stroke.Color.A != 0.4 {
		t.Errorf("guide opacities = %v, %v", guides[0].Stroke.Color.A, guides[3].Stroke.Color.A)
	}
}

func TestDrawEmpty(t *testing.T) {
	res := &anatomy.Result{Lines: anatomy.NewReferenceLines(anatomy.FontSize(""), anatomy.Baseline)}
	r := Draw(res, Style{Palette: DefaultPalette()})

	var types []recording.CommandType
	for _, c := range r.Commands() {
		types = append(types, c.Type())
	}
	if diff := cmp.Diff([]recording.CommandType{recording.CmdFillRect}, types); diff != "" {
		t.Errorf("empty diagram commands (-want +got):\n%s", diff)
	}
	if r.Width() != 600 {
		t.Errorf("Width() = %d, want 600", r.Width())
	}
}

func TestDrawTransparentBackground(t *testing.T) {
	p := DefaultPalette()
	p.Background = recording.RGBA{}
	r := Draw(fixedResult(), Style{Palette: p})
	if rects := commandsOf[recording.FillRectCommand](r); len(rects) != 0 {
		t.Errorf("got %d background rects, want none", len(rects))
	}
}
