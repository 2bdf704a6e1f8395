package recording

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecorderPlayback(t *testing.T) {
	rec := NewRecorder(600, 300)
	rec.BeginGroup("guides")
	rec.SetStrokeColor(Hex("#9ca3af"))
	rec.SetDash(4, 4)
	rec.StrokeLine(95, 100, 560, 100)
	rec.SetDash()
	rec.SetLineWidth(2)
	rec.StrokeLine(95, 185, 560, 185)
	rec.EndGroup()
	rec.SetFillColor(Hex("#dc3a6e"))
	rec.FillCircle(130, 130, 4)
	rec.FillRect(0, 0, 10, 20)
	rec.SetTextAnchor(AnchorMiddle)
	rec.SetFont(nil, "sans-serif", 500)
	rec.DrawText("Stem", 130, 60)
	rec.DrawText("", 130, 60)

	r := rec.FinishRecording()
	if r.Width() != 600 || r.Height() != 300 {
		t.Errorf("size = %dx%d, want 600x300", r.Width(), r.Height())
	}

	b := newMockBackend("mock")
	if err := r.Playback(b); err != nil {
		t.Fatalf("Playback error = %v", err)
	}
	want := []string{
		"Begin 600x300",
		"BeginGroup guides",
		"StrokeLine 95,100 560,100 w1 #9ca3af [4 4]",
		"StrokeLine 95,185 560,185 w2 #9ca3af []",
		"EndGroup",
		"FillCircle 130,130 r4 #dc3a6e",
		"FillRect 0,0 10x20 #dc3a6e",
		`DrawText "Stem" 130,60 middle 500 #000000`,
		"End",
	}
	if diff := cmp.Diff(want, b.calls); diff != "" {
		t.Errorf("playback calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderSaveRestore(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.SetDash(1, 2)
	rec.Save()
	rec.SetStrokeColor(White)
	rec.SetDash()
	rec.Restore()
	rec.Restore() // unmatched, ignored
	rec.StrokeLine(0, 0, 1, 1)

	got := rec.FinishRecording().Commands()[0].(StrokeLineCommand).Stroke
	want := Stroke{Width: 1, Color: Black, Dash: []float64{1, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stroke after Restore (-want +got):\n%s", diff)
	}
}

func TestRecorderClosesOpenGroups(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.EndGroup() // nothing open
	rec.BeginGroup("a")
	rec.BeginGroup("b")

	var types []CommandType
	for _, c := range rec.FinishRecording().Commands() {
		types = append(types, c.Type())
	}
	want := []CommandType{CmdBeginGroup, CmdBeginGroup, CmdEndGroup, CmdEndGroup}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("command types (-want +got):\n%s", diff)
	}
}

func TestRecordedDashIsCopied(t *testing.T) {
	dash := []float64{4, 4}
	rec := NewRecorder(10, 10)
	rec.SetDash(dash...)
	rec.StrokeLine(0, 0, 1, 0)
	dash[0] = 9

	got := rec.FinishRecording().Commands()[0].(StrokeLineCommand).Stroke.Dash
	if got[0] != 4 {
		t.Errorf("recorded dash changed to %v", got)
	}
}

func TestPlaybackBeginError(t *testing.T) {
	b := newMockBackend("mock")
	b.beginErr = errors.New("boom")
	if err := NewRecorder(1, 1).FinishRecording().Playback(b); !errors.Is(err, b.beginErr) {
		t.Errorf("Playback error = %v, want wrapped boom", err)
	}
}

func TestPlaybackToUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()
	if _, err := NewRecorder(1, 1).FinishRecording().PlaybackTo("nope"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("PlaybackTo error = %v, want ErrUnknownBackend", err)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#000", Black},
		{"ffffff", White},
		{"#dc3a6e", RGBA{R: 220.0 / 255, G: 58.0 / 255, B: 110.0 / 255, A: 1}},
		{"#ffffff80", RGBA{R: 1, G: 1, B: 1, A: 128.0 / 255}},
		{"#zzz", Black},
		{"#12345", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if got := Hex("#dc3a6e").Hex(); got != "#dc3a6e" {
		t.Errorf("Hex round trip = %q", got)
	}
}

func TestAnchorOffset(t *testing.T) {
	for a, want := range map[Anchor]float64{AnchorStart: 0, AnchorMiddle: 20, AnchorEnd: 40} {
		if got := a.Offset(40); got != want {
			t.Errorf("%s.Offset(40) = %v, want %v", a, got, want)
		}
	}
}
