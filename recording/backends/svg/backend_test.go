package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/anatomy/recording"
)

func render(t *testing.T, draw func(rec *recording.Recorder)) *Backend {
	t.Helper()
	rec := recording.NewRecorder(600, 300)
	draw(rec)
	b := New()
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatalf("Playback error = %v", err)
	}
	return b
}

func TestBackendRegistration(t *testing.T) {
	backend, err := recording.NewBackend("svg")
	if err != nil {
		t.Fatalf("NewBackend(svg) error = %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("backend is %T, want *svg.Backend", backend)
	}
}

func TestDocument(t *testing.T) {
	b := render(t, func(rec *recording.Recorder) {
		rec.BeginGroup("guides")
		rec.SetStrokeColor(recording.Hex("#9ca3af").WithAlpha(0.4))
		rec.SetDash(4, 4)
		rec.StrokeLine(95, 100.125, 560, 100.125)
		rec.EndGroup()
		rec.SetFillColor(recording.Hex("#dc3a6e"))
		rec.FillCircle(130, 130, 4)
		rec.SetFont(nil, "Inter, sans-serif", 500)
		rec.SetTextAnchor(recording.AnchorMiddle)
		rec.SetTextColor(recording.Hex("#dc3a6e"))
		rec.DrawText("Bowl & <Leg>", 130, 60)
	})

	want := strings.Join([]string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="600" height="300" viewBox="0 0 600 300">`,
		`  <g class="guides">`,
		`    <line x1="95" y1="100.13" x2="560" y2="100.13" stroke="#9ca3af" stroke-opacity="0.4" stroke-width="1" stroke-dasharray="4,4"/>`,
		`  </g>`,
		`  <circle cx="130" cy="130" r="4" fill="#dc3a6e"/>`,
		`  <text x="130" y="60" font-size="16" font-family="Inter, sans-serif" font-weight="500" text-anchor="middle" fill="#dc3a6e">Bowl &amp; &lt;Leg&gt;</text>`,
		`</svg>`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentIsWellFormed(t *testing.T) {
	b := render(t, func(rec *recording.Recorder) {
		rec.BeginGroup("a")
		rec.BeginGroup("b & c")
		rec.FillRect(0, 0, 600, 300)
		rec.DrawText(`"quoted"`, 1, 2)
	})
	dec := xml.NewDecoder(strings.NewReader(b.String()))
	for {
		_, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			t.Fatalf("document is not well formed: %v\n%s", err, b.String())
		}
	}
}

func TestTransparentPaint(t *testing.T) {
	b := render(t, func(rec *recording.Recorder) {
		rec.SetFillColor(recording.RGBA{})
		rec.FillRect(0, 0, 1, 1)
	})
	if !strings.Contains(b.String(), `fill="none"`) {
		t.Errorf("transparent fill not written as none:\n%s", b.String())
	}
}

func TestWriteBeforeEnd(t *testing.T) {
	b := New()
	if err := b.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("WriteTo before End succeeded")
	}
	if err := New().Begin(-1, 10); err == nil {
		t.Error("Begin(-1, 10) succeeded")
	}
}

func TestWriteToAndSave(t *testing.T) {
	b := render(t, func(rec *recording.Recorder) {
		rec.FillCircle(1, 1, 1)
	})

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil || n != int64(buf.Len()) || buf.String() != b.String() {
		t.Errorf("WriteTo = %d, %v", n, err)
	}

	path := filepath.Join(t.TempDir(), "out.svg")
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != b.String() {
		t.Error("saved file differs from document")
	}
}

func TestNum(t *testing.T) {
	for in, want := range map[float64]string{0: "0", 1.5: "1.5", 127.2: "127.2", 2.0 / 3: "0.67", -0.001: "0"} {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}
