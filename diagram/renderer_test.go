package diagram

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/anatomy"
	"github.com/gogpu/anatomy/recording"
	"github.com/gogpu/anatomy/text"
)

func testRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer error = %v", err)
	}
	return r
}

func TestRenderSVG(t *testing.T) {
	r := testRenderer(t)
	path := filepath.Join(t.TempDir(), "sphinx.svg")
	res, err := r.RenderFile(context.Background(), anatomy.DefaultWord, path)
	if err != nil {
		t.Fatalf("RenderFile error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	for _, a := range res.Annotations {
		if !strings.Contains(doc, ">"+a.Label+"</text>") {
			t.Errorf("document has no %q label", a.Label)
		}
	}
	if !strings.Contains(doc, `font-family="Georgia, serif"`) {
		t.Error("word family missing from document")
	}
}

func TestRenderRaster(t *testing.T) {
	r := testRenderer(t)
	b, res, err := r.Render(context.Background(), "Quickly", "raster")
	if err != nil {
		t.Fatalf("Render error = %v", err)
	}
	img := b.(recording.ImageBackend).Image()
	if img.Bounds().Dx() < int(res.Width()) || img.Bounds().Dy() != 300 {
		t.Errorf("image bounds = %v, want %vx300", img.Bounds(), res.Width())
	}
}

func TestRenderUnknownBackend(t *testing.T) {
	_, _, err := testRenderer(t).Render(context.Background(), "a", "pdf")
	if !errors.Is(err, recording.ErrUnknownBackend) {
		t.Errorf("Render error = %v, want ErrUnknownBackend", err)
	}
}

func TestRenderWithGoTextShaper(t *testing.T) {
	r := testRenderer(t, WithShaper(text.NewGoTextShaper()))
	res, err := r.Evaluate(context.Background(), "Jogger")
	if err != nil {
		t.Fatalf("Evaluate error = %v", err)
	}
	if len(res.Records) != 6 {
		t.Errorf("got %d records, want 6", len(res.Records))
	}
}

func TestRendererOptions(t *testing.T) {
	fonts, err := defaultFonts()
	if err != nil {
		t.Fatal(err)
	}
	p := DefaultPalette()
	p.Mark = recording.Black
	r := testRenderer(t,
		WithWordFont(fonts.medium),
		WithLabelFont(fonts.regular),
		WithFamilies("Inter", ""),
		WithPalette(p),
	)
	st := r.Style()
	if st.WordFont != fonts.medium || st.LabelFont != fonts.regular {
		t.Error("font options not applied")
	}
	if st.WordFamily != "Inter" || st.LabelFamily != DefaultLabelFamily {
		t.Errorf("families = %q, %q", st.WordFamily, st.LabelFamily)
	}
	if st.Palette.Mark != recording.Black {
		t.Error("palette option not applied")
	}
	if r.Host().Source() != fonts.medium {
		t.Error("host does not lay out with the word font")
	}
}

func TestBackendForPath(t *testing.T) {
	tests := map[string]string{"a.png": "raster", "b.SVG": "svg", "c.pdf": "", "noext": ""}
	for path, want := range tests {
		got, err := BackendForPath(path)
		if got != want || (want == "") != (err != nil) {
			t.Errorf("BackendForPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
}
