package diagram

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/anatomy"
	"github.com/gogpu/anatomy/recording"
	_ "github.com/gogpu/anatomy/recording/backends/raster" // registers "raster"
	_ "github.com/gogpu/anatomy/recording/backends/svg"    // registers "svg"
)

// Renderer measures, annotates and draws words.
// Renderer is safe for concurrent use.
type Renderer struct {
	host  *Host
	style Style
}

// NewRenderer creates a Renderer. Fonts not set by options default to the
// bundled Go fonts.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.wordFont == nil || cfg.labelFont == nil {
		fonts, err := defaultFonts()
		if err != nil {
			return nil, fmt.Errorf("diagram: load default fonts: %w", err)
		}
		if cfg.wordFont == nil {
			cfg.wordFont = fonts.regular
		}
		if cfg.labelFont == nil {
			cfg.labelFont = fonts.medium
		}
	}

	host, err := NewHost(cfg.wordFont, cfg.shaper)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		host: host,
		style: Style{
			WordFont:    cfg.wordFont,
			LabelFont:   cfg.labelFont,
			WordFamily:  cfg.wordFamily,
			LabelFamily: cfg.labelFamily,
			Palette:     cfg.palette,
		},
	}, nil
}

// Host returns the layout host, for building a long-lived anatomy.Pipeline.
func (r *Renderer) Host() *Host {
	return r.host
}

// Style returns the drawing style.
func (r *Renderer) Style() Style {
	return r.style
}

// Pipeline creates a pipeline measuring with the renderer's host.
func (r *Renderer) Pipeline(opts ...anatomy.PipelineOption) *anatomy.Pipeline {
	return anatomy.NewPipeline(r.host, opts...)
}

// Evaluate measures and annotates word.
func (r *Renderer) Evaluate(ctx context.Context, word string) (*anatomy.Result, error) {
	return r.Pipeline().Evaluate(ctx, word)
}

// Record draws res.
func (r *Renderer) Record(res *anatomy.Result) *recording.Recording {
	return Draw(res, r.style)
}

// Render evaluates word and plays the diagram back to the named backend.
func (r *Renderer) Render(ctx context.Context, word, backend string) (recording.Backend, *anatomy.Result, error) {
	res, err := r.Evaluate(ctx, word)
	if err != nil {
		return nil, nil, err
	}
	b, err := r.Record(res).PlaybackTo(backend)
	if err != nil {
		return nil, nil, fmt.Errorf("diagram: render %q: %w", word, err)
	}
	return b, res, nil
}

// RenderFile renders word to path. The backend is chosen from the file
// extension, see BackendForPath.
func (r *Renderer) RenderFile(ctx context.Context, word, path string) (*anatomy.Result, error) {
	if _, err := BackendForPath(path); err != nil {
		return nil, err
	}
	res, err := r.Evaluate(ctx, word)
	if err != nil {
		return nil, err
	}
	if err := r.WriteFile(res, path); err != nil {
		return nil, err
	}
	return res, nil
}

// WriteFile draws res and writes it to path, choosing the backend from the
// file extension.
func (r *Renderer) WriteFile(res *anatomy.Result, path string) error {
	name, err := BackendForPath(path)
	if err != nil {
		return err
	}
	b, err := r.Record(res).PlaybackTo(name)
	if err != nil {
		return fmt.Errorf("diagram: render %q: %w", res.Text, err)
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("diagram: backend %q cannot write files", name)
	}
	if err := fb.SaveToFile(path); err != nil {
		return fmt.Errorf("diagram: write %s: %w", path, err)
	}
	anatomy.Logger().Info("diagram: written", "path", path, "word", res.Text,
		"annotations", len(res.Annotations))
	return nil
}

// BackendForPath maps ".png" to "raster" and ".svg" to "svg".
func BackendForPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "raster", nil
	case ".svg":
		return "svg", nil
	default:
		return "", fmt.Errorf("diagram: unsupported output format %q", ext)
	}
}
