package diagram

import (
	"context"
	"errors"

	"github.com/gogpu/anatomy"
	"github.com/gogpu/anatomy/text"
)

// ErrNoFont is returned when a Host is created without a font.
var ErrNoFont = errors.New("diagram: no font source")

// Host lays words out with a font so the anatomy pipeline can measure them.
// It implements anatomy.LayoutHost; layouts are computed synchronously and
// are committed as soon as Layout returns.
//
// Host is safe for concurrent use.
type Host struct {
	source *text.FontSource
	runs   *text.RunCache
}

// runCacheSize bounds the layouts a Host keeps for retyped words.
const runCacheSize = 64

var _ anatomy.LayoutHost = (*Host)(nil)

// NewHost creates a Host laying text out with source. A nil shaper uses
// the global shaper.
func NewHost(source *text.FontSource, shaper text.Shaper) (*Host, error) {
	if source == nil {
		return nil, ErrNoFont
	}
	return &Host{source: source, runs: text.NewRunCache(source, shaper, runCacheSize)}, nil
}

// Layout shapes s at fontSize with its pen at anatomy.StartX on the
// baseline and returns the laid out run.
func (h *Host) Layout(ctx context.Context, s string, fontSize float64) (anatomy.Measurer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	run := h.runs.Layout(s, fontSize, anatomy.StartX, anatomy.Baseline)
	anatomy.Logger().Debug("diagram: laid out",
		"text", s, "size", fontSize, "glyphs", len(run.Glyphs()), "advance", run.Advance())
	return run, nil
}

// Source returns the font the host lays text out with.
func (h *Host) Source() *text.FontSource {
	return h.source
}
