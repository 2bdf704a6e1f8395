package diagram

import (
	"sync"

	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/anatomy/recording"
	"github.com/gogpu/anatomy/text"
)

// Default font families written to vector output.
const (
	DefaultWordFamily  = "Georgia, serif"
	DefaultLabelFamily = "system-ui"
)

// Palette holds the diagram colors.
type Palette struct {
	// Mark colors dots, connectors, labels and the bracket.
	Mark recording.RGBA

	// Guide colors the reference lines and their labels.
	Guide recording.RGBA

	// Word colors the word itself.
	Word recording.RGBA

	// Background fills the canvas. A zero alpha leaves it transparent.
	Background recording.RGBA
}

// DefaultPalette returns pink marks and gray guides on white.
func DefaultPalette() Palette {
	return Palette{
		Mark:       recording.Hex("#dc3a6e"),
		Guide:      recording.Hex("#9ca3af"),
		Word:       recording.Hex("#1e293b"),
		Background: recording.White,
	}
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	wordFont    *text.FontSource
	labelFont   *text.FontSource
	wordFamily  string
	labelFamily string
	shaper      text.Shaper
	palette     Palette
}

func defaultConfig() config {
	return config{
		wordFamily:  DefaultWordFamily,
		labelFamily: DefaultLabelFamily,
		palette:     DefaultPalette(),
	}
}

// WithWordFont sets the font the word is measured and drawn with.
// The default is Go Regular.
func WithWordFont(src *text.FontSource) Option {
	return func(c *config) {
		c.wordFont = src
	}
}

// WithLabelFont sets the font for labels. The default is Go Medium.
func WithLabelFont(src *text.FontSource) Option {
	return func(c *config) {
		c.labelFont = src
	}
}

// WithFamilies sets the font-family lists written to vector output.
// Empty values keep the defaults.
func WithFamilies(word, label string) Option {
	return func(c *config) {
		if word != "" {
			c.wordFamily = word
		}
		if label != "" {
			c.labelFamily = label
		}
	}
}

// WithShaper sets the shaper used to lay the word out. Nil uses the
// global shaper.
func WithShaper(s text.Shaper) Option {
	return func(c *config) {
		c.shaper = s
	}
}

// WithPalette sets the diagram colors.
func WithPalette(p Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

type defaultSources struct {
	regular, medium *text.FontSource
}

// defaultFonts parses the bundled Go fonts once per process.
var defaultFonts = sync.OnceValues(func() (defaultSources, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return defaultSources{}, err
	}
	medium, err := text.NewFontSource(gomedium.TTF)
	if err != nil {
		return defaultSources{}, err
	}
	return defaultSources{regular: regular, medium: medium}, nil
})
