package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/anatomy"
	"github.com/gogpu/anatomy/diagram"
	"github.com/gogpu/anatomy/recording"
	"github.com/gogpu/anatomy/text"
)

// Config is the optional YAML or TOML configuration. Command line flags
// override the values it sets.
type Config struct {
	Word   string `yaml:"word" toml:"word"`
	Output string `yaml:"output" toml:"output"`

	// Font and LabelFont are paths to TTF or OTF files.
	Font      string `yaml:"font" toml:"font"`
	LabelFont string `yaml:"label_font" toml:"label_font"`

	// Shaper is "builtin" or "gotext".
	Shaper string `yaml:"shaper" toml:"shaper"`

	// Log is "debug", "info", "warn" or "error".
	Log string `yaml:"log" toml:"log"`

	Families struct {
		Word  string `yaml:"word" toml:"word"`
		Label string `yaml:"label" toml:"label"`
	} `yaml:"families" toml:"families"`

	// Colors are CSS hex colors; empty values keep the defaults.
	Colors struct {
		Mark       string `yaml:"mark" toml:"mark"`
		Guide      string `yaml:"guide" toml:"guide"`
		Word       string `yaml:"word" toml:"word"`
		Background string `yaml:"background" toml:"background"`
	} `yaml:"colors" toml:"colors"`

	Presets []string `yaml:"presets" toml:"presets"`
}

func defaultConfig() Config {
	return Config{
		Word:    anatomy.DefaultWord,
		Output:  "anatomy.png",
		Shaper:  "builtin",
		Log:     "warn",
		Presets: anatomy.Presets,
	}
}

// loadConfig reads path over the defaults. Files ending in .toml are read
// as TOML, anything else as YAML. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		unmarshal = toml.Unmarshal
	}
	if err := unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if len(cfg.Presets) == 0 {
		cfg.Presets = anatomy.Presets
	}
	return cfg, nil
}

// logLevel parses the level names accepted by -log.
func logLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return l, nil
}

func shaperFor(name string) (text.Shaper, error) {
	switch strings.ToLower(name) {
	case "", "builtin":
		return &text.BuiltinShaper{}, nil
	case "gotext", "harfbuzz":
		return text.NewGoTextShaper(), nil
	default:
		return nil, fmt.Errorf("unknown shaper %q", name)
	}
}

// rendererOptions turns the configuration into diagram options.
func (c Config) rendererOptions() ([]diagram.Option, error) {
	shaper, err := shaperFor(c.Shaper)
	if err != nil {
		return nil, err
	}
	opts := []diagram.Option{
		diagram.WithShaper(shaper),
		diagram.WithFamilies(c.Families.Word, c.Families.Label),
		diagram.WithPalette(c.palette()),
	}
	if c.Font != "" {
		src, err := text.NewFontSourceFromFile(c.Font)
		if err != nil {
			return nil, err
		}
		opts = append(opts, diagram.WithWordFont(src))
	}
	if c.LabelFont != "" {
		src, err := text.NewFontSourceFromFile(c.LabelFont)
		if err != nil {
			return nil, err
		}
		opts = append(opts, diagram.WithLabelFont(src))
	}
	return opts, nil
}

func (c Config) palette() diagram.Palette {
	p := diagram.DefaultPalette()
	set := func(dst *recording.RGBA, hex string) {
		if hex != "" {
			*dst = recording.Hex(hex)
		}
	}
	set(&p.Mark, c.Colors.Mark)
	set(&p.Guide, c.Colors.Guide)
	set(&p.Word, c.Colors.Word)
	if strings.EqualFold(c.Colors.Background, "none") {
		p.Background = recording.RGBA{}
	} else {
		set(&p.Background, c.Colors.Background)
	}
	return p
}
