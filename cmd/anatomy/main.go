// Command anatomy draws annotated type anatomy diagrams.
//
//	anatomy -word Sphinx -o sphinx.svg
//	anatomy -presets -o out/          # one file per preset
//	anatomy -i                        # interactive
//	anatomy -watch word.txt -o live.svg
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/gogpu/anatomy"
	"github.com/gogpu/anatomy/diagram"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("anatomy", flag.ContinueOnError)
	var (
		configPath  = fs.String("config", "", "YAML or TOML configuration file")
		word        = fs.String("word", "", "word to annotate (default from config, else "+anatomy.DefaultWord+")")
		output      = fs.String("o", "", "output file (.png or .svg), or a directory with -presets")
		font        = fs.String("font", "", "TTF/OTF file for the word")
		shaper      = fs.String("shaper", "", "text shaper: builtin or gotext")
		level       = fs.String("log", "", "log level: debug, info, warn or error")
		interactive = fs.Bool("i", false, "interactive mode")
		presets     = fs.Bool("presets", false, "render every preset word")
		watch       = fs.String("watch", "", "re-render whenever the word in this file changes")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	// Flags that were given override the configuration.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "word":
			cfg.Word = *word
		case "o":
			cfg.Output = *output
		case "font":
			cfg.Font = *font
		case "shaper":
			cfg.Shaper = *shaper
		case "log":
			cfg.Log = *level
		}
	})

	lvl, err := logLevel(cfg.Log)
	if err != nil {
		return err
	}
	anatomy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	opts, err := cfg.rendererOptions()
	if err != nil {
		return err
	}
	r, err := diagram.NewRenderer(opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *interactive:
		initDisplay()
		intp, err := newIntp(r, cfg.Presets)
		if err != nil {
			return err
		}
		intp.REPL(ctx, cfg.Word)
		return nil
	case *watch != "":
		return watchWord(ctx, r, *watch, cfg.Output)
	case *presets:
		return renderPresets(ctx, r, cfg)
	default:
		res, err := r.RenderFile(ctx, cfg.Word, cfg.Output)
		if err != nil {
			return err
		}
		printResult(res)
		pterm.Info.Printf("wrote %s\n", cfg.Output)
		return nil
	}
}

// renderPresets writes one file per preset into the output directory,
// as PNG unless the output names an .svg file pattern.
func renderPresets(ctx context.Context, r *diagram.Renderer, cfg Config) error {
	dir, ext := cfg.Output, ".png"
	if e := strings.ToLower(filepath.Ext(dir)); e == ".png" || e == ".svg" {
		dir, ext = filepath.Dir(dir), e
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, w := range cfg.Presets {
		path := filepath.Join(dir, strings.ToLower(w)+ext)
		if _, err := r.RenderFile(ctx, w, path); err != nil {
			return fmt.Errorf("preset %q: %w", w, err)
		}
		pterm.Info.Printf("wrote %s\n", path)
	}
	return nil
}

// initDisplay sets up pterm's prefixes for interactive use.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
