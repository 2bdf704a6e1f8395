package main

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/gogpu/anatomy"
	"github.com/gogpu/anatomy/diagram"
)

// Intp is the interactive interpreter: every line is a word to annotate,
// except for the commands below.
//
//	:presets        list the preset words
//	:preset N       annotate preset N (1-based)
//	:save PATH      write the current word to a .png or .svg file
//	:quit           leave
type Intp struct {
	repl     *readline.Instance
	renderer *diagram.Renderer
	pipeline *anatomy.Pipeline
	presets  []string
}

func newIntp(r *diagram.Renderer, presets []string) (*Intp, error) {
	repl, err := readline.New("anatomy > ")
	if err != nil {
		return nil, err
	}
	intp := &Intp{repl: repl, renderer: r, presets: presets}
	intp.pipeline = r.Pipeline(anatomy.WithOnResult(printResult))
	return intp, nil
}

// REPL reads lines until EOF or :quit.
func (intp *Intp) REPL(ctx context.Context, first string) {
	defer func() {
		intp.pipeline.Close()
		_ = intp.repl.Close()
	}()

	pterm.Info.Println("Type a word, :presets, :save PATH or :quit. Quit with <ctrl>D")
	intp.show(first)
	for {
		line, err := intp.repl.Readline()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, readline.ErrInterrupt) {
				pterm.Error.Println(err)
			}
			break
		}
		if quit := intp.execute(ctx, strings.TrimSpace(line)); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(ctx context.Context, line string) (quit bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case ":quit", ":q":
		return true
	case ":presets":
		for i, p := range intp.presets {
			pterm.Printf("%d  %s\n", i+1, p)
		}
	case ":preset":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(intp.presets) {
			pterm.Error.Printf("no preset %q\n", arg)
			return false
		}
		intp.show(intp.presets[n-1])
	case ":save":
		intp.save(ctx, arg)
	default:
		intp.show(line)
	}
	return false
}

// show schedules word and waits for its result to be printed.
func (intp *Intp) show(word string) {
	intp.pipeline.Update(word)
	intp.pipeline.Wait()
}

func (intp *Intp) save(ctx context.Context, path string) {
	res := intp.pipeline.Latest()
	if res == nil {
		pterm.Error.Println("nothing to save")
		return
	}
	if path == "" {
		pterm.Error.Println("usage: :save PATH")
		return
	}
	if _, err := intp.renderer.RenderFile(ctx, res.Text, path); err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Info.Printf("saved %s\n", path)
}
