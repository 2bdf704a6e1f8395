package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"

	"github.com/gogpu/anatomy"
	"github.com/gogpu/anatomy/diagram"
)

// watchWord re-renders output whenever the word file at path changes.
// Rapid edits supersede each other, only the latest word is written.
// It returns when ctx is done.
func watchWord(ctx context.Context, r *diagram.Renderer, path, output string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	p := r.Pipeline(anatomy.WithContext(ctx), anatomy.WithOnResult(func(res *anatomy.Result) {
		if err := r.WriteFile(res, output); err != nil {
			pterm.Error.Println(err)
			return
		}
		pterm.Info.Printf("%q -> %s\n", res.Text, output)
	}))
	defer p.Close()

	update := func() {
		word, err := readWord(path)
		if err != nil {
			anatomy.Logger().Warn("anatomy: read word", "path", path, "err", err)
			return
		}
		p.Update(word)
	}
	update()

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				update()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			anatomy.Logger().Warn("anatomy: watch", "err", err)
		}
	}
}

// readWord returns the first line of the file at path.
func readWord(path string) (string, error) {
	// #nosec G304 -- the watched file is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}
