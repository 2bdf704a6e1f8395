package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/anatomy/diagram"
)

func TestReadWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word.txt")
	if err := os.WriteFile(path, []byte("  Raven \nignored\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := readWord(path)
	if err != nil || got != "Raven" {
		t.Errorf("readWord = %q, %v; want Raven", got, err)
	}
	if _, err := readWord(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file accepted")
	}
}

// waitForFile polls until path exists and contains want.
func waitForFile(t *testing.T, path, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(path); err == nil && strings.Contains(string(data), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("%s never contained %q", path, want)
}

func TestWatchWord(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "word.txt")
	out := filepath.Join(dir, "live.svg")
	if err := os.WriteFile(src, []byte("Sphinx\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := diagram.NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchWord(ctx, r, src, out) }()

	waitForFile(t, out, ">Sphinx</text>")

	if err := os.WriteFile(src, []byte("Jogger\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	waitForFile(t, out, ">Jogger</text>")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchWord error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchWord did not stop after cancel")
	}
}
