// Package recording captures diagram drawing as commands that can be played
// back to different output backends.
//
// # Architecture
//
// The package follows a command pattern with three parts:
//
//   - Recorder: captures drawing operations as commands
//   - Recording: an immutable list of commands
//   - Backend: renders commands to a specific output format
//
// The primitives are the ones an annotated type diagram needs: filled
// rectangles, straight (optionally dashed) lines, filled circles and single
// lines of anchored text, optionally grouped.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(600, 300)
//	rec.SetStrokeColor(recording.Hex("#9ca3af"))
//	rec.SetDash(4, 4)
//	rec.StrokeLine(95, 150, 560, 150)
//	r := rec.FinishRecording()
//
//	b, err := r.PlaybackTo("svg")
//	if err != nil {
//	    return err
//	}
//	b.(recording.FileBackend).SaveToFile("diagram.svg")
//
// # Backend Registration
//
// Backends register themselves by name from init. Import a backend package
// with a blank identifier to make it available:
//
//	import (
//	    _ "github.com/gogpu/anatomy/recording/backends/raster" // "raster"
//	    _ "github.com/gogpu/anatomy/recording/backends/svg"    // "svg"
//	)
//
// # Thread Safety
//
// Recorder is not safe for concurrent use. A Recording is immutable and can
// be played back from multiple goroutines, each with its own Backend.
package recording
