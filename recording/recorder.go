package recording

import (
	"fmt"
	"slices"

	"github.com/gogpu/anatomy/text"
)

// Recorder captures drawing operations as commands.
// Styles are set on the recorder and captured by each drawing command, so a
// Recording carries no state of its own. Use FinishRecording to obtain an
// immutable Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(600, 300)
//	rec.SetFillColor(recording.Hex("#dc3a6e"))
//	rec.FillCircle(100, 100, 4)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	depth         int

	state      recorderState
	stateStack []recorderState
}

// recorderState stores the style for Save/Restore.
type recorderState struct {
	fill   RGBA
	stroke Stroke
	face   text.Face
	text   TextStyle
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with a black fill, a black 1px solid stroke and
// start-anchored black text with no face.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
		state: recorderState{
			fill:   Black,
			stroke: Stroke{Width: 1, Color: Black},
			text:   TextStyle{Color: Black},
		},
		stateStack: make([]recorderState, 0, 4),
	}
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. Groups left open are closed. The Recorder should not be used
// again afterwards.
func (r *Recorder) FinishRecording() *Recording {
	for r.depth > 0 {
		r.EndGroup()
	}
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Save pushes the current style onto the stack.
func (r *Recorder) Save() {
	s := r.state
	s.stroke.Dash = slices.Clone(s.stroke.Dash)
	r.stateStack = append(r.stateStack, s)
}

// Restore pops the style saved by the matching Save.
// Restore without a matching Save is a no-op.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	r.state = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
}

// SetFillColor sets the color used by FillRect and FillCircle.
func (r *Recorder) SetFillColor(c RGBA) {
	r.state.fill = c
}

// SetStrokeColor sets the color used by StrokeLine.
func (r *Recorder) SetStrokeColor(c RGBA) {
	r.state.stroke.Color = c
}

// SetLineWidth sets the stroke width.
func (r *Recorder) SetLineWidth(w float64) {
	r.state.stroke.Width = w
}

// SetDash sets the dash pattern. Calling it with no arguments restores
// solid lines.
func (r *Recorder) SetDash(dashes ...float64) {
	if len(dashes) == 0 {
		r.state.stroke.Dash = nil
		return
	}
	r.state.stroke.Dash = slices.Clone(dashes)
}

// SetFont sets the face used to draw text and the family and weight written
// by vector backends.
func (r *Recorder) SetFont(face text.Face, family string, weight int) {
	r.state.face = face
	r.state.text.Family = family
	r.state.text.Weight = weight
}

// SetTextAnchor sets the horizontal alignment of text.
func (r *Recorder) SetTextAnchor(a Anchor) {
	r.state.text.Anchor = a
}

// SetTextColor sets the color used by DrawText.
func (r *Recorder) SetTextColor(c RGBA) {
	r.state.text.Color = c
}

// BeginGroup opens a named group.
func (r *Recorder) BeginGroup(name string) {
	r.depth++
	r.commands = append(r.commands, BeginGroupCommand{Name: name})
}

// EndGroup closes the innermost group. It is a no-op when no group is open.
func (r *Recorder) EndGroup() {
	if r.depth == 0 {
		return
	}
	r.depth--
	r.commands = append(r.commands, EndGroupCommand{})
}

// FillRect fills the rectangle at (x, y) with the fill color.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.commands = append(r.commands, FillRectCommand{
		Rect:  Rect{X: x, Y: y, Width: w, Height: h},
		Color: r.state.fill,
	})
}

// StrokeLine strokes a line with the current stroke.
func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64) {
	s := r.state.stroke
	s.Dash = slices.Clone(s.Dash)
	r.commands = append(r.commands, StrokeLineCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: s})
}

// FillCircle fills a circle with the fill color.
func (r *Recorder) FillCircle(cx, cy, radius float64) {
	r.commands = append(r.commands, FillCircleCommand{CX: cx, CY: cy, R: radius, Color: r.state.fill})
}

// DrawText draws s with its baseline at y using the current font.
// Empty strings are not recorded.
func (r *Recorder) DrawText(s string, x, y float64) {
	if s == "" {
		return
	}
	r.commands = append(r.commands, DrawTextCommand{
		Text:  s,
		X:     x,
		Y:     y,
		Face:  r.state.face,
		Style: r.state.text,
	})
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation and shared between
// goroutines.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginGroupCommand:
			backend.BeginGroup(c.Name)
		case EndGroupCommand:
			backend.EndGroup()
		case FillRectCommand:
			backend.FillRect(c.Rect, c.Color)
		case StrokeLineCommand:
			backend.StrokeLine(c.X1, c.Y1, c.X2, c.Y2, c.Stroke)
		case FillCircleCommand:
			backend.FillCircle(c.CX, c.CY, c.R, c.Color)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, c.Face, c.Style)
		}
	}

	return backend.End()
}

// PlaybackTo creates the named backend and replays the recording to it.
func (r *Recording) PlaybackTo(name string) (Backend, error) {
	b, err := NewBackend(name)
	if err != nil {
		return nil, err
	}
	if err := r.Playback(b); err != nil {
		return nil, err
	}
	return b, nil
}
