package recording

import "github.com/gogpu/anatomy/text"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdBeginGroup CommandType = iota // Open a named group of commands
	CmdEndGroup                      // Close the innermost group
	CmdFillRect                      // Fill an axis-aligned rectangle
	CmdStrokeLine                    // Stroke a straight line
	CmdFillCircle                    // Fill a circle
	CmdDrawText                      // Draw a line of text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginGroup: "BeginGroup",
	CmdEndGroup:   "EndGroup",
	CmdFillRect:   "FillRect",
	CmdStrokeLine: "StrokeLine",
	CmdFillCircle: "FillCircle",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, Width, Height float64
}

// Stroke describes how lines are stroked.
type Stroke struct {
	Width float64
	Color RGBA

	// Dash alternates dash and gap lengths. Nil draws a solid line.
	Dash []float64
}

// Anchor aligns text horizontally relative to its x coordinate.
type Anchor uint8

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a Anchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// Offset returns how far text of the given advance is shifted left of its
// anchor point.
func (a Anchor) Offset(advance float64) float64 {
	switch a {
	case AnchorMiddle:
		return advance / 2
	case AnchorEnd:
		return advance
	default:
		return 0
	}
}

// BeginGroupCommand opens a named group. Backends that have no notion of
// groups ignore it.
type BeginGroupCommand struct {
	Name string
}

// Type implements Command.
func (BeginGroupCommand) Type() CommandType { return CmdBeginGroup }

// EndGroupCommand closes the innermost group.
type EndGroupCommand struct{}

// Type implements Command.
func (EndGroupCommand) Type() CommandType { return CmdEndGroup }

// FillRectCommand fills Rect with Color.
type FillRectCommand struct {
	Rect  Rect
	Color RGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeLineCommand strokes the line from (X1, Y1) to (X2, Y2).
type StrokeLineCommand struct {
	X1, Y1, X2, Y2 float64
	Stroke         Stroke
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// FillCircleCommand fills a circle.
type FillCircleCommand struct {
	CX, CY, R float64
	Color     RGBA
}

// Type implements Command.
func (FillCircleCommand) Type() CommandType { return CmdFillCircle }

// TextStyle describes how text is set.
type TextStyle struct {
	// Family is the CSS font-family list written by vector backends.
	// Raster backends draw with the command's Face instead.
	Family string

	// Weight is the CSS font weight; 0 means normal.
	Weight int

	Anchor Anchor
	Color  RGBA
}

// DrawTextCommand draws Text with its baseline at Y, aligned to X by the
// style's anchor.
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Face  text.Face
	Style TextStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
