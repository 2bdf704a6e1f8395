package diagram

import (
	"math"

	"github.com/gogpu/anatomy"
	"github.com/gogpu/anatomy/recording"
	"github.com/gogpu/anatomy/text"
)

const (
	guideLabelSize  = 10.0
	guideLabelDY    = 4.0
	guideOpacity    = 0.4
	baselineOpacity = 0.5

	labelSize   = 12.0
	labelWeight = 500

	dotRadius      = 4.0
	connectorGap   = 6.0  // between the dot and its connector
	labelGap       = 12.0 // between the connector and the label row
	bracketWidth   = 1.5
	bracketTick    = 5.0
	bracketLabelDX = 12.0
)

// Style is what Draw needs besides the result: fonts, font families for
// vector output and colors. Nil fonts still produce a recording; raster
// backends then draw no text.
type Style struct {
	WordFont    *text.FontSource
	LabelFont   *text.FontSource
	WordFamily  string
	LabelFamily string
	Palette     Palette
}

// Draw records the diagram for res: guide lines and their labels, the
// word, then every annotation in order. For empty text only the
// background is drawn.
func Draw(res *anatomy.Result, st Style) *recording.Recording {
	rec := recording.NewRecorder(int(math.Ceil(res.Width())), int(math.Ceil(res.Height())))

	if bg := st.Palette.Background; bg.A > 0 {
		rec.SetFillColor(bg)
		rec.FillRect(0, 0, res.Width(), res.Height())
	}
	if res.Empty() {
		return rec.FinishRecording()
	}

	drawGuides(rec, res, st)

	rec.BeginGroup("word")
	rec.SetFont(face(st.WordFont, res.FontSize), st.WordFamily, 0)
	rec.SetTextAnchor(recording.AnchorStart)
	rec.SetTextColor(st.Palette.Word)
	rec.DrawText(res.Text, anatomy.StartX, res.Lines.Baseline)
	rec.EndGroup()

	rec.BeginGroup("annotations")
	rec.SetFont(face(st.LabelFont, labelSize), st.LabelFamily, labelWeight)
	rec.SetTextColor(st.Palette.Mark)
	rec.SetFillColor(st.Palette.Mark)
	rec.SetStrokeColor(st.Palette.Mark)
	for _, a := range res.Annotations {
		drawAnnotation(rec, a, res.Lines)
	}
	rec.EndGroup()

	return rec.FinishRecording()
}

func drawGuides(rec *recording.Recorder, res *anatomy.Result, st Style) {
	l := res.Lines
	end := res.GuideEndX()
	gray := st.Palette.Guide

	rec.BeginGroup("guides")
	rec.SetLineWidth(1)
	rec.SetStrokeColor(gray.WithAlpha(guideOpacity))
	rec.SetDash(4, 4)
	for _, y := range []float64{l.CapHeight, l.XHeight, l.DescenderLine} {
		rec.StrokeLine(anatomy.GuideStartX, y, end, y)
	}
	rec.SetDash()
	rec.SetStrokeColor(gray.WithAlpha(baselineOpacity))
	rec.StrokeLine(anatomy.GuideStartX, l.Baseline, end, l.Baseline)

	rec.SetFont(face(st.LabelFont, guideLabelSize), st.LabelFamily, 0)
	rec.SetTextAnchor(recording.AnchorEnd)
	rec.SetTextColor(gray)
	rec.DrawText("Cap Height", anatomy.GuideLabelX, l.CapHeight+guideLabelDY)
	rec.DrawText("x-Height", anatomy.GuideLabelX, l.XHeight+guideLabelDY)
	rec.DrawText("Baseline", anatomy.GuideLabelX, l.Baseline+guideLabelDY)
	rec.EndGroup()
}

func drawAnnotation(rec *recording.Recorder, a anatomy.Annotation, l anatomy.ReferenceLines) {
	rec.BeginGroup(a.Label)
	defer rec.EndGroup()

	switch a.Side {
	case anatomy.SideTop:
		rec.SetLineWidth(1)
		rec.FillCircle(a.X, a.DotY, dotRadius)
		rec.StrokeLine(a.X, a.DotY-connectorGap, a.X, l.TopLabelY+labelGap)
		rec.SetTextAnchor(recording.AnchorMiddle)
		rec.DrawText(a.Label, a.X, l.TopLabelY)
	case anatomy.SideBottom:
		rec.SetLineWidth(1)
		rec.FillCircle(a.X, a.DotY, dotRadius)
		rec.StrokeLine(a.X, a.DotY+connectorGap, a.X, l.BottomLabelY-labelGap)
		rec.SetTextAnchor(recording.AnchorMiddle)
		rec.DrawText(a.Label, a.X, l.BottomLabelY)
	case anatomy.SideBracket:
		rec.SetLineWidth(bracketWidth)
		rec.StrokeLine(a.X, a.Y, a.X, a.Y2)
		rec.StrokeLine(a.X-bracketTick, a.Y, a.X+bracketTick, a.Y)
		rec.StrokeLine(a.X-bracketTick, a.Y2, a.X+bracketTick, a.Y2)
		rec.SetTextAnchor(recording.AnchorStart)
		rec.DrawText(a.Label, a.X+bracketLabelDX, (a.Y+a.Y2)/2+guideLabelDY)
	}
}

func face(src *text.FontSource, size float64) text.Face {
	if src == nil {
		return nil
	}
	return src.Face(size)
}
