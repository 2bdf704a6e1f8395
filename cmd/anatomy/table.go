package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/gogpu/anatomy"
)

// annotationTable lays out one row per annotation.
func annotationTable(res *anatomy.Result) [][]string {
	data := [][]string{{"Feature", "Side", "Char", "X", "Y"}}
	runes := []rune(res.Text)
	for _, a := range res.Annotations {
		char := "-"
		if a.Char >= 0 && a.Char < len(runes) {
			char = fmt.Sprintf("%q [%d]", runes[a.Char], a.Char)
		}
		y := a.DotY
		if a.Side == anatomy.SideBracket {
			y = a.Y
		}
		data = append(data, []string{a.Label, a.Side.String(), char, num(a.X), num(y)})
	}
	return data
}

func printResult(res *anatomy.Result) {
	if res.Empty() {
		pterm.Info.Println("nothing to annotate")
		return
	}
	pterm.Printf("%q at %spx, %d annotations, diagram %sx%s\n",
		res.Text, num(res.FontSize), len(res.Annotations), num(res.Width()), num(res.Height()))
	pterm.DefaultTable.WithHasHeader().WithData(annotationTable(res)).Render()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
