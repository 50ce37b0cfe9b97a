// Package render draws heightmaps and search progress for the terminal.
package render

import (
	"strings"

	"github.com/gookit/color"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/internal/heightmap"
)

var (
	// StyleTerrain is used for cells with nothing to highlight.
	StyleTerrain = color.Style{color.FgGray}
	// StyleStart marks the start square.
	StyleStart = color.Style{color.FgGreen, color.OpBold}
	// StyleEnd marks the end square.
	StyleEnd = color.Style{color.FgRed, color.OpBold}
	// StylePath marks cells on the drawn path.
	StylePath = color.Style{color.FgYellow, color.OpBold}
	// StyleVisited marks cells the search has discovered.
	StyleVisited = color.Style{color.FgCyan}
	// StyleCurrent marks the cell the search dequeued last.
	StyleCurrent = color.Style{color.FgMagenta, color.OpBold}
)

// Path draws the heightmap with the cells of path highlighted.
func Path(hm *heightmap.Heightmap, path []gridsearch.Cell) string {
	onPath := make(map[gridsearch.Cell]bool, len(path))
	for _, cell := range path {
		onPath[cell] = true
	}
	return draw(hm, func(cell gridsearch.Cell) color.Style {
		if onPath[cell] {
			return StylePath
		}
		return StyleTerrain
	})
}

// Visited draws the heightmap with discovered cells and the current cell highlighted.
func Visited(hm *heightmap.Heightmap, visited []gridsearch.Cell, current gridsearch.Cell) string {
	seen := make(map[gridsearch.Cell]bool, len(visited))
	for _, cell := range visited {
		seen[cell] = true
	}
	return draw(hm, func(cell gridsearch.Cell) color.Style {
		switch {
		case cell == current:
			return StyleCurrent
		case seen[cell]:
			return StyleVisited
		}
		return StyleTerrain
	})
}

// draw renders row by row; start and end always keep their own style.
func draw(hm *heightmap.Heightmap, styleOf func(gridsearch.Cell) color.Style) string {
	var b strings.Builder
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			cell := gridsearch.Cell{X: x, Y: y}
			char := string(hm.Char(cell))
			switch cell {
			case hm.Start:
				b.WriteString(StyleStart.Sprint(char))
			case hm.End:
				b.WriteString(StyleEnd.Sprint(char))
			default:
				b.WriteString(styleOf(cell).Sprint(char))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
