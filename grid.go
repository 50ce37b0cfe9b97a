package gridsearch

import (
	"fmt"
	"sort"
)

// Cell is a discrete 2D coordinate. Cells are compared and hashed by value.
type Cell struct {
	X int
	Y int
}

// String formats the cell as (x,y).
func (cell Cell) String() string {
	return fmt.Sprintf("(%d,%d)", cell.X, cell.Y)
}

// neighborOffsets fixes the visiting order: +x, -x, +y, -y.
var neighborOffsets = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Neighbors returns the four axis-aligned neighbors of the cell in a fixed order.
// Neighbors outside any grid are still returned; callers check membership.
func (cell Cell) Neighbors() [4]Cell {
	var neighbors [4]Cell
	for i, offset := range neighborOffsets {
		neighbors[i] = Cell{X: cell.X + offset.X, Y: cell.Y + offset.Y}
	}
	return neighbors
}

// Grid is a read-only mapping from Cell to elevation.
// Cells missing from the mapping do not exist and can never be stepped on.
type Grid struct {
	elevations map[Cell]int
}

// NewGrid copies elevations into a new Grid.
func NewGrid(elevations map[Cell]int) *Grid {
	copied := make(map[Cell]int, len(elevations))
	for cell, elevation := range elevations {
		copied[cell] = elevation
	}
	return &Grid{elevations: copied}
}

// Elevation returns the elevation of cell and whether the cell is in the grid.
func (grid *Grid) Elevation(cell Cell) (int, bool) {
	elevation, exists := grid.elevations[cell]
	return elevation, exists
}

// Contains reports whether cell is part of the grid.
func (grid *Grid) Contains(cell Cell) bool {
	_, exists := grid.elevations[cell]
	return exists
}

// Len returns the number of cells in the grid.
func (grid *Grid) Len() int {
	return len(grid.elevations)
}

// Cells returns every cell accepted by filter in row-major order (y, then x).
// A nil filter accepts every cell.
func (grid *Grid) Cells(filter SourceFilter) []Cell {
	cells := make([]Cell, 0, len(grid.elevations))
	for cell, elevation := range grid.elevations {
		if filter == nil || filter(cell, elevation) {
			cells = append(cells, cell)
		}
	}
	sortRowMajor(cells)
	return cells
}

func sortRowMajor(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool { return rowMajorLess(cells[i], cells[j]) })
}

func rowMajorLess(a, b Cell) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
