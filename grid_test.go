package gridsearch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid with x as the column and y as the row index.
func gridFromRows(rows [][]int) *Grid {
	elevations := make(map[Cell]int)
	for y, row := range rows {
		for x, elevation := range row {
			elevations[Cell{X: x, Y: y}] = elevation
		}
	}
	return NewGrid(elevations)
}

func TestCellNeighborsOrder(t *testing.T) {
	got := Cell{X: 2, Y: 5}.Neighbors()
	want := [4]Cell{{3, 5}, {1, 5}, {2, 6}, {2, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Neighbors() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGridCopiesInput(t *testing.T) {
	elevations := map[Cell]int{{0, 0}: 1, {1, 0}: 2}
	grid := NewGrid(elevations)
	elevations[Cell{0, 0}] = 99
	delete(elevations, Cell{1, 0})

	elevation, ok := grid.Elevation(Cell{0, 0})
	require.True(t, ok)
	assert.Equal(t, 1, elevation)
	assert.True(t, grid.Contains(Cell{1, 0}))
	assert.Equal(t, 2, grid.Len())
}

func TestGridElevationMissingCell(t *testing.T) {
	grid := gridFromRows([][]int{{1}})
	_, ok := grid.Elevation(Cell{X: -1, Y: 0})
	assert.False(t, ok)
	assert.False(t, grid.Contains(Cell{X: 1, Y: 0}))
}

func TestGridCellsRowMajor(t *testing.T) {
	grid := gridFromRows([][]int{
		{1, 2, 1},
		{1, 3, 3},
	})

	all := grid.Cells(nil)
	want := []Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Errorf("Cells(nil) mismatch (-want +got):\n%s", diff)
	}

	lowest := grid.Cells(ElevationEquals(1))
	want = []Cell{{0, 0}, {2, 0}, {0, 1}}
	if diff := cmp.Diff(want, lowest); diff != "" {
		t.Errorf("Cells(ElevationEquals(1)) mismatch (-want +got):\n%s", diff)
	}
}

func TestStepRules(t *testing.T) {
	climb := MaxClimb(1)
	assert.True(t, climb(3, 4))
	assert.True(t, climb(3, 1), "descending any distance is allowed")
	assert.False(t, climb(3, 5))

	inverse := climb.Inverse()
	assert.True(t, inverse(4, 3))
	assert.True(t, inverse(3, 5), "backwards over a descent is a climb of any height")
	assert.False(t, inverse(5, 3))

	symmetric := Symmetric(2)
	assert.True(t, symmetric(1, 3))
	assert.True(t, symmetric(3, 1))
	assert.False(t, symmetric(0, 3))

	assert.True(t, AnyStep(0, 100))
}

func TestGoals(t *testing.T) {
	assert.True(t, At(Cell{1, 2})(Cell{1, 2}))
	assert.False(t, At(Cell{1, 2})(Cell{2, 1}))

	goal := AnyOf(Cell{0, 0}, Cell{3, 3})
	assert.True(t, goal(Cell{3, 3}))
	assert.False(t, goal(Cell{1, 1}))
	assert.False(t, AnyOf()(Cell{0, 0}))
}
