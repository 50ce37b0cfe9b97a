package gridsearch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepperCorridor(t *testing.T) {
	grid := flatGrid(4, 1)
	stepper, err := NewStepper(grid, Cell{0, 0}, At(Cell{3, 0}), AnyStep)
	require.NoError(t, err)

	want := []StepSnapshot{
		{Current: Cell{0, 0}, Distance: 0, FrontierSize: 1, VisitedCount: 2, StepIndex: 1},
		{Current: Cell{1, 0}, Distance: 1, FrontierSize: 1, VisitedCount: 3, StepIndex: 2},
		{Current: Cell{2, 0}, Distance: 2, FrontierSize: 1, VisitedCount: 4, StepIndex: 3},
		{
			Current: Cell{3, 0}, Distance: 3, FrontierSize: 0, VisitedCount: 4, StepIndex: 4,
			Done: true, Found: true, Path: []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
	}
	for i, expected := range want {
		got := stepper.Step()
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Fatalf("step %d mismatch (-want +got):\n%s", i+1, diff)
		}
	}

	// Stepping past the end keeps returning the final snapshot.
	again := stepper.Step()
	if diff := cmp.Diff(want[len(want)-1], again); diff != "" {
		t.Errorf("step after done mismatch (-want +got):\n%s", diff)
	}

	result := stepper.Result()
	assert.True(t, result.Found)
	assert.Equal(t, 3, result.Steps)
	assert.Equal(t, 4, result.ExpandedCells)
}

func TestStepperExhaustsFrontier(t *testing.T) {
	grid := flatGrid(3, 1)
	stepper, err := NewStepper(grid, Cell{0, 0}, func(Cell) bool { return false }, AnyStep)
	require.NoError(t, err)

	var snapshot StepSnapshot
	for i := 0; i < 10 && !snapshot.Done; i++ {
		snapshot = stepper.Step()
	}
	require.True(t, snapshot.Done)
	assert.False(t, snapshot.Found)
	assert.Equal(t, 3, snapshot.StepIndex)
	assert.Equal(t, Cell{2, 0}, snapshot.Current)
	assert.Nil(t, snapshot.Path)
	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {2, 0}}, stepper.Visited())
	assert.False(t, stepper.Result().Found)
}

func TestStepperAgreesWithShortestPath(t *testing.T) {
	grid := gridFromRows([][]int{
		{1, 2, 3, 4},
		{1, 9, 9, 5},
		{1, 2, 3, 4},
	})
	goal := At(Cell{0, 2})
	rule := MaxClimb(1)

	stepper, err := NewStepper(grid, Cell{3, 0}, goal, rule)
	require.NoError(t, err)
	var snapshot StepSnapshot
	for !snapshot.Done {
		snapshot = stepper.Step()
	}

	result, err := ShortestPath(grid, Cell{3, 0}, goal, rule)
	require.NoError(t, err)
	if diff := cmp.Diff(result, stepper.Result()); diff != "" {
		t.Errorf("Result mismatch (-ShortestPath +Stepper):\n%s", diff)
	}
	assert.Equal(t, result.ExpandedCells, snapshot.StepIndex)
	assert.Equal(t, result.Path, snapshot.Path)
}

func TestNewStepperInvalidStart(t *testing.T) {
	_, err := NewStepper(flatGrid(2, 2), Cell{-1, 0}, At(Cell{0, 0}), AnyStep)
	require.ErrorIs(t, err, ErrInvalidStart)
}
