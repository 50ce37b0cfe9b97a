package gridsearch

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/pdrpinto/gridsearch/internal"
)

// traversal is the breadth-first search state shared by ShortestPath and Stepper.
type traversal struct {
	grid    *Grid
	start   Cell
	isGoal  Goal
	canStep StepRule

	frontier *frontier
	visited  mapset.Set[Cell]
	cameFrom map[Cell]Cell

	expanded int
	goal     Cell
	steps    int
	done     bool
	found    bool
}

func newTraversal(grid *Grid, startCell Cell, isGoal Goal, canStep StepRule) (*traversal, error) {
	if isGoal == nil || canStep == nil {
		return nil, ErrNilPredicate
	}
	if grid == nil || !grid.Contains(startCell) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStart, startCell)
	}

	t := &traversal{
		grid:     grid,
		start:    startCell,
		isGoal:   isGoal,
		canStep:  canStep,
		frontier: newFrontier(),
		visited:  mapset.New[Cell](),
		cameFrom: make(map[Cell]Cell),
	}
	t.frontier.Push(frontierEntry{Cell: startCell, Distance: 0})
	t.visited.Put(startCell)
	return t, nil
}

// advance dequeues one frontier entry and expands it. It reports false once
// the search is over and nothing was dequeued.
func (t *traversal) advance() (frontierEntry, bool) {
	if t.done {
		return frontierEntry{}, false
	}
	entry, ok := t.frontier.Pop()
	if !ok {
		t.done = true
		return frontierEntry{}, false
	}
	t.expanded++

	if t.isGoal(entry.Cell) {
		t.done = true
		t.found = true
		t.goal = entry.Cell
		t.steps = entry.Distance
		return entry, true
	}

	from, _ := t.grid.Elevation(entry.Cell)
	for _, neighbor := range entry.Cell.Neighbors() {
		to, exists := t.grid.Elevation(neighbor)
		if !exists || t.visited.Has(neighbor) || !t.canStep(from, to) {
			continue
		}
		// Marked on discovery so a cell is enqueued at most once.
		t.visited.Put(neighbor)
		t.cameFrom[neighbor] = entry.Cell
		t.frontier.Push(frontierEntry{Cell: neighbor, Distance: entry.Distance + 1})
	}
	return entry, true
}

func (t *traversal) result() Result {
	if !t.found {
		return Result{Start: t.start, ExpandedCells: t.expanded}
	}
	return Result{
		Start:         t.start,
		Goal:          t.goal,
		Path:          internal.ReconstructPath(t.cameFrom, t.goal, t.start, t.steps),
		Steps:         t.steps,
		ExpandedCells: t.expanded,
		Found:         true,
	}
}

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current      Cell
	Distance     int
	FrontierSize int
	VisitedCount int
	Done         bool
	Found        bool
	Path         []Cell
	StepIndex    int
}

// Stepper iterates a breadth-first search one dequeued cell at a time
type Stepper struct {
	search    *traversal
	last      frontierEntry
	stepCount int
}

// NewStepper validates the inputs and seeds the frontier with start.
func NewStepper(grid *Grid, startCell Cell, isGoal Goal, canStep StepRule) (*Stepper, error) {
	search, err := newTraversal(grid, startCell, isGoal, canStep)
	if err != nil {
		return nil, err
	}
	return &Stepper{search: search}, nil
}

// Step advances the search by one dequeue and returns a snapshot.
// Once Done is set, further calls return the same final snapshot.
func (s *Stepper) Step() StepSnapshot {
	entry, advanced := s.search.advance()
	if advanced {
		s.stepCount++
		s.last = entry
	}
	entry = s.last

	snapshot := StepSnapshot{
		Current:      entry.Cell,
		Distance:     entry.Distance,
		FrontierSize: s.search.frontier.Len(),
		VisitedCount: s.search.visited.Size(),
		Done:         s.search.done,
		Found:        s.search.found,
		StepIndex:    s.stepCount,
	}
	if s.search.found {
		snapshot.Path = s.search.result().Path
	}
	return snapshot
}

// Result returns the outcome so far; Found stays false until the goal is dequeued.
func (s *Stepper) Result() Result {
	return s.search.result()
}

// Visited returns a copy of the discovered cells in row-major order.
func (s *Stepper) Visited() []Cell {
	cells := make([]Cell, 0, s.search.visited.Size())
	s.search.visited.Each(func(cell Cell) {
		cells = append(cells, cell)
	})
	sortRowMajor(cells)
	return cells
}
