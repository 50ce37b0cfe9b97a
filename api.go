package gridsearch

import (
	"errors"
	"runtime"

	"go.uber.org/zap"
)

var (
	// ErrInvalidStart is returned when the start cell is not part of the grid.
	ErrInvalidStart = errors.New("gridsearch: start cell not in grid")
	// ErrInvalidGoal is returned when the multi-source goal cell is not part of the grid.
	ErrInvalidGoal = errors.New("gridsearch: goal cell not in grid")
	// ErrNilPredicate is returned when a goal, source or step predicate is nil.
	ErrNilPredicate = errors.New("gridsearch: nil predicate")
)

// Result contains the outcome of a search.
// Found is false when no reachable cell satisfied the goal; that is not an error.
type Result struct {
	Start         Cell
	Goal          Cell
	Path          []Cell
	Steps         int
	ExpandedCells int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	ReverseSearch   bool
	Logger          *zap.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches NearestSource runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithReverseSearch makes NearestSource run a single search backwards from
// the goal instead of one forward search per source.
func WithReverseSearch() Option {
	return func(options *Options) { options.ReverseSearch = true }
}

// WithLogger sets the logger used for debug output. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = runtime.NumCPU()
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = zap.NewNop()
	}
	return searchOptions
}

// ShortestPath runs a breadth-first search from start and returns the fewest
// steps to any cell accepted by isGoal. A step onto a neighbor is legal when
// the neighbor is in the grid and canStep(elevation(cell), elevation(neighbor)).
func ShortestPath(
	grid *Grid,
	startCell Cell,
	isGoal Goal,
	canStep StepRule,
	options ...Option,
) (Result, error) {
	searchOptions := applyOptions(options)

	search, err := newTraversal(grid, startCell, isGoal, canStep)
	if err != nil {
		return Result{}, err
	}
	for {
		if _, advanced := search.advance(); !advanced {
			break
		}
	}

	result := search.result()
	searchOptions.Logger.Debug("search finished",
		zap.Stringer("start", startCell),
		zap.Bool("found", result.Found),
		zap.Int("steps", result.Steps),
		zap.Int("expanded", result.ExpandedCells),
	)
	return result, nil
}
