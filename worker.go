package gridsearch

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// NearestSource returns the fewest steps from any cell selected by isSource
// to goal. By default it runs one forward ShortestPath per source on a bounded
// pool of workers sharing the read-only grid; WithReverseSearch replaces that
// with a single search from goal over the inverted step rule. Both report the
// same Steps. Result.Start is the chosen source and ExpandedCells counts every
// cell dequeued by every search that ran.
func NearestSource(
	contextObject context.Context,
	grid *Grid,
	isSource SourceFilter,
	goalCell Cell,
	canStep StepRule,
	options ...Option,
) (Result, error) {
	searchOptions := applyOptions(options)

	if isSource == nil || canStep == nil {
		return Result{}, ErrNilPredicate
	}
	if grid == nil || !grid.Contains(goalCell) {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidGoal, goalCell)
	}
	if err := contextObject.Err(); err != nil {
		return Result{}, err
	}

	if searchOptions.ReverseSearch {
		return reverseNearest(grid, isSource, goalCell, canStep, searchOptions.Logger)
	}

	// --- Fan out one forward search per source ---
	sources := grid.Cells(isSource)
	results := make([]Result, len(sources))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for index, source := range sources {
		index, source := index, source
		group.Go(func() error {
			if err := groupContext.Err(); err != nil {
				return err
			}
			result, err := ShortestPath(grid, source, At(goalCell), canStep)
			if err != nil {
				return err
			}
			results[index] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	// --- Keep the minimum; ties go to the earliest source in row-major order ---
	best := Result{Goal: goalCell}
	expandedCells := 0
	for _, result := range results {
		expandedCells += result.ExpandedCells
		if result.Found && (!best.Found || result.Steps < best.Steps) {
			best = result
		}
	}
	best.ExpandedCells = expandedCells

	searchOptions.Logger.Debug("nearest source search finished",
		zap.Int("sources", len(sources)),
		zap.Int("workers", searchOptions.NumberOfWorkers),
		zap.Bool("found", best.Found),
		zap.Int("steps", best.Steps),
		zap.Int("expanded", expandedCells),
	)
	return best, nil
}

// reverseNearest searches once from goal towards any source. The path is
// flipped so callers always see it in source-to-goal order.
func reverseNearest(
	grid *Grid,
	isSource SourceFilter,
	goalCell Cell,
	canStep StepRule,
	logger *zap.Logger,
) (Result, error) {
	result, err := ShortestPath(grid, goalCell, goalFromFilter(grid, isSource), canStep.Inverse(), WithLogger(logger))
	if err != nil {
		return Result{}, err
	}
	if !result.Found {
		return Result{Goal: goalCell, ExpandedCells: result.ExpandedCells}, nil
	}

	slices.Reverse(result.Path)
	result.Start, result.Goal = result.Goal, goalCell
	return result, nil
}
