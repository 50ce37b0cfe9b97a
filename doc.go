// Package gridsearch provides breadth-first shortest path search over sparse
// elevation grids.
//
// A Grid maps Cell coordinates to integer elevations. Searches move between
// the four axis-aligned neighbors of a cell and a caller-supplied StepRule
// decides, from the two elevations, whether a step is legal.
//
// It exposes three entry points:
//
//   - ShortestPath: fewest steps from one start to any cell matching a Goal.
//   - NearestSource: fewest steps from any of many sources to one goal, either
//     with a pool of forward searches or a single reverse search.
//   - Stepper: iterate the search one dequeued cell at a time to drive tracing tools.
//
// Grids are never written after construction, so one Grid can back any number
// of concurrent searches.
package gridsearch
