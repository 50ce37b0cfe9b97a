package gridsearch

// StepRule decides whether moving from a cell at elevation from onto a
// neighbor at elevation to is allowed.
type StepRule func(from int, to int) bool

// Goal reports whether a dequeued cell ends the search.
type Goal func(cell Cell) bool

// SourceFilter selects candidate start cells for NearestSource.
type SourceFilter func(cell Cell, elevation int) bool

// AnyStep allows every step between existing cells.
func AnyStep(from int, to int) bool { return true }

// MaxClimb allows stepping down any distance and up at most climb.
func MaxClimb(climb int) StepRule {
	return func(from int, to int) bool { return to <= from+climb }
}

// Symmetric allows steps whose elevation difference is at most delta either way.
func Symmetric(delta int) StepRule {
	return func(from int, to int) bool {
		difference := to - from
		if difference < 0 {
			difference = -difference
		}
		return difference <= delta
	}
}

// Inverse returns the rule for walking the same edges backwards.
func (rule StepRule) Inverse() StepRule {
	return func(from int, to int) bool { return rule(to, from) }
}

// At matches exactly one cell.
func At(target Cell) Goal {
	return func(cell Cell) bool { return cell == target }
}

// AnyOf matches any of the given cells.
func AnyOf(targets ...Cell) Goal {
	set := make(map[Cell]struct{}, len(targets))
	for _, target := range targets {
		set[target] = struct{}{}
	}
	return func(cell Cell) bool {
		_, hit := set[cell]
		return hit
	}
}

// ElevationEquals selects the cells at one elevation.
func ElevationEquals(elevation int) SourceFilter {
	return func(_ Cell, value int) bool { return value == elevation }
}

// goalFromFilter adapts a SourceFilter into a Goal over grid.
func goalFromFilter(grid *Grid, filter SourceFilter) Goal {
	return func(cell Cell) bool {
		elevation, _ := grid.Elevation(cell)
		return filter(cell, elevation)
	}
}
