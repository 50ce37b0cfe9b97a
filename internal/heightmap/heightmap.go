// Package heightmap parses hill-climbing puzzle input into a search grid and
// answers the two questions asked of it: the climb from the start marker and
// the nearest lowest square.
package heightmap

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/gridsearch"
)

const (
	// LowestElevation is the elevation of 'a' and of the start marker.
	LowestElevation = 1
	// HighestElevation is the elevation of 'z' and of the end marker.
	HighestElevation = 26
)

var (
	// ErrNoStart is returned when the input has no start marker.
	ErrNoStart = errors.New("heightmap: no start marker")
	// ErrNoEnd is returned when the input has no end marker.
	ErrNoEnd = errors.New("heightmap: no end marker")
	// ErrDuplicateMarker is returned when the start or end marker appears twice.
	ErrDuplicateMarker = errors.New("heightmap: marker appears more than once")
	// ErrInvalidChar is returned for any character other than a-z and the markers.
	ErrInvalidChar = errors.New("heightmap: invalid character")
)

// Markers names the characters that stand for the start and end squares.
type Markers struct {
	Start rune
	End   rune
}

// DefaultMarkers are the markers used by the puzzle input.
var DefaultMarkers = Markers{Start: 'S', End: 'E'}

// Heightmap is a parsed puzzle input.
type Heightmap struct {
	Grid    *gridsearch.Grid
	Start   gridsearch.Cell
	End     gridsearch.Cell
	Width   int
	Height  int
	Markers Markers
}

// Parse reads one row per line; x grows to the right and y downwards.
// Blank lines are skipped.
func Parse(r io.Reader, markers Markers) (*Heightmap, error) {
	elevations := make(map[gridsearch.Cell]int)
	var start, end *gridsearch.Cell
	width, y := 0, 0

	scanner := bufio.NewScanner(r)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		x := 0
		for _, char := range line {
			cell := gridsearch.Cell{X: x, Y: y}
			switch {
			case char == markers.Start:
				if start != nil {
					return nil, fmt.Errorf("%w: %q at line %d column %d", ErrDuplicateMarker, char, lineNumber, x+1)
				}
				start = &cell
				elevations[cell] = LowestElevation
			case char == markers.End:
				if end != nil {
					return nil, fmt.Errorf("%w: %q at line %d column %d", ErrDuplicateMarker, char, lineNumber, x+1)
				}
				end = &cell
				elevations[cell] = HighestElevation
			case char >= 'a' && char <= 'z':
				elevations[cell] = int(char-'a') + LowestElevation
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrInvalidChar, char, lineNumber, x+1)
			}
			x++
		}
		width = max(width, x)
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}

	if start == nil {
		return nil, ErrNoStart
	}
	if end == nil {
		return nil, ErrNoEnd
	}

	return &Heightmap{
		Grid:    gridsearch.NewGrid(elevations),
		Start:   *start,
		End:     *end,
		Width:   width,
		Height:  y,
		Markers: markers,
	}, nil
}

// Char returns the input character of cell, or a space for cells outside the grid.
func (hm *Heightmap) Char(cell gridsearch.Cell) rune {
	switch cell {
	case hm.Start:
		return hm.Markers.Start
	case hm.End:
		return hm.Markers.End
	}
	elevation, exists := hm.Grid.Elevation(cell)
	if !exists {
		return ' '
	}
	return rune('a' + elevation - LowestElevation)
}

// Lowest selects every square at the lowest elevation, the start included.
func (hm *Heightmap) Lowest() gridsearch.SourceFilter {
	return gridsearch.ElevationEquals(LowestElevation)
}

// Climb finds the fewest steps from the start marker to the end marker.
func (hm *Heightmap) Climb(maxClimb int, options ...gridsearch.Option) (gridsearch.Result, error) {
	return gridsearch.ShortestPath(hm.Grid, hm.Start, gridsearch.At(hm.End), gridsearch.MaxClimb(maxClimb), options...)
}

// FewestFromLowest finds the fewest steps from any lowest square to the end marker.
func (hm *Heightmap) FewestFromLowest(ctx context.Context, maxClimb int, options ...gridsearch.Option) (gridsearch.Result, error) {
	return gridsearch.NearestSource(ctx, hm.Grid, hm.Lowest(), hm.End, gridsearch.MaxClimb(maxClimb), options...)
}
