// pkg/core/coordinate.go
package core

import "fmt"

// Coordinate identifies a grid cell in world space.
// Col grows to the right and Row grows downward; (0,0) is the upper-left cell.
type Coordinate struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

// NewCoordinate creates a coordinate from a column and a row.
func NewCoordinate(col, row int) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// CoordinateFromPair converts a plain (col, row) pair.
func CoordinateFromPair(p [2]int) Coordinate {
	return Coordinate{Col: p[0], Row: p[1]}
}

// Pair returns the coordinate as a plain (col, row) pair.
func (c Coordinate) Pair() [2]int {
	return [2]int{c.Col, c.Row}
}

// Add returns the component-wise sum.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{Col: c.Col + o.Col, Row: c.Row + o.Row}
}

// Sub returns the component-wise difference.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{Col: c.Col - o.Col, Row: c.Row - o.Row}
}

// InBounds reports whether the coordinate lies in [0, bound) on both axes.
func (c Coordinate) InBounds(bound int) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < bound && c.Row < bound
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// CompareCoordinates orders coordinates lexicographically by column, then row.
// It is suitable for slices.SortFunc.
func CompareCoordinates(a, b Coordinate) int {
	switch {
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	default:
		return 0
	}
}
