package geo

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gridscout/scanner/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

// GRID GEOMETRY
// Cells are mapped to points with X = column and Y = row, so a footprint read
// back from storage lines up with the [row][col] layout of the world.

// ErrInvalidCoordinates is returned when the coordinates are invalid
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// CoordinateFromString parses a string in the format "col,row" into a grid coordinate
func CoordinateFromString(s string) (core.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return core.Coordinate{}, ErrInvalidCoordinates
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || col < 0 {
		return core.Coordinate{}, ErrInvalidCoordinates
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || row < 0 {
		return core.Coordinate{}, ErrInvalidCoordinates
	}
	return core.NewCoordinate(col, row), nil
}

// Point converts a grid coordinate to a 2D point
func Point(c core.Coordinate) geom.Point {
	return geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: float64(c.Col), Y: float64(c.Row)},
		Type: geom.CoordinatesType(geom.DimXY),
	})
}
