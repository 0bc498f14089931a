package geo

import (
	"github.com/gridscout/scanner/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

// Footprint builds a MultiPoint with one point per covered cell.
func Footprint(coords []core.Coordinate) geom.MultiPoint {
	points := make([]geom.Point, len(coords))
	for i, c := range coords {
		points[i] = Point(c)
	}
	return geom.NewMultiPoint(points)
}

// FootprintWKT returns the footprint as WKT, e.g. "MULTIPOINT((1 2),(2 2))".
func FootprintWKT(coords []core.Coordinate) string {
	return Footprint(coords).AsText()
}

// Bounds returns the upper-left and lower-right corners of the footprint's
// envelope. ok is false for an empty input.
func Bounds(coords []core.Coordinate) (minC, maxC core.Coordinate, ok bool) {
	lo, hi, ok := Footprint(coords).Envelope().MinMaxXYs()
	if !ok {
		return core.Coordinate{}, core.Coordinate{}, false
	}
	minC = core.NewCoordinate(int(lo.X), int(lo.Y))
	maxC = core.NewCoordinate(int(hi.X), int(hi.Y))
	return minC, maxC, true
}
