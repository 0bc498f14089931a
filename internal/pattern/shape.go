// Package pattern describes scan shapes and computes the cells they cover.
package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gridscout/scanner/internal/toolerr"
)

// Kind selects the geometry of a scan.
type Kind int

const (
	Area Kind = iota
	Up
	Right
	Left
	Down
	DiagonalUpperLeft
	DiagonalUpperRight
	DiagonalLowerLeft
	DiagonalLowerRight
	StraightStar
	DiagonalStar
)

var kindNames = [...]string{
	Area:               "area",
	Up:                 "up",
	Right:              "right",
	Left:               "left",
	Down:               "down",
	DiagonalUpperLeft:  "diagonal-upper-left",
	DiagonalUpperRight: "diagonal-upper-right",
	DiagonalLowerLeft:  "diagonal-lower-left",
	DiagonalLowerRight: "diagonal-lower-right",
	StraightStar:       "straight-star",
	DiagonalStar:       "diagonal-star",
}

// Kinds lists every shape kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind resolves a kebab-case kind name such as "diagonal-star".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind: %q", s)
}

// Shape is a scan geometry plus its extent. For Area the extent is the side
// of the square; for every other kind it is the length of each arm.
type Shape struct {
	Kind   Kind
	Extent int
}

// New creates a shape. It does not validate the extent.
func New(kind Kind, extent int) Shape {
	return Shape{Kind: kind, Extent: extent}
}

// Parse reads "kind:extent", e.g. "area:5" or "up:2".
func Parse(s string) (Shape, error) {
	name, ext, ok := strings.Cut(s, ":")
	if !ok {
		return Shape{}, fmt.Errorf("shape %q: expected kind:extent", s)
	}
	kind, err := ParseKind(name)
	if err != nil {
		return Shape{}, err
	}
	extent, err := strconv.Atoi(strings.TrimSpace(ext))
	if err != nil {
		return Shape{}, fmt.Errorf("shape %q: invalid extent: %w", s, err)
	}
	return New(kind, extent), nil
}

// Validate checks the extent rule of the shape's kind: Area needs an odd
// extent of at least 3, every other kind an extent of at least 1.
func (s Shape) Validate() error {
	if s.Kind < 0 || int(s.Kind) >= len(kindNames) {
		return fmt.Errorf("%w: unknown kind %d", toolerr.ErrInvalidShapeParameter, int(s.Kind))
	}
	if s.Kind == Area {
		if s.Extent < 3 || s.Extent%2 == 0 {
			return fmt.Errorf("%w: area extent must be odd and at least 3, got %d",
				toolerr.ErrInvalidShapeParameter, s.Extent)
		}
		return nil
	}
	if s.Extent < 1 {
		return fmt.Errorf("%w: %s extent must be at least 1, got %d",
			toolerr.ErrInvalidShapeParameter, s.Kind, s.Extent)
	}
	return nil
}

// UsesLocalView reports whether the shape is exactly the agent's 3x3
// neighbourhood, which the map service serves for free.
func (s Shape) UsesLocalView() bool {
	return s.Kind == Area && s.Extent == 3
}

func (s Shape) String() string {
	return s.Kind.String() + ":" + strconv.Itoa(s.Extent)
}
