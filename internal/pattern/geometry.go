package pattern

import (
	"slices"

	"github.com/gridscout/scanner/pkg/core"
)

// Unit steps. Row 0 is the top of the world, so Up decreases the row.
var (
	stepUp         = core.Coordinate{Col: 0, Row: -1}
	stepDown       = core.Coordinate{Col: 0, Row: 1}
	stepLeft       = core.Coordinate{Col: -1, Row: 0}
	stepRight      = core.Coordinate{Col: 1, Row: 0}
	stepUpperLeft  = core.Coordinate{Col: -1, Row: -1}
	stepUpperRight = core.Coordinate{Col: 1, Row: -1}
	stepLowerLeft  = core.Coordinate{Col: -1, Row: 1}
	stepLowerRight = core.Coordinate{Col: 1, Row: 1}
)

var (
	straightSteps = []core.Coordinate{stepUp, stepRight, stepDown, stepLeft}
	diagonalSteps = []core.Coordinate{stepUpperLeft, stepUpperRight, stepLowerLeft, stepLowerRight}
)

// areaOffsets covers the n x n square centered on the agent, agent included.
func areaOffsets(n int) []core.Coordinate {
	half := n / 2
	out := make([]core.Coordinate, 0, n*n)
	for dc := -half; dc <= half; dc++ {
		for dr := -half; dr <= half; dr++ {
			out = append(out, core.Coordinate{Col: dc, Row: dr})
		}
	}
	return out
}

// rayOffsets walks n cells along step. The agent's own cell is excluded.
func rayOffsets(step core.Coordinate, n int) []core.Coordinate {
	out := make([]core.Coordinate, 0, n)
	cur := core.Coordinate{}
	for i := 0; i < n; i++ {
		cur = cur.Add(step)
		out = append(out, cur)
	}
	return out
}

// starOffsets joins one ray of length n per step, plus the agent's cell.
func starOffsets(steps []core.Coordinate, n int) []core.Coordinate {
	out := make([]core.Coordinate, 0, len(steps)*n+1)
	out = append(out, core.Coordinate{})
	for _, step := range steps {
		out = append(out, rayOffsets(step, n)...)
	}
	return out
}

// Offsets returns the cells the shape covers relative to the agent, before
// clipping. The shape is assumed valid.
func Offsets(s Shape) []core.Coordinate {
	switch s.Kind {
	case Area:
		return areaOffsets(s.Extent)
	case Up:
		return rayOffsets(stepUp, s.Extent)
	case Down:
		return rayOffsets(stepDown, s.Extent)
	case Left:
		return rayOffsets(stepLeft, s.Extent)
	case Right:
		return rayOffsets(stepRight, s.Extent)
	case DiagonalUpperLeft:
		return rayOffsets(stepUpperLeft, s.Extent)
	case DiagonalUpperRight:
		return rayOffsets(stepUpperRight, s.Extent)
	case DiagonalLowerLeft:
		return rayOffsets(stepLowerLeft, s.Extent)
	case DiagonalLowerRight:
		return rayOffsets(stepLowerRight, s.Extent)
	case StraightStar:
		return starOffsets(straightSteps, s.Extent)
	case DiagonalStar:
		return starOffsets(diagonalSteps, s.Extent)
	default:
		return nil
	}
}

// clamp shortens the shape so no arm or half-width reaches further than the
// farthest in-world cell could be from agent. The clipped result is unchanged.
func clamp(s Shape, agent core.Coordinate, bound int) Shape {
	reach := max(bound, 0) + max(abs(agent.Col), abs(agent.Row))
	if s.Kind == Area {
		half := min(s.Extent/2, reach)
		return New(Area, 2*half+1)
	}
	return New(s.Kind, min(s.Extent, reach))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Generate validates the shape and returns the world cells it covers around
// agent. Cells outside [0, bound) on either axis are dropped. The result is
// deduplicated and sorted by column, then row; it may be empty.
func Generate(s Shape, agent core.Coordinate, bound int) ([]core.Coordinate, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	offsets := Offsets(clamp(s, agent, bound))
	seen := make(map[core.Coordinate]struct{}, len(offsets))
	out := make([]core.Coordinate, 0, len(offsets))
	for _, off := range offsets {
		c := agent.Add(off)
		if !c.InBounds(bound) {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	slices.SortFunc(out, core.CompareCoordinates)
	return out, nil
}
