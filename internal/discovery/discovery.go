// Package discovery fetches cell content from the map service for a scan.
package discovery

import (
	"github.com/gridscout/scanner/internal/pattern"
	"github.com/gridscout/scanner/internal/toolerr"
	"github.com/gridscout/scanner/pkg/core"
)

// Orchestrator chooses between the free local view and a paid disclosure.
// It never retries and never touches the known map itself.
type Orchestrator struct {
	maps core.MapService
}

// New creates an Orchestrator over the given map service.
func New(maps core.MapService) *Orchestrator {
	return &Orchestrator{maps: maps}
}

// Discover returns the content of the cells the scan needs. Area(3) is served
// from the agent's local view, translated to world coordinates. Every other
// shape discloses exactly the remaining cells; when none remain the service
// is not called at all.
func (o *Orchestrator) Discover(agent core.Agent, shape pattern.Shape, remaining []core.Coordinate) (core.Disclosure, error) {
	if shape.UsesLocalView() {
		return fromView(agent.Position(), o.maps.LocalView(agent)), nil
	}
	if len(remaining) == 0 {
		return core.Disclosure{}, nil
	}

	disclosed, err := o.maps.Disclose(agent, remaining)
	if err != nil {
		return nil, toolerr.Classify(err)
	}
	if disclosed == nil {
		disclosed = core.Disclosure{}
	}
	return disclosed, nil
}

// fromView maps a window centered on center to world coordinates. Unknown
// and off-world cells are skipped.
func fromView(center core.Coordinate, view core.View) core.Disclosure {
	out := make(core.Disclosure)
	half := core.Coordinate{Col: len(view) / 2, Row: len(view) / 2}
	for r, row := range view {
		for c, content := range row {
			if content == nil {
				continue
			}
			world := center.Add(core.Coordinate{Col: c, Row: r}).Sub(half)
			if world.Col < 0 || world.Row < 0 {
				continue
			}
			cell := *content
			out[world] = &cell
		}
	}
	return out
}
