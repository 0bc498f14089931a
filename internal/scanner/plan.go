package scanner

import (
	"github.com/gridscout/scanner/internal/pattern"
	"github.com/gridscout/scanner/internal/sanitize"
	"github.com/gridscout/scanner/pkg/core"
)

// Plan is what a scan would touch and cost, computed without disclosing anything.
type Plan struct {
	Shape         pattern.Shape
	Candidates    []core.Coordinate
	Remaining     []core.Coordinate
	UsesLocalView bool
	EstimatedCost int
	Budget        int
}

// Affordable reports whether the agent's budget covers the estimated cost.
func (p *Plan) Affordable() bool {
	return p.EstimatedCost <= p.Budget
}

// Plan validates the shape and reports the candidate and remaining cells and
// the estimated cost of scanning them. The local view is free; every other
// shape costs CostPerCell per remaining cell. The map service only gets read.
func (s *Scanner) Plan(bound int, agent core.Agent, shape pattern.Shape) (*Plan, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	pos := agent.Position()
	candidates, err := pattern.Generate(shape, pos, bound)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, emptyCandidateSet(shape, pos, bound)
	}

	p := &Plan{
		Shape:         shape,
		Candidates:    candidates,
		Remaining:     sanitize.Sanitize(candidates, s.deps.Maps.KnownMap()),
		UsesLocalView: shape.UsesLocalView(),
		Budget:        agent.ResourceBudget(),
	}
	if !p.UsesLocalView {
		p.EstimatedCost = len(p.Remaining) * s.deps.CostPerCell
	}
	return p, nil
}
