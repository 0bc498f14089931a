package world

import "github.com/gridscout/scanner/pkg/core"

// Robot is the agent living in a World. Its state is guarded by the world's mutex.
type Robot struct {
	world  *World
	pos    core.Coordinate
	energy int
}

// Position implements core.Agent.
func (r *Robot) Position() core.Coordinate {
	r.world.mu.Lock()
	defer r.world.mu.Unlock()
	return r.pos
}

// ResourceBudget implements core.Agent; it is the robot's remaining energy.
func (r *Robot) ResourceBudget() int {
	r.world.mu.Lock()
	defer r.world.mu.Unlock()
	return r.energy
}
