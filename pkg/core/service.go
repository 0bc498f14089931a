// pkg/core/service.go
package core

import "errors"

// Failures reported by a MapService on Disclose.
var (
	// ErrNotEnoughEnergy is returned when the agent cannot pay for the disclosure
	ErrNotEnoughEnergy = errors.New("not enough energy")
	// ErrNoMoreDiscovery is returned when the service's discovery ceiling is reached
	ErrNoMoreDiscovery = errors.New("no more discovery")
)

// Agent exposes the read-only state of the agent running the scan.
type Agent interface {
	Position() Coordinate
	ResourceBudget() int
}

// MapService owns the world, the agent's known map and its resource budget.
// Implementations serialize their own state; callers never mutate it.
type MapService interface {
	// KnownMap returns the current partial knowledge of the world.
	KnownMap() Snapshot
	// LocalView returns the 3x3 window centered on the agent at no cost.
	LocalView(agent Agent) View
	// Disclose reveals the given cells, charging the agent for every cell
	// that was not known yet.
	Disclose(agent Agent, coords []Coordinate) (Disclosure, error)
}
