// Package world is an in-memory map service: a square grid of tiles, one
// robot with an energy budget and the robot's known map.
package world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gridscout/scanner/pkg/core"
)

// Defaults applied by New for zero option values.
const (
	DefaultCostPerCell = 3
	DefaultMoveCost    = 1
	ViewSize           = 3
)

// ErrForeignAgent is returned when an agent that does not belong to the world asks for a disclosure.
var ErrForeignAgent = errors.New("agent does not belong to this world")

// Options configures a new World.
type Options struct {
	Size           int
	Energy         int
	CostPerCell    int // energy per newly disclosed cell
	MoveCost       int // energy per step
	DiscoveryLimit int // lifetime ceiling on disclosed cells, 0 is unlimited
	Start          core.Coordinate
}

// World implements core.MapService. All state is guarded by one mutex.
type World struct {
	mu sync.Mutex

	size           int
	tiles          [][]core.Content // [row][col]
	known          [][]bool         // [row][col]
	costPerCell    int
	moveCost       int
	discoveryLimit int
	discovered     int

	robot *Robot
}

// New creates a world of empty tiles with the robot at opts.Start. The start
// cell is known from the beginning.
func New(opts Options) (*World, error) {
	if opts.Size < 1 {
		return nil, fmt.Errorf("world size must be at least 1, got %d", opts.Size)
	}
	if !opts.Start.InBounds(opts.Size) {
		return nil, fmt.Errorf("start %s is outside a world of size %d", opts.Start, opts.Size)
	}
	if opts.Energy < 0 || opts.DiscoveryLimit < 0 {
		return nil, errors.New("energy and discovery limit must not be negative")
	}
	if opts.CostPerCell <= 0 {
		opts.CostPerCell = DefaultCostPerCell
	}
	if opts.MoveCost <= 0 {
		opts.MoveCost = DefaultMoveCost
	}

	w := &World{
		size:           opts.Size,
		tiles:          make([][]core.Content, opts.Size),
		known:          make([][]bool, opts.Size),
		costPerCell:    opts.CostPerCell,
		moveCost:       opts.MoveCost,
		discoveryLimit: opts.DiscoveryLimit,
	}
	for r := range w.tiles {
		w.tiles[r] = make([]core.Content, opts.Size)
		w.known[r] = make([]bool, opts.Size)
		for c := range w.tiles[r] {
			w.tiles[r][c] = core.Content{Kind: core.ContentNone}
		}
	}
	w.robot = &Robot{world: w, pos: opts.Start, energy: opts.Energy}
	w.known[opts.Start.Row][opts.Start.Col] = true
	return w, nil
}

// Size is the side length of the world, i.e. the scan bound.
func (w *World) Size() int {
	return w.size
}

// CostPerCell is the energy charged per newly disclosed cell.
func (w *World) CostPerCell() int {
	return w.costPerCell
}

// Robot returns the world's only agent.
func (w *World) Robot() *Robot {
	return w.robot
}

// SetTile places content on a tile.
func (w *World) SetTile(c core.Coordinate, content core.Content) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !c.InBounds(w.size) {
		return fmt.Errorf("tile %s is outside the world", c)
	}
	w.tiles[c.Row][c.Col] = content
	return nil
}

// Tile returns the true content of a tile, known or not.
func (w *World) Tile(c core.Coordinate) (core.Content, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !c.InBounds(w.size) {
		return core.Content{}, fmt.Errorf("tile %s is outside the world", c)
	}
	return w.tiles[c.Row][c.Col], nil
}

// Reveal marks a tile known at no cost.
func (w *World) Reveal(c core.Coordinate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !c.InBounds(w.size) {
		return fmt.Errorf("tile %s is outside the world", c)
	}
	w.known[c.Row][c.Col] = true
	return nil
}

// Discovered is the number of cells disclosed so far.
func (w *World) Discovered() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.discovered
}

// KnownMap returns a copy of the robot's knowledge; unknown cells are nil.
func (w *World) KnownMap() core.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := make(core.Snapshot, w.size)
	for r := range snap {
		snap[r] = make([]*core.Content, w.size)
		for c := range snap[r] {
			if w.known[r][c] {
				content := w.tiles[r][c]
				snap[r][c] = &content
			}
		}
	}
	return snap
}

// LocalView returns the window centered on the agent and marks it known.
// The view is free. Off-world cells are nil, and a foreign agent sees nothing.
func (w *World) LocalView(agent core.Agent) core.View {
	w.mu.Lock()
	defer w.mu.Unlock()

	view := make(core.View, ViewSize)
	for r := range view {
		view[r] = make([]*core.Content, ViewSize)
	}
	if !w.owns(agent) {
		return view
	}

	half := ViewSize / 2
	center := w.robot.pos
	for r := range view {
		for c := range view[r] {
			cell := core.NewCoordinate(center.Col+c-half, center.Row+r-half)
			if !cell.InBounds(w.size) {
				continue
			}
			w.known[cell.Row][cell.Col] = true
			content := w.tiles[cell.Row][cell.Col]
			view[r][c] = &content
		}
	}
	return view
}

// Disclose reveals coords for the agent. Already known cells are free and do
// not count towards the discovery limit. On failure nothing is charged or revealed.
func (w *World) Disclose(agent core.Agent, coords []core.Coordinate) (core.Disclosure, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.owns(agent) {
		return nil, ErrForeignAgent
	}

	fresh := make(map[core.Coordinate]struct{}, len(coords))
	for _, c := range coords {
		if !c.InBounds(w.size) {
			return nil, fmt.Errorf("cannot disclose %s: outside a world of size %d", c, w.size)
		}
		if !w.known[c.Row][c.Col] {
			fresh[c] = struct{}{}
		}
	}

	if w.discoveryLimit > 0 && w.discovered+len(fresh) > w.discoveryLimit {
		return nil, fmt.Errorf("%w: %d of %d cells already disclosed", core.ErrNoMoreDiscovery, w.discovered, w.discoveryLimit)
	}
	cost := len(fresh) * w.costPerCell
	if cost > w.robot.energy {
		return nil, fmt.Errorf("%w: need %d, have %d", core.ErrNotEnoughEnergy, cost, w.robot.energy)
	}

	w.robot.energy -= cost
	w.discovered += len(fresh)

	out := make(core.Disclosure, len(coords))
	for _, c := range coords {
		w.known[c.Row][c.Col] = true
		content := w.tiles[c.Row][c.Col]
		out[c] = &content
	}
	return out, nil
}

// Move steps the robot to an adjacent tile, diagonals included, and reveals it.
func (w *World) Move(dc, dr int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if (dc == 0 && dr == 0) || dc < -1 || dc > 1 || dr < -1 || dr > 1 {
		return fmt.Errorf("invalid step (%d,%d): must move to an adjacent tile", dc, dr)
	}
	next := w.robot.pos.Add(core.NewCoordinate(dc, dr))
	if !next.InBounds(w.size) {
		return fmt.Errorf("cannot move to %s: outside the world", next)
	}
	if w.moveCost > w.robot.energy {
		return fmt.Errorf("%w: need %d, have %d", core.ErrNotEnoughEnergy, w.moveCost, w.robot.energy)
	}

	w.robot.energy -= w.moveCost
	w.robot.pos = next
	w.known[next.Row][next.Col] = true
	return nil
}

func (w *World) owns(agent core.Agent) bool {
	r, ok := agent.(*Robot)
	return ok && r == w.robot
}
