package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gridscout/scanner/internal/dispatcher"
	"github.com/gridscout/scanner/internal/geo"
	"github.com/gridscout/scanner/internal/pattern"
	"github.com/gridscout/scanner/internal/toolerr"
	"github.com/gridscout/scanner/pkg/core"
)

// directions maps step names accepted by move to (dc, dr).
var directions = map[string][2]int{
	"up":          {0, -1},
	"down":        {0, 1},
	"left":        {-1, 0},
	"right":       {1, 0},
	"upper-left":  {-1, -1},
	"upper-right": {1, -1},
	"lower-left":  {-1, 1},
	"lower-right": {1, 1},
}

// symbols renders known tiles in the map command.
var symbols = map[core.ContentKind]byte{
	core.ContentNone:       '.',
	core.ContentRock:       'R',
	core.ContentTree:       'T',
	core.ContentGarbage:    'g',
	core.ContentFire:       'F',
	core.ContentCoin:       'C',
	core.ContentBin:        'b',
	core.ContentCrate:      'c',
	core.ContentBank:       'B',
	core.ContentWater:      'W',
	core.ContentMarket:     'M',
	core.ContentFish:       'f',
	core.ContentBuilding:   'H',
	core.ContentBush:       'u',
	core.ContentJollyBlock: 'J',
	core.ContentScarecrow:  'S',
}

// RegisterHandlers registers all session commands with the dispatcher.
func (s *Session) RegisterHandlers(d *dispatcher.Dispatcher) {
	// Commands that touch the world - logged
	d.Register("scan", s.handleScan, dispatcher.Logged(), dispatcher.Usage("scan <shape:extent> <kind>   find the richest cell of a kind"))
	d.Register("plan", s.handlePlan, dispatcher.Logged(), dispatcher.Usage("plan <shape:extent>          show cells and cost without scanning"))
	d.Register("move", s.handleMove, dispatcher.Logged(), dispatcher.Usage("move <direction>|<dc> <dr>   step to an adjacent tile"))

	// Read-only views
	d.Register("status", s.handleStatus, dispatcher.Usage("status                       position, energy and discoveries"))
	d.Register("map", s.handleMap, dispatcher.Usage("map                          print the known map"))
	d.Register("tile", s.handleTile, dispatcher.Usage("tile <col,row>               show what is known about one tile"))
	d.Register("history", s.handleHistory, dispatcher.Usage("history [n]                  list the last n scans"))
	d.Register("help", s.handleHelp, dispatcher.Usage("help                         list commands"))
}

func (s *Session) handleScan(e dispatcher.Event) (any, error) {
	if len(e.Args) != 2 {
		return nil, fmt.Errorf("usage: %s", s.dispatcher.UsageOf("scan"))
	}
	shape, err := pattern.Parse(e.Args[0])
	if err != nil {
		return nil, err
	}
	kind, err := core.ParseContentKind(e.Args[1])
	if err != nil {
		return nil, err
	}

	w := s.deps.World
	match, err := s.deps.Scanner.Scan(w.Size(), w.Robot(), shape, core.Content{Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", toolerr.KindOf(err), err)
	}
	if match == nil {
		return fmt.Sprintf("no %s within %s", kind, shape), nil
	}
	return fmt.Sprintf("found %s x%d at %s", kind, match.Quantity, match.Coordinate), nil
}

func (s *Session) handlePlan(e dispatcher.Event) (any, error) {
	if len(e.Args) != 1 {
		return nil, fmt.Errorf("usage: %s", s.dispatcher.UsageOf("plan"))
	}
	shape, err := pattern.Parse(e.Args[0])
	if err != nil {
		return nil, err
	}

	w := s.deps.World
	p, err := s.deps.Scanner.Plan(w.Size(), w.Robot(), shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", toolerr.KindOf(err), err)
	}

	verdict := "affordable"
	if !p.Affordable() {
		verdict = "not affordable"
	}
	source := "disclosure"
	if p.UsesLocalView {
		source = "local view"
	}
	upperLeft, lowerRight, _ := geo.Bounds(p.Candidates)
	return fmt.Sprintf("%s: %d cells in %s-%s, %d unknown, via %s, cost %d of %d energy (%s)",
		shape, len(p.Candidates), upperLeft, lowerRight, len(p.Remaining), source, p.EstimatedCost, p.Budget, verdict), nil
}

func (s *Session) handleMove(e dispatcher.Event) (any, error) {
	var dc, dr int
	switch len(e.Args) {
	case 1:
		step, ok := directions[strings.ToLower(e.Args[0])]
		if !ok {
			return nil, fmt.Errorf("unknown direction: %q", e.Args[0])
		}
		dc, dr = step[0], step[1]
	case 2:
		var err error
		if dc, err = strconv.Atoi(e.Args[0]); err != nil {
			return nil, fmt.Errorf("invalid dc: %w", err)
		}
		if dr, err = strconv.Atoi(e.Args[1]); err != nil {
			return nil, fmt.Errorf("invalid dr: %w", err)
		}
	default:
		return nil, fmt.Errorf("usage: %s", s.dispatcher.UsageOf("move"))
	}

	if err := s.deps.World.Move(dc, dr); err != nil {
		return nil, err
	}
	robot := s.deps.World.Robot()
	return fmt.Sprintf("moved to %s, energy %d", robot.Position(), robot.ResourceBudget()), nil
}

func (s *Session) handleStatus(dispatcher.Event) (any, error) {
	w := s.deps.World
	robot := w.Robot()
	return fmt.Sprintf("position %s, energy %d, discovered %d, world %dx%d",
		robot.Position(), robot.ResourceBudget(), w.Discovered(), w.Size(), w.Size()), nil
}

func (s *Session) handleMap(dispatcher.Event) (any, error) {
	w := s.deps.World
	pos := w.Robot().Position()
	snap := w.KnownMap()

	var b strings.Builder
	for r, row := range snap {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, content := range row {
			switch {
			case pos == core.NewCoordinate(c, r):
				b.WriteByte('@')
			case content == nil:
				b.WriteByte('?')
			default:
				sym, ok := symbols[content.Kind]
				if !ok {
					sym = '*'
				}
				b.WriteByte(sym)
			}
		}
	}
	return b.String(), nil
}

func (s *Session) handleTile(e dispatcher.Event) (any, error) {
	if len(e.Args) != 1 {
		return nil, fmt.Errorf("usage: %s", s.dispatcher.UsageOf("tile"))
	}
	c, err := geo.CoordinateFromString(e.Args[0])
	if err != nil {
		return nil, fmt.Errorf("%q: %w", e.Args[0], err)
	}

	w := s.deps.World
	if !c.InBounds(w.Size()) {
		return nil, fmt.Errorf("%s is outside the world", c)
	}
	content, ok := w.KnownMap().At(c)
	if !ok {
		return fmt.Sprintf("%s: unknown", c), nil
	}
	return fmt.Sprintf("%s: %s x%d", c, content.Kind, content.Quantity), nil
}

func (s *Session) handleHistory(e dispatcher.Event) (any, error) {
	if s.deps.History == nil {
		return nil, fmt.Errorf("scan history is not enabled")
	}
	limit := 10
	if len(e.Args) > 0 {
		n, err := strconv.Atoi(e.Args[0])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid count: %q", e.Args[0])
		}
		limit = n
	}

	scans, err := s.deps.History.Scans()
	if err != nil {
		return nil, err
	}
	if len(scans) == 0 {
		return "no scans yet", nil
	}
	if len(scans) > limit {
		scans = scans[len(scans)-limit:]
	}

	lines := make([]string, 0, len(scans))
	for _, r := range scans {
		var outcome string
		switch {
		case r.ErrorKind != "":
			outcome = r.ErrorKind
		case r.Result != nil:
			outcome = fmt.Sprintf("x%d at %s", r.Result.Quantity, r.Result.Coordinate)
		default:
			outcome = "none"
		}
		lines = append(lines, fmt.Sprintf("#%d %s %s from %s: %s (energy %d)",
			r.ID, r.Shape, r.Want, r.Agent, outcome, r.EnergySpent))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Session) handleHelp(dispatcher.Event) (any, error) {
	cmds := s.dispatcher.Commands()
	lines := make([]string, 0, len(cmds)+1)
	for _, cmd := range cmds {
		lines = append(lines, "  "+s.dispatcher.UsageOf(cmd))
	}
	lines = append(lines, "  quit                         end the session")
	return strings.Join(lines, "\n"), nil
}
