// Package scanner runs one scan end to end: geometry, sanitization,
// discovery and selection, then records the outcome.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gridscout/scanner/internal/discovery"
	"github.com/gridscout/scanner/internal/geo"
	"github.com/gridscout/scanner/internal/pattern"
	"github.com/gridscout/scanner/internal/sanitize"
	"github.com/gridscout/scanner/internal/selector"
	"github.com/gridscout/scanner/internal/toolerr"
	"github.com/gridscout/scanner/pkg/core"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultCostPerCell is used for planning when no cost is configured.
const DefaultCostPerCell = 3

// ErrNoMapService is returned by New without a map service.
var ErrNoMapService = errors.New("scanner needs a map service")

// Logger interface for pluggable logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Recorder receives every completed scan.
type Recorder interface {
	RecordScan(r *core.ScanRecord) error
}

// Dependencies holds everything a Scanner talks to. Only Maps is required.
type Dependencies struct {
	Maps        core.MapService
	Recorder    Recorder // scan history
	Telemetry   Recorder // time-series sink
	Logger      Logger
	CostPerCell int
	Now         func() time.Time
}

// Scanner is the scan entry point. It keeps no state between calls besides
// its metrics, so concurrent scans are only as safe as the map service.
type Scanner struct {
	deps         Dependencies
	orchestrator *discovery.Orchestrator

	// OTEL metrics
	scans     metric.Int64Counter
	disclosed metric.Int64Counter
	failures  metric.Int64Counter
}

// New creates a Scanner.
// Uses the global OTel meter for metrics (no-op if not configured).
func New(deps Dependencies) (*Scanner, error) {
	if deps.Maps == nil {
		return nil, ErrNoMapService
	}
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	if deps.CostPerCell <= 0 {
		deps.CostPerCell = DefaultCostPerCell
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	s := &Scanner{
		deps:         deps,
		orchestrator: discovery.New(deps.Maps),
	}

	m := meter()

	var err error

	s.scans, err = m.Int64Counter(
		"scanner.scans",
		metric.WithDescription("Total scans run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scans counter: %w", err)
	}

	s.disclosed, err = m.Int64Counter(
		"scanner.cells.disclosed",
		metric.WithDescription("Total cells disclosed by the map service"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating disclosed counter: %w", err)
	}

	s.failures, err = m.Int64Counter(
		"scanner.errors",
		metric.WithDescription("Total failed scans by error kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating errors counter: %w", err)
	}

	return s, nil
}

// Scan looks for the cell of want's kind with the highest quantity inside
// shape around the agent, in a square world of side bound. A nil match with
// a nil error means no covered cell holds that kind.
func (s *Scanner) Scan(bound int, agent core.Agent, shape pattern.Shape, want core.Content) (*core.Match, error) {
	start := s.deps.Now()
	rec := &core.ScanRecord{
		Shape: shape.String(),
		Want:  want.Kind,
		Time:  start,
	}

	match, err := s.scan(bound, agent, shape, want, rec)

	rec.Result = match
	rec.Duration = s.deps.Now().Sub(start)
	if err != nil {
		rec.ErrorKind = toolerr.KindOf(err).String()
		rec.Error = err.Error()
	}
	s.record(rec)

	return match, err
}

func (s *Scanner) scan(bound int, agent core.Agent, shape pattern.Shape, want core.Content, rec *core.ScanRecord) (*core.Match, error) {
	log := s.deps.Logger

	// nothing external is touched before the shape is known to be valid
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	rec.Agent = agent.Position()

	candidates, err := pattern.Generate(shape, rec.Agent, bound)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, emptyCandidateSet(shape, rec.Agent, bound)
	}
	rec.Candidates = candidates
	rec.Footprint = geo.FootprintWKT(candidates)
	log.Debug("candidates generated", "shape", rec.Shape, "count", len(candidates))

	known := s.deps.Maps.KnownMap()
	remaining := sanitize.Sanitize(candidates, known)
	log.Debug("candidates sanitized", "remaining", len(remaining), "known", len(candidates)-len(remaining))

	budget := agent.ResourceBudget()
	disclosed, err := s.orchestrator.Discover(agent, shape, remaining)
	rec.EnergySpent = max(budget-agent.ResourceBudget(), 0)
	if err != nil {
		return nil, err
	}
	rec.UsedLocalView = shape.UsesLocalView()
	if !rec.UsedLocalView {
		rec.Disclosed = len(disclosed)
	}
	log.Debug("cells discovered", "disclosed", len(disclosed), "localView", rec.UsedLocalView, "energySpent", rec.EnergySpent)

	match, err := selector.Select(merge(candidates, known, disclosed), want)
	if err != nil {
		return nil, err
	}
	return match, nil
}

func emptyCandidateSet(shape pattern.Shape, agent core.Coordinate, bound int) error {
	return fmt.Errorf("%w: %s around %s covers no cell of a %dx%d world",
		toolerr.ErrEmptyCandidateSet, shape, agent, bound, bound)
}

// merge offers the selector every candidate with known content: snapshot
// cells first, overwritten by whatever was just discovered. Discovered cells
// outside the candidate set are ignored.
func merge(candidates []core.Coordinate, known core.Snapshot, disclosed core.Disclosure) core.Disclosure {
	out := sanitize.Known(candidates, known)
	for _, c := range candidates {
		if content, ok := disclosed[c]; ok {
			out[c] = content
		}
	}
	return out
}

func (s *Scanner) record(rec *core.ScanRecord) {
	ctx := context.Background()
	outcome := "miss"
	switch {
	case rec.ErrorKind != "":
		outcome = "error"
		s.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", rec.ErrorKind)))
	case rec.Result != nil:
		outcome = "found"
	}
	s.scans.Add(ctx, 1, metric.WithAttributes(
		attribute.String("shape", rec.Shape),
		attribute.String("outcome", outcome),
	))
	if rec.Disclosed > 0 {
		s.disclosed.Add(ctx, int64(rec.Disclosed))
	}

	if s.deps.Recorder != nil {
		if err := s.deps.Recorder.RecordScan(rec); err != nil {
			s.deps.Logger.Error("failed to record scan", "shape", rec.Shape, "error", err)
		}
	}
	if s.deps.Telemetry != nil {
		if err := s.deps.Telemetry.RecordScan(rec); err != nil {
			s.deps.Logger.Error("failed to send scan telemetry", "shape", rec.Shape, "error", err)
		}
	}
	s.deps.Logger.Info("scan complete", "shape", rec.Shape, "want", string(rec.Want), "outcome", outcome, "duration", rec.Duration)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any) {}
func (nopLogger) Error(string, ...any) {}
