// Package convert maps between core scan records and their GORM models
package convert

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gridscout/scanner/internal/model"
	"github.com/gridscout/scanner/pkg/core"
	"gorm.io/datatypes"
)

const maxErrorLen = 255

// ScanRecordToModel converts a core.ScanRecord to a GORM ScanRecord.
// core ScanRecord.Result maps to the Found/Result* columns.
func ScanRecordToModel(r core.ScanRecord) (model.ScanRecord, error) {
	candidates := r.Candidates
	if candidates == nil {
		candidates = []core.Coordinate{}
	}
	raw, err := json.Marshal(candidates)
	if err != nil {
		return model.ScanRecord{}, fmt.Errorf("failed to marshal candidates: %w", err)
	}

	m := model.ScanRecord{
		Time:           r.Time,
		AgentCol:       r.Agent.Col,
		AgentRow:       r.Agent.Row,
		Shape:          r.Shape,
		Want:           string(r.Want),
		CandidateCount: len(r.Candidates),
		Candidates:     datatypes.JSON(raw),
		Footprint:      r.Footprint,
		Disclosed:      r.Disclosed,
		EnergySpent:    r.EnergySpent,
		UsedLocalView:  r.UsedLocalView,
		ErrorKind:      r.ErrorKind,
		Error:          truncate(r.Error, maxErrorLen),
		DurationMs:     float64(r.Duration) / float64(time.Millisecond),
	}
	m.ID = r.ID
	if r.Result != nil {
		m.Found = true
		m.ResultCol = r.Result.Coordinate.Col
		m.ResultRow = r.Result.Coordinate.Row
		m.ResultQuantity = r.Result.Quantity
	}
	return m, nil
}

// ScanRecordFromModel converts a GORM ScanRecord back to a core.ScanRecord
func ScanRecordFromModel(m model.ScanRecord) (core.ScanRecord, error) {
	var candidates []core.Coordinate
	if len(m.Candidates) > 0 {
		if err := json.Unmarshal(m.Candidates, &candidates); err != nil {
			return core.ScanRecord{}, fmt.Errorf("failed to unmarshal candidates of scan %d: %w", m.ID, err)
		}
	}

	r := core.ScanRecord{
		ID:            m.ID,
		Agent:         core.NewCoordinate(m.AgentCol, m.AgentRow),
		Shape:         m.Shape,
		Want:          core.ContentKind(m.Want),
		Candidates:    candidates,
		Footprint:     m.Footprint,
		Disclosed:     m.Disclosed,
		EnergySpent:   m.EnergySpent,
		UsedLocalView: m.UsedLocalView,
		ErrorKind:     m.ErrorKind,
		Error:         m.Error,
		Duration:      time.Duration(m.DurationMs * float64(time.Millisecond)),
		Time:          m.Time,
	}
	if m.Found {
		r.Result = &core.Match{
			Coordinate: core.NewCoordinate(m.ResultCol, m.ResultRow),
			Quantity:   m.ResultQuantity,
		}
	}
	return r, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
