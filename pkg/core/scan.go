// pkg/core/scan.go
package core

import "time"

// ScanRecord describes one completed scan call, successful or not.
type ScanRecord struct {
	ID            uint
	Agent         Coordinate
	Shape         string
	Want          ContentKind
	Candidates    []Coordinate
	Footprint     string // WKT MULTIPOINT of Candidates
	Disclosed     int
	EnergySpent   int
	UsedLocalView bool
	Result        *Match
	ErrorKind     string
	Error         string
	Duration      time.Duration
	Time          time.Time
}

// Found reports whether the scan produced a match.
func (r *ScanRecord) Found() bool {
	return r.Result != nil
}
