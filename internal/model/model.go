package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&ScanRecord{},
}

////////////////////////
// SCAN HISTORY
////////////////////////

// ScanRecord is the model for one completed scan call
type ScanRecord struct {
	gorm.Model
	Time           time.Time      `json:"time" gorm:"index:idx_scan_time"`
	AgentCol       int            `json:"agentCol"`
	AgentRow       int            `json:"agentRow"`
	Shape          string         `json:"shape" gorm:"size:32;index:idx_scan_shape"`
	Want           string         `json:"want" gorm:"size:32"`
	CandidateCount int            `json:"candidateCount"`
	Candidates     datatypes.JSON `json:"candidates"`
	Footprint      string         `json:"footprint" gorm:"type:text"` // WKT MULTIPOINT
	Disclosed      int            `json:"disclosed"`
	EnergySpent    int            `json:"energySpent"`
	UsedLocalView  bool           `json:"usedLocalView"`
	Found          bool           `json:"found"`
	ResultCol      int            `json:"resultCol"`
	ResultRow      int            `json:"resultRow"`
	ResultQuantity int            `json:"resultQuantity"`
	ErrorKind      string         `json:"errorKind" gorm:"size:32;index:idx_scan_error_kind"`
	Error          string         `json:"error" gorm:"size:255"`
	DurationMs     float64        `json:"durationMs"`
}

func (*ScanRecord) TableName() string {
	return "scan_records"
}
