// internal/storage/storage.go
package storage

import "github.com/gridscout/scanner/pkg/core"

// Backend is the interface all scan history implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// RecordScan stores a completed scan and assigns its ID to the passed pointer
	RecordScan(r *core.ScanRecord) error

	// Scans returns all recorded scans, oldest first
	Scans() ([]core.ScanRecord, error)
}
