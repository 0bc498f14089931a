// internal/storage/memory/memory.go
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/gridscout/scanner/internal/config"
	"github.com/gridscout/scanner/pkg/core"
)

// Backend keeps scan history in memory and optionally exports it to JSON on close
type Backend struct {
	cfg   config.MemoryConfig
	scans []core.ScanRecord

	idCounter uint
	mu        sync.RWMutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close exports the history when an export path is configured
func (b *Backend) Close() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.cfg.ExportPath == "" {
		return nil
	}
	return b.exportJSON()
}

// exportJSON writes the scan history to the configured JSON file
func (b *Backend) exportJSON() error {
	scans := b.scans
	if scans == nil {
		scans = []core.ScanRecord{}
	}
	data, err := json.MarshalIndent(scans, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scan history: %w", err)
	}
	if err := os.WriteFile(b.cfg.ExportPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scan history: %w", err)
	}
	return nil
}

// RecordScan stores a copy of the record and assigns it the next ID
func (b *Backend) RecordScan(r *core.ScanRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.idCounter++
	r.ID = b.idCounter

	stored := *r
	stored.Candidates = slices.Clone(r.Candidates)
	if r.Result != nil {
		m := *r.Result
		stored.Result = &m
	}
	b.scans = append(b.scans, stored)
	return nil
}

// Scans returns a copy of the recorded history
func (b *Backend) Scans() ([]core.ScanRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.scans), nil
}
