// Package gormstorage implements the storage.Backend interface on top of GORM.
// It serves both SQLite (file or in-memory with VACUUM INTO dumps) and PostgreSQL.
package gormstorage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gridscout/scanner/internal/database"
	"github.com/gridscout/scanner/internal/model"
	"github.com/gridscout/scanner/internal/model/convert"
	"github.com/gridscout/scanner/pkg/core"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by Init when no connection was injected.
var ErrNoDatabase = errors.New("no database connection")

// Dependencies holds all dependencies for the GORM storage backend.
type Dependencies struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

// Config holds the optional disk dump settings.
type Config struct {
	DumpPath     string        // Path for VACUUM INTO dumps, empty disables them
	DumpInterval time.Duration // Periodic dump interval, zero dumps only on Close
}

// Backend implements storage.Backend with synchronous inserts.
type Backend struct {
	deps      Dependencies
	cfg       Config
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	dumpMu    sync.Mutex
}

// New creates a new GORM storage backend.
func New(deps Dependencies, cfg Config) *Backend {
	return &Backend{
		deps:     deps,
		cfg:      cfg,
		stopChan: make(chan struct{}),
	}
}

// Init runs schema migration and starts the dump goroutine.
func (b *Backend) Init() error {
	if b.deps.DB == nil {
		return ErrNoDatabase
	}
	if err := database.Setup(b.deps.DB, b.deps.Logger); err != nil {
		return fmt.Errorf("failed to setup DB: %w", err)
	}

	if b.cfg.DumpPath != "" && b.cfg.DumpInterval > 0 {
		b.wg.Add(1)
		go b.dumpLoop()
	}
	return nil
}

// Close stops the dump goroutine, writes a final dump and closes the connection.
func (b *Backend) Close() error {
	var err error
	b.closeOnce.Do(func() {
		close(b.stopChan)
		b.wg.Wait()

		if b.deps.DB == nil {
			return
		}
		if b.cfg.DumpPath != "" {
			if dumpErr := b.dump(); dumpErr != nil {
				err = dumpErr
			}
		}
		sqlDB, dbErr := b.deps.DB.DB()
		if dbErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to access sql interface: %w", dbErr))
			return
		}
		err = errors.Join(err, sqlDB.Close())
	})
	return err
}

// RecordScan inserts the record and assigns the generated ID back to it.
func (b *Backend) RecordScan(r *core.ScanRecord) error {
	m, err := convert.ScanRecordToModel(*r)
	if err != nil {
		return err
	}
	m.ID = 0
	if err := b.deps.DB.Create(&m).Error; err != nil {
		return fmt.Errorf("failed to insert scan record: %w", err)
	}
	r.ID = m.ID
	return nil
}

// Scans loads the scan history, oldest first.
func (b *Backend) Scans() ([]core.ScanRecord, error) {
	var rows []model.ScanRecord
	if err := b.deps.DB.Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load scan records: %w", err)
	}

	scans := make([]core.ScanRecord, 0, len(rows))
	for _, row := range rows {
		r, err := convert.ScanRecordFromModel(row)
		if err != nil {
			return nil, err
		}
		scans = append(scans, r)
	}
	return scans, nil
}

func (b *Backend) dump() error {
	b.dumpMu.Lock()
	defer b.dumpMu.Unlock()

	start := time.Now()
	if err := database.DumpMemoryDBToDisk(b.deps.DB, b.cfg.DumpPath); err != nil {
		return err
	}
	b.deps.Logger.Debug().Dur("duration", time.Since(start)).Str("path", b.cfg.DumpPath).Msg("Dumped DB to disk")
	return nil
}

// dumpLoop periodically dumps the database to disk via VACUUM INTO.
func (b *Backend) dumpLoop() {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.DumpInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
			if err := b.dump(); err != nil {
				b.deps.Logger.Error().Err(err).Msg("Error dumping to disk")
			}
		}
	}
}
