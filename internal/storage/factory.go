// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/gridscout/scanner/internal/config"
	"github.com/gridscout/scanner/internal/database"
	gormstorage "github.com/gridscout/scanner/internal/storage/gorm"
	"github.com/gridscout/scanner/internal/storage/memory"
	"github.com/rs/zerolog"
)

// NewBackend creates a storage backend based on configuration.
// The backend is not initialized; callers must call Init.
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "", "memory":
		return memory.New(cfg.Memory), nil
	case "sqlite":
		db, err := database.GetSqliteDB(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite DB: %w", err)
		}
		if cfg.SQLite.Path == "" {
			log.Info().Msg("Using local SQLite DB in memory")
		} else {
			log.Info().Str("path", cfg.SQLite.Path).Msg("Using local SQLite DB")
		}
		return gormstorage.New(gormstorage.Dependencies{DB: db, Logger: log}, gormstorage.Config{
			DumpPath:     cfg.SQLite.DumpPath,
			DumpInterval: cfg.SQLite.DumpInterval,
		}), nil
	case "postgres":
		db, err := database.GetPostgresDB()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		log.Info().Msg("Connected to database")
		return gormstorage.New(gormstorage.Dependencies{DB: db, Logger: log}, gormstorage.Config{}), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
