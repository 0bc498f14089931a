// internal/storage/storage_test.go
package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/gridscout/scanner/internal/config"
	"github.com/gridscout/scanner/internal/storage"
	gormstorage "github.com/gridscout/scanner/internal/storage/gorm"
	"github.com/gridscout/scanner/internal/storage/memory"
	"github.com/gridscout/scanner/pkg/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface checks
var (
	_ storage.Backend = (*memory.Backend)(nil)
	_ storage.Backend = (*gormstorage.Backend)(nil)
)

func TestNewBackend_Memory(t *testing.T) {
	for _, typ := range []string{"", "memory"} {
		b, err := storage.NewBackend(config.StorageConfig{Type: typ}, zerolog.Nop())
		require.NoError(t, err)
		assert.IsType(t, &memory.Backend{}, b)
	}
}

func TestNewBackend_SQLite(t *testing.T) {
	cfg := config.StorageConfig{
		Type:   "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "scans.db")},
	}
	b, err := storage.NewBackend(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.IsType(t, &gormstorage.Backend{}, b)

	require.NoError(t, b.Init())
	defer b.Close()

	rec := &core.ScanRecord{Shape: "straight-star:1", Want: core.ContentBush}
	require.NoError(t, b.RecordScan(rec))
	scans, err := b.Scans()
	require.NoError(t, err)
	require.Len(t, scans, 1)
	assert.Equal(t, rec.ID, scans[0].ID)
}

func TestNewBackend_Unknown(t *testing.T) {
	_, err := storage.NewBackend(config.StorageConfig{Type: "mongo"}, zerolog.Nop())
	assert.EqualError(t, err, "unknown storage type: mongo")
}
