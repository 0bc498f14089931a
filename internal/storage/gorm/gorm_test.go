package gormstorage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gridscout/scanner/internal/database"
	"github.com/gridscout/scanner/pkg/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBackend creates a Backend over a fresh SQLite file.
func newTestBackend(t *testing.T, cfg Config) *Backend {
	t.Helper()
	db, err := database.GetSqliteDB(filepath.Join(t.TempDir(), "scans.db"))
	require.NoError(t, err)

	b := New(Dependencies{DB: db, Logger: zerolog.Nop()}, cfg)
	require.NoError(t, b.Init())
	return b
}

func TestInit_NoDatabase(t *testing.T) {
	b := New(Dependencies{Logger: zerolog.Nop()}, Config{})
	assert.ErrorIs(t, b.Init(), ErrNoDatabase)
	assert.NoError(t, b.Close())
}

func TestRecordScan_RoundTrip(t *testing.T) {
	b := newTestBackend(t, Config{})
	defer b.Close()

	found := &core.ScanRecord{
		Agent:         core.NewCoordinate(1, 2),
		Shape:         "area:3",
		Want:          core.ContentCoin,
		Candidates:    []core.Coordinate{core.NewCoordinate(0, 1), core.NewCoordinate(2, 3)},
		Footprint:     "MULTIPOINT((0 1),(2 3))",
		UsedLocalView: true,
		Result:        &core.Match{Coordinate: core.NewCoordinate(2, 3), Quantity: 1},
		Duration:      3 * time.Millisecond,
		Time:          time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
	}
	failed := &core.ScanRecord{
		Agent:     core.NewCoordinate(4, 4),
		Shape:     "right:3",
		Want:      core.ContentRock,
		ErrorKind: "EmptyCandidateSet",
		Error:     "no in-bounds cells",
	}

	require.NoError(t, b.RecordScan(found))
	require.NoError(t, b.RecordScan(failed))
	assert.NotZero(t, found.ID)
	assert.Greater(t, failed.ID, found.ID)

	scans, err := b.Scans()
	require.NoError(t, err)
	require.Len(t, scans, 2)

	assert.Equal(t, found.ID, scans[0].ID)
	assert.Equal(t, core.NewCoordinate(1, 2), scans[0].Agent)
	assert.Equal(t, found.Candidates, scans[0].Candidates)
	assert.True(t, scans[0].UsedLocalView)
	require.NotNil(t, scans[0].Result)
	assert.Equal(t, *found.Result, *scans[0].Result)
	assert.Equal(t, 3*time.Millisecond, scans[0].Duration)
	assert.True(t, found.Time.Equal(scans[0].Time))

	assert.Nil(t, scans[1].Result)
	assert.Equal(t, "EmptyCandidateSet", scans[1].ErrorKind)
	assert.Equal(t, "right:3", scans[1].Shape)
}

func TestScans_Empty(t *testing.T) {
	b := newTestBackend(t, Config{})
	defer b.Close()

	scans, err := b.Scans()
	require.NoError(t, err)
	assert.Empty(t, scans)
}

func TestClose_DumpsToDisk(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "dump.db")
	b := newTestBackend(t, Config{DumpPath: dump})

	require.NoError(t, b.RecordScan(&core.ScanRecord{Shape: "down:1", Want: core.ContentWater}))
	require.NoError(t, b.Close())
	// second close is a no-op
	require.NoError(t, b.Close())

	_, err := os.Stat(dump)
	require.NoError(t, err)

	db, err := database.GetSqliteDB(dump)
	require.NoError(t, err)
	reopened := New(Dependencies{DB: db, Logger: zerolog.Nop()}, Config{})
	require.NoError(t, reopened.Init())
	defer reopened.Close()

	scans, err := reopened.Scans()
	require.NoError(t, err)
	require.Len(t, scans, 1)
	assert.Equal(t, "down:1", scans[0].Shape)
}

func TestDumpLoop_StopsOnClose(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "dump.db")
	b := newTestBackend(t, Config{DumpPath: dump, DumpInterval: 10 * time.Millisecond})

	require.NoError(t, b.RecordScan(&core.ScanRecord{Shape: "left:2"}))
	assert.Eventually(t, func() bool {
		_, err := os.Stat(dump)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, b.Close())
}
