package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gridscout/scanner/internal/model"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("db.host", "db.local")
	viper.Set("db.port", "5433")
	viper.Set("db.username", "scout")
	viper.Set("db.password", "secret")
	viper.Set("db.database", "grid")
	viper.Set("db.sslmode", "disable")

	assert.Equal(t,
		"host=db.local port=5433 user=scout password=secret dbname=grid sslmode=disable",
		PostgresDSN())
}

func TestGetSqliteDB_FileAndSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scans.db")

	db, err := GetSqliteDB(path)
	require.NoError(t, err)
	require.NoError(t, Setup(db, zerolog.Nop()))

	assert.True(t, db.Migrator().HasTable(&model.ScanRecord{}))

	rec := model.ScanRecord{Shape: "area:3", Want: "coin"}
	require.NoError(t, db.Create(&rec).Error)
	assert.NotZero(t, rec.ID)

	var count int64
	require.NoError(t, db.Model(&model.ScanRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDumpMemoryDBToDisk(t *testing.T) {
	db, err := GetSqliteDB("")
	require.NoError(t, err)
	require.NoError(t, Setup(db, zerolog.Nop()))
	require.NoError(t, db.Create(&model.ScanRecord{Shape: "up:2", Want: "tree"}).Error)

	dir := t.TempDir()
	dump := filepath.Join(dir, "dump.db")
	require.NoError(t, DumpMemoryDBToDisk(db, dump))
	// a second dump replaces the first
	require.NoError(t, DumpMemoryDBToDisk(db, dump))

	_, err = os.Stat(dump)
	require.NoError(t, err)

	disk, err := GetSqliteDB(dump)
	require.NoError(t, err)
	var rows []model.ScanRecord
	require.NoError(t, disk.Find(&rows).Error)
	require.NotEmpty(t, rows)
	assert.Equal(t, "up:2", rows[len(rows)-1].Shape)
}

func TestDumpMemoryDBToDisk_NoPath(t *testing.T) {
	err := DumpMemoryDBToDisk(nil, "")
	assert.EqualError(t, err, "sqlite file path not set")
}

func TestGetBackupDBPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.db", "b.db", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.db"), 0o755))

	paths, err := GetBackupDBPaths(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(dir, "a.db"), filepath.Join(dir, "b.db")}, paths)
}

func TestGetBackupDBPaths_MissingDir(t *testing.T) {
	_, err := GetBackupDBPaths(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
