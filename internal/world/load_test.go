package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gridscout/scanner/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
size: 5
energy: 30
costPerCell: 2
discoveryLimit: 10
start: {col: 1, row: 2}
tiles:
  - {col: 2, row: 3, kind: coin, quantity: 1}
  - {col: 4, row: 0, kind: Jolly-Block, quantity: 2}
revealed:
  - {col: 0, row: 0}
`

func TestParse_YAML(t *testing.T) {
	w, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 5, w.Size())
	assert.Equal(t, 2, w.CostPerCell())
	assert.Equal(t, core.NewCoordinate(1, 2), w.Robot().Position())
	assert.Equal(t, 30, w.Robot().ResourceBudget())

	tile, err := w.Tile(core.NewCoordinate(4, 0))
	require.NoError(t, err)
	assert.Equal(t, core.Content{Kind: core.ContentJollyBlock, Quantity: 2}, tile)

	empty, err := w.Tile(core.NewCoordinate(3, 3))
	require.NoError(t, err)
	assert.Equal(t, core.ContentNone, empty.Kind)

	snap := w.KnownMap()
	assert.True(t, snap.Known(core.NewCoordinate(0, 0)))
	assert.True(t, snap.Known(core.NewCoordinate(1, 2)))
	assert.False(t, snap.Known(core.NewCoordinate(2, 3)))
}

func TestParse_JSON(t *testing.T) {
	w, err := Parse([]byte(`{"size": 3, "energy": 9, "tiles": [{"col": 1, "row": 1, "kind": "fish", "quantity": 7}]}`))
	require.NoError(t, err)

	tile, err := w.Tile(core.NewCoordinate(1, 1))
	require.NoError(t, err)
	assert.Equal(t, core.Content{Kind: core.ContentFish, Quantity: 7}, tile)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed", "size: [", "failed to parse world description"},
		{"no size", "energy: 3", "world size must be at least 1"},
		{"unknown kind", "size: 2\ntiles:\n  - {col: 0, row: 0, kind: dragon}", "unknown content kind"},
		{"tile off world", "size: 2\ntiles:\n  - {col: 5, row: 0, kind: rock}", "outside the world"},
		{"negative quantity", "size: 2\ntiles:\n  - {col: 0, row: 0, kind: rock, quantity: -1}", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	w, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, w.Size())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read world file")
}

func TestReadDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	desc, err := ReadDescription(path)
	require.NoError(t, err)
	assert.Equal(t, 5, desc.Size)
	assert.Equal(t, 2, desc.CostPerCell)
	assert.Equal(t, 0, desc.MoveCost)
	assert.Len(t, desc.Tiles, 2)
	assert.Equal(t, "Jolly-Block", desc.Tiles[1].Kind)
}
