package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridscout/scanner/internal/toolerr"
	"github.com/gridscout/scanner/pkg/core"
)

func content(kind core.ContentKind, qty int) *core.Content {
	return &core.Content{Kind: kind, Quantity: qty}
}

var coin = core.Content{Kind: core.ContentCoin}

func TestSelect_NoMatchIsNil(t *testing.T) {
	disclosed := core.Disclosure{
		core.NewCoordinate(0, 0): content(core.ContentRock, 3),
		core.NewCoordinate(1, 0): content(core.ContentNone, 0),
	}
	got, err := Select(disclosed, coin)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSelect_EmptyDisclosure(t *testing.T) {
	got, err := Select(core.Disclosure{}, coin)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Select(nil, coin)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSelect_HighestQuantityWins(t *testing.T) {
	disclosed := core.Disclosure{
		core.NewCoordinate(0, 0): content(core.ContentCoin, 1),
		core.NewCoordinate(3, 1): content(core.ContentCoin, 5),
		core.NewCoordinate(2, 2): content(core.ContentRock, 9),
	}
	got, err := Select(disclosed, coin)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, core.Match{Coordinate: core.NewCoordinate(3, 1), Quantity: 5}, *got)
}

func TestSelect_MatchIgnoresWantQuantity(t *testing.T) {
	disclosed := core.Disclosure{
		core.NewCoordinate(1, 1): content(core.ContentTree, 2),
	}
	got, err := Select(disclosed, core.Content{Kind: core.ContentTree, Quantity: 100})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Quantity)
}

func TestSelect_TieGoesToSmallestCoordinate(t *testing.T) {
	disclosed := core.Disclosure{
		core.NewCoordinate(4, 0): content(core.ContentCoin, 3),
		core.NewCoordinate(1, 4): content(core.ContentCoin, 3),
		core.NewCoordinate(1, 2): content(core.ContentCoin, 3),
		core.NewCoordinate(0, 0): content(core.ContentCoin, 1),
	}
	for i := 0; i < 20; i++ {
		got, err := Select(disclosed, coin)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, core.NewCoordinate(1, 2), got.Coordinate)
	}
}

func TestSelect_MissingContentFailsFast(t *testing.T) {
	disclosed := core.Disclosure{
		core.NewCoordinate(0, 0): content(core.ContentCoin, 1),
		core.NewCoordinate(2, 1): nil,
	}
	got, err := Select(disclosed, coin)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.Equal(t, toolerr.KindUnclassified, toolerr.KindOf(err))

	var u *toolerr.Unclassified
	require.ErrorAs(t, err, &u)
	assert.Contains(t, u.Description, "(2,1)")
}
