package core

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_Arithmetic(t *testing.T) {
	a := NewCoordinate(10, 20)
	b := NewCoordinate(5, 10)

	assert.Equal(t, NewCoordinate(15, 30), a.Add(b))
	assert.Equal(t, NewCoordinate(5, 10), a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}

func TestCoordinate_Equality(t *testing.T) {
	assert.Equal(t, NewCoordinate(10, 20), NewCoordinate(10, 20))
	assert.NotEqual(t, NewCoordinate(10, 20), NewCoordinate(15, 25))
}

func TestCoordinate_PairConversion(t *testing.T) {
	c := CoordinateFromPair([2]int{10, 20})
	assert.Equal(t, 10, c.Col)
	assert.Equal(t, 20, c.Row)
	assert.Equal(t, [2]int{10, 20}, c.Pair())
}

func TestCoordinate_InBounds(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"origin", NewCoordinate(0, 0), true},
		{"last cell", NewCoordinate(4, 4), true},
		{"negative col", NewCoordinate(-1, 2), false},
		{"negative row", NewCoordinate(2, -1), false},
		{"col at bound", NewCoordinate(5, 0), false},
		{"row at bound", NewCoordinate(0, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.InBounds(5))
		})
	}
}

func TestCompareCoordinates(t *testing.T) {
	coords := []Coordinate{{2, 0}, {0, 3}, {1, 1}, {0, 1}}
	slices.SortFunc(coords, CompareCoordinates)
	assert.Equal(t, []Coordinate{{0, 1}, {0, 3}, {1, 1}, {2, 0}}, coords)
	assert.Equal(t, 0, CompareCoordinates(NewCoordinate(3, 3), NewCoordinate(3, 3)))
}

func TestParseContentKind(t *testing.T) {
	k, err := ParseContentKind("Coin")
	require.NoError(t, err)
	assert.Equal(t, ContentCoin, k)

	k, err = ParseContentKind(" jolly-block ")
	require.NoError(t, err)
	assert.Equal(t, ContentJollyBlock, k)

	_, err = ParseContentKind("dragon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown content kind")
}

func TestContent_MatchesIgnoresQuantity(t *testing.T) {
	want := Content{Kind: ContentCoin}
	assert.True(t, Content{Kind: ContentCoin, Quantity: 7}.Matches(want))
	assert.False(t, Content{Kind: ContentRock, Quantity: 0}.Matches(want))
}

func TestSnapshot_At(t *testing.T) {
	coin := &Content{Kind: ContentCoin, Quantity: 2}
	s := Snapshot{
		{nil, coin},
		{nil, nil},
	}

	got, ok := s.At(NewCoordinate(1, 0))
	require.True(t, ok)
	assert.Equal(t, *coin, got)

	assert.False(t, s.Known(NewCoordinate(0, 1)))
	assert.False(t, s.Known(NewCoordinate(5, 0)))
	assert.False(t, s.Known(NewCoordinate(0, -1)))
}
