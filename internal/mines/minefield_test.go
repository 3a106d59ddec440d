package mines

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkCounts(t *testing.T, b *Board) {
	t.Helper()
	for i, c := range b.cells {
		n := 0
		for _, j := range b.neighborsOf(i) {
			if b.cells[j].HasMine {
				n++
			}
		}
		require.Equal(t, n, c.NearbyMines, "cell %d:%d", c.Row, c.Column)
	}
}

func TestPlaceMinesAvoidsNeighborhood(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "9x9(10)", params: GameParams{Height: 9, Width: 9, MineCount: 10}},
		{name: "9x9(35)", params: GameParams{Height: 9, Width: 9, MineCount: 35}},
		{name: "16x16(40)", params: GameParams{Height: 16, Width: 16, MineCount: 40}},
		{name: "16x30(99)", params: GameParams{Height: 16, Width: 30, MineCount: 99}},
		{name: "16x30(470)", params: GameParams{Height: 16, Width: 30, MineCount: 470}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			h, w, mc := test.params.Unpack()
			for i := range h * w {
				b, err := NewBoard(h, w)
				require.NoError(t, err)
				require.NoError(t, PlaceMines(b, i, mc, r))

				disallowed := append(b.neighborsOf(i), i)
				for _, j := range disallowed {
					require.False(t, b.cells[j].HasMine, "mine next to start %d", i)
				}
				assert.Equal(t, min(mc, h*w-len(disallowed)), b.MineCount())
				assert.True(t, b.MinesPlaced())
				checkCounts(t, b)
			}
		})
	}
}

func TestPlaceMinesCapsCount(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		mineCount     int
		avoiding      int
		want          int
	}{
		{"3x3 center", 3, 3, 10, 4, 0},
		{"4x4 corner", 4, 4, 20, 0, 12},
		{"4x4 exact", 4, 4, 12, 0, 12},
		{"1x1", 1, 1, 10, 0, 0},
		{"no mines", 9, 9, 0, 40, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := NewBoard(test.height, test.width)
			require.NoError(t, err)
			require.NoError(t, PlaceMines(b, test.avoiding, test.mineCount, newRand()))
			assert.Equal(t, test.want, b.MineCount())
			checkCounts(t, b)
		})
	}
}

func TestPlaceMinesTwiceIsMisuse(t *testing.T) {
	b, err := NewBoard(9, 9)
	require.NoError(t, err)
	require.NoError(t, PlaceMines(b, 0, 10, newRand()))

	err = PlaceMines(b, 0, 10, newRand())
	var misuse EngineMisuse
	require.True(t, errors.As(err, &misuse))
	assert.Equal(t, 10, b.MineCount())
}

func TestPlaceMinesRejectsBadArguments(t *testing.T) {
	b, err := NewBoard(9, 9)
	require.NoError(t, err)

	var misuse EngineMisuse
	assert.True(t, errors.As(PlaceMines(b, 81, 10, newRand()), &misuse))
	assert.True(t, errors.As(PlaceMines(b, -1, 10, newRand()), &misuse))
	assert.True(t, errors.As(PlaceMines(b, 0, -3, newRand()), &misuse))
	assert.False(t, b.MinesPlaced())
}

func TestPlaceMinesSpreadsOverPool(t *testing.T) {
	// every candidate cell should get mined at least once over many draws
	r := newRand()
	hits := make([]int, 81)
	for range 500 {
		b, err := NewBoard(9, 9)
		require.NoError(t, err)
		require.NoError(t, PlaceMines(b, 40, 10, r))
		for i, c := range b.cells {
			if c.HasMine {
				hits[i]++
			}
		}
	}
	b, _ := NewBoard(9, 9)
	safe := append(b.neighborsOf(40), 40)
	for i, n := range hits {
		if slices.Contains(safe, i) {
			assert.Zero(t, n, "cell %d", i)
		} else {
			assert.Positive(t, n, "cell %d", i)
		}
	}
}
