package mines

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{
		{0, 9}, {9, 0}, {-1, 5}, {0, 0},
		{1 << 32, 1 << 32}, {MaxCells + 1, 1}, {1 << 10, 1<<10 + 1}, {math.MaxInt, 2},
	} {
		_, err := NewBoard(dims[0], dims[1])
		var misuse EngineMisuse
		assert.True(t, errors.As(err, &misuse), "dims %v: got %v", dims, err)
	}
}

func TestNewBoardLargestAllowed(t *testing.T) {
	assert.NoError(t, GameParams{Height: 1 << 10, Width: 1 << 10}.Validate())
	assert.Error(t, GameParams{Height: 1 << 32, Width: 1 << 32}.Validate())

	b, err := NewBoard(1, MaxCells)
	require.NoError(t, err)
	assert.Equal(t, MaxCells, b.Size())
	assert.NotPanics(t, func() { b.CellAt(0, MaxCells-1) })
}

func TestNewBoardDefaults(t *testing.T) {
	b, err := NewBoard(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, b.Size())
	assert.False(t, b.MinesPlaced())

	for i, c := range b.AllCells() {
		assert.Equal(t, i/4, c.Row)
		assert.Equal(t, i%4, c.Column)
		assert.Equal(t, Cell{Row: c.Row, Column: c.Column}, c)
		assert.Equal(t, Hidden, c.Status())
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	b, err := NewBoard(9, 9)
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {9, 9}, {-1, -1}} {
		_, ok := b.CellAt(p[0], p[1])
		assert.False(t, ok, "%v", p)
	}
	c, ok := b.CellAt(8, 8)
	require.True(t, ok)
	assert.Equal(t, 8, c.Row)
	assert.Equal(t, 8, c.Column)
}

func TestNeighborsOrder(t *testing.T) {
	b, err := NewBoard(9, 9)
	require.NoError(t, err)

	idx := func(r, c int) int { return r*9 + c }
	assert.Equal(t, []int{
		idx(3, 3), idx(3, 4), idx(3, 5),
		idx(4, 3), idx(4, 5),
		idx(5, 3), idx(5, 4), idx(5, 5),
	}, b.Neighbors(4, 4))
	assert.Equal(t, []int{idx(0, 1), idx(1, 0), idx(1, 1)}, b.Neighbors(0, 0))
	assert.Empty(t, b.Neighbors(-5, -5))
}

func TestNeighborCountBounds(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {2, 5}, {9, 9}, {16, 30}} {
		t.Run(fmt.Sprintf("%dx%d", dims[0], dims[1]), func(t *testing.T) {
			b, err := NewBoard(dims[0], dims[1])
			require.NoError(t, err)
			for _, c := range b.AllCells() {
				n := len(b.Neighbors(c.Row, c.Column))
				assert.GreaterOrEqual(t, n, 3)
				assert.LessOrEqual(t, n, 8)
			}
			assert.Len(t, b.Neighbors(0, 0), 3)
			assert.Len(t, b.Neighbors(dims[0]-1, dims[1]-1), 3)
		})
	}
}

func TestNeighborsSymmetric(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {3, 3}, {9, 9}, {5, 12}} {
		b, err := NewBoard(dims[0], dims[1])
		require.NoError(t, err)
		for i := range b.Size() {
			ni := b.neighborsOf(i)
			assert.NotContains(t, ni, i)
			for j := range b.Size() {
				assert.Equal(t,
					slices.Contains(ni, j),
					slices.Contains(b.neighborsOf(j), i),
					"%dx%d: %d and %d", dims[0], dims[1], i, j,
				)
			}
		}
	}
}
