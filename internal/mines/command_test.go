package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
		err  bool
	}{
		{"s 3 4", Command{Select, 3, 4}, false},
		{"  f 0 8 ", Command{Flag, 0, 8}, false},
		{"c -1 2", Command{Chord, -1, 2}, false},
		{"n", Command{Move: Restart}, false},
		{"r", Command{Move: Forfeit}, false},
		{"g", Command{Move: Noop}, false},
		{"", Command{}, true},
		{"s 3", Command{}, true},
		{"s a 3", Command{}, true},
		{"s 3 b", Command{}, true},
		{"n 1 1", Command{}, true},
		{"x 1 1", Command{}, true},
	}
	for _, test := range tests {
		cmd, err := ParseCommand(test.line)
		if test.err {
			assert.Error(t, err, "%q", test.line)
			continue
		}
		require.NoError(t, err, "%q", test.line)
		assert.Equal(t, test.want, cmd, "%q", test.line)
	}
}

func TestParseMove(t *testing.T) {
	for s, want := range map[string]Move{
		"select": Select, "OPEN": Select, "flag": Flag,
		"chord": Chord, "restart": Restart, "forfeit": Forfeit,
	} {
		move, err := ParseMove(s)
		require.NoError(t, err)
		assert.Equal(t, want, move)
		assert.Equal(t, want == Select || want == Flag || want == Chord, move.NeedsPosition())
	}
	_, err := ParseMove("undo")
	assert.ErrorIs(t, err, ErrBadMove)
}

func TestApply(t *testing.T) {
	g := riggedGame(t, 3, 3, [2]int{0, 0})

	require.NoError(t, g.Apply(Command{Move: Flag, Row: 0, Column: 0}))
	assert.Equal(t, Marked, g.Grid()[0])

	require.NoError(t, g.Apply(Command{Move: Select, Row: 2, Column: 2}))
	assert.Equal(t, Won, g.Status())

	require.NoError(t, g.Apply(Command{Move: Restart}))
	assert.Equal(t, InProgress, g.Status())
	assert.False(t, g.Board().MinesPlaced())

	require.NoError(t, g.Apply(Command{Move: Forfeit}))
	assert.Equal(t, Lost, g.Status())
}
