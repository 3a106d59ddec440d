package mines

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Move is one kind of player input.
type Move uint8

const (
	Noop Move = iota
	Select
	Flag
	Chord
	Restart
	Forfeit
)

func (m Move) String() string {
	switch m {
	case Noop:
		return "noop"
	case Select:
		return "select"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	case Restart:
		return "restart"
	case Forfeit:
		return "forfeit"
	default:
		return fmt.Sprintf("Move(%d)", m)
	}
}

// NeedsPosition reports whether the move targets a cell.
func (m Move) NeedsPosition() bool {
	return m == Select || m == Flag || m == Chord
}

var ErrBadMove = errors.New("move must be one of 'select', 'flag', 'chord', 'restart', 'forfeit'")

// ParseMove reads a move by name.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(s) {
	case "select", "open":
		return Select, nil
	case "flag":
		return Flag, nil
	case "chord":
		return Chord, nil
	case "restart":
		return Restart, nil
	case "forfeit":
		return Forfeit, nil
	default:
		return Noop, ErrBadMove
	}
}

// Command is a move together with its target cell. Row and Column are
// zero for moves that do not need a position.
type Command struct {
	Move        Move
	Row, Column int
}

var shortMoves = map[string]Move{
	"g": Noop,
	"s": Select,
	"f": Flag,
	"c": Chord,
	"n": Restart,
	"r": Forfeit,
}

// ParseCommand reads one command line such as "s 3 4" or "n".
func ParseCommand(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, errors.New("empty command")
	}
	move, ok := shortMoves[tokens[0]]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q", tokens[0])
	}
	args := tokens[1:]
	if !move.NeedsPosition() {
		if len(args) != 0 {
			return Command{}, fmt.Errorf("command %q takes no arguments", tokens[0])
		}
		return Command{Move: move}, nil
	}
	if len(args) != 2 {
		return Command{}, errors.New("invalid args")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, errors.New("first argument must be an int")
	}
	column, err := strconv.Atoi(args[1])
	if err != nil {
		return Command{}, errors.New("second argument must be an int")
	}
	return Command{Move: move, Row: row, Column: column}, nil
}

// Apply runs cmd against the game.
func (g *Game) Apply(cmd Command) error {
	switch cmd.Move {
	case Select:
		return g.Select(cmd.Row, cmd.Column)
	case Flag:
		g.Flag(cmd.Row, cmd.Column)
	case Chord:
		g.Chord(cmd.Row, cmd.Column)
	case Restart:
		g.Restart()
	case Forfeit:
		g.Forfeit()
	}
	return nil
}
