package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "invalid"
	}
}

func (s Status) Terminal() bool {
	return s != InProgress
}

// Game drives one board through a single game. It is not safe for
// concurrent use. Once the game is won or lost every move is a no-op.
type Game struct {
	params    GameParams
	board     *Board
	rnd       *rand.Rand
	exploded  int
	forfeited bool
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(params.Height, params.Width)
	if err != nil {
		return nil, err
	}
	return &Game{
		params:   params,
		board:    board,
		rnd:      r,
		exploded: -1,
	}, nil
}

// Params returns the parameters the game was created with.
func (g *Game) Params() GameParams {
	return g.params
}

// Board gives read access to the underlying cells.
func (g *Game) Board() *Board {
	return g.board
}

// Restart discards the board and starts over with the same parameters.
// Mines are placed again on the next selection.
func (g *Game) Restart() {
	board, err := NewBoard(g.params.Height, g.params.Width)
	if err != nil {
		// parameters were validated in NewGame
		panic(err)
	}
	g.board = board
	g.exploded = -1
	g.forfeited = false
}

// Select opens the cell at (row, column). Hidden cells only: revealed,
// flagged and out-of-grid cells are left alone. The first selection of a
// game places the mines away from the selected cell, so it always opens a
// zero-count region.
func (g *Game) Select(row, column int) error {
	i, ok := g.board.Index(row, column)
	if !ok || g.Status().Terminal() {
		return nil
	}
	c := &g.board.cells[i]
	if c.Revealed || c.Flagged {
		return nil
	}
	if !g.board.mined {
		if err := PlaceMines(g.board, i, g.params.MineCount, g.rnd); err != nil {
			return err
		}
	}
	g.open(i)
	return nil
}

func (g *Game) open(i int) {
	c := &g.board.cells[i]
	if !c.HasMine && c.NearbyMines == 0 {
		opened := g.board.reveal(i)
		Log.WithFields(logrus.Fields{
			"row": c.Row, "column": c.Column, "opened": opened,
		}).Debug("flood reveal")
		return
	}
	c.Revealed = true
	if c.HasMine {
		g.exploded = i
		Log.WithFields(logrus.Fields{
			"row": c.Row, "column": c.Column,
		}).Debug("mine revealed")
	}
}

// Flag toggles the flag on a hidden cell.
func (g *Game) Flag(row, column int) {
	i, ok := g.board.Index(row, column)
	if !ok || g.Status().Terminal() {
		return
	}
	c := &g.board.cells[i]
	if c.Revealed {
		return
	}
	c.Flagged = !c.Flagged
}

// Chord opens every hidden, unflagged neighbor of a revealed numbered cell
// once the player has flagged as many neighbors as the number shows.
func (g *Game) Chord(row, column int) {
	i, ok := g.board.Index(row, column)
	if !ok || g.Status().Terminal() {
		return
	}
	c := g.board.cells[i]
	if !c.Revealed || c.HasMine || c.NearbyMines == 0 {
		return
	}

	neighbors := g.board.neighborsOf(i)
	js := make([]int, 0, len(neighbors))
	flags := 0
	for _, j := range neighbors {
		switch n := g.board.cells[j]; {
		case n.Flagged:
			flags++
		case !n.Revealed:
			js = append(js, j)
		}
	}
	if flags != c.NearbyMines {
		return
	}

	for _, j := range js {
		if g.board.cells[j].Revealed {
			// opened by an earlier flood in this chord
			continue
		}
		g.open(j)
		if g.Status().Terminal() {
			return
		}
	}
}

// Forfeit ends a game in progress as lost.
func (g *Game) Forfeit() {
	if !g.Status().Terminal() {
		g.forfeited = true
	}
}

// Status is derived from the board: lost once any mine is revealed (or the
// player gave up), won once every safe cell is revealed.
func (g *Game) Status() Status {
	if g.forfeited {
		return Lost
	}
	won := true
	for _, c := range g.board.cells {
		if c.HasMine && c.Revealed {
			return Lost
		}
		if !c.HasMine && !c.Revealed {
			won = false
		}
	}
	if won {
		return Won
	}
	return InProgress
}

// Grid is the player's view of the board. Hidden cells never leak mines or
// counts while the game is in progress; once it is over every mine is shown
// and flags are marked right or wrong.
func (g *Game) Grid() Grid {
	over := g.Status().Terminal()
	grid := make(Grid, len(g.board.cells))
	for i, c := range g.board.cells {
		switch {
		case c.Revealed && c.HasMine:
			if i == g.exploded {
				grid[i] = ExplodedMine
			} else {
				grid[i] = UnflaggedMine
			}
		case c.Revealed:
			grid[i] = CellState(c.NearbyMines)
		case !over && c.Flagged:
			grid[i] = Marked
		case !over:
			grid[i] = Unknown
		case c.Flagged && c.HasMine:
			grid[i] = CorrectlyFlagged
		case c.Flagged:
			grid[i] = FalselyFlagged
		case c.HasMine:
			grid[i] = UnflaggedMine
		default:
			grid[i] = Unknown
		}
	}
	return grid
}

// String renders the player's view as text, one row per line.
func (g *Game) String() string {
	return g.Grid().ToString(g.params.Width)
}
