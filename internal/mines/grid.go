package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is what a player is allowed to know about a cell.
type CellState int8

const (
	Unknown          CellState = -2
	Marked           CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * 0 to 8 mean the cell is open and has that many mined neighbors.
	 * Values from 64 up only appear once the game is over.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "-"
	case s == Marked:
		return "F"
	case s == 0:
		return "."
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	case s == CorrectlyFlagged:
		return "f"
	case s == ExplodedMine:
		return "X"
	case s == FalselyFlagged:
		return "x"
	case s == UnflaggedMine:
		return "*"
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (b *Board) String() string {
	return fmt.Sprintf("%dx%d", b.height, b.width)
}
