package mines

// Cell is one grid position. Cells live in the Board's arena and are
// referred to by their flat index row*width+column.
type Cell struct {
	Row, Column int
	HasMine     bool
	NearbyMines int
	Revealed    bool
	Flagged     bool
}

// CellStatus is the per-cell state machine position.
type CellStatus int8

const (
	Hidden CellStatus = iota
	Flagged
	Revealed
)

func (c Cell) Status() CellStatus {
	switch {
	case c.Revealed:
		return Revealed
	case c.Flagged:
		return Flagged
	default:
		return Hidden
	}
}

func (s CellStatus) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "invalid"
	}
}
