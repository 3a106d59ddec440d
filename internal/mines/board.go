package mines

// Board owns a dense height x width arena of cells stored row-major.
type Board struct {
	height, width int
	cells         []Cell
	mined         bool
}

// moore lists the neighbor offsets as (drow, dcol) in NW, N, NE, W, E, SW,
// S, SE order.
var moore = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, +1},
	{0, -1}, {0, +1},
	{+1, -1}, {+1, 0}, {+1, +1},
}

func checkDimensions(height, width int) error {
	if height <= 0 || width <= 0 {
		return misuse("board dimensions must be positive, got %dx%d", height, width)
	}
	if height > MaxCells/width {
		return misuse("board %dx%d exceeds %d cells", height, width, MaxCells)
	}
	return nil
}

// NewBoard allocates a board of default cells. Non-positive dimensions and
// boards larger than [MaxCells] are an [EngineMisuse].
func NewBoard(height, width int) (*Board, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}
	cells := make([]Cell, height*width)
	for i := range cells {
		cells[i].Row = i / width
		cells[i].Column = i % width
	}
	return &Board{height: height, width: width, cells: cells}, nil
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }
func (b *Board) Size() int   { return len(b.cells) }

// MinesPlaced reports whether mine placement already ran on this board.
func (b *Board) MinesPlaced() bool { return b.mined }

func (b *Board) InBounds(row, column int) bool {
	return 0 <= row && row < b.height && 0 <= column && column < b.width
}

// Index returns the flat index of (row, column) and false when the
// coordinate is outside the grid.
func (b *Board) Index(row, column int) (int, bool) {
	if !b.InBounds(row, column) {
		return -1, false
	}
	return row*b.width + column, true
}

// CellAt returns a copy of the cell at (row, column). Absence is the normal
// signal for edge clipping, not an error.
func (b *Board) CellAt(row, column int) (Cell, bool) {
	i, ok := b.Index(row, column)
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Cell returns the cell with flat index i. i must be in [0, Size()).
func (b *Board) Cell(i int) Cell {
	return b.cells[i]
}

// Neighbors returns the flat indices of the present cells of the Moore
// neighborhood of (row, column).
func (b *Board) Neighbors(row, column int) []int {
	result := make([]int, 0, len(moore))
	for _, d := range moore {
		if i, ok := b.Index(row+d[0], column+d[1]); ok {
			result = append(result, i)
		}
	}
	return result
}

func (b *Board) neighborsOf(i int) []int {
	return b.Neighbors(i/b.width, i%b.width)
}

// AllCells returns a copy of every cell in row-major order.
func (b *Board) AllCells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b *Board) countNearby() {
	for i := range b.cells {
		n := 0
		for _, j := range b.neighborsOf(i) {
			if b.cells[j].HasMine {
				n++
			}
		}
		b.cells[i].NearbyMines = n
	}
}

// MineCount is the number of mined cells on the board.
func (b *Board) MineCount() (count int) {
	for _, c := range b.cells {
		if c.HasMine {
			count++
		}
	}
	return
}
