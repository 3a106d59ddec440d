package mines

// celltodo is an intrusive FIFO over flat cell indices.
type celltodo struct {
	next       []int
	head, tail int
}

func newCellTodo(size int) *celltodo {
	return &celltodo{next: make([]int, size), head: -1, tail: -1}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (int, bool) {
	if std.head < 0 {
		return -1, false
	}
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}

// reveal opens cell i and floods outwards through zero-count cells.
// Revealed and flagged cells stop the flood; every cell is queued at most
// once. It returns the number of cells it opened.
func (b *Board) reveal(i int) (opened int) {
	if b.cells[i].Revealed || b.cells[i].Flagged {
		return 0
	}

	queued := make([]bool, len(b.cells))
	todo := newCellTodo(len(b.cells))
	todo.add(i)
	queued[i] = true

	for {
		i, ok := todo.pop()
		if !ok {
			break
		}
		c := &b.cells[i]
		c.Revealed = true
		opened++

		if c.NearbyMines != 0 {
			continue
		}
		for _, j := range b.neighborsOf(i) {
			n := &b.cells[j]
			if queued[j] || n.Revealed || n.Flagged {
				continue
			}
			todo.add(j)
			queued[j] = true
		}
	}

	return opened
}
