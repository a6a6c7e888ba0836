package board

// GridBoard is an explicit set of Empty coordinates; every coordinate
// outside the set is Impassable. Useful for carving islands and
// blocking pieces out of an otherwise open board.
type GridBoard struct {
	empty map[[2]int]bool
}

// NewGridBoard builds a GridBoard whose Empty tiles are exactly the
// given coordinates.
func NewGridBoard(coords [][2]int) *GridBoard {
	empty := make(map[[2]int]bool, len(coords))
	for _, c := range coords {
		empty[c] = true
	}
	return &GridBoard{empty: empty}
}

// TileAt implements Board.
func (b *GridBoard) TileAt(x, y int) TileState {
	if b.empty[[2]int{x, y}] {
		return Empty
	}
	return Impassable
}
