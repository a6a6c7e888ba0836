package board

// RectBoard is a rectangular board bounded by [XMin,XMax]×[YMin,YMax]
// inclusive; every tile inside the rectangle is Empty, every tile
// outside is Impassable.
type RectBoard struct {
	XMin, XMax int
	YMin, YMax int
}

// TileAt implements Board.
func (b RectBoard) TileAt(x, y int) TileState {
	if x < b.XMin || x > b.XMax || y < b.YMin || y > b.YMax {
		return Impassable
	}
	return Empty
}
