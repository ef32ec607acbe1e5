package maze

// Cell is the wall mask of a single grid cell. The low four bits map to the
// four walls (N=1, E=2, S=4, W=8); a set bit means the wall is closed, a
// cleared bit means it is open. Valid values range 0 through 15.
type Cell uint8

const (
	wallNorth Cell = 1 << iota
	wallEast
	wallSouth
	wallWest

	// AllWalls is the mask of a fully enclosed cell, the state every cell
	// starts in before carving.
	AllWalls = wallNorth | wallEast | wallSouth | wallWest
)

// Open clears the wall bit, opening that side of the cell.
func (c Cell) Open(bit Cell) Cell {
	return c &^ bit
}

// Close sets the wall bit, closing that side of the cell.
func (c Cell) Close(bit Cell) Cell {
	return c | bit
}

// HasWall reports whether the wall bit is set (wall closed).
func (c Cell) HasWall(bit Cell) bool {
	return c&bit != 0
}
