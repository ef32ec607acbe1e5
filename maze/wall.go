package maze

import (
	"errors"
	"fmt"
)

// ErrNotAdjacent reports a carve request between cells that are not one
// unit step apart.
var ErrNotAdjacent = errors.New("coordinates are not adjacent")

// Carve opens the wall between two adjacent cells, clearing the shared
// wall bit on both sides so the wall-coherence invariant holds. It is the
// only grid mutator outside of initialization. The masks are untouched when
// validation fails.
func (m *Maze) Carve(a, b Coord) error {
	if _, err := m.ValidateCoord(a, "coord1"); err != nil {
		return err
	}
	if _, err := m.ValidateCoord(b, "coord2"); err != nil {
		return err
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	var dir Direction
	switch {
	case dx == 1 && dy == 0:
		dir = East
	case dx == -1 && dy == 0:
		dir = West
	case dx == 0 && dy == -1:
		dir = North
	case dx == 0 && dy == 1:
		dir = South
	default:
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}

	bit, _ := dir.Bit()
	opp, _ := dir.Opposite()
	oppBit, _ := opp.Bit()

	m.Grid[a.Y][a.X] = m.Grid[a.Y][a.X].Open(bit)
	m.Grid[b.Y][b.X] = m.Grid[b.Y][b.X].Open(oppBit)
	return nil
}
