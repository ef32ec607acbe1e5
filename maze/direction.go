package maze

import (
	"errors"
	"fmt"
)

// Direction is one of the four canonical direction letters: N, E, S or W.
type Direction byte

const (
	North Direction = 'N'
	East  Direction = 'E'
	South Direction = 'S'
	West  Direction = 'W'
)

// Directions is the canonical exploration order. Every neighbor walk in the
// engine (DFS carving, BFS solving, validators) iterates in this order, so
// it must stay stable: it decides tie-breaking and therefore reproducibility.
var Directions = [4]Direction{North, East, South, West}

// ErrInvalidDirection reports a direction letter outside N, E, S, W.
var ErrInvalidDirection = errors.New("invalid direction")

// Bit returns the wall-mask bit for the direction.
func (d Direction) Bit() (Cell, error) {
	switch d {
	case North:
		return wallNorth, nil
	case East:
		return wallEast, nil
	case South:
		return wallSouth, nil
	case West:
		return wallWest, nil
	}
	return 0, fmt.Errorf("%w: %q, expected one of N, E, S, W", ErrInvalidDirection, string(d))
}

// Opposite returns the direction of the shared wall seen from the other side.
func (d Direction) Opposite() (Direction, error) {
	switch d {
	case North:
		return South, nil
	case East:
		return West, nil
	case South:
		return North, nil
	case West:
		return East, nil
	}
	return 0, fmt.Errorf("%w: %q, expected one of N, E, S, W", ErrInvalidDirection, string(d))
}

// Delta returns the (dx, dy) offset of a one-cell step in the direction.
// x grows eastward, y grows southward.
func (d Direction) Delta() (int, int, error) {
	switch d {
	case North:
		return 0, -1, nil
	case East:
		return 1, 0, nil
	case South:
		return 0, 1, nil
	case West:
		return -1, 0, nil
	}
	return 0, 0, fmt.Errorf("%w: %q, expected one of N, E, S, W", ErrInvalidDirection, string(d))
}
