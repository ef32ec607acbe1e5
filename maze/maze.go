/*
Package maze implements the maze generation and solving engine.

It defines the `Maze` structure, a rectangular grid of 4-bit wall masks,
together with the direction table and bit-level wall operations every other
part of the engine builds on.

The package includes seeded depth-first maze generation with forbidden-cell
avoidance, an extra-connectivity pass for non-perfect mazes, a BFS
shortest-path solver, a "42" decoration stencil, and structural validators
usable as test oracles.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension reports a non-positive width or height.
	ErrInvalidDimension = errors.New("invalid maze dimension")

	// ErrOutOfBounds reports a coordinate outside the maze grid.
	ErrOutOfBounds = errors.New("coordinate out of maze bounds")

	// ErrDegenerateEndpoints reports an entry equal to the exit.
	ErrDegenerateEndpoints = errors.New("entry and exit points cannot be the same")
)

// Coord is a grid coordinate. X indexes columns [0, width), Y indexes rows
// [0, height). It is a value type, compared and hashed by value.
type Coord struct {
	X int
	Y int
}

// String renders the coordinate in the "x,y" form used by config files,
// output files and error messages.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Maze represents a rectangular maze of wall-mask cells. The grid is indexed
// row first: Grid[y][x]. A freshly constructed maze has every cell fully
// enclosed; carving operations open walls in place during generation, after
// which the maze is only read.
type Maze struct {
	Width  int
	Height int
	Entry  Coord
	Exit   Coord
	Grid   [][]Cell
}

// New initializes a maze of the given dimensions with every wall closed.
// Entry and exit must lie inside the grid and must differ.
func New(height, width int, entry, exit Coord) (*Maze, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width value cannot be 0 or negative, got %d", ErrInvalidDimension, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height value cannot be 0 or negative, got %d", ErrInvalidDimension, height)
	}

	m := &Maze{
		Width:  width,
		Height: height,
	}

	var err error
	if m.Entry, err = m.ValidateCoord(entry, "entry"); err != nil {
		return nil, err
	}
	if m.Exit, err = m.ValidateCoord(exit, "exit"); err != nil {
		return nil, err
	}
	if m.Entry == m.Exit {
		return nil, fmt.Errorf("%w: %s", ErrDegenerateEndpoints, entry)
	}

	m.Grid = make([][]Cell, height)
	for y := range m.Grid {
		row := make([]Cell, width)
		for x := range row {
			row[x] = AllWalls
		}
		m.Grid[y] = row
	}
	return m, nil
}

// InBounds reports whether the coordinate lies inside the grid.
func (m *Maze) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// ValidateCoord returns the coordinate unchanged when it is in bounds, and
// an ErrOutOfBounds mentioning name otherwise. It guards coordinates coming
// from callers; internally derived coordinates are already known valid.
func (m *Maze) ValidateCoord(c Coord, name string) (Coord, error) {
	if !m.InBounds(c) {
		return Coord{}, fmt.Errorf("%w: %s %s for %dx%d maze", ErrOutOfBounds, name, c, m.Width, m.Height)
	}
	return c, nil
}

// At returns the wall mask at the coordinate. Bounds are the caller's
// responsibility.
func (m *Maze) At(c Coord) Cell {
	return m.Grid[c.Y][c.X]
}
