package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrWallMismatch reports two adjacent cells that disagree about their
	// shared wall.
	ErrWallMismatch = errors.New("wall sharing mismatch")

	// ErrOpenBorderWall reports an open wall on the outer border.
	ErrOpenBorderWall = errors.New("unclosed border wall")
)

// ValidateWalls checks the wall-coherence invariant: for every interior
// east/south adjacency, both cells must agree on the shared wall. It never
// mutates the maze. A failure indicates an upstream logic defect.
func ValidateWalls(m *Maze) error {
	check := func(a Coord, da Direction, b Coord, db Direction) error {
		bitA, _ := da.Bit()
		bitB, _ := db.Bit()
		closedA := m.At(a).HasWall(bitA)
		closedB := m.At(b).HasWall(bitB)
		if closedA != closedB {
			return fmt.Errorf("%w: cell %s mask=%d %c-closed=%t, neighbor %s mask=%d %c-closed=%t",
				ErrWallMismatch, a, m.At(a), da, closedA, b, m.At(b), db, closedB)
		}
		return nil
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Coord{X: x, Y: y}
			if x+1 < m.Width {
				if err := check(c, East, Coord{X: x + 1, Y: y}, West); err != nil {
					return err
				}
			}
			if y+1 < m.Height {
				if err := check(c, South, Coord{X: x, Y: y + 1}, North); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ValidateBorders checks that every outer-boundary wall of the maze is
// closed, failing on the first open one.
func ValidateBorders(m *Maze) error {
	for x := 0; x < m.Width; x++ {
		if !m.Grid[0][x].HasWall(wallNorth) {
			return fmt.Errorf("%w: direction N at %s", ErrOpenBorderWall, Coord{X: x, Y: 0})
		}
		if !m.Grid[m.Height-1][x].HasWall(wallSouth) {
			return fmt.Errorf("%w: direction S at %s", ErrOpenBorderWall, Coord{X: x, Y: m.Height - 1})
		}
	}
	for y := 0; y < m.Height; y++ {
		if !m.Grid[y][0].HasWall(wallWest) {
			return fmt.Errorf("%w: direction W at %s", ErrOpenBorderWall, Coord{X: 0, Y: y})
		}
		if !m.Grid[y][m.Width-1].HasWall(wallEast) {
			return fmt.Errorf("%w: direction E at %s", ErrOpenBorderWall, Coord{X: m.Width - 1, Y: y})
		}
	}
	return nil
}

// Reachable returns the set of cells reachable from the entry over open
// walls, excluding forbidden cells. It reports, never judges: callers decide
// what "fully connected" means for their maze.
func Reachable(m *Maze, forbidden map[Coord]struct{}) map[Coord]struct{} {
	visited := make(map[Coord]struct{}, m.Width*m.Height)
	visited[m.Entry] = struct{}{}
	queue := []Coord{m.Entry}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		mask := m.At(current)
		for _, d := range Directions {
			bit, _ := d.Bit()
			if mask.HasWall(bit) {
				continue
			}
			dx, dy, _ := d.Delta()
			next := Coord{X: current.X + dx, Y: current.Y + dy}
			if !m.InBounds(next) {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			if _, blocked := forbidden[next]; blocked {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return visited
}
