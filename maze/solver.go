package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnreachable reports that no open route connects entry to exit.
	ErrUnreachable = errors.New("exit is not reachable from the maze entry point")

	// ErrNonAdjacentStep reports a coordinate path whose consecutive cells
	// are not one unit step apart. A correct solver never produces one;
	// the check exists purely as a structural consistency guard.
	ErrNonAdjacentStep = errors.New("non-adjacent step in path")
)

// Solve computes the shortest entry-to-exit path with breadth-first search,
// treating open walls between adjacent cells as edges and never expanding
// into forbidden cells.
//
// The returned path runs from entry to exit inclusive. When the frontier
// drains before the exit is reached the maze is disconnected and
// ErrUnreachable is returned.
func Solve(m *Maze, forbidden map[Coord]struct{}) ([]Coord, error) {
	visited := make(map[Coord]struct{}, m.Width*m.Height)
	visited[m.Entry] = struct{}{}

	queue := make([]Coord, 0, m.Width*m.Height)
	queue = append(queue, m.Entry)

	// Child to parent links of the BFS tree; the entry has no parent.
	parents := make(map[Coord]Coord)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// By BFS level order the parent chain of the exit is already a
		// shortest one, so expansion can stop here.
		if current == m.Exit {
			break
		}

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
			parents[next] = current
			queue = append(queue, next)
		}
	}

	if _, ok := parents[m.Exit]; !ok {
		return nil, fmt.Errorf("%w: entry %s, exit %s", ErrUnreachable, m.Entry, m.Exit)
	}

	// Walk parent links exit-to-entry, then reverse.
	backtrace := []Coord{m.Exit}
	for at := m.Exit; at != m.Entry; {
		at = parents[at]
		backtrace = append(backtrace, at)
	}
	for i, j := 0, len(backtrace)-1; i < j; i, j = i+1, j-1 {
		backtrace[i], backtrace[j] = backtrace[j], backtrace[i]
	}
	return backtrace, nil
}

// PathString converts a coordinate path to its direction-letter form, one
// letter per consecutive pair. Paths shorter than two cells yield "".
func PathString(path []Coord) (string, error) {
	if len(path) < 2 {
		return "", nil
	}
	var b strings.Builder
	b.Grow(len(path) - 1)
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		switch {
		case dx == 0 && dy == -1:
			b.WriteByte(byte(North))
		case dx == 1 && dy == 0:
			b.WriteByte(byte(East))
		case dx == 0 && dy == 1:
			b.WriteByte(byte(South))
		case dx == -1 && dy == 0:
			b.WriteByte(byte(West))
		default:
			return "", fmt.Errorf("%w: %s -> %s", ErrNonAdjacentStep, path[i-1], path[i])
		}
	}
	return b.String(), nil
}
