// Package ui renders generated mazes for humans: an ANSI string renderer
// for plain terminal output and an interactive tcell viewer. It is purely
// presentational and never mutates engine state.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/a-maze-ing/maze"
)

// ErrInvalidRender reports maze or path data the renderer refuses to draw.
var ErrInvalidRender = errors.New("invalid render data")

// wallPalette is cycled by the color command; index 0 means no color.
var wallPalette = []string{
	"",
	"\033[31m", // red
	"\033[32m", // green
	"\033[33m", // yellow
	"\033[34m", // blue
	"\033[35m", // magenta
	"\033[36m", // cyan
}

const (
	ansiReset     = "\033[0m"
	ansiBoldWhite = "\033[1;37m"
	ansiBgYellow  = "\033[43m"
	ansiBgGreen   = "\033[42m"
	ansiBgWhite   = "\033[47m"
)

// Options control what Render draws besides the walls.
type Options struct {
	Path      string // direction-letter solution, drawn as dots when non-empty
	Forbidden map[maze.Coord]struct{}
	ColorMode int // index into the wall color palette, any value
}

func bit(d maze.Direction) maze.Cell {
	b, _ := d.Bit()
	return b
}

// pathCells replays a direction-letter path from the entry and collects the
// visited cells, validating letters and bounds along the way.
func pathCells(entry maze.Coord, path string, width, height int) (map[maze.Coord]struct{}, error) {
	at := entry
	if at.X < 0 || at.X >= width || at.Y < 0 || at.Y >= height {
		return nil, fmt.Errorf("%w: entry out of bounds: %s", ErrInvalidRender, entry)
	}
	visited := map[maze.Coord]struct{}{at: {}}
	for i := 0; i < len(path); i++ {
		dx, dy, err := maze.Direction(path[i]).Delta()
		if err != nil {
			return nil, fmt.Errorf("%w: invalid path char %q (expected N/E/S/W)", ErrInvalidRender, string(path[i]))
		}
		at = maze.Coord{X: at.X + dx, Y: at.Y + dy}
		if at.X < 0 || at.X >= width || at.Y < 0 || at.Y >= height {
			return nil, fmt.Errorf("%w: path goes out of bounds at step %d", ErrInvalidRender, i)
		}
		visited[at] = struct{}{}
	}
	return visited, nil
}

// Render draws the maze as an ANSI string: '+' corners, '---' and '|'
// walls, an E badge on the entry, an X badge on the exit, white-background
// forbidden cells and dots along the solution path.
func Render(m *maze.Maze, opts Options) (string, error) {
	if len(m.Grid) != m.Height {
		return "", fmt.Errorf("%w: grid dimensions do not match width/height", ErrInvalidRender)
	}
	for y, row := range m.Grid {
		if len(row) != m.Width {
			return "", fmt.Errorf("%w: grid dimensions do not match width/height", ErrInvalidRender)
		}
		for x, cell := range row {
			if cell > 15 {
				return "", fmt.Errorf("%w: invalid cell value at (%d,%d): %d (expected 0..15)", ErrInvalidRender, x, y, cell)
			}
		}
	}

	onPath := map[maze.Coord]struct{}{}
	if opts.Path != "" {
		var err error
		if onPath, err = pathCells(m.Entry, opts.Path, m.Width, m.Height); err != nil {
			return "", err
		}
	}

	wallColor := wallPalette[((opts.ColorMode%len(wallPalette))+len(wallPalette))%len(wallPalette)]
	cwall := func(s string) string {
		if wallColor == "" {
			return s
		}
		return wallColor + s + ansiReset
	}

	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		// Top boundary of this row.
		b.WriteString("+")
		for x := 0; x < m.Width; x++ {
			if m.Grid[y][x].HasWall(bit(maze.North)) {
				b.WriteString(cwall("---"))
			} else {
				b.WriteString("   ")
			}
			b.WriteString("+")
		}
		b.WriteByte('\n')

		// Cell interiors with west walls.
		for x := 0; x < m.Width; x++ {
			if m.Grid[y][x].HasWall(bit(maze.West)) {
				b.WriteString(cwall("|"))
			} else {
				b.WriteString(" ")
			}
			pos := maze.Coord{X: x, Y: y}
			switch {
			case pos == m.Entry:
				b.WriteString(ansiBoldWhite + ansiBgYellow + " E " + ansiReset)
			case pos == m.Exit:
				b.WriteString(ansiBoldWhite + ansiBgGreen + " X " + ansiReset)
			case contains(opts.Forbidden, pos):
				b.WriteString(ansiBgWhite + "   " + ansiReset)
			case contains(onPath, pos):
				b.WriteString(" • ")
			default:
				b.WriteString("   ")
			}
		}
		if m.Grid[y][m.Width-1].HasWall(bit(maze.East)) {
			b.WriteString(cwall("|"))
		} else {
			b.WriteString(" ")
		}
		b.WriteByte('\n')
	}

	// Bottom boundary of the maze.
	b.WriteString("+")
	for x := 0; x < m.Width; x++ {
		if m.Grid[m.Height-1][x].HasWall(bit(maze.South)) {
			b.WriteString(cwall("---"))
		} else {
			b.WriteString("   ")
		}
		b.WriteString("+")
	}
	b.WriteByte('\n')

	return b.String(), nil
}

func contains(set map[maze.Coord]struct{}, c maze.Coord) bool {
	if set == nil {
		return false
	}
	_, ok := set[c]
	return ok
}
