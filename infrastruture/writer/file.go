// Package writer serializes finished mazes to the project output format:
// one line of uppercase hex digits per grid row (one digit per cell), a
// blank line, the entry and exit coordinates as "x,y", and the solution
// path as direction letters. Every line is newline-terminated.
package writer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/a-maze-ing/logger"
	"github.com/beka-birhanu/a-maze-ing/maze"
)

// ErrInvalidOutput reports maze or path data that must not be serialized.
var ErrInvalidOutput = errors.New("invalid output data")

// FileWriter writes generation results to the configured output file.
type FileWriter struct {
	logger logger.Logger
}

// New creates a file writer logging through l.
func New(l logger.Logger) (*FileWriter, error) {
	if l == nil {
		return nil, errors.New("file writer requires a logger")
	}
	return &FileWriter{logger: l}, nil
}

// Encode validates the maze and path and writes the output format to w.
func (fw *FileWriter) Encode(w io.Writer, m *maze.Maze, path string) error {
	if err := validateGrid(m); err != nil {
		return err
	}
	if err := validatePath(path); err != nil {
		return err
	}

	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			fmt.Fprintf(&b, "%X", uint8(m.Grid[y][x]))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s\n", m.Entry)
	fmt.Fprintf(&b, "%s\n", m.Exit)
	fmt.Fprintf(&b, "%s\n", path)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile serializes the maze and path to the named file, replacing any
// previous contents.
func (fw *FileWriter) WriteFile(filename string, m *maze.Maze, path string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := fw.Encode(f, m, path); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fw.logger.Info(fmt.Sprintf("wrote maze output to %s", filename))
	return nil
}

func validateGrid(m *maze.Maze) error {
	if len(m.Grid) != m.Height {
		return fmt.Errorf("%w: grid height %d does not match maze height %d", ErrInvalidOutput, len(m.Grid), m.Height)
	}
	for y, row := range m.Grid {
		if len(row) != m.Width {
			return fmt.Errorf("%w: grid width does not match maze width at row %d", ErrInvalidOutput, y)
		}
		for x, cell := range row {
			if cell > 15 {
				return fmt.Errorf("%w: invalid cell value at (%d,%d): %d (expected 0..15)", ErrInvalidOutput, x, y, cell)
			}
		}
	}
	return nil
}

func validatePath(path string) error {
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case 'N', 'E', 'S', 'W':
		default:
			return fmt.Errorf("%w: invalid path char %q at index %d (expected N/E/S/W)", ErrInvalidOutput, string(path[i]), i)
		}
	}
	return nil
}
