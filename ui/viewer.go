package ui

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/a-maze-ing/logger"
	"github.com/beka-birhanu/a-maze-ing/maze"
	"github.com/gdamore/tcell/v2"
)

// State is the drawable outcome of one generation run.
type State struct {
	Maze      *maze.Maze
	Path      string
	Forbidden map[maze.Coord]struct{}
}

// StateFunc produces a fresh state. The viewer calls it once on startup and
// again on every regenerate command; it is where the whole
// generation+solving pipeline gets re-invoked.
type StateFunc func() (State, error)

// viewPalette is cycled by the color command.
var viewPalette = []tcell.Color{
	tcell.ColorWhite,
	tcell.ColorRed,
	tcell.ColorLime,
	tcell.ColorYellow,
	tcell.ColorBlue,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
}

// Viewer is an interactive terminal session over generated mazes.
//
// Commands: r regenerates the maze, p toggles the solution path, c cycles
// the wall color, q (or Escape / Ctrl-C) quits.
type Viewer struct {
	screen    tcell.Screen
	regen     StateFunc
	logger    logger.Logger
	state     State
	showPath  bool
	colorMode int
}

// NewViewer creates a viewer over its own tcell screen.
func NewViewer(regen StateFunc, l logger.Logger) (*Viewer, error) {
	if regen == nil {
		return nil, errors.New("viewer requires a state function")
	}
	if l == nil {
		return nil, errors.New("viewer requires a logger")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Viewer{screen: screen, regen: regen, logger: l}, nil
}

// Run drives the event loop until the user quits or a regeneration fails.
func (v *Viewer) Run() error {
	defer v.screen.Fini()

	st, err := v.regen()
	if err != nil {
		return err
	}
	v.state = st
	v.draw()

	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			switch ev.Rune() {
			case 'q', 'Q':
				return nil
			case 'p', 'P':
				v.showPath = !v.showPath
				v.draw()
			case 'c', 'C':
				v.colorMode++
				v.draw()
			case 'r', 'R':
				st, err := v.regen()
				if err != nil {
					return err
				}
				v.state = st
				v.draw()
			}
		}
	}
}

func (v *Viewer) put(x, y int, r rune, style tcell.Style) {
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *Viewer) putText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.put(x+i, y, r, style)
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()

	m := v.state.Maze
	wallStyle := tcell.StyleDefault.Foreground(viewPalette[v.colorMode%len(viewPalette)])
	entryStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	exitStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	forbiddenStyle := tcell.StyleDefault.Background(tcell.ColorWhite)
	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua)

	onPath := map[maze.Coord]struct{}{}
	if v.showPath && v.state.Path != "" {
		cells, err := pathCells(m.Entry, v.state.Path, m.Width, m.Height)
		if err != nil {
			// Solver and renderer disagreeing is a logic defect; surface it
			// instead of drawing a wrong path.
			v.logger.Error(fmt.Sprintf("path rendering: %v", err))
		} else {
			onPath = cells
		}
	}

	for y := 0; y < m.Height; y++ {
		topY := 2 * y
		midY := 2*y + 1

		v.put(0, topY, '+', wallStyle)
		v.put(0, midY, ' ', tcell.StyleDefault)
		if m.Grid[y][0].HasWall(bit(maze.West)) {
			v.put(0, midY, '|', wallStyle)
		}

		for x := 0; x < m.Width; x++ {
			baseX := 4*x + 1

			// Row of north walls above the cells.
			wall := m.Grid[y][x].HasWall(bit(maze.North))
			for i := 0; i < 3; i++ {
				if wall {
					v.put(baseX+i, topY, '-', wallStyle)
				} else {
					v.put(baseX+i, topY, ' ', tcell.StyleDefault)
				}
			}
			v.put(baseX+3, topY, '+', wallStyle)

			// Cell interior.
			pos := maze.Coord{X: x, Y: y}
			interior, style := "   ", tcell.StyleDefault
			switch {
			case pos == m.Entry:
				interior, style = " E ", entryStyle
			case pos == m.Exit:
				interior, style = " X ", exitStyle
			case contains(v.state.Forbidden, pos):
				interior, style = "   ", forbiddenStyle
			case contains(onPath, pos):
				interior, style = " • ", pathStyle
			}
			v.putText(baseX, midY, interior, style)

			// East wall to the right of the cell.
			if m.Grid[y][x].HasWall(bit(maze.East)) {
				v.put(baseX+3, midY, '|', wallStyle)
			} else {
				v.put(baseX+3, midY, ' ', tcell.StyleDefault)
			}
		}
	}

	// Bottom boundary.
	bottomY := 2 * m.Height
	v.put(0, bottomY, '+', wallStyle)
	for x := 0; x < m.Width; x++ {
		baseX := 4*x + 1
		wall := m.Grid[m.Height-1][x].HasWall(bit(maze.South))
		for i := 0; i < 3; i++ {
			if wall {
				v.put(baseX+i, bottomY, '-', wallStyle)
			} else {
				v.put(baseX+i, bottomY, ' ', tcell.StyleDefault)
			}
		}
		v.put(baseX+3, bottomY, '+', wallStyle)
	}

	helpStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	v.putText(0, bottomY+2, "[r] regenerate  [p] show/hide path  [c] change color  [q] quit", helpStyle)
	v.screen.Show()
}
