package maze

import "fmt"

// Stencil is a fixed relative-coordinate shape stamped into the center of a
// maze to reserve cells for decoration. Reserved cells become forbidden:
// generation never carves into them and the solver never crosses them.
type Stencil struct {
	Width   int
	Height  int
	Margin  int // minimum free cells required on every side of the shape
	Offsets []Coord
}

// FortyTwo is the built-in "42" decoration stencil.
var FortyTwo = Stencil{
	Width:  7,
	Height: 5,
	Margin: 4,
	Offsets: []Coord{
		{0, 0}, {4, 0}, {5, 0}, {6, 0},
		{0, 1}, {6, 1},
		{0, 2}, {1, 2}, {2, 2}, {4, 2}, {5, 2}, {6, 2},
		{2, 3}, {4, 3},
		{2, 4}, {4, 4}, {5, 4}, {6, 4},
	},
}

// Mark computes the forbidden-cell set for the stencil centered in the maze.
//
// The outcome is tagged rather than an error: when the maze is too small for
// shape plus margins the returned set is empty, and when the entry and/or
// exit would land inside the shape the set is empty and the reason names the
// conflicting endpoint(s). Callers must treat a skip as a degraded success,
// never as fatal.
func (s Stencil) Mark(m *Maze) (map[Coord]struct{}, string) {
	forbidden := make(map[Coord]struct{}, len(s.Offsets))
	if m.Height < s.Height+2*s.Margin || m.Width < s.Width+2*s.Margin {
		return forbidden, ""
	}

	topLeft := Coord{
		X: m.Width/2 - s.Width/2,
		Y: m.Height/2 - s.Height/2,
	}
	for _, off := range s.Offsets {
		forbidden[Coord{X: topLeft.X + off.X, Y: topLeft.Y + off.Y}] = struct{}{}
	}

	_, entryBlocked := forbidden[m.Entry]
	_, exitBlocked := forbidden[m.Exit]

	var reason string
	switch {
	case entryBlocked && exitBlocked:
		reason = fmt.Sprintf("entry %s and exit %s are both inside the decoration; decoration skipped", m.Entry, m.Exit)
	case entryBlocked:
		reason = fmt.Sprintf("entry %s is inside the decoration; decoration skipped", m.Entry)
	case exitBlocked:
		reason = fmt.Sprintf("exit %s is inside the decoration; decoration skipped", m.Exit)
	}
	if reason != "" {
		return map[Coord]struct{}{}, reason
	}
	return forbidden, ""
}
