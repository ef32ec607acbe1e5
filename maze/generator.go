package maze

import "math/rand"

// Generator carves mazes with randomized iterative depth-first search.
//
// It owns no randomness of its own: the caller supplies a seeded *rand.Rand
// and the generator consumes exactly one draw per branching decision, in a
// fixed order, so identical inputs always reproduce identical grids. The
// same stream is shared with OpenExtraWalls when a non-perfect maze is
// requested, keeping a whole run replayable from a single seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Carve turns a fresh, fully walled maze into a perfect maze: a spanning
// tree over every non-forbidden cell reachable from the entry.
//
// Cells isolated by forbidden cells stay fully walled; that is expected and
// only becomes a problem if the exit is among them, which Solve detects.
// The entry must already be validated in bounds and not forbidden.
func (g *Generator) Carve(m *Maze, forbidden map[Coord]struct{}) {
	visited := make(map[Coord]struct{}, m.Width*m.Height)
	visited[m.Entry] = struct{}{}
	stack := []Coord{m.Entry}

	// Scratch buffer for eligible neighbors, at most four per cell.
	eligible := make([]Coord, 0, 4)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		eligible = eligible[:0]
		for _, d := range Directions {
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
			eligible = append(eligible, next)
		}

		if len(eligible) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := eligible[g.rng.Intn(len(eligible))]
		_ = m.Carve(current, next)
		visited[next] = struct{}{}
		stack = append(stack, next)
	}
}
