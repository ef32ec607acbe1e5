package maze

// extraOpeningArea is the density divisor of the extra-connectivity pass:
// one extra wall opening per this many cells, with a minimum of one.
const extraOpeningArea = 25

type wallPair struct {
	a, b Coord
}

// OpenExtraWalls turns a perfect maze into one with multiple routes by
// opening extra walls between already-adjacent cells.
//
// The candidate pool is computed once up front: every east- and south-facing
// adjacent pair whose shared wall is still closed and whose cells are both
// outside the forbidden set. The target count, max(1, width*height/25)
// clamped to the pool size, is then drawn uniformly without replacement.
// The pass only ever opens walls, never closes them, and returns the number
// of walls opened.
func (g *Generator) OpenExtraWalls(m *Maze, forbidden map[Coord]struct{}) int {
	target := m.Width * m.Height / extraOpeningArea
	if target < 1 {
		target = 1
	}

	var candidates []wallPair
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Coord{X: x, Y: y}
			if _, blocked := forbidden[c]; blocked {
				continue
			}
			if x+1 < m.Width && m.Grid[y][x].HasWall(wallEast) {
				east := Coord{X: x + 1, Y: y}
				if _, blocked := forbidden[east]; !blocked {
					candidates = append(candidates, wallPair{a: c, b: east})
				}
			}
			if y+1 < m.Height && m.Grid[y][x].HasWall(wallSouth) {
				south := Coord{X: x, Y: y + 1}
				if _, blocked := forbidden[south]; !blocked {
					candidates = append(candidates, wallPair{a: c, b: south})
				}
			}
		}
	}

	if target > len(candidates) {
		target = len(candidates)
	}

	for opened := 0; opened < target; opened++ {
		pick := g.rng.Intn(len(candidates))
		pair := candidates[pick]
		candidates = append(candidates[:pick], candidates[pick+1:]...)
		_ = m.Carve(pair.a, pair.b)
	}
	return target
}
