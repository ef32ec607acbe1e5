package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// closedPairs counts the closed east/south adjacencies outside the
// forbidden set, i.e. the extra-connectivity candidate pool.
func closedPairs(m *Maze, forbidden map[Coord]struct{}) int {
	count := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if _, blocked := forbidden[Coord{X: x, Y: y}]; blocked {
				continue
			}
			if x+1 < m.Width && m.Grid[y][x].HasWall(wallEast) {
				if _, blocked := forbidden[Coord{X: x + 1, Y: y}]; !blocked {
					count++
				}
			}
			if y+1 < m.Height && m.Grid[y][x].HasWall(wallSouth) {
				if _, blocked := forbidden[Coord{X: x, Y: y + 1}]; !blocked {
					count++
				}
			}
		}
	}
	return count
}

func TestOpenExtraWalls(t *testing.T) {
	t.Run("opens the density target", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		gen := NewGenerator(rng)

		m, err := New(10, 10, Coord{X: 0, Y: 0}, Coord{X: 9, Y: 9})
		assert.NoError(t, err)
		gen.Carve(m, nil)

		before := closedPairs(m, nil)
		opened := gen.OpenExtraWalls(m, nil)

		// 10*10/25 = 4, and a carved 10x10 maze has far more than 4
		// closed interior pairs left.
		assert.Equal(t, 4, opened)
		assert.Equal(t, before-opened, closedPairs(m, nil))
	})

	t.Run("minimum of one opening on tiny mazes", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		gen := NewGenerator(rng)

		m, err := New(2, 2, Coord{X: 0, Y: 0}, Coord{X: 1, Y: 1})
		assert.NoError(t, err)
		gen.Carve(m, nil)

		// 2*2/25 = 0, clamped up to 1. A 2x2 spanning tree leaves exactly
		// one interior wall closed.
		opened := gen.OpenExtraWalls(m, nil)
		assert.Equal(t, 1, opened)
		assert.Equal(t, 0, closedPairs(m, nil))
	})

	t.Run("clamped to the candidate pool", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		gen := NewGenerator(rng)

		// Open every wall pair up front: no candidates remain.
		m, err := New(2, 2, Coord{X: 0, Y: 0}, Coord{X: 1, Y: 1})
		assert.NoError(t, err)
		for _, pair := range [][2]Coord{
			{{X: 0, Y: 0}, {X: 1, Y: 0}},
			{{X: 0, Y: 0}, {X: 0, Y: 1}},
			{{X: 1, Y: 0}, {X: 1, Y: 1}},
			{{X: 0, Y: 1}, {X: 1, Y: 1}},
		} {
			assert.NoError(t, m.Carve(pair[0], pair[1]))
		}
		assert.Equal(t, 0, gen.OpenExtraWalls(m, nil))
	})

	t.Run("never opens walls next to forbidden cells", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		gen := NewGenerator(rng)

		m, err := New(20, 20, Coord{X: 0, Y: 0}, Coord{X: 19, Y: 19})
		assert.NoError(t, err)
		forbidden, skipped := FortyTwo.Mark(m)
		assert.Empty(t, skipped)
		gen.Carve(m, forbidden)

		gen.OpenExtraWalls(m, forbidden)
		for c := range forbidden {
			assert.Equal(t, AllWalls, m.At(c))
		}
		assert.NoError(t, ValidateWalls(m))
		assert.NoError(t, ValidateBorders(m))
	})

	t.Run("only opens, never closes", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		gen := NewGenerator(rng)

		m, err := New(7, 7, Coord{X: 0, Y: 0}, Coord{X: 6, Y: 6})
		assert.NoError(t, err)
		gen.Carve(m, nil)

		snapshot := make([][]Cell, len(m.Grid))
		for y, row := range m.Grid {
			snapshot[y] = append([]Cell(nil), row...)
		}

		gen.OpenExtraWalls(m, nil)
		for y, row := range m.Grid {
			for x, cell := range row {
				// Every bit set now was already set before the pass.
				assert.Equal(t, cell, cell&snapshot[y][x])
			}
		}
	})

	t.Run("connectivity is preserved", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		gen := NewGenerator(rng)

		m, err := New(9, 9, Coord{X: 0, Y: 0}, Coord{X: 8, Y: 8})
		assert.NoError(t, err)
		gen.Carve(m, nil)
		gen.OpenExtraWalls(m, nil)

		assert.Len(t, Reachable(m, nil), 9*9)
	})
}
