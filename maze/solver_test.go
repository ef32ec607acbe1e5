package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// shortestByExhaustion enumerates every simple path between entry and exit
// with depth-first backtracking and returns the minimum length. Only usable
// on small mazes; it is the oracle BFS is checked against.
func shortestByExhaustion(m *Maze, forbidden map[Coord]struct{}) int {
	best := -1
	visiting := map[Coord]struct{}{m.Entry: {}}

	var walk func(at Coord, length int)
	walk = func(at Coord, length int) {
		if at == m.Exit {
			if best == -1 || length < best {
				best = length
			}
			return
		}
		mask := m.At(at)
		for _, d := range Directions {
			b, _ := d.Bit()
			if mask.HasWall(b) {
				continue
			}
			dx, dy, _ := d.Delta()
			next := Coord{X: at.X + dx, Y: at.Y + dy}
			if !m.InBounds(next) {
				continue
			}
			if _, seen := visiting[next]; seen {
				continue
			}
			if _, blocked := forbidden[next]; blocked {
				continue
			}
			visiting[next] = struct{}{}
			walk(next, length+1)
			delete(visiting, next)
		}
	}
	walk(m.Entry, 0)
	return best
}

func TestSolve(t *testing.T) {
	t.Run("path runs entry to exit over unit steps", func(t *testing.T) {
		m := generate(t, 6, 6, Coord{X: 0, Y: 0}, Coord{X: 5, Y: 5}, 42, nil)
		path, err := Solve(m, nil)
		assert.NoError(t, err)
		assert.Equal(t, m.Entry, path[0])
		assert.Equal(t, m.Exit, path[len(path)-1])
		for i := 1; i < len(path); i++ {
			dx := path[i].X - path[i-1].X
			dy := path[i].Y - path[i-1].Y
			assert.Equal(t, 1, dx*dx+dy*dy, "step %d is not a unit move", i)
		}
	})

	t.Run("matches exhaustive search on small mazes", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			m, err := New(6, 6, Coord{X: 0, Y: 0}, Coord{X: 5, Y: 5})
			assert.NoError(t, err)
			gen := NewGenerator(rand.New(rand.NewSource(seed)))
			gen.Carve(m, nil)
			// Extra openings create alternative routes; BFS must still
			// find the shortest one.
			gen.OpenExtraWalls(m, nil)

			path, err := Solve(m, nil)
			assert.NoError(t, err)
			assert.Equal(t, shortestByExhaustion(m, nil), len(path)-1, "seed %d", seed)
		}
	})

	t.Run("unreachable exit", func(t *testing.T) {
		// Leave the exit fully walled by never carving: a fresh maze has
		// no open edges at all.
		m, err := New(4, 4, Coord{X: 0, Y: 0}, Coord{X: 3, Y: 3})
		assert.NoError(t, err)
		_, err = Solve(m, nil)
		assert.ErrorIs(t, err, ErrUnreachable)
		assert.Contains(t, err.Error(), "0,0")
		assert.Contains(t, err.Error(), "3,3")
	})

	t.Run("forbidden cells block traversal even with open walls", func(t *testing.T) {
		// 1x3 corridor with all interior walls open; forbidding the middle
		// cell disconnects the ends.
		m, err := New(1, 3, Coord{X: 0, Y: 0}, Coord{X: 2, Y: 0})
		assert.NoError(t, err)
		assert.NoError(t, m.Carve(Coord{X: 0, Y: 0}, Coord{X: 1, Y: 0}))
		assert.NoError(t, m.Carve(Coord{X: 1, Y: 0}, Coord{X: 2, Y: 0}))

		path, err := Solve(m, nil)
		assert.NoError(t, err)
		assert.Len(t, path, 3)

		_, err = Solve(m, map[Coord]struct{}{{X: 1, Y: 0}: {}})
		assert.ErrorIs(t, err, ErrUnreachable)
	})
}

func TestPathString(t *testing.T) {
	t.Run("maps unit steps to letters", func(t *testing.T) {
		path := []Coord{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
		s, err := PathString(path)
		assert.NoError(t, err)
		assert.Equal(t, "NESW", s)
	})

	t.Run("short paths yield empty string", func(t *testing.T) {
		s, err := PathString(nil)
		assert.NoError(t, err)
		assert.Equal(t, "", s)

		s, err = PathString([]Coord{{X: 3, Y: 3}})
		assert.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("non-adjacent step", func(t *testing.T) {
		_, err := PathString([]Coord{{X: 0, Y: 0}, {X: 2, Y: 0}})
		assert.ErrorIs(t, err, ErrNonAdjacentStep)

		_, err = PathString([]Coord{{X: 0, Y: 0}, {X: 1, Y: 1}})
		assert.ErrorIs(t, err, ErrNonAdjacentStep)
	})

	t.Run("round-trips against the solver", func(t *testing.T) {
		m := generate(t, 7, 9, Coord{X: 0, Y: 0}, Coord{X: 8, Y: 6}, 21, nil)
		path, err := Solve(m, nil)
		assert.NoError(t, err)
		s, err := PathString(path)
		assert.NoError(t, err)

		// Replaying the letters from the entry reconstructs the exact
		// coordinate sequence.
		at := m.Entry
		replay := []Coord{at}
		for i := 0; i < len(s); i++ {
			dx, dy, err := Direction(s[i]).Delta()
			assert.NoError(t, err)
			at = Coord{X: at.X + dx, Y: at.Y + dy}
			replay = append(replay, at)
		}
		assert.Equal(t, path, replay)
	})
}
