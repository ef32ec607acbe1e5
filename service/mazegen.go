// Package service wires the maze engine into a generate-and-solve pipeline.
//
// A MazeService owns the run order described by the engine's contract:
// fresh maze, stencil marking, DFS carving, optional extra openings, BFS
// solve. All stages of a run draw from one seeded random stream, so a run
// is replayable bit-for-bit from its seed.
package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/a-maze-ing/config"
	"github.com/beka-birhanu/a-maze-ing/logger"
	"github.com/beka-birhanu/a-maze-ing/maze"
	"github.com/google/uuid"
)

// Result holds everything one generation run produced.
type Result struct {
	ID             uuid.UUID
	Seed           int64
	Maze           *maze.Maze
	Forbidden      map[maze.Coord]struct{}
	Path           []maze.Coord
	PathString     string
	ExtraOpenings  int
	StencilSkipped string // non-empty when decoration was dropped, with the reason
}

// MazeService generates and solves mazes according to its configuration.
type MazeService struct {
	cfg     *config.Config
	logger  logger.Logger
	stencil maze.Stencil
}

// NewMazeService creates a pipeline service for the given configuration.
func NewMazeService(cfg *config.Config, l logger.Logger) (*MazeService, error) {
	if cfg == nil {
		return nil, errors.New("maze service requires a config")
	}
	if l == nil {
		return nil, errors.New("maze service requires a logger")
	}
	return &MazeService{
		cfg:     cfg,
		logger:  l,
		stencil: maze.FortyTwo,
	}, nil
}

// Generate runs the full pipeline once with the configured seed.
func (s *MazeService) Generate() (*Result, error) {
	return s.GenerateSeeded(s.cfg.Seed)
}

// GenerateSeeded runs the full pipeline once with an explicit seed. The
// interactive viewer uses it to produce a fresh maze per regeneration while
// keeping each individual run reproducible.
func (s *MazeService) GenerateSeeded(seed int64) (*Result, error) {
	result := &Result{
		ID:        uuid.New(),
		Seed:      seed,
		Forbidden: map[maze.Coord]struct{}{},
	}

	m, err := maze.New(s.cfg.Height, s.cfg.Width, s.cfg.Entry, s.cfg.Exit)
	if err != nil {
		return nil, err
	}
	result.Maze = m

	if s.cfg.Decorate {
		result.Forbidden, result.StencilSkipped = s.stencil.Mark(m)
		if result.StencilSkipped != "" {
			s.logger.Warn(fmt.Sprintf("run %s: %s", result.ID, result.StencilSkipped))
		}
	}

	rng := rand.New(rand.NewSource(seed))
	gen := maze.NewGenerator(rng)
	gen.Carve(m, result.Forbidden)
	if !s.cfg.Perfect {
		result.ExtraOpenings = gen.OpenExtraWalls(m, result.Forbidden)
	}

	result.Path, err = maze.Solve(m, result.Forbidden)
	if err != nil {
		return nil, err
	}
	result.PathString, err = maze.PathString(result.Path)
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("run %s: generated %dx%d maze (seed %d, perfect=%t, extra openings %d, path length %d)",
		result.ID, m.Width, m.Height, seed, s.cfg.Perfect, result.ExtraOpenings, len(result.Path)))
	return result, nil
}
