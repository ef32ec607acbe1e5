// Package config loads and validates the maze configuration file.
//
// The file is plain KEY=VALUE text: blank lines and '#' comments are
// ignored and keys are case-insensitive. Parsing is delegated to godotenv,
// which speaks exactly this format; validation happens here so the rest of
// the program can rely on a well-formed Config.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beka-birhanu/a-maze-ing/maze"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig reports a missing, malformed or inconsistent config value.
var ErrInvalidConfig = errors.New("invalid config")

// requiredKeys must all be present in the config file.
var requiredKeys = []string{"WIDTH", "HEIGHT", "ENTRY", "EXIT", "OUTPUT_FILE", "PERFECT"}

// Config holds the validated generation settings.
type Config struct {
	Width      int
	Height     int
	Entry      maze.Coord
	Exit       maze.Coord
	OutputFile string
	Perfect    bool  // perfect maze (spanning tree) vs. extra openings
	Seed       int64 // optional, defaults to 0
	Decorate   bool  // optional, defaults to true: reserve the "42" stencil
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	raw, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		values[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	for _, key := range requiredKeys {
		if _, ok := values[key]; !ok {
			return nil, fmt.Errorf("%w: missing required key %s", ErrInvalidConfig, key)
		}
	}

	cfg := &Config{Decorate: true}

	if cfg.Width, err = parsePositiveInt(values["WIDTH"], "WIDTH"); err != nil {
		return nil, err
	}
	if cfg.Height, err = parsePositiveInt(values["HEIGHT"], "HEIGHT"); err != nil {
		return nil, err
	}
	if cfg.Entry, err = parseCoord(values["ENTRY"], "ENTRY"); err != nil {
		return nil, err
	}
	if cfg.Exit, err = parseCoord(values["EXIT"], "EXIT"); err != nil {
		return nil, err
	}
	if cfg.OutputFile = values["OUTPUT_FILE"]; cfg.OutputFile == "" {
		return nil, fmt.Errorf("%w: OUTPUT_FILE must be a non-empty string", ErrInvalidConfig)
	}
	if cfg.Perfect, err = parseBool(values["PERFECT"], "PERFECT"); err != nil {
		return nil, err
	}

	if seedStr, ok := values["SEED"]; ok {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: SEED must be an integer, got %q", ErrInvalidConfig, seedStr)
		}
		cfg.Seed = seed
	}
	if decStr, ok := values["DECORATE"]; ok {
		if cfg.Decorate, err = parseBool(decStr, "DECORATE"); err != nil {
			return nil, err
		}
	}

	if err := cfg.validateEndpoints(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateEndpoints fails fast on out-of-bounds or identical entry/exit so
// a broken config is reported before any generation work starts.
func (c *Config) validateEndpoints() error {
	inBounds := func(p maze.Coord) bool {
		return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
	}
	if !inBounds(c.Entry) {
		return fmt.Errorf("%w: ENTRY %s is outside the %dx%d maze", ErrInvalidConfig, c.Entry, c.Width, c.Height)
	}
	if !inBounds(c.Exit) {
		return fmt.Errorf("%w: EXIT %s is outside the %dx%d maze", ErrInvalidConfig, c.Exit, c.Width, c.Height)
	}
	if c.Entry == c.Exit {
		return fmt.Errorf("%w: ENTRY and EXIT cannot be the same coordinate", ErrInvalidConfig)
	}
	return nil
}

func parsePositiveInt(value, key string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidConfig, key, value)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, key, n)
	}
	return n, nil
}

// parseCoord parses an "x,y" pair, tolerating whitespace around the numbers.
func parseCoord(value, key string) (maze.Coord, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return maze.Coord{}, fmt.Errorf("%w: %s must be x,y, got %q", ErrInvalidConfig, key, value)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return maze.Coord{}, fmt.Errorf("%w: %s coordinates must be integers, got %q", ErrInvalidConfig, key, value)
	}
	return maze.Coord{X: x, Y: y}, nil
}

func parseBool(value, key string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "y":
		return true, nil
	case "false", "0", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidConfig, key, value)
}
