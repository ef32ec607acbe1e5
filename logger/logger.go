// Package logger provides the small prefixed console logger used across the
// application. Output lines look like:
//
//	2026/08/25 10:04:11 [APP] [INFO] Maze generated
//
// with the prefix rendered in the color given at construction time.
package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/beka-birhanu/a-maze-ing/config"
)

// Logger is the logging contract consumed by the rest of the application.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Console writes colored, prefixed log lines to a single writer. It is safe
// for use from multiple goroutines.
type Console struct {
	prefix string
	color  string
	out    io.Writer
	mu     sync.Mutex
}

// New creates a console logger with the given prefix and ANSI color writing
// to out.
func New(prefix, color string, out io.Writer) (*Console, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix cannot be empty")
	}
	if out == nil {
		return nil, errors.New("logger output writer cannot be nil")
	}
	return &Console{prefix: prefix, color: color, out: out}, nil
}

// Info logs an informational message.
func (c *Console) Info(msg string) {
	c.log(config.LogInfoColor+"[INFO]"+config.LogColorReset, msg)
}

// Warn logs a recoverable problem.
func (c *Console) Warn(msg string) {
	c.log(config.LogWarnColor+"[WARN]"+config.LogColorReset, msg)
}

// Error logs a failure.
func (c *Console) Error(msg string) {
	c.log(config.LogErrorColor+"[ERROR]"+config.LogColorReset, msg)
}

func (c *Console) log(level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "%s %s[%s]%s %s %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		c.color, c.prefix, config.ColorReset, level, msg)
}
