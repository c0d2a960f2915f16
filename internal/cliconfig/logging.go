package cliconfig

import (
	"io"

	"github.com/reugn/go-calendar/logger"
)

// NewLogger returns a console zerolog logger writing to w at the
// configured level.
func (c *Config) NewLogger(w io.Writer) (*logger.ZerologLogger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.NewZerologLogger(w, level), nil
}
