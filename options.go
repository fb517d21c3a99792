// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package floors

import (
	"log/slog"
)

type Config struct {
	countIgnored bool
	logger       *slog.Logger
	onBasement   func(position int)
}

type Option func(c *Config) error

// WithCountIgnored controls whether bytes other than OPEN and CLOSE
// advance the position. The default is true.
func WithCountIgnored(flag bool) Option {
	return func(c *Config) error {
		c.countIgnored = flag
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.logger = logger
		return nil
	}
}

// WithOnBasement registers a callback that is invoked once, when the
// floor first reaches the basement. It is passed the 1-based position
// of the byte that tripped the latch.
func WithOnBasement(fn func(position int)) Option {
	return func(c *Config) error {
		c.onBasement = fn
		return nil
	}
}
