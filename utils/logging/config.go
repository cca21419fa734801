// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
)

type Config struct {
	Level  Level  `json:"level"`
	Format Format `json:"format"`
	Prefix string `json:"prefix"`
}

func DefaultConfig() Config {
	return Config{
		Level:  Info,
		Format: Plain,
	}
}

// New builds the logger described by [c], writing to stderr when [w] is nil.
func (c Config) New(w io.Writer) Logger {
	if c.Level == Off {
		return NoLog{}
	}
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(c.Prefix, c.Level, c.Format, w)
}
