// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import (
	"os"

	"github.com/saferwall/linkmap/internal/log"
)

// config holds the resolved settings for a single ParseSymbols call. It is
// a functional-options target rather than a mutable struct because this
// package's surface is three free functions, not a File type with a natural
// receiver to hang options off of; the zero value of every field here is
// already the right default.
type config struct {
	logger              *log.Helper
	maxRecords          int
	extraUsefulSections map[string]bool
}

// Option configures a ParseSymbols call.
type Option func(*config)

// WithLogger routes ParseSymbols' diagnostics (a warning per unrecognized
// __typeid_ symbol, a warning when WithMaxRecords truncates the input, and
// debug-level end-of-parse summary counts) through logger instead of the
// default, which discards everything below log.LevelError.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = log.NewHelper(logger)
	}
}

// WithMaxRecords bounds the number of body-line records the token stream
// will turn into symbols, guarding against adversarially huge input. A
// value <= 0 (the default) means unbounded.
func WithMaxRecords(n int) Option {
	return func(c *config) { c.maxRecords = n }
}

// WithExtraUsefulSections extends the fixed "useful section" set with
// vendor-specific section names, for build layouts that emit symbols into
// sections this parser wouldn't otherwise descend into. See the rcfile
// package for loading these from a .linkmaprc.toml file.
func WithExtraUsefulSections(names ...string) Option {
	return func(c *config) {
		if c.extraUsefulSections == nil {
			c.extraUsefulSections = make(map[string]bool, len(names))
		}
		for _, n := range names {
			c.extraUsefulSections[n] = true
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{
		logger: log.NewHelper(log.NewFilter(
			log.NewStdLogger(os.Stderr),
			log.FilterLevel(log.LevelError),
		)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
