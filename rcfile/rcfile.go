// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package rcfile loads an optional ".linkmaprc.toml" file that extends the
// fixed "useful section" set linkmap.ParseSymbols otherwise hard-codes, for
// build layouts that route symbols into vendor-specific sections.
//
// A missing file is not an error: Load returns a nil *Config, and callers
// should fall back to the parser's built-in defaults.
package rcfile

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/saferwall/linkmap"
)

// Config is the decoded shape of a .linkmaprc.toml file.
type Config struct {
	// ExtraUsefulSections lists section names, in addition to the fixed
	// set linkmap.ParseSymbols already descends into, that should be
	// treated as useful.
	ExtraUsefulSections []string `toml:"extra_useful_sections"`
}

// Load reads and decodes path. If path does not exist, Load returns
// (nil, nil) so callers can treat "no rc file" the same as "empty rc file".
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options converts a (possibly nil) Config into the linkmap.Option slice it
// describes.
func (c *Config) Options() []linkmap.Option {
	if c == nil || len(c.ExtraUsefulSections) == 0 {
		return nil
	}
	return []linkmap.Option{linkmap.WithExtraUsefulSections(c.ExtraUsefulSections...)}
}
