// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pipelang/pipecompile/report"
)

const defaultConfigFile = "pipec.toml"

// Config is the contents of a pipec.toml file.
type Config struct {
	// Maximum number of files compiled at once; non-positive means one per
	// CPU.
	MaxParallelism int `toml:"max_parallelism"`
	// Diagnostic style: simple, plain or color.
	Style string `toml:"style"`
	// One of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
	// Directories searched for files that are not found relative to the
	// working directory.
	Include []string `toml:"include"`
}

// loadConfig reads the config file at path. With an empty path the
// default file is used if it exists, and defaults otherwise.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); errors.Is(err, fs.ErrNotExist) {
			cfg.applyDefaults()
			return cfg, nil
		}
		path = defaultConfigFile
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Style == "" {
		c.Style = "plain"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

func (c *Config) validate() error {
	if _, ok := report.StyleByName(c.Style); !ok {
		return fmt.Errorf("unknown style %q: want simple, plain or color", c.Style)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
