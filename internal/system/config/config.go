// Released under an MIT license. See LICENSE.

// Package config loads lum's YAML configuration file.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/lum/internal/engine/task"
)

// Name is the file looked for in the user's home directory.
const Name = ".lumrc.yaml"

// Config mirrors the configuration file.
type Config struct {
	// Cells is the live heap cell limit for each task. Zero is unlimited.
	Cells int `yaml:"cells,omitempty"`

	// Closures is "snapshot" (the default) or "stack".
	Closures string `yaml:"closures,omitempty"`

	// Level is the log level: "debug", "info", "warn" or "error".
	Level string `yaml:"level,omitempty"`

	Stacks Stacks `yaml:"stacks,omitempty"`

	// Trace logs evaluator events at the debug level.
	Trace bool `yaml:"trace,omitempty"`
}

// Stacks holds the capacity of each of a task's stacks.
type Stacks struct {
	Apply   int `yaml:"apply,omitempty"`
	Compile int `yaml:"compile,omitempty"`
	Locals  int `yaml:"locals,omitempty"`
	Results int `yaml:"results,omitempty"`
}

// Default returns the path of the configuration file in the user's home
// directory, or "" if there is no home directory.
func Default() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, Name)
}

// Load reads the configuration file at path. If optional is set a missing
// file is not an error and yields the zero configuration.
func Load(path string, optional bool) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, errorx.Decorate(err, "reading config %s", path)
	}

	return Parse(data, path)
}

// Parse parses configuration file content. Path is only used in errors.
func Parse(data []byte, path string) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, errorx.Decorate(err, "parsing %s", path)
	}

	if c.Cells < 0 || c.Stacks.Apply < 0 || c.Stacks.Compile < 0 ||
		c.Stacks.Locals < 0 || c.Stacks.Results < 0 {
		return nil, errorx.IllegalArgument.New(
			"%s: capacities must not be negative", path,
		)
	}

	return &c, nil
}

// Options converts c into task options that log to logger.
func (c *Config) Options(logger *slog.Logger) (task.Options, error) {
	mode, err := task.ParseMode(c.Closures)
	if err != nil {
		return task.Options{}, err
	}

	return task.Options{
		Apply:   c.Stacks.Apply,
		Cells:   c.Cells,
		Compile: c.Stacks.Compile,
		Locals:  c.Stacks.Locals,
		Logger:  logger,
		Mode:    mode,
		Results: c.Stacks.Results,
		Trace:   c.Trace,
	}, nil
}

// LogLevel returns the slog level c asks for. Tracing implies debug.
func (c *Config) LogLevel() slog.Level {
	if c.Trace {
		return slog.LevelDebug
	}

	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}

	return slog.LevelWarn
}
