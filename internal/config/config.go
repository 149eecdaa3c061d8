// Package config reads the settings of the lisp command from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the home directory when no file is named.
const DefaultFile = ".little_lisp.yaml"

// Config holds the command settings.
type Config struct {
	Prompt         string   `yaml:"prompt"`
	ContinuePrompt string   `yaml:"continue_prompt"`
	HistoryFile    string   `yaml:"history_file"`
	MaxDepth       int      `yaml:"max_depth"`
	LogLevel       string   `yaml:"log_level"`
	Prelude        []string `yaml:"prelude"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Prompt:         "> ",
		ContinuePrompt: "| ",
		HistoryFile:    ".little_lisp_history",
		MaxDepth:       10000,
		LogLevel:       "warn",
	}
}

// Parse decodes YAML over the defaults. Unknown keys are errors.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the file at path. An empty path means DefaultFile in the
// home directory, which need not exist.
func Load(path string) (Config, error) {
	optional := path == ""
	if optional {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, DefaultFile)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Validate checks the values which have no sensible fallback.
func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("config: max_depth must be positive, got %d", c.MaxDepth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}

// HistoryPath resolves HistoryFile against the home directory.
func (c Config) HistoryPath() string {
	if filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}
