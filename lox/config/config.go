// Package config loads the settings of the command line tool from a YAML
// file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrompt       = "> "
	DefaultContinuation = ". "
	historyFile         = ".lox_history"
	configFile          = ".lox.yaml"
)

type Config struct {
	Prompt       string `yaml:"prompt"`       // REPL prompt
	Continuation string `yaml:"continuation"` // Prompt for continuation lines
	History      string `yaml:"history"`      // REPL history file, empty to disable
	Debug        bool   `yaml:"debug"`        // Debug logging to stderr
	DumpAST      bool   `yaml:"dump_ast"`     // Print the tree of each input before running it
}

// Default returns the configuration used when no file is given. History is
// kept in the users home directory if there is one.
func Default() *Config {
	c := &Config{
		Prompt:       DefaultPrompt,
		Continuation: DefaultContinuation,
	}

	if home, err := os.UserHomeDir(); err == nil {
		c.History = filepath.Join(home, historyFile)
	}
	return c
}

// DefaultPath returns the path of the configuration file in the users home
// directory, or an empty string if there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configFile)
}

// Load reads the configuration file at path. A missing file is not an error,
// the default configuration is returned instead.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	c, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// Decode reads a YAML configuration from r. Fields not present keep their
// default values and unknown fields are an error.
func Decode(r io.Reader) (*Config, error) {
	c := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && err != io.EOF {
		return nil, err
	}

	return c, nil
}
