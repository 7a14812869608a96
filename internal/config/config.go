// Package config provides paths and settings for cch.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultResumeCommand is the command used to resume a session when no
// config file overrides it. The session ID is appended as the final argument.
var DefaultResumeCommand = []string{"claude", "--resume"}

const (
	// DefaultListLimit is how many sessions `cch ls` shows by default.
	DefaultListLimit = 20
	// DefaultPort is the default dashboard port.
	DefaultPort = 5111

	dirName        = ".cch"
	dbFileName     = "sessions.db"
	configFileName = "config.toml"
)

// Config holds the optional settings from ~/.cch/config.toml.
type Config struct {
	ResumeCommand []string `toml:"resume_command"` // argv; session ID is appended
	ListLimit     int      `toml:"list_limit"`
	Port          int      `toml:"port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ResumeCommand: slices.Clone(DefaultResumeCommand),
		ListLimit:     DefaultListLimit,
		Port:          DefaultPort,
	}
}

// Dir returns the path to the .cch directory under the user's home.
// A missing home directory is a fatal environment error.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DBPath returns the path to the session database file.
func DBPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file, falling back to defaults for anything
// unset. A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(cfg.ResumeCommand) == 0 {
		cfg.ResumeCommand = slices.Clone(DefaultResumeCommand)
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = DefaultListLimit
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	return cfg, nil
}

// ResumeHint returns the command line shown in listings for resuming id.
func (c Config) ResumeHint(id string) string {
	parts := append(slices.Clone(c.ResumeCommand), id)
	return strings.Join(parts, " ")
}
