// Package config loads the optional scopetrace.toml manifest that seeds
// the CLI's session and workload settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"scopetrace/internal/profiler"
)

// FileName is the manifest the CLI looks for, searching upward from the
// start directory.
const FileName = "scopetrace.toml"

// Manifest is a parsed scopetrace.toml together with its location.
type Manifest struct {
	Path   string // absolute path of the manifest file
	Root   string // directory containing it
	Config Config
}

// Config mirrors the manifest structure.
type Config struct {
	Session  SessionConfig  `toml:"session"`
	Workload WorkloadConfig `toml:"workload"`
}

type SessionConfig struct {
	Name   string `toml:"name"`
	Output string `toml:"output"`
	Flush  string `toml:"flush"`
}

type WorkloadConfig struct {
	Jobs  int `toml:"jobs"`
	Tasks int `toml:"tasks"`
}

// find walks upward from startDir looking for the manifest.
func find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the manifest. ok is false when no manifest exists
// anywhere above startDir; that is not an error, defaults apply.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := find(startDir)
	if err != nil || !ok {
		return nil, false, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if cfg.Session.Flush != "" {
		if _, err := profiler.ParseFlushPolicy(cfg.Session.Flush); err != nil {
			return nil, false, fmt.Errorf("%s: %w", path, err)
		}
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}
