package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config file names, tried in order.
const (
	JSONFile = "game.json"
	YAMLFile = "game.yaml"
)

// Loader loads game configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadJSON loads game.json
func (l *Loader) LoadJSON() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, JSONFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", JSONFile, err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", JSONFile, err)
	}

	return &cfg, nil
}

// LoadYAML loads game.yaml
func (l *Loader) LoadYAML() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, YAMLFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", YAMLFile, err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", YAMLFile, err)
	}

	return &cfg, nil
}

// LoadAll loads game.json, falling back to game.yaml when the JSON file is
// absent, then applies defaults and validates the result.
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadJSON()
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = l.LoadYAML()
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return cfg, nil
}
