// Package manifest loads and validates the YAML manifest that describes a
// backend script: identity, entry point and the script functions it
// implements. The function list is checked against the loaded script at
// runtime init.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Manifest describes a backend script.
type Manifest struct {
	Name        string   `yaml:"name"`        // unique identifier (e.g. "alpm")
	Version     string   `yaml:"version"`     // semver
	Author      string   `yaml:"author"`      // author name or org
	Description string   `yaml:"description"` // short description
	Entry       string   `yaml:"entry"`       // relative path to the script (default: "backend.lua")
	Functions   []string `yaml:"functions"`   // functions the script implements

	// path to the manifest's directory
	dir string
}

// Validation errors.
var (
	ErrMissingName     = errors.New("manifest: name is required")
	ErrInvalidName     = errors.New("manifest: name must be lowercase alphanumeric with hyphens")
	ErrInvalidVersion  = errors.New("manifest: version must be valid semver")
	ErrInvalidEntry    = errors.New("manifest: entry must be a .lua file")
	ErrInvalidFunction = errors.New("manifest: invalid function name")
)

// namePattern validates backend names.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

// semverPattern validates version strings (simplified semver).
var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`)

// fnPattern validates Lua function names.
var fnPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Load loads and validates a manifest from a YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	m.dir = filepath.Dir(path)
	m.applyDefaults()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Entry == "" {
		m.Entry = "backend.lua"
	}
	if m.Version == "" {
		m.Version = "0.0.0"
	}
}

// Validate checks that the manifest is well formed.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	if !namePattern.MatchString(m.Name) {
		return fmt.Errorf("%w: %s", ErrInvalidName, m.Name)
	}

	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("%w: %s", ErrInvalidVersion, m.Version)
	}

	if filepath.Ext(m.Entry) != ".lua" {
		return fmt.Errorf("%w: %s", ErrInvalidEntry, m.Entry)
	}

	for _, fn := range m.Functions {
		if !fnPattern.MatchString(fn) {
			return fmt.Errorf("%w: %q", ErrInvalidFunction, fn)
		}
	}
	return nil
}

// ScriptPath returns the absolute path of the entry script. Relative
// entries resolve against the manifest's directory.
func (m *Manifest) ScriptPath() string {
	if filepath.IsAbs(m.Entry) {
		return m.Entry
	}
	return filepath.Join(m.dir, m.Entry)
}
