// Package config loads the backend configuration from a TOML file with
// LUPKG_-prefixed environment variable overrides.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FileSystem abstracts file reads so tests can supply in-memory files.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) { return os.Open(name) }

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem { return OSFS{} }

// Backend holds the plugin-level settings.
type Backend struct {
	LogLevel string `toml:"log_level"`
}

// Lua holds the runtime settings. CallTimeout is written as a duration
// string in the file ("30s", "2m") and parsed during load.
type Lua struct {
	Script      string
	Manifest    string
	CallTimeout time.Duration
}

// Config is the loaded configuration. Extra holds tables the loader does
// not interpret; they are preserved untouched so scripts can carry their
// own settings through the same file.
type Config struct {
	Backend Backend
	Lua     Lua
	Extra   map[string]any
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend: Backend{LogLevel: "info"},
		Lua:     Lua{CallTimeout: 30 * time.Second},
		Extra:   map[string]any{},
	}
}

// Loader loads configuration files.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a loader backed by the OS file system.
func NewLoader() *Loader {
	return &Loader{fs: DefaultFS()}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load reads the TOML file at path, applies environment overrides and
// returns the result. A missing file is not an error: defaults plus
// overrides are returned.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	data, err := l.fs.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env overrides
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := parse(path, data, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parse(path string, data []byte, cfg *Config) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	// Durations travel as strings in the file.
	var file struct {
		Backend Backend `toml:"backend"`
		Lua     struct {
			Script      string `toml:"script"`
			Manifest    string `toml:"manifest"`
			CallTimeout string `toml:"call_timeout"`
		} `toml:"lua"`
	}
	file.Backend = cfg.Backend
	file.Lua.Script = cfg.Lua.Script
	file.Lua.Manifest = cfg.Lua.Manifest
	if err := toml.Unmarshal(data, &file); err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	cfg.Backend = file.Backend
	cfg.Lua.Script = file.Lua.Script
	cfg.Lua.Manifest = file.Lua.Manifest
	if file.Lua.CallTimeout != "" {
		d, err := time.ParseDuration(file.Lua.CallTimeout)
		if err != nil {
			return &ParseError{Path: path, Message: "lua.call_timeout: " + err.Error(), Err: err}
		}
		cfg.Lua.CallTimeout = d
	}

	for key, val := range raw {
		if key == "backend" || key == "lua" {
			continue
		}
		cfg.Extra[key] = val
	}
	return nil
}

// applyEnv applies LUPKG_-prefixed overrides on top of file values.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("LUPKG_LOG_LEVEL"); ok {
		cfg.Backend.LogLevel = v
	}
	if v, ok := os.LookupEnv("LUPKG_SCRIPT"); ok {
		cfg.Lua.Script = v
	}
	if v, ok := os.LookupEnv("LUPKG_MANIFEST"); ok {
		cfg.Lua.Manifest = v
	}
	if v, ok := os.LookupEnv("LUPKG_CALL_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Lua.CallTimeout = d
		}
	}
}

func (c Config) validate() error {
	switch c.Backend.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.Backend.LogLevel)
	}
}
