package config

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"
)

// memFS serves files from a map.
type memFS map[string][]byte

func (m memFS) Open(name string) (fs.File, error) { return nil, fs.ErrNotExist }

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func TestLoad(t *testing.T) {
	fsys := memFS{
		"/etc/lupkg.toml": []byte(`
[backend]
log_level = "debug"

[lua]
script = "/usr/lib/lupkg/backend.lua"
manifest = "/usr/lib/lupkg/manifest.yaml"
call_timeout = "10s"

[alpm]
root = "/"
`),
	}

	cfg, err := NewLoaderWithFS(fsys).Load("/etc/lupkg.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.Backend.LogLevel)
	}
	if cfg.Lua.Script != "/usr/lib/lupkg/backend.lua" {
		t.Errorf("Script = %q", cfg.Lua.Script)
	}
	if cfg.Lua.CallTimeout != 10*time.Second {
		t.Errorf("CallTimeout = %v, want 10s", cfg.Lua.CallTimeout)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoaderWithFS(memFS{}).Load("/nope.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.Backend.LogLevel)
	}
	if cfg.Lua.CallTimeout != 30*time.Second {
		t.Errorf("CallTimeout = %v, want 30s", cfg.Lua.CallTimeout)
	}
}

func TestLoadPreservesUnknownTables(t *testing.T) {
	fsys := memFS{
		"/c.toml": []byte(`
[lua]
script = "b.lua"

[mirrors]
primary = "https://mirror.example"
`),
	}

	cfg, err := NewLoaderWithFS(fsys).Load("/c.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	mirrors, ok := cfg.Extra["mirrors"].(map[string]any)
	if !ok {
		t.Fatalf("Extra[mirrors] = %T, want table", cfg.Extra["mirrors"])
	}
	if mirrors["primary"] != "https://mirror.example" {
		t.Errorf("primary = %v", mirrors["primary"])
	}
	if _, ok := cfg.Extra["lua"]; ok {
		t.Error("lua table leaked into Extra")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LUPKG_LOG_LEVEL", "warn")
	t.Setenv("LUPKG_SCRIPT", "/override.lua")

	fsys := memFS{
		"/c.toml": []byte(`
[backend]
log_level = "debug"

[lua]
script = "file.lua"
`),
	}

	cfg, err := NewLoaderWithFS(fsys).Load("/c.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.Backend.LogLevel)
	}
	if cfg.Lua.Script != "/override.lua" {
		t.Errorf("Script = %q, want /override.lua", cfg.Lua.Script)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	fsys := memFS{"/c.toml": []byte("[backend\n")}

	_, err := NewLoaderWithFS(fsys).Load("/c.toml")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load() error = %v, want ParseError", err)
	}
}

func TestLoadBadCallTimeout(t *testing.T) {
	fsys := memFS{"/c.toml": []byte("[lua]\ncall_timeout = \"soon\"\n")}

	_, err := NewLoaderWithFS(fsys).Load("/c.toml")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load() error = %v, want ParseError", err)
	}
}

func TestLoadBadLogLevel(t *testing.T) {
	fsys := memFS{"/c.toml": []byte("[backend]\nlog_level = \"loud\"\n")}

	_, err := NewLoaderWithFS(fsys).Load("/c.toml")
	if !errors.Is(err, ErrBadLogLevel) {
		t.Fatalf("Load() error = %v, want ErrBadLogLevel", err)
	}
}
