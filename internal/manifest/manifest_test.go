package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
name: alpm
version: 1.2.0
author: Example
description: Arch backend
entry: alpm.lua
functions:
  - search_names
  - install_packages
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Name != "alpm" || m.Version != "1.2.0" {
		t.Errorf("identity = %s %s", m.Name, m.Version)
	}
	if len(m.Functions) != 2 {
		t.Errorf("functions = %v", m.Functions)
	}
	if got, want := m.ScriptPath(), filepath.Join(filepath.Dir(path), "alpm.lua"); got != want {
		t.Errorf("ScriptPath() = %q, want %q", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeManifest(t, "name: dummy\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Entry != "backend.lua" {
		t.Errorf("Entry = %q, want backend.lua", m.Entry)
	}
	if m.Version != "0.0.0" {
		t.Errorf("Version = %q, want 0.0.0", m.Version)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Manifest
		wantErr error
	}{
		{"missing name", Manifest{Version: "1.0.0", Entry: "b.lua"}, ErrMissingName},
		{"bad name", Manifest{Name: "Bad Name", Version: "1.0.0", Entry: "b.lua"}, ErrInvalidName},
		{"bad version", Manifest{Name: "ok", Version: "one", Entry: "b.lua"}, ErrInvalidVersion},
		{"bad entry", Manifest{Name: "ok", Version: "1.0.0", Entry: "b.txt"}, ErrInvalidEntry},
		{"bad function", Manifest{Name: "ok", Version: "1.0.0", Entry: "b.lua", Functions: []string{"Bad-Fn"}}, ErrInvalidFunction},
		{"valid", Manifest{Name: "ok", Version: "1.0.0-rc.1", Entry: "b.lua", Functions: []string{"search_names"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() error = nil, want error")
	}
}

func TestScriptPathAbsolute(t *testing.T) {
	m := Manifest{Name: "ok", Version: "1.0.0", Entry: "/usr/lib/lupkg/backend.lua"}
	if got := m.ScriptPath(); got != "/usr/lib/lupkg/backend.lua" {
		t.Errorf("ScriptPath() = %q", got)
	}
}
