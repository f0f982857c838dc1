package luart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeScript writes a Lua script to a temp dir and returns its path.
func writeScript(t *testing.T, code string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backend.lua")
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

const minimalScript = `
function resolve(filters, names)
	return {}
end
`

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	if m.State() != StateUninitialized {
		t.Errorf("State() = %v, want StateUninitialized", m.State())
	}

	if err := m.Initialize(Config{Script: writeScript(t, minimalScript)}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if m.State() != StateInitialized {
		t.Errorf("State() = %v, want StateInitialized", m.State())
	}

	rt, err := m.Runtime()
	if err != nil {
		t.Fatalf("Runtime() error = %v", err)
	}
	if !rt.HasFunction("resolve") {
		t.Error("script function not loaded")
	}

	if err := m.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if m.State() != StateDestroyed {
		t.Errorf("State() = %v, want StateDestroyed", m.State())
	}
	if rt != nil && !rt.IsClosed() {
		t.Error("runtime not closed after Destroy")
	}
	if _, err := m.Runtime(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Runtime() after Destroy error = %v, want ErrDestroyed", err)
	}
}

func TestManagerDoubleInitialize(t *testing.T) {
	m := NewManager()
	script := writeScript(t, minimalScript)

	if err := m.Initialize(Config{Script: script}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	rt, err := m.Runtime()
	if err != nil {
		t.Fatalf("Runtime() error = %v", err)
	}

	if err := m.Initialize(Config{Script: script}); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Initialize() error = %v, want ErrAlreadyInitialized", err)
	}

	// The running state must be untouched by the rejected call: same
	// runtime, host module still registered exactly once.
	rt2, err := m.Runtime()
	if err != nil {
		t.Fatalf("Runtime() error = %v", err)
	}
	if rt2 != rt {
		t.Error("runtime instance replaced by rejected Initialize")
	}
	if err := rt2.DoString(`assert(type(pk) == "table", "pk module missing")`); err != nil {
		t.Errorf("host module check failed: %v", err)
	}

	m.Destroy()
}

func TestManagerDestroyBeforeInitialize(t *testing.T) {
	m := NewManager()
	if err := m.Destroy(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Destroy() before Initialize error = %v, want ErrNotInitialized", err)
	}
}

func TestManagerDestroyTwice(t *testing.T) {
	m := NewManager()
	if err := m.Initialize(Config{Script: writeScript(t, minimalScript)}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := m.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if err := m.Destroy(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("second Destroy() error = %v, want ErrDestroyed", err)
	}
}

func TestManagerRuntimeBeforeInitialize(t *testing.T) {
	m := NewManager()
	if _, err := m.Runtime(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Runtime() before Initialize error = %v, want ErrNotInitialized", err)
	}
}

func TestManagerInitializeFailure(t *testing.T) {
	m := NewManager()

	err := m.Initialize(Config{Script: filepath.Join(t.TempDir(), "missing.lua")})
	if err == nil {
		t.Fatal("Initialize() with missing script error = nil")
	}

	// Fatal to the plugin: Runtime keeps returning the stored cause.
	if _, rerr := m.Runtime(); rerr == nil {
		t.Error("Runtime() after failed Initialize error = nil")
	}

	// Teardown still runs exactly once.
	if derr := m.Destroy(); derr != nil {
		t.Errorf("Destroy() after failed Initialize error = %v", derr)
	}
}

func TestManagerInitializeSyntaxError(t *testing.T) {
	m := NewManager()

	err := m.Initialize(Config{Script: writeScript(t, `this is not lua`)})
	if err == nil {
		t.Fatal("Initialize() with broken script error = nil")
	}
	if _, rerr := m.Runtime(); rerr == nil {
		t.Error("Runtime() after failed Initialize error = nil")
	}
}

func TestManagerVerifiesManifestFunctions(t *testing.T) {
	m := NewManager()

	err := m.Initialize(Config{
		Script:    writeScript(t, minimalScript),
		Functions: []string{"resolve", "get_updates"},
	})
	if !errors.Is(err, ErrFunctionNotFound) {
		t.Fatalf("Initialize() error = %v, want ErrFunctionNotFound", err)
	}

	m2 := NewManager()
	if err := m2.Initialize(Config{
		Script:    writeScript(t, minimalScript),
		Functions: []string{"resolve"},
	}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	m2.Destroy()
}
