package luart

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lupkg/lupkg/internal/log"
)

// State is the lifecycle state of the runtime manager.
type State int

// Manager states. Destroyed is terminal; the runtime is never
// re-initialized.
const (
	StateUninitialized State = iota
	StateInitialized
	StateDestroyed
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Config carries what the manager needs to start the runtime.
type Config struct {
	// Script is the path to the backend Lua script.
	Script string

	// Functions optionally lists script functions that must exist after the
	// script loads (taken from the script manifest).
	Functions []string

	// CallTimeout bounds each script execution; zero means unbounded.
	CallTimeout time.Duration
}

// Manager owns the single runtime instance for the life of the process.
// No other component starts or stops the Lua state.
type Manager struct {
	mu      sync.Mutex
	state   State
	rt      *Runtime
	initErr error
	logger  *slog.Logger
}

// NewManager creates a manager in the Uninitialized state.
func NewManager() *Manager {
	return &Manager{logger: log.WithComponent("luart")}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Initialize registers the host callback module and starts the backend
// script, in that order. Valid only from Uninitialized; a second call
// returns ErrAlreadyInitialized without touching the runtime, so the host
// module is never registered twice.
//
// A failure here is fatal to the plugin: the manager stores the error,
// Runtime returns it from then on, and every dispatched job fails with it.
func (m *Manager) Initialize(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateInitialized:
		return ErrAlreadyInitialized
	case StateDestroyed:
		return ErrDestroyed
	}

	// The transition happens regardless of outcome: Destroy must remain
	// callable for process teardown even after a failed start.
	m.state = StateInitialized

	rt := NewRuntime(WithCallTimeout(cfg.CallTimeout))
	if err := rt.DoFile(cfg.Script); err != nil {
		rt.Close()
		m.initErr = fmt.Errorf("luart: starting backend script %s: %w", cfg.Script, err)
		m.logger.Error("backend script failed to start", "script", cfg.Script, "error", err)
		return m.initErr
	}

	for _, fn := range cfg.Functions {
		if !rt.HasFunction(fn) {
			rt.Close()
			m.initErr = fmt.Errorf("%w: manifest function %q", ErrFunctionNotFound, fn)
			m.logger.Error("backend script missing manifest function", "script", cfg.Script, "function", fn)
			return m.initErr
		}
	}

	m.rt = rt
	m.logger.Info("runtime initialized", "script", cfg.Script)
	return nil
}

// Runtime returns the single runtime instance. After a failed Initialize it
// returns the stored initialization error so callers surface it as a failed
// job rather than a crash.
func (m *Manager) Runtime() (*Runtime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateUninitialized:
		return nil, ErrNotInitialized
	case StateDestroyed:
		return nil, ErrDestroyed
	}
	if m.initErr != nil {
		return nil, m.initErr
	}
	return m.rt, nil
}

// Destroy tears down the runtime and transitions to the terminal Destroyed
// state. Valid only from Initialized; it runs exactly once, at process
// teardown, never from a job.
func (m *Manager) Destroy() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateUninitialized:
		return ErrNotInitialized
	case StateDestroyed:
		return ErrDestroyed
	}

	if m.rt != nil {
		m.rt.Close()
		m.rt = nil
	}
	m.state = StateDestroyed
	m.logger.Info("runtime destroyed")
	return nil
}
