package luart

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/log"
)

// Runtime wraps the single gopher-lua state the backend script runs in.
//
// gopher-lua's LState is not goroutine-safe. The mutex guards against
// concurrent access from Go code; script execution itself is inherently
// single-threaded and jobs are contractually single-flight.
type Runtime struct {
	L *lua.LState

	mu     sync.Mutex
	closed bool

	// callTimeout bounds each script execution; zero means unbounded.
	callTimeout time.Duration

	// sinkMu guards the per-job sink binding separately from mu: host
	// callbacks (pk.package, pk.progress) run inside PCall while mu is held.
	sinkMu sync.Mutex
	sink   job.Sink
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithCallTimeout bounds each script execution (file load or function
// call). A run that exceeds it is aborted and surfaces as a script error.
// Zero or negative disables the bound.
func WithCallTimeout(d time.Duration) Option {
	return func(rt *Runtime) {
		rt.callTimeout = d
	}
}

// NewRuntime creates a Lua state with the safe standard libraries opened
// and the host callback module registered.
func NewRuntime(opts ...Option) *Runtime {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})
	openSafeLibraries(L)

	rt := &Runtime{L: L}
	for _, opt := range opts {
		opt(rt)
	}
	registerHostModule(rt)
	return rt
}

// openSafeLibraries opens only the Lua standard libraries the backend
// script needs. io, os, debug, and package stay closed: the script talks to
// the system exclusively through the pk module.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// DoFile executes a Lua file. The call blocks until completion or error.
func (rt *Runtime) DoFile(path string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return ErrRuntimeClosed
	}
	defer rt.limitExecution()()
	return rt.doWithRecovery(func() error {
		return rt.L.DoFile(path)
	})
}

// DoString executes a Lua chunk. The call blocks until completion or error.
func (rt *Runtime) DoString(code string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return ErrRuntimeClosed
	}
	defer rt.limitExecution()()
	return rt.doWithRecovery(func() error {
		return rt.L.DoString(code)
	})
}

// limitExecution arms the call timeout on the state and returns the
// disarm function. The VM checks the context between instructions, so a
// runaway script aborts instead of wedging the job. Must run with mu held.
func (rt *Runtime) limitExecution() func() {
	if rt.callTimeout <= 0 {
		return func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), rt.callTimeout)
	rt.L.SetContext(ctx)
	return func() {
		rt.L.RemoveContext()
		cancel()
	}
}

// doWithRecovery executes a function with panic recovery.
func (rt *Runtime) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Call invokes a global script function with the given arguments converted
// to Lua values, and returns the results converted back to Go values.
// Returns an empty slice (not nil) when the function returns nothing.
func (rt *Runtime) Call(fn string, args ...any) ([]any, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return nil, ErrRuntimeClosed
	}

	fnVal := rt.L.GetGlobal(fn)
	if fnVal == lua.LNil {
		return nil, fmt.Errorf("%w: %q", ErrFunctionNotFound, fn)
	}
	if fnVal.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%w: %q is a %s", ErrFunctionNotFound, fn, fnVal.Type())
	}

	defer rt.limitExecution()()

	// Record stack top before pushing anything.
	stackTop := rt.L.GetTop()

	rt.L.Push(fnVal)
	for _, arg := range args {
		rt.L.Push(toLua(rt.L, arg))
	}

	var callErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				callErr = fmt.Errorf("lua panic: %v", r)
			}
		}()
		callErr = rt.L.PCall(len(args), lua.MultRet, nil)
	}()
	if callErr != nil {
		return nil, callErr
	}

	// Collect only the values added by the call.
	nRet := rt.L.GetTop() - stackTop
	if nRet <= 0 {
		return []any{}, nil
	}
	results := make([]any, nRet)
	for i := 0; i < nRet; i++ {
		results[i] = toGo(rt.L.Get(stackTop + i + 1))
	}
	rt.L.Pop(nRet)

	return results, nil
}

// HasFunction reports whether the script defines a global function with the
// given name.
func (rt *Runtime) HasFunction(name string) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return false
	}
	return rt.L.GetGlobal(name).Type() == lua.LTFunction
}

// BindSink routes pk module emissions to the given sink for the duration of
// one job. Safe only under the single-job-at-a-time contract.
func (rt *Runtime) BindSink(s job.Sink) {
	rt.sinkMu.Lock()
	defer rt.sinkMu.Unlock()
	rt.sink = s
}

// UnbindSink clears the per-job sink binding.
func (rt *Runtime) UnbindSink() {
	rt.sinkMu.Lock()
	defer rt.sinkMu.Unlock()
	rt.sink = nil
}

// currentSink returns the bound sink, or nil when no job is executing.
func (rt *Runtime) currentSink() job.Sink {
	rt.sinkMu.Lock()
	defer rt.sinkMu.Unlock()
	return rt.sink
}

// IsClosed reports whether the state has been closed.
func (rt *Runtime) IsClosed() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.closed
}

// Close releases the Lua state. Further calls return ErrRuntimeClosed.
func (rt *Runtime) Close() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return nil
	}
	rt.L.Close()
	rt.closed = true
	log.WithComponent("luart").Debug("lua state closed")
	return nil
}
