package dispatch

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/log"
	"github.com/lupkg/lupkg/internal/luart"
)

// Dispatcher executes role invocations synchronously against the single
// runtime instance.
//
// Execution discipline: one job at a time, on the caller's goroutine, in
// host-issuing order. The mutex is defensive; the host contract
// (SupportsParallelization() == false) already forbids overlapping calls.
type Dispatcher struct {
	mu       sync.Mutex
	registry *Registry
	mgr      *luart.Manager
	logger   *slog.Logger
}

// New creates a dispatcher over the given registry and runtime manager.
func New(registry *Registry, mgr *luart.Manager) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		mgr:      mgr,
		logger:   log.WithComponent("dispatch"),
	}
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch runs the handler registered for the job's role. Whatever
// happens inside, the handle receives exactly one terminal signal before
// Dispatch returns: a handler that fails, panics, or forgets to finalize
// leaves the job failed, never hanging.
//
// The returned error reports plugin-side faults to the caller; the host
// observes the outcome through the sink either way.
func (d *Dispatcher) Dispatch(j *job.Job, args Args, sink job.Sink) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := j.Begin(); err != nil {
		return err
	}

	guard := newGuardedSink(j, sink)
	role := j.Role()
	logger := d.logger.With(slog.String("job_id", j.ID()), slog.String("role", role.String()))
	logger.Debug("job started")

	h := d.registry.Get(role)
	if h == nil {
		// Should not happen if the host respects the capability contract;
		// finalize rather than leave the transaction hung.
		guard.Failed(job.ErrorNotSupported, fmt.Sprintf("no handler for role %s", role))
		logger.Warn("unadvertised role requested")
		return fmt.Errorf("%w: %s", ErrNoHandler, role)
	}

	rt, err := d.mgr.Runtime()
	if err != nil {
		guard.Failed(job.ErrorInternal, err.Error())
		logger.Error("runtime unavailable", "error", err)
		return err
	}

	// Route pk module emissions from the script to this job for the
	// duration of the call.
	rt.BindSink(guard)
	defer rt.UnbindSink()

	if err := d.execute(h, j, args, rt, guard); err != nil {
		if !j.Finalized() {
			guard.Failed(job.ErrorInternal, err.Error())
		}
		logger.Error("job failed", "error", err)
		return err
	}

	if !j.Finalized() {
		guard.Failed(job.ErrorInternal, "handler returned without finalizing job")
		logger.Error("handler returned without finalizing job")
		return fmt.Errorf("%w: %s", ErrNotFinalized, role)
	}

	logger.Debug("job finalized", "status", j.Status().String())
	return nil
}

// execute runs the handler with panic recovery.
func (d *Dispatcher) execute(h Handler, j *job.Job, args Args, rt *luart.Runtime, sink job.Sink) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return h.Execute(j, args, rt, sink)
}
