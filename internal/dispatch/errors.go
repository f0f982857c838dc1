package dispatch

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler is registered for the role. The job
	// is still finalized as failed before this is returned.
	ErrNoHandler = errors.New("dispatch: no handler for role")

	// ErrHandlerPanic indicates the handler panicked; the panic was
	// recovered and the job finalized as failed.
	ErrHandlerPanic = errors.New("dispatch: handler panic")

	// ErrNotFinalized indicates the handler returned without delivering a
	// terminal signal; the dispatcher finalized the job as failed.
	ErrNotFinalized = errors.New("dispatch: handler returned without finalizing job")
)
