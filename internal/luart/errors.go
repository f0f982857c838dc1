package luart

import (
	"errors"
	"fmt"
)

// Runtime lifecycle errors.
var (
	// ErrAlreadyInitialized is returned when Initialize is called twice.
	ErrAlreadyInitialized = errors.New("luart: runtime already initialized")

	// ErrNotInitialized is returned when the runtime is used or destroyed
	// before Initialize.
	ErrNotInitialized = errors.New("luart: runtime not initialized")

	// ErrDestroyed is returned when the runtime is used after Destroy.
	ErrDestroyed = errors.New("luart: runtime destroyed")

	// ErrRuntimeClosed is returned when operating on a closed Lua state.
	ErrRuntimeClosed = errors.New("luart: lua state is closed")

	// ErrFunctionNotFound is returned when a named script function does not
	// exist or is not a function.
	ErrFunctionNotFound = errors.New("luart: script function not found")
)

// ShapeError reports that a script function returned data that does not
// match the record shape the caller expected.
type ShapeError struct {
	Fn     string
	Reason string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("luart: %s returned unexpected shape: %s", e.Fn, e.Reason)
}

func shapeErr(fn, format string, args ...any) error {
	return &ShapeError{Fn: fn, Reason: fmt.Sprintf(format, args...)}
}
