// Package handlers implements the per-role operation handlers. Each handler
// is a thin adapter: it validates the role's arguments, calls the named
// script function through the runtime's typed entry points, emits the
// decoded records through the job sink, and finalizes the job exactly once.
//
// Script failures never cross the plugin boundary: every handler catches
// them and finalizes the job as failed with a descriptive error code.
package handlers
