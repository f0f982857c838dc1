// Package job models one in-flight host request: the opaque job handle, its
// status state machine, and the callback sink handlers report through.
package job

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lupkg/lupkg/internal/capability"
)

// Status is the lifecycle state of a job.
type Status int

// Job states. The only valid transitions are
// Received -> Running -> {Finished | Failed}.
const (
	StatusReceived Status = iota
	StatusRunning
	StatusFinished
	StatusFailed
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusReceived:
		return "received"
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is a terminal state.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusFailed
}

// Job is the opaque handle for one role invocation. A handle is valid for
// exactly one dispatch and is never reused.
type Job struct {
	id   string
	role capability.Role

	mu     sync.Mutex
	status Status
}

// New creates a fresh job handle for the given role.
func New(role capability.Role) *Job {
	return &Job{
		id:   uuid.NewString(),
		role: role,
	}
}

// ID returns the job's unique identifier.
func (j *Job) ID() string { return j.id }

// Role returns the role this job was issued for.
func (j *Job) Role() capability.Role { return j.role }

// Status returns the current lifecycle state.
func (j *Job) Status() Status {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// Begin transitions Received -> Running. A second Begin on the same handle
// is a re-entry violation.
func (j *Job) Begin() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.status != StatusReceived {
		return ErrJobReentry
	}
	j.status = StatusRunning
	return nil
}

// Complete transitions Running -> Finished or Running -> Failed. Exactly one
// Complete succeeds per job; later calls return ErrJobFinalized.
func (j *Job) Complete(s Status) error {
	if !s.Terminal() {
		return ErrNotTerminal
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	switch j.status {
	case StatusRunning:
		j.status = s
		return nil
	case StatusFinished, StatusFailed:
		return ErrJobFinalized
	default:
		return ErrJobNotRunning
	}
}

// Finalized reports whether the job has received its terminal signal.
func (j *Job) Finalized() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status.Terminal()
}
