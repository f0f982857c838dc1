package job

import "errors"

// Job lifecycle errors.
var (
	// ErrJobReentry is returned when Begin is called on a job that already
	// started; a handle is valid for exactly one invocation.
	ErrJobReentry = errors.New("job: handle already started")

	// ErrJobFinalized is returned when a terminal transition is attempted on
	// an already-finalized job.
	ErrJobFinalized = errors.New("job: handle already finalized")

	// ErrJobNotRunning is returned when finalizing a job that never started.
	ErrJobNotRunning = errors.New("job: handle is not running")

	// ErrNotTerminal is returned when Complete is called with a non-terminal
	// status.
	ErrNotTerminal = errors.New("job: status is not terminal")
)

// ErrorCode classifies a job failure for the host.
type ErrorCode string

// Error codes reported through Sink.Failed.
const (
	ErrorInternal         ErrorCode = "internal-error"
	ErrorNotSupported     ErrorCode = "not-supported"
	ErrorScript           ErrorCode = "script-error"
	ErrorInvalidPackageID ErrorCode = "invalid-package-id"
	ErrorRepoNotFound     ErrorCode = "repo-not-found"
	ErrorCannotRefresh    ErrorCode = "cannot-refresh-cache"
	ErrorDepResolution    ErrorCode = "dep-resolution-failed"
	ErrorDownloadFailed   ErrorCode = "download-failed"
)
