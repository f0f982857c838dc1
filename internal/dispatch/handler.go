// Package dispatch routes role invocations to handlers and guarantees every
// job handle is finalized exactly once before control returns to the host.
package dispatch

import (
	"github.com/lupkg/lupkg/internal/capability"
	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/luart"
)

// Handler executes one role against the shared runtime.
//
// A handler recovers script failures locally: it finalizes the job through
// the sink (Finished or Failed) and returns nil. A returned error is a
// plugin-side fault; the dispatcher finalizes the job as failed on the
// handler's behalf, as it does when a handler returns without finalizing or
// panics.
type Handler interface {
	Execute(j *job.Job, args Args, rt *luart.Runtime, sink job.Sink) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(j *job.Job, args Args, rt *luart.Runtime, sink job.Sink) error

// Execute implements Handler.
func (f HandlerFunc) Execute(j *job.Job, args Args, rt *luart.Runtime, sink job.Sink) error {
	return f(j, args, rt, sink)
}

// Args carries the role-specific typed arguments of one invocation. Each
// role reads only the fields its entry point populates.
type Args struct {
	Filters    capability.Bitfield[capability.Filter]
	Flags      job.TransactionFlags
	PackageIDs []string
	Values     []string
	RepoID     string
	Enabled    bool
	Directory  string
	Recursive  bool
	Force      bool
	AllowDeps  bool
	Autoremove bool
}

// FilterNames returns the wire names of the set filters, for marshaling
// into the script.
func (a Args) FilterNames() []string {
	filters := a.Filters.Values()
	names := make([]string, 0, len(filters))
	for _, f := range filters {
		names = append(names, f.String())
	}
	return names
}
