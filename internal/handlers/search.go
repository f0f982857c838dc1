package handlers

import (
	"github.com/lupkg/lupkg/internal/dispatch"
	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/luart"
)

// Search handles the search role family. Fn selects the script function;
// the four variants share argument and result shapes.
type Search struct {
	Fn string
}

// Execute implements dispatch.Handler.
func (h Search) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	pkgs, err := rt.CallPackages(h.Fn, args.FilterNames(), args.Values)
	if err != nil {
		sink.Failed(job.ErrorScript, err.Error())
		return nil
	}

	for _, p := range pkgs {
		sink.Package(p)
	}
	sink.Finished()
	return nil
}
