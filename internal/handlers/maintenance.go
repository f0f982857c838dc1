package handlers

import (
	"github.com/lupkg/lupkg/internal/dispatch"
	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/luart"
	"github.com/lupkg/lupkg/internal/pkginfo"
)

// Refresh handles the refresh-cache role.
type Refresh struct{}

// Execute implements dispatch.Handler.
func (Refresh) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	if _, err := rt.Call(FnRefreshCache, args.Force); err != nil {
		sink.Failed(job.ErrorCannotRefresh, err.Error())
		return nil
	}
	sink.Finished()
	return nil
}

// Download handles the download-packages role.
type Download struct{}

// Execute implements dispatch.Handler.
func (Download) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	if _, err := pkginfo.ParseIDs(args.PackageIDs); err != nil {
		sink.Failed(job.ErrorInvalidPackageID, err.Error())
		return nil
	}
	if args.Directory == "" {
		sink.Failed(job.ErrorDownloadFailed, "download directory not set")
		return nil
	}

	lists, err := rt.CallFileLists(FnDownloadPackages, args.PackageIDs, args.Directory)
	if err != nil {
		sink.Failed(job.ErrorDownloadFailed, err.Error())
		return nil
	}

	for _, f := range lists {
		sink.Files(f)
	}
	sink.Finished()
	return nil
}

// Repair handles the repair-system role. The role is advertised but the
// backend has nothing to repair: the job is acknowledged as finished
// immediately, for any flags value, with no runtime work and no emissions.
// This is a deliberate no-op success, not a failure.
type Repair struct{}

// Execute implements dispatch.Handler.
func (Repair) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	sink.Finished()
	return nil
}
