package handlers

import (
	"github.com/lupkg/lupkg/internal/dispatch"
	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/luart"
	"github.com/lupkg/lupkg/internal/pkginfo"
)

// ListPackages handles the get-packages role.
type ListPackages struct{}

// Execute implements dispatch.Handler.
func (ListPackages) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	pkgs, err := rt.CallPackages(FnGetPackages, args.FilterNames())
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

// Resolve handles the resolve role: package names in, package records out.
type Resolve struct{}

// Execute implements dispatch.Handler.
func (Resolve) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	pkgs, err := rt.CallPackages(FnResolve, args.FilterNames(), args.Values)
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

// Updates handles the get-updates role.
type Updates struct{}

// Execute implements dispatch.Handler.
func (Updates) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	pkgs, err := rt.CallPackages(FnGetUpdates, args.FilterNames())
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

// DependsOn handles the depends-on role.
type DependsOn struct{}

// Execute implements dispatch.Handler.
func (DependsOn) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	if _, err := pkginfo.ParseIDs(args.PackageIDs); err != nil {
		sink.Failed(job.ErrorInvalidPackageID, err.Error())
		return nil
	}

	pkgs, err := rt.CallPackages(FnDependsOn, args.FilterNames(), args.PackageIDs, args.Recursive)
	if err != nil {
		sink.Failed(job.ErrorDepResolution, err.Error())
		return nil
	}

	for _, p := range pkgs {
		sink.Package(p)
	}
	sink.Finished()
	return nil
}

// Details handles the get-details role.
type Details struct{}

// Execute implements dispatch.Handler.
func (Details) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	if _, err := pkginfo.ParseIDs(args.PackageIDs); err != nil {
		sink.Failed(job.ErrorInvalidPackageID, err.Error())
		return nil
	}

	details, err := rt.CallDetails(FnGetDetails, args.PackageIDs)
	if err != nil {
		sink.Failed(job.ErrorScript, err.Error())
		return nil
	}

	for _, d := range details {
		sink.Details(d)
	}
	sink.Finished()
	return nil
}

// GetFiles handles the get-files role.
type GetFiles struct{}

// Execute implements dispatch.Handler.
func (GetFiles) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	if _, err := pkginfo.ParseIDs(args.PackageIDs); err != nil {
		sink.Failed(job.ErrorInvalidPackageID, err.Error())
		return nil
	}

	lists, err := rt.CallFileLists(FnGetFiles, args.PackageIDs)
	if err != nil {
		sink.Failed(job.ErrorScript, err.Error())
		return nil
	}

	for _, f := range lists {
		sink.Files(f)
	}
	sink.Finished()
	return nil
}
