package handlers

import (
	"github.com/lupkg/lupkg/internal/dispatch"
	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/luart"
	"github.com/lupkg/lupkg/internal/pkginfo"
)

// Install handles the install-packages role.
type Install struct{}

// Execute implements dispatch.Handler.
func (Install) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	if _, err := pkginfo.ParseIDs(args.PackageIDs); err != nil {
		sink.Failed(job.ErrorInvalidPackageID, err.Error())
		return nil
	}

	pkgs, err := rt.CallPackages(FnInstallPackages, flagsTable(args.Flags), args.PackageIDs)
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

// Remove handles the remove-packages role.
type Remove struct{}

// Execute implements dispatch.Handler.
func (Remove) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	if _, err := pkginfo.ParseIDs(args.PackageIDs); err != nil {
		sink.Failed(job.ErrorInvalidPackageID, err.Error())
		return nil
	}

	pkgs, err := rt.CallPackages(FnRemovePackages,
		flagsTable(args.Flags), args.PackageIDs, args.AllowDeps, args.Autoremove)
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
