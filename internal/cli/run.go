package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lupkg/lupkg/internal/backend"
	"github.com/lupkg/lupkg/internal/capability"
	"github.com/lupkg/lupkg/internal/job"
)

var (
	runFilters      []string
	runDirectory    string
	runRepo         string
	runEnabled      bool
	runForce        bool
	runRecursive    bool
	runAllowDeps    bool
	runAutoremove   bool
	runOnlyTrusted  bool
	runSimulate     bool
	runOnlyDownload bool
)

var runCmd = &cobra.Command{
	Use:   "run <role> [values...]",
	Short: "Run a single job against the backend script",
	Long: `Run one job of the given role and print its emissions. Values are
search terms, package names or package IDs depending on the role.

This is a host shim for exercising a backend script by hand; the real
daemon drives the backend through the same entry points.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringSliceVar(&runFilters, "filter", nil, "filters to apply (installed, ~installed, devel, ~devel, gui, ~gui)")
	runCmd.Flags().StringVar(&runDirectory, "directory", "", "download destination directory")
	runCmd.Flags().StringVar(&runRepo, "repo", "", "repository ID")
	runCmd.Flags().BoolVar(&runEnabled, "enabled", true, "enable (true) or disable (false) the repository")
	runCmd.Flags().BoolVar(&runForce, "force", false, "force a cache refresh")
	runCmd.Flags().BoolVar(&runRecursive, "recursive", false, "resolve dependencies recursively")
	runCmd.Flags().BoolVar(&runAllowDeps, "allow-deps", false, "allow removing dependent packages")
	runCmd.Flags().BoolVar(&runAutoremove, "autoremove", false, "remove no-longer-needed dependencies")
	runCmd.Flags().BoolVar(&runOnlyTrusted, "only-trusted", false, "only allow trusted packages")
	runCmd.Flags().BoolVar(&runSimulate, "simulate", false, "simulate the transaction")
	runCmd.Flags().BoolVar(&runOnlyDownload, "only-download", false, "download without installing")
}

func runRun(cmd *cobra.Command, args []string) error {
	role := capability.ParseRole(args[0])
	if role == capability.RoleUnknown {
		return fmt.Errorf("unknown role %q", args[0])
	}
	if !capability.Roles().Has(role) {
		return fmt.Errorf("role %s is not supported", role)
	}
	values := args[1:]

	b := backend.New(cfg)
	if err := b.Initialize(); err != nil {
		return fmt.Errorf("runtime: %w", err)
	}
	defer b.Destroy()

	sink := &stdoutSink{}
	j := job.New(role)
	if err := dispatchRole(b, j, role, values, sink); err != nil {
		return err
	}
	if sink.failed {
		return fmt.Errorf("job %s failed", j.ID())
	}
	return nil
}

func transactionFlags() job.TransactionFlags {
	var f job.TransactionFlags
	if runOnlyTrusted {
		f |= job.FlagOnlyTrusted
	}
	if runSimulate {
		f |= job.FlagSimulate
	}
	if runOnlyDownload {
		f |= job.FlagOnlyDownload
	}
	return f
}

func dispatchRole(b *backend.Backend, j *job.Job, role capability.Role, values []string, sink job.Sink) error {
	filters := capability.ParseFilters(runFilters)
	flags := transactionFlags()

	switch role {
	case capability.RoleSearchNames:
		return b.SearchNames(j, filters, values, sink)
	case capability.RoleSearchDetails:
		return b.SearchDetails(j, filters, values, sink)
	case capability.RoleSearchGroups:
		return b.SearchGroups(j, filters, values, sink)
	case capability.RoleSearchFiles:
		return b.SearchFiles(j, filters, values, sink)
	case capability.RoleInstallPackages:
		return b.InstallPackages(j, flags, values, sink)
	case capability.RoleRemovePackages:
		return b.RemovePackages(j, flags, values, runAllowDeps, runAutoremove, sink)
	case capability.RoleRefreshCache:
		return b.RefreshCache(j, runForce, sink)
	case capability.RoleGetPackages:
		return b.GetPackages(j, filters, sink)
	case capability.RoleResolve:
		return b.Resolve(j, filters, values, sink)
	case capability.RoleGetRepoList:
		return b.GetRepoList(j, filters, sink)
	case capability.RoleRepoEnable:
		return b.RepoEnable(j, runRepo, runEnabled, sink)
	case capability.RoleGetUpdates:
		return b.GetUpdates(j, filters, sink)
	case capability.RoleDependsOn:
		return b.DependsOn(j, filters, values, runRecursive, sink)
	case capability.RoleDownloadPackages:
		return b.DownloadPackages(j, values, runDirectory, sink)
	case capability.RoleGetFiles:
		return b.GetFiles(j, values, sink)
	case capability.RoleGetDetails:
		return b.GetDetails(j, values, sink)
	case capability.RoleRepairSystem:
		return b.RepairSystem(j, flags, sink)
	default:
		return fmt.Errorf("role %s has no entry point", role)
	}
}
