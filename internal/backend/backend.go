// Package backend is the plugin surface the host daemon drives: identity
// strings, capability queries, runtime lifecycle and the per-role entry
// points. Everything below it (dispatch, handlers, the Lua runtime) is an
// implementation detail of this package's contract.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/lupkg/lupkg/internal/capability"
	"github.com/lupkg/lupkg/internal/config"
	"github.com/lupkg/lupkg/internal/dispatch"
	"github.com/lupkg/lupkg/internal/handlers"
	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/log"
	"github.com/lupkg/lupkg/internal/luart"
	"github.com/lupkg/lupkg/internal/manifest"
)

// Identity strings reported to the host.
const (
	backendName        = "lua"
	backendDescription = "Lua-scripted package backend"
	backendAuthor      = "lupkg developers"
)

// Backend adapts the host's backend contract to the Lua runtime.
type Backend struct {
	cfg    config.Config
	mgr    *luart.Manager
	disp   *dispatch.Dispatcher
	logger *slog.Logger
}

// New creates a backend from the given configuration. The runtime is not
// started; capability queries are valid immediately, role entry points
// only after Initialize.
func New(cfg config.Config) *Backend {
	reg := dispatch.NewRegistry()
	handlers.RegisterAll(reg)

	mgr := luart.NewManager()
	return &Backend{
		cfg:    cfg,
		mgr:    mgr,
		disp:   dispatch.New(reg, mgr),
		logger: log.WithComponent("backend"),
	}
}

// Name returns the backend's short identifier.
func (b *Backend) Name() string { return backendName }

// Description returns the backend's human-readable description.
func (b *Backend) Description() string { return backendDescription }

// Author returns the backend's author string.
func (b *Backend) Author() string { return backendAuthor }

// Groups returns the package groups the backend advertises.
func (b *Backend) Groups() capability.Bitfield[capability.Group] {
	return capability.Groups()
}

// Roles returns the roles the backend advertises.
func (b *Backend) Roles() capability.Bitfield[capability.Role] {
	roles := capability.Roles()
	b.logger.Debug("advertising roles", slog.Int("count", roles.Count()))
	return roles
}

// Filters returns the filters the backend advertises.
func (b *Backend) Filters() capability.Bitfield[capability.Filter] {
	return capability.Filters()
}

// MimeTypes returns the mime types the backend can install from.
func (b *Backend) MimeTypes() []string { return capability.MimeTypes() }

// Provides returns the provides kinds the backend supports.
func (b *Backend) Provides() capability.Bitfield[capability.Provide] {
	return capability.Provides()
}

// SupportsParallelization reports whether the host may overlap jobs.
// Always false: the runtime is a single guarded Lua state.
func (b *Backend) SupportsParallelization() bool {
	return capability.SupportsParallelization()
}

// Initialize starts the Lua runtime. When a manifest is configured it is
// validated first and supplies the script path and required function
// list; otherwise the script path comes straight from the config.
func (b *Backend) Initialize() error {
	rtCfg := luart.Config{
		Script:      b.cfg.Lua.Script,
		CallTimeout: b.cfg.Lua.CallTimeout,
	}

	if b.cfg.Lua.Manifest != "" {
		m, err := manifest.Load(b.cfg.Lua.Manifest)
		if err != nil {
			return fmt.Errorf("loading manifest: %w", err)
		}
		rtCfg.Script = m.ScriptPath()
		rtCfg.Functions = m.Functions
		b.logger.Info("manifest loaded",
			slog.String("name", m.Name),
			slog.String("version", m.Version))
	}

	if err := b.mgr.Initialize(rtCfg); err != nil {
		b.logger.Error("runtime init failed", "error", err)
		return err
	}
	b.logger.Info("runtime initialized", slog.String("script", rtCfg.Script))
	return nil
}

// Destroy tears down the Lua runtime. The backend cannot be initialized
// again afterwards.
func (b *Backend) Destroy() error {
	if err := b.mgr.Destroy(); err != nil {
		return err
	}
	b.logger.Info("runtime destroyed")
	return nil
}

// SearchNames searches package names for the given values.
func (b *Backend) SearchNames(j *job.Job, filters capability.Bitfield[capability.Filter], values []string, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Filters: filters, Values: values}, sink)
}

// SearchDetails searches package descriptions for the given values.
func (b *Backend) SearchDetails(j *job.Job, filters capability.Bitfield[capability.Filter], values []string, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Filters: filters, Values: values}, sink)
}

// SearchGroups searches by package group.
func (b *Backend) SearchGroups(j *job.Job, filters capability.Bitfield[capability.Filter], values []string, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Filters: filters, Values: values}, sink)
}

// SearchFiles searches by owned file path.
func (b *Backend) SearchFiles(j *job.Job, filters capability.Bitfield[capability.Filter], values []string, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Filters: filters, Values: values}, sink)
}

// InstallPackages installs the given packages.
func (b *Backend) InstallPackages(j *job.Job, flags job.TransactionFlags, ids []string, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Flags: flags, PackageIDs: ids}, sink)
}

// RemovePackages removes the given packages.
func (b *Backend) RemovePackages(j *job.Job, flags job.TransactionFlags, ids []string, allowDeps, autoremove bool, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Flags: flags, PackageIDs: ids, AllowDeps: allowDeps, Autoremove: autoremove}, sink)
}

// RefreshCache refreshes the package metadata cache.
func (b *Backend) RefreshCache(j *job.Job, force bool, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Force: force}, sink)
}

// GetPackages lists packages matching the filters.
func (b *Backend) GetPackages(j *job.Job, filters capability.Bitfield[capability.Filter], sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Filters: filters}, sink)
}

// Resolve resolves package names to package IDs.
func (b *Backend) Resolve(j *job.Job, filters capability.Bitfield[capability.Filter], names []string, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Filters: filters, Values: names}, sink)
}

// GetRepoList lists configured repositories.
func (b *Backend) GetRepoList(j *job.Job, filters capability.Bitfield[capability.Filter], sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Filters: filters}, sink)
}

// RepoEnable enables or disables a repository.
func (b *Backend) RepoEnable(j *job.Job, repoID string, enabled bool, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{RepoID: repoID, Enabled: enabled}, sink)
}

// GetUpdates lists available updates.
func (b *Backend) GetUpdates(j *job.Job, filters capability.Bitfield[capability.Filter], sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Filters: filters}, sink)
}

// DependsOn lists the dependencies of the given packages.
func (b *Backend) DependsOn(j *job.Job, filters capability.Bitfield[capability.Filter], ids []string, recursive bool, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Filters: filters, PackageIDs: ids, Recursive: recursive}, sink)
}

// DownloadPackages downloads packages into a directory without installing.
func (b *Backend) DownloadPackages(j *job.Job, ids []string, dir string, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{PackageIDs: ids, Directory: dir}, sink)
}

// GetFiles lists the files owned by the given packages.
func (b *Backend) GetFiles(j *job.Job, ids []string, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{PackageIDs: ids}, sink)
}

// GetDetails returns detailed metadata for the given packages.
func (b *Backend) GetDetails(j *job.Job, ids []string, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{PackageIDs: ids}, sink)
}

// RepairSystem acknowledges a repair request. The Lua backend has nothing
// to repair, so the job finishes immediately.
func (b *Backend) RepairSystem(j *job.Job, flags job.TransactionFlags, sink job.Sink) error {
	return b.disp.Dispatch(j, dispatch.Args{Flags: flags}, sink)
}
