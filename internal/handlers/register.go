package handlers

import (
	"github.com/lupkg/lupkg/internal/capability"
	"github.com/lupkg/lupkg/internal/dispatch"
)

// RegisterAll wires every supported role to its handler.
func RegisterAll(reg *dispatch.Registry) {
	reg.Register(capability.RoleSearchNames, Search{Fn: FnSearchNames})
	reg.Register(capability.RoleSearchDetails, Search{Fn: FnSearchDetails})
	reg.Register(capability.RoleSearchGroups, Search{Fn: FnSearchGroups})
	reg.Register(capability.RoleSearchFiles, Search{Fn: FnSearchFiles})
	reg.Register(capability.RoleInstallPackages, Install{})
	reg.Register(capability.RoleRemovePackages, Remove{})
	reg.Register(capability.RoleRefreshCache, Refresh{})
	reg.Register(capability.RoleGetPackages, ListPackages{})
	reg.Register(capability.RoleResolve, Resolve{})
	reg.Register(capability.RoleGetRepoList, RepoList{})
	reg.Register(capability.RoleRepoEnable, RepoEnable{})
	reg.Register(capability.RoleGetUpdates, Updates{})
	reg.Register(capability.RoleDependsOn, DependsOn{})
	reg.Register(capability.RoleDownloadPackages, Download{})
	reg.Register(capability.RoleGetFiles, GetFiles{})
	reg.Register(capability.RoleGetDetails, Details{})
	reg.Register(capability.RoleRepairSystem, Repair{})
}
