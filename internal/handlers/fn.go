package handlers

import "github.com/lupkg/lupkg/internal/job"

// Script function names the backend script is expected to define. The
// repair-system role has no function: it is acknowledged without running
// script code.
const (
	FnSearchNames      = "search_names"
	FnSearchDetails    = "search_details"
	FnSearchGroups     = "search_groups"
	FnSearchFiles      = "search_files"
	FnInstallPackages  = "install_packages"
	FnRemovePackages   = "remove_packages"
	FnRefreshCache     = "refresh_cache"
	FnGetPackages      = "get_packages"
	FnResolve          = "resolve"
	FnGetRepoList      = "get_repo_list"
	FnRepoEnable       = "repo_enable"
	FnGetUpdates       = "get_updates"
	FnDependsOn        = "depends_on"
	FnDownloadPackages = "download_packages"
	FnGetFiles         = "get_files"
	FnGetDetails       = "get_details"
)

// flagsTable marshals transaction flags into the record shape the script
// receives.
func flagsTable(f job.TransactionFlags) map[string]any {
	return map[string]any{
		"only_trusted":  f.Has(job.FlagOnlyTrusted),
		"simulate":      f.Has(job.FlagSimulate),
		"only_download": f.Has(job.FlagOnlyDownload),
	}
}
