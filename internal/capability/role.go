package capability

// Role identifies one operation category the host can request.
type Role int

// Roles. Value 0 is the reserved unknown sentinel.
const (
	RoleUnknown Role = iota
	RoleAcceptEULA
	RoleCancel
	RoleGetOldTransactions
	RoleSearchNames
	RoleSearchDetails
	RoleSearchGroups
	RoleSearchFiles
	RoleInstallPackages
	RoleRemovePackages
	RoleRefreshCache
	RoleGetPackages
	RoleResolve
	RoleGetRepoList
	RoleRepoEnable
	RoleGetUpdates
	RoleDependsOn
	RoleDownloadPackages
	RoleGetFiles
	RoleGetDetails
	RoleRepairSystem

	roleCount // must be last
)

var roleNames = map[Role]string{
	RoleUnknown:             "unknown",
	RoleAcceptEULA:          "accept-eula",
	RoleCancel:              "cancel",
	RoleGetOldTransactions:  "get-old-transactions",
	RoleSearchNames:         "search-names",
	RoleSearchDetails:       "search-details",
	RoleSearchGroups:        "search-groups",
	RoleSearchFiles:         "search-files",
	RoleInstallPackages:     "install-packages",
	RoleRemovePackages:      "remove-packages",
	RoleRefreshCache:        "refresh-cache",
	RoleGetPackages:         "get-packages",
	RoleResolve:             "resolve",
	RoleGetRepoList:         "get-repo-list",
	RoleRepoEnable:          "repo-enable",
	RoleGetUpdates:          "get-updates",
	RoleDependsOn:           "depends-on",
	RoleDownloadPackages:    "download-packages",
	RoleGetFiles:            "get-files",
	RoleGetDetails:          "get-details",
	RoleRepairSystem:        "repair-system",
}

// String returns the wire name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRole resolves a wire name to a Role. Unrecognized names map to
// RoleUnknown.
func ParseRole(name string) Role {
	for r, n := range roleNames {
		if n == name {
			return r
		}
	}
	return RoleUnknown
}

// allRoles returns the union of every defined role value, including the
// unknown sentinel; callers subtract from it.
func allRoles() Bitfield[Role] {
	var b Bitfield[Role]
	for r := RoleUnknown; r < roleCount; r++ {
		b = b.Add(r)
	}
	return b
}
