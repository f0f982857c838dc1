package capability

// Group is a package category used for enumeration and browsing.
type Group int

// Groups. Value 0 is the reserved unknown sentinel and is never advertised.
const (
	GroupUnknown Group = iota
	GroupAccessibility
	GroupAccessories
	GroupAdminTools
	GroupCommunication
	GroupDesktopGNOME
	GroupDesktopKDE
	GroupDesktopOther
	GroupEducation
	GroupFonts
	GroupGames
	GroupGraphics
	GroupInternet
	GroupLegacy
	GroupLocalization
	GroupMaps
	GroupMultimedia
	GroupNetwork
	GroupOffice
	GroupOther
	GroupPowerManagement
	GroupProgramming
	GroupPublishing
	GroupRepos
	GroupScience
	GroupSecurity
	GroupServers
	GroupSystem
	GroupVirtualization

	groupCount // must be last
)

var groupNames = map[Group]string{
	GroupUnknown:         "unknown",
	GroupAccessibility:   "accessibility",
	GroupAccessories:     "accessories",
	GroupAdminTools:      "admin-tools",
	GroupCommunication:   "communication",
	GroupDesktopGNOME:    "desktop-gnome",
	GroupDesktopKDE:      "desktop-kde",
	GroupDesktopOther:    "desktop-other",
	GroupEducation:       "education",
	GroupFonts:           "fonts",
	GroupGames:           "games",
	GroupGraphics:        "graphics",
	GroupInternet:        "internet",
	GroupLegacy:          "legacy",
	GroupLocalization:    "localization",
	GroupMaps:            "maps",
	GroupMultimedia:      "multimedia",
	GroupNetwork:         "network",
	GroupOffice:          "office",
	GroupOther:           "other",
	GroupPowerManagement: "power-management",
	GroupProgramming:     "programming",
	GroupPublishing:      "publishing",
	GroupRepos:           "repos",
	GroupScience:         "science",
	GroupSecurity:        "security",
	GroupServers:         "servers",
	GroupSystem:          "system",
	GroupVirtualization:  "virtualization",
}

// String returns the wire name of the group.
func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "unknown"
}

// ParseGroup resolves a wire name to a Group. Unrecognized names map to
// GroupUnknown.
func ParseGroup(name string) Group {
	for g, n := range groupNames {
		if n == name {
			return g
		}
	}
	return GroupUnknown
}

// allGroups returns the union of every defined group value, including the
// unknown sentinel; callers subtract from it.
func allGroups() Bitfield[Group] {
	var b Bitfield[Group]
	for g := GroupUnknown; g < groupCount; g++ {
		b = b.Add(g)
	}
	return b
}
