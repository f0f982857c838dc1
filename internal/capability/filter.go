package capability

// Filter is a query refinement flag.
type Filter int

// Filters. Value 0 is the reserved unknown sentinel.
const (
	FilterUnknown Filter = iota
	FilterNone
	FilterInstalled
	FilterNotInstalled
	FilterDevelopment
	FilterNotDevelopment
	FilterGUI
	FilterNotGUI

	filterCount // must be last
)

var filterNames = map[Filter]string{
	FilterUnknown:        "unknown",
	FilterNone:           "none",
	FilterInstalled:      "installed",
	FilterNotInstalled:   "~installed",
	FilterDevelopment:    "devel",
	FilterNotDevelopment: "~devel",
	FilterGUI:            "gui",
	FilterNotGUI:         "~gui",
}

// String returns the wire name of the filter.
func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFilter resolves a wire name to a Filter. Unrecognized names map to
// FilterUnknown.
func ParseFilter(name string) Filter {
	for f, n := range filterNames {
		if n == name {
			return f
		}
	}
	return FilterUnknown
}

// ParseFilters folds a list of wire names into a bitfield, skipping
// unrecognized names.
func ParseFilters(names []string) Bitfield[Filter] {
	var b Bitfield[Filter]
	for _, name := range names {
		if f := ParseFilter(name); f != FilterUnknown {
			b = b.Add(f)
		}
	}
	return b
}
