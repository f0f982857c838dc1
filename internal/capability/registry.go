package capability

// Provide identifies a "what provides" query category. None are supported
// by this backend.
type Provide int

// Provides. Value 0 is the reserved unknown sentinel.
const (
	ProvideUnknown Provide = iota
	ProvideAny
	ProvideLibrary
	ProvideFont
	ProvideMimetype
	ProvideCodec
)

// unsupportedRoles is the fixed exclusion set. Roles is computed by
// exclusion: a role added to the enum is advertised automatically unless it
// is listed here.
var unsupportedRoles = []Role{
	RoleUnknown,
	RoleAcceptEULA,
	RoleCancel,
	RoleGetOldTransactions,
}

// mimeTypes is the advertised mime-type set. Currently empty.
var mimeTypes []string

// Groups returns every defined group except the reserved unknown sentinel.
func Groups() Bitfield[Group] {
	return allGroups().Without(GroupUnknown)
}

// Roles returns every defined role minus the fixed exclusion set.
func Roles() Bitfield[Role] {
	return allRoles().Without(unsupportedRoles...)
}

// Filters returns the supported filters. Unlike Roles this is a hand-curated
// allow-list: a filter added to the enum is NOT advertised until it is added
// here.
func Filters() Bitfield[Filter] {
	return NewBitfield(FilterDevelopment, FilterGUI, FilterInstalled)
}

// Provides returns the supported provide queries. None are supported.
func Provides() Bitfield[Provide] {
	return Bitfield[Provide](0)
}

// MimeTypes returns an independent copy of the advertised mime types. The
// caller owns the returned slice; mutating it does not affect later calls.
func MimeTypes() []string {
	out := make([]string, len(mimeTypes))
	copy(out, mimeTypes)
	return out
}

// SupportsParallelization reports whether the backend can run jobs
// concurrently. Always false: the dispatch core and every handler rely on
// single-flight execution to share the runtime without locking.
func SupportsParallelization() bool {
	return false
}
