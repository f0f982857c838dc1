package capability

import (
	"testing"
)

func TestRolesExcludesUnsupported(t *testing.T) {
	roles := Roles()

	excluded := []Role{RoleUnknown, RoleAcceptEULA, RoleCancel, RoleGetOldTransactions}
	for _, r := range excluded {
		if roles.Has(r) {
			t.Errorf("Roles() includes excluded role %s", r)
		}
	}
}

func TestRolesIncludesEverythingElse(t *testing.T) {
	roles := Roles()

	// Deny-list policy: every defined role outside the exclusion set is
	// supported, including any added to the enum later.
	for r := RoleUnknown; r < roleCount; r++ {
		switch r {
		case RoleUnknown, RoleAcceptEULA, RoleCancel, RoleGetOldTransactions:
			continue
		}
		if !roles.Has(r) {
			t.Errorf("Roles() missing %s", r)
		}
	}
	if roles.Count() != int(roleCount)-4 {
		t.Errorf("Roles() Count() = %d, want %d", roles.Count(), int(roleCount)-4)
	}
}

func TestFiltersExactSet(t *testing.T) {
	filters := Filters()

	want := []Filter{FilterInstalled, FilterDevelopment, FilterGUI}
	for _, f := range want {
		if !filters.Has(f) {
			t.Errorf("Filters() missing %s", f)
		}
	}
	if filters.Count() != len(want) {
		t.Errorf("Filters() Count() = %d, want %d", filters.Count(), len(want))
	}
}

func TestGroupsAllButUnknown(t *testing.T) {
	groups := Groups()

	if groups.Has(GroupUnknown) {
		t.Error("Groups() includes the unknown sentinel")
	}
	for g := GroupUnknown + 1; g < groupCount; g++ {
		if !groups.Has(g) {
			t.Errorf("Groups() missing %s", g)
		}
	}
	if groups.Count() != int(groupCount)-1 {
		t.Errorf("Groups() Count() = %d, want %d", groups.Count(), int(groupCount)-1)
	}
}

func TestProvidesEmpty(t *testing.T) {
	if !Provides().IsEmpty() {
		t.Errorf("Provides() = %v, want empty", Provides().Values())
	}
}

func TestSupportsParallelization(t *testing.T) {
	if SupportsParallelization() {
		t.Error("SupportsParallelization() = true, want false")
	}
}

func TestMimeTypesIndependentCopy(t *testing.T) {
	first := MimeTypes()
	if len(first) != 0 {
		t.Fatalf("MimeTypes() = %v, want empty", first)
	}

	// Mutating the returned slice must not leak into later calls.
	first = append(first, "application/x-compressed-tar")
	_ = first
	second := MimeTypes()
	if len(second) != 0 {
		t.Errorf("MimeTypes() after caller mutation = %v, want empty", second)
	}
}

func TestRoleStringRoundTrip(t *testing.T) {
	tests := []struct {
		role Role
		name string
	}{
		{RoleSearchNames, "search-names"},
		{RoleInstallPackages, "install-packages"},
		{RoleRepairSystem, "repair-system"},
		{RoleUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.role.String(); got != tt.name {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.name)
		}
		if got := ParseRole(tt.name); got != tt.role {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.name, got, tt.role)
		}
	}

	if got := ParseRole("no-such-role"); got != RoleUnknown {
		t.Errorf("ParseRole(unrecognized) = %v, want RoleUnknown", got)
	}
}

func TestParseFilters(t *testing.T) {
	b := ParseFilters([]string{"installed", "gui", "bogus"})
	if !b.Has(FilterInstalled) || !b.Has(FilterGUI) {
		t.Errorf("ParseFilters() = %v, missing parsed values", b.Values())
	}
	if b.Count() != 2 {
		t.Errorf("ParseFilters() Count() = %d, want 2", b.Count())
	}
}
