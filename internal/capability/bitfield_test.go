package capability

import (
	"testing"
)

func TestBitfieldHasAdd(t *testing.T) {
	var b Bitfield[Role]

	if b.Has(RoleResolve) {
		t.Error("empty bitfield Has() = true")
	}

	b = b.Add(RoleResolve)
	if !b.Has(RoleResolve) {
		t.Error("Has() after Add() = false")
	}
	if b.Has(RoleInstallPackages) {
		t.Error("Has() for absent value = true")
	}
}

func TestBitfieldUnion(t *testing.T) {
	a := NewBitfield(RoleResolve, RoleGetUpdates)
	b := NewBitfield(RoleGetUpdates, RoleGetFiles)

	u := a.Union(b)
	for _, r := range []Role{RoleResolve, RoleGetUpdates, RoleGetFiles} {
		if !u.Has(r) {
			t.Errorf("Union() missing %s", r)
		}
	}
	if u.Count() != 3 {
		t.Errorf("Union() Count() = %d, want 3", u.Count())
	}
}

func TestBitfieldWithout(t *testing.T) {
	b := NewBitfield(RoleResolve, RoleGetUpdates, RoleGetFiles)
	b = b.Without(RoleGetUpdates)

	if b.Has(RoleGetUpdates) {
		t.Error("Has() after Without() = true")
	}
	if !b.Has(RoleResolve) || !b.Has(RoleGetFiles) {
		t.Error("Without() removed unrelated values")
	}

	// Removing an absent value is a no-op.
	before := b
	if got := b.Without(RoleGetUpdates); got != before {
		t.Errorf("Without() absent value = %v, want %v", got, before)
	}
}

func TestBitfieldValues(t *testing.T) {
	b := NewBitfield(RoleGetFiles, RoleResolve)
	values := b.Values()

	if len(values) != 2 {
		t.Fatalf("Values() len = %d, want 2", len(values))
	}
	// Ascending order regardless of insertion order.
	if values[0] != RoleResolve || values[1] != RoleGetFiles {
		t.Errorf("Values() = %v, want [%v %v]", values, RoleResolve, RoleGetFiles)
	}
}

func TestBitfieldEmpty(t *testing.T) {
	var b Bitfield[Filter]
	if !b.IsEmpty() {
		t.Error("zero bitfield IsEmpty() = false")
	}
	if len(b.Values()) != 0 {
		t.Errorf("zero bitfield Values() = %v, want empty", b.Values())
	}
	if b.Add(FilterGUI).IsEmpty() {
		t.Error("non-empty bitfield IsEmpty() = true")
	}
}
