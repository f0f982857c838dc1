package capability

import "math/bits"

// Bitfield is a packed set of enum values supporting O(1) membership tests
// and unions. Each value occupies the bit at its integer position, so an
// enumeration must stay below 64 values.
type Bitfield[E ~int] uint64

// NewBitfield builds a bitfield containing the given values.
func NewBitfield[E ~int](values ...E) Bitfield[E] {
	var b Bitfield[E]
	for _, v := range values {
		b = b.Add(v)
	}
	return b
}

// Has reports whether v is in the set.
func (b Bitfield[E]) Has(v E) bool {
	return b&(1<<uint(v)) != 0
}

// Add returns a copy of the set with v added.
func (b Bitfield[E]) Add(v E) Bitfield[E] {
	return b | 1<<uint(v)
}

// Union returns the union of both sets.
func (b Bitfield[E]) Union(other Bitfield[E]) Bitfield[E] {
	return b | other
}

// Without returns a copy of the set with the given values removed.
func (b Bitfield[E]) Without(values ...E) Bitfield[E] {
	for _, v := range values {
		b &^= 1 << uint(v)
	}
	return b
}

// Values returns the members of the set in ascending order.
func (b Bitfield[E]) Values() []E {
	values := make([]E, 0, b.Count())
	for i := 0; i < 64; i++ {
		if b&(1<<uint(i)) != 0 {
			values = append(values, E(i))
		}
	}
	return values
}

// Count returns the number of members in the set.
func (b Bitfield[E]) Count() int {
	return bits.OnesCount64(uint64(b))
}

// IsEmpty reports whether the set has no members.
func (b Bitfield[E]) IsEmpty() bool {
	return b == 0
}
