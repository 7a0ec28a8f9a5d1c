// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

// Additive is the sum of the code points in the window. All permutations of
// a window share the same hash, so collisions are frequent.
//
// The sum wraps around at 2^64. Rolling is still exact modulo 2^64, so there
// is no limit on the window length.
type Additive struct {
	N int
}

// NewAdditive returns the additive hash for windows of n runes.
func NewAdditive(n int) *Additive {
	if n < 0 {
		panic("number of runes n must not be negative")
	}
	return &Additive{N: n}
}

// AddYoung adds the code point of c.
func (r *Additive) AddYoung(h uint64, c rune) uint64 {
	return h + uint64(uint32(c))
}

// RemoveOldest subtracts the code point of c.
func (r *Additive) RemoveOldest(h uint64, c rune) uint64 {
	return h - uint64(uint32(c))
}

// Len returns the length of the rune sequence this hash supports.
func (r *Additive) Len() int {
	return r.N
}
