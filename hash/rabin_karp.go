// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

// A is the default constant for the 64-bit Rabin-Karp rolling hash. This is a
// random prime.
const A = 0x97b548add41d5da1

// RabinKarp is a multiplicative hash computed modulo 2^64. It doesn't need an
// explicit modulus because uint64 arithmetic wraps around.
type RabinKarp struct {
	A uint64
	N int
	// a^{n-1}
	aOldest uint64
}

// NewRabinKarp creates a new RabinKarp value. The argument n defines the
// length of the rune sequence to be hashed. The default constant will be
// used.
func NewRabinKarp(n int) *RabinKarp {
	return NewRabinKarpConst(n, A)
}

// NewRabinKarpConst creates a new RabinKarp value. The argument n defines the
// length of the rune sequence to be hashed. The argument a provides the
// constant used to compute the hash.
func NewRabinKarpConst(n int, a uint64) *RabinKarp {
	if n < 0 {
		panic("number of runes n must not be negative")
	}
	aOldest := uint64(1)
	// Keywords are short, O(n) is sufficient.
	for i := 0; i < n-1; i++ {
		aOldest *= a
	}
	return &RabinKarp{A: a, aOldest: aOldest, N: n}
}

// AddYoung adds a "young" rune to the hash provided. The existing hash is
// multiplied accordingly.
func (r *RabinKarp) AddYoung(h uint64, c rune) uint64 {
	h *= r.A
	h += uint64(uint32(c))
	return h
}

// RemoveOldest removes the "oldest" rune from the hash. The hash value is not
// multiplied.
func (r *RabinKarp) RemoveOldest(h uint64, c rune) uint64 {
	h -= uint64(uint32(c)) * r.aOldest
	return h
}

// Len returns the length of the rune sequence this hash supports.
func (r *RabinKarp) Len() int {
	return r.N
}
