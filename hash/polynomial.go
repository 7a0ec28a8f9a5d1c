// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

// Default constants for the polynomial hash. Every rune is treated as a digit
// of a number in base 256. Runes may exceed 255, but only the equality of
// hashes matters. The small prime keeps the hash values small and produces
// collisions regularly.
const (
	Base  = 256
	Prime = 101
)

// Polynomial is the classic Rabin-Karp hash. The hash of the window
// c[0..n-1] is
//
//	c[0]*B^(n-1) + c[1]*B^(n-2) + ... + c[n-1]  mod P
//
// All hash values are in the range [0,P).
type Polynomial struct {
	// base reduced modulo P
	B uint64
	P uint64
	N int
	// B^(n-1) mod P
	height uint64
}

// NewPolynomial creates a polynomial hash for windows of n runes using the
// constants Base and Prime.
func NewPolynomial(n int) *Polynomial {
	return NewPolynomialConst(n, Base, Prime)
}

// NewPolynomialConst creates a polynomial hash for windows of n runes with
// base b and prime p. The prime must be less than 2^31 so that the products
// computed by the hash don't overflow.
func NewPolynomialConst(n int, b, p uint64) *Polynomial {
	if n < 0 {
		panic("number of runes n must not be negative")
	}
	if p < 2 || p >= 1<<31 {
		panic("prime p out of range")
	}
	b %= p
	height := uint64(1)
	for i := 0; i < n-1; i++ {
		height = height * b % p
	}
	return &Polynomial{B: b, P: p, N: n, height: height}
}

// digit reduces the rune c into the range [0,P).
func (r *Polynomial) digit(c rune) uint64 {
	return uint64(uint32(c)) % r.P
}

// AddYoung shifts the hash by one digit and adds c.
func (r *Polynomial) AddYoung(h uint64, c rune) uint64 {
	return (h*r.B + r.digit(c)) % r.P
}

// RemoveOldest subtracts the weighted contribution of the oldest rune c.
func (r *Polynomial) RemoveOldest(h uint64, c rune) uint64 {
	p := int64(r.P)
	x := (int64(h) - int64(r.digit(c)*r.height)) % p
	// Go's remainder has the sign of the dividend.
	if x < 0 {
		x += p
	}
	return uint64(x)
}

// Len returns the length of the rune sequence this hash supports.
func (r *Polynomial) Len() int {
	return r.N
}
