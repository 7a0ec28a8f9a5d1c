// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

// Roller defines an interface provided by a rolling hash.
//
// The method Len provides the length of the rune sequences for which the
// rolling hash will be computed.
//
// The method AddYoung adds a new rune to the provided hash, whereby the hash
// value will be shifted or multiplied accordingly.
//
// The method RemoveOldest removes the provided oldest rune from the hash. The
// hash value will not be shifted or multiplied.
type Roller interface {
	Len() int
	AddYoung(h uint64, c rune) uint64
	RemoveOldest(h uint64, c rune) uint64
}

// Sum computes the hash of the window p from scratch. The length of p should
// be r.Len().
func Sum(r Roller, p []rune) uint64 {
	var h uint64
	for _, c := range p {
		h = r.AddYoung(h, c)
	}
	return h
}

// Roll moves the window one rune forward. The rune oldest leaves the window
// and the rune young enters it.
func Roll(r Roller, h uint64, oldest, young rune) uint64 {
	return r.AddYoung(r.RemoveOldest(h, oldest), young)
}

// ComputeHashes computes all hashes for the rune slice p using the rolling
// hash provided by r.
func ComputeHashes(r Roller, p []rune) []uint64 {
	m, n := len(p), r.Len()
	if m < n {
		return nil
	}
	h := make([]uint64, m-n+1)
	h[0] = Sum(r, p[:n])
	for i := 1; i < len(h); i++ {
		h[i] = Roll(r, h[i-1], p[i-1], p[n-1+i])
	}
	return h
}
