// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rabinkarp

import (
	"github.com/ulikunitz/rabinkarp/hash"
	"github.com/ulikunitz/rabinkarp/internal/xlog"
)

// NotFound is returned if the keyword doesn't occur in the text.
const NotFound = -1

// Find returns the rune index of the first occurrence of keyword in text or
// NotFound. It uses the polynomial hash with base 256 modulo 101.
//
// An empty keyword is found at index 0.
func Find(text, keyword string) int {
	return Polynomial.Index(text, keyword)
}

// FindWithFakeHash returns the same result as Find, but uses the sum of the
// code points as hash.
func FindWithFakeHash(text, keyword string) int {
	return Additive.Index(text, keyword)
}

// Search looks for keyword in text using the rolling hash r. The window
// length of r must be len(keyword).
func Search(text, keyword []rune, r hash.Roller) int {
	var s Stats
	return search(text, keyword, r, nil, &s)
}

// search is the scan shared by all hashes. It records its work in s.
func search(text, keyword []rune, r hash.Roller, l xlog.Logger, s *Stats) int {
	n, m := len(text), len(keyword)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}
	if r.Len() != m {
		panic("rabinkarp: roller length differs from keyword length")
	}

	kh := hash.Sum(r, keyword)
	th := hash.Sum(r, text[:m])
	last := n - m
	for i := 0; ; i++ {
		s.Windows++
		if th == kh {
			if s.verify(text[i:i+m], keyword) {
				return i
			}
			s.Collisions++
			xlog.Printf(l, "collision at %d: hash %#x", i, th)
		}
		if i == last {
			return NotFound
		}
		th = hash.Roll(r, th, text[i], text[i+m])
	}
}

// verify compares the window with the keyword rune by rune. Both slices must
// have the same length.
func (s *Stats) verify(window, keyword []rune) bool {
	for i, c := range keyword {
		s.Comparisons++
		if window[i] != c {
			return false
		}
	}
	return true
}
