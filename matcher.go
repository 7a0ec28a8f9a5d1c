// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rabinkarp

import (
	"github.com/ulikunitz/rabinkarp/hash"
	"github.com/ulikunitz/rabinkarp/internal/xlog"
)

// Stats describes the work done by a single search.
type Stats struct {
	// windows of the text whose hash has been compared
	Windows int
	// hash matches that failed the rune comparison
	Collisions int
	// runes compared to confirm hash matches
	Comparisons int
}

// Matcher searches keywords with a configurable rolling hash. A Matcher may
// be used concurrently, provided its Logger supports it.
type Matcher struct {
	// Hash creates the rolling hash for keywords of n runes. If Hash is
	// nil, the polynomial hash will be used.
	Hash func(n int) hash.Roller
	// Logger traces hash collisions if not nil.
	Logger xlog.Logger
}

// Predefined matchers.
var (
	// Polynomial uses hash.Polynomial with base 256 and prime 101.
	Polynomial = &Matcher{
		Hash: func(n int) hash.Roller { return hash.NewPolynomial(n) },
	}
	// Additive uses the sum of the code points.
	Additive = &Matcher{
		Hash: func(n int) hash.Roller { return hash.NewAdditive(n) },
	}
	// Wide uses the 64-bit hash.RabinKarp and has almost no collisions.
	Wide = &Matcher{
		Hash: func(n int) hash.Roller { return hash.NewRabinKarp(n) },
	}
)

func (m *Matcher) roller(n int) hash.Roller {
	if m.Hash == nil {
		return hash.NewPolynomial(n)
	}
	return m.Hash(n)
}

// Index returns the rune index of the first occurrence of keyword in text
// or NotFound.
func (m *Matcher) Index(text, keyword string) int {
	i, _ := m.IndexStats(text, keyword)
	return i
}

// IndexStats works like Index and reports the work done by the search.
func (m *Matcher) IndexStats(text, keyword string) (i int, s Stats) {
	t, k := []rune(text), []rune(keyword)
	switch {
	case len(k) == 0:
		return 0, s
	case len(k) > len(t):
		return NotFound, s
	}
	i = search(t, k, m.roller(len(k)), m.Logger, &s)
	if i >= 0 {
		xlog.Printf(m.Logger, "found at %d after %d windows", i, s.Windows)
	}
	return i, s
}
