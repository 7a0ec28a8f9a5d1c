// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package randtxt generates random texts over a weighted rune alphabet.
// Small alphabets produce many repeated windows and hash collisions, which
// is what tests of the search need.
package randtxt

import (
	"math/rand"
	"sort"
	"strings"
)

// Weight gives the relative probability of a rune.
type Weight struct {
	R rune
	W float64
}

// Alphabet supports the drawing of random runes.
type Alphabet struct {
	runes []rune
	// cumulative distribution
	cdf []float64
}

// NewAlphabet creates an alphabet from the weights. Weights must be
// non-negative and at least one must be positive.
func NewAlphabet(weights []Weight) *Alphabet {
	a := &Alphabet{
		runes: make([]rune, len(weights)),
		cdf:   make([]float64, len(weights)),
	}
	sum := 0.0
	for i, w := range weights {
		if w.W < 0 {
			panic("negative weight")
		}
		sum += w.W
		a.runes[i] = w.R
		a.cdf[i] = sum
	}
	if sum <= 0 {
		panic("no positive weight")
	}
	q := 1.0 / sum
	for i := range a.cdf {
		x := a.cdf[i] * q
		if x > 1.0 {
			x = 1.0
		}
		a.cdf[i] = x
	}
	a.cdf[len(a.cdf)-1] = 1.0
	if !sort.Float64sAreSorted(a.cdf) {
		panic("cdf not sorted")
	}
	return a
}

// Uniform creates an alphabet where all runes of s have the same weight.
func Uniform(s string) *Alphabet {
	var weights []Weight
	for _, r := range s {
		weights = append(weights, Weight{r, 1})
	}
	return NewAlphabet(weights)
}

// Predefined alphabets.
var (
	// AB has two letters only.
	AB = Uniform("ab")
	// Mixed contains runes of one to four bytes in UTF-8, including
	// runes outside the basic multilingual plane.
	Mixed = NewAlphabet([]Weight{
		{'a', 8}, {'b', 6}, {'c', 3}, {' ', 2},
		{'ä', 2}, {'ß', 1}, {'世', 2}, {'界', 1},
		{'😀', 2}, {'𝄞', 1}, {'\U0010FFFF', 0.5},
	})
)

// Runes returns the runes of the alphabet.
func (a *Alphabet) Runes() []rune {
	return append([]rune(nil), a.runes...)
}

// Rune draws a random rune.
func (a *Alphabet) Rune(rnd *rand.Rand) rune {
	x := rnd.Float64()
	i := sort.Search(len(a.cdf), func(k int) bool { return a.cdf[k] > x })
	return a.runes[i]
}

// Text returns a random text of n runes.
func (a *Alphabet) Text(rnd *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteRune(a.Rune(rnd))
	}
	return sb.String()
}

// Pick returns a random slice of n runes of text. If the text is shorter
// than n runes, the whole text is returned.
func Pick(rnd *rand.Rand, text string, n int) string {
	p := []rune(text)
	if n >= len(p) {
		return text
	}
	i := rnd.Intn(len(p) - n + 1)
	return string(p[i : i+n])
}
