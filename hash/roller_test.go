// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

import (
	"math/rand"
	"testing"
)

var rollers = []struct {
	name string
	new  func(n int) Roller
}{
	{"polynomial", func(n int) Roller { return NewPolynomial(n) }},
	{"additive", func(n int) Roller { return NewAdditive(n) }},
	{"rabin-karp", func(n int) Roller { return NewRabinKarp(n) }},
}

func makeBenchmarkRunes(n int) []rune {
	rnd := rand.New(rand.NewSource(42))
	alphabet := []rune("abcdeäöü世界😀𝄞")
	p := make([]rune, n)
	for i := range p {
		p[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return p
}

func TestRollersSimple(t *testing.T) {
	p := []rune("abcde😀f")
	for _, tc := range rollers {
		r := tc.new(4)
		h2 := ComputeHashes(r, p)
		if len(h2) != len(p)-3 {
			t.Fatalf("%s: len(ComputeHashes(r, p)) is %d; want %d",
				tc.name, len(h2), len(p)-3)
		}
		for i, h := range h2 {
			w := Sum(r, p[i:i+4])
			t.Logf("%s %d h=%#016x w=%#016x", tc.name, i, h, w)
			if h != w {
				t.Errorf("%s: rolling hash %d: %#016x; want %#016x",
					tc.name, i, h, w)
			}
		}
	}
}

func TestRollersRandom(t *testing.T) {
	p := makeBenchmarkRunes(512)
	for _, tc := range rollers {
		for _, n := range []int{1, 2, 3, 7, 31, 64, 512} {
			r := tc.new(n)
			if r.Len() != n {
				t.Fatalf("%s: r.Len() is %d; want %d",
					tc.name, r.Len(), n)
			}
			h2 := ComputeHashes(r, p)
			for i, h := range h2 {
				if w := Sum(r, p[i:i+n]); h != w {
					t.Fatalf("%s n=%d: rolling hash %d: %#x; want %#x",
						tc.name, n, i, h, w)
				}
			}
		}
	}
}

func TestComputeHashesShort(t *testing.T) {
	r := NewPolynomial(5)
	if h := ComputeHashes(r, []rune("abc")); h != nil {
		t.Errorf("ComputeHashes(r, %q) is %v; want nil", "abc", h)
	}
}

func TestPolynomialRange(t *testing.T) {
	p := makeBenchmarkRunes(1024)
	for _, n := range []int{1, 5, 100} {
		r := NewPolynomial(n)
		for i, h := range ComputeHashes(r, p) {
			if h >= Prime {
				t.Fatalf("n=%d: hash %d is %d; want less than %d",
					n, i, h, Prime)
			}
		}
	}
}

func TestPolynomialKnown(t *testing.T) {
	// "ab" = 97*256 + 98 = 24930; 24930 mod 101 = 84
	r := NewPolynomial(2)
	if h := Sum(r, []rune("ab")); h != 84 {
		t.Errorf("Sum(r, %q) is %d; want %d", "ab", h, 84)
	}
	if r.height != 256%101 {
		t.Errorf("r.height is %d; want %d", r.height, 256%101)
	}
}

func TestPolynomialNegativeRemainder(t *testing.T) {
	r := NewPolynomial(3)
	// Removing 'z' from a hash of 0 requires the correction step.
	h := r.RemoveOldest(0, 'z')
	if h >= Prime {
		t.Fatalf("r.RemoveOldest(0, 'z') is %d; want less than %d",
			h, Prime)
	}
	want := (Prime - uint64('z')*r.height%Prime) % Prime
	if h != want {
		t.Errorf("r.RemoveOldest(0, 'z') is %d; want %d", h, want)
	}
}

func TestAdditiveCollision(t *testing.T) {
	r := NewAdditive(2)
	a, b := Sum(r, []rune("ac")), Sum(r, []rune("bb"))
	if a != b {
		t.Errorf("additive hashes of %q and %q are %d and %d; want equal",
			"ac", "bb", a, b)
	}
}

func TestAdditiveWraparound(t *testing.T) {
	r := NewAdditive(2)
	h := ^uint64(0) - 10
	g := Roll(r, r.AddYoung(h, 'x'), 'x', 'y')
	if w := h + 'y'; g != w {
		t.Errorf("Roll with wraparound is %#x; want %#x", g, w)
	}
}

func TestNegativeLength(t *testing.T) {
	for _, tc := range rollers {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic for n=-1", tc.name)
				}
			}()
			tc.new(-1)
		}()
	}
}

func BenchmarkRollers(b *testing.B) {
	p := makeBenchmarkRunes(4096)
	for _, tc := range rollers {
		r := tc.new(8)
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ComputeHashes(r, p)
			}
		})
	}
}
