// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package rabinkarp finds keywords in Unicode text using the Rabin-Karp
algorithm.

The text and the keyword are decoded into runes, so all indexes are
code-point indexes and not byte offsets. The search computes the hash of the
keyword and of the first window of the text and then rolls the window
hash over the text. Whenever the hashes are equal the window is compared
rune by rune with the keyword, so a hash collision never produces a false
match.

Find uses the polynomial hash modulo a small prime. FindWithFakeHash uses the
sum of the code points, which collides often but finds exactly the same
matches. A Matcher allows the selection of any rolling hash from package
hash and reports statistics about the search.

	i := rabinkarp.Find("Grüße, 世界", "世界")
	// i == 7
*/
package rabinkarp
