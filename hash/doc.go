// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package hash provides rolling hashes over rune sequences.

A rolling hash is computed once over the first window of a sequence and is
then updated in constant time for every shift of the window by removing the
oldest rune and adding the young one.

The package provides the polynomial hash modulo a small prime used by the
classic Rabin-Karp search, an additive hash that simply sums code points,
and a 64-bit multiplicative hash. All of them implement the Roller
interface.
*/
package hash
