// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rabinkarp_test

import (
	"fmt"

	"github.com/ulikunitz/rabinkarp"
)

func ExampleFind() {
	fmt.Println(rabinkarp.Find("Grüße, 世界", "世界"))
	fmt.Println(rabinkarp.Find("Grüße, 世界", "Welt"))
	// Output:
	// 7
	// -1
}

func ExampleFindWithFakeHash() {
	fmt.Println(rabinkarp.FindWithFakeHash("ababbbabbbabaab", "abaab"))
	// Output:
	// 10
}

func ExampleMatcher_IndexStats() {
	i, s := rabinkarp.Additive.IndexStats("bbabab", "ab")
	fmt.Println(i, s.Windows, s.Collisions)
	// Output:
	// 2 3 1
}
