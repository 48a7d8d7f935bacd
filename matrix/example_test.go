// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/caverns/matrix"
)

// ExampleAdjacency builds the unit-square tunnel layout 0-1-2-3-0.
func ExampleAdjacency() {
	a, err := matrix.NewAdjacency(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_ = a.Connect(e[0], e[1])
	}

	fmt.Print(a)
	fmt.Println("0-2 tunnel:", a.HasEdge(0, 2))
	// Output:
	// [0, 1, 0, 1]
	// [1, 0, 1, 0]
	// [0, 1, 0, 1]
	// [1, 0, 1, 0]
	// 0-2 tunnel: false
}
