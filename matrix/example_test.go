package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cyclespace/matrix"
)

// ExampleIncidenceMatrix shows that a bowtie's two triangles and their
// combination span only two dimensions.
func ExampleIncidenceMatrix() {
	m, err := matrix.NewIncidenceMatrix([][]int{{1, 2, 3}, {3, 4, 5}, {1, 2, 4, 5}}, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	fmt.Println("rank:", m.Rank())
	// Output:
	// 11100
	// 00111
	// 11011
	// rank: 2
}
