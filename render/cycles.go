// Package render turns graphs and cycle sets into human-readable and
// machine-readable output.
package render

import (
	"bufio"
	"fmt"
	"io"
)

// Cycles writes the cycle count followed by one line per cycle, each node as a
// right-aligned "%3d ->" segment and the first node repeated to close the walk:
//
//	2 cycles were found
//	  3 ->  5 ->  7 ->  3
//	  6 ->  5 ->  7 ->  6
//
// An empty cycle is written as an empty line.
func Cycles(w io.Writer, cycles [][]int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d cycles were found\n", len(cycles))
	for _, c := range cycles {
		for _, node := range c {
			fmt.Fprintf(bw, "%3d ->", node)
		}
		if len(c) > 0 {
			fmt.Fprintf(bw, "%3d", c[0])
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
