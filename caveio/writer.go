// SPDX-License-Identifier: MIT

package caveio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/caverns/matrix"
)

// Write encodes g as a cavern file: the count on the first line, one
// coordinate pair per line, then one line of n flags per matrix row (or
// column, under ColumnMajor). Read(Write(g)) reproduces g.
//
// Matrix entries must be integers, as the file format has no other kind of
// flag; anything else is ErrBadNumber.
func Write(w io.Writer, g *Graph, opts ...Option) error {
	cfg := gatherOptions(opts)
	if g == nil {
		return errors.New("caveio: nil graph")
	}
	if err := matrix.ValidateNotNil(g.Adjacency); err != nil {
		return fmt.Errorf("caveio: %w", err)
	}
	n := len(g.Caverns)
	if n == 0 || g.Adjacency.Size() != n {
		return fmt.Errorf("%w: %d caverns, %d×%d matrix", ErrBadCount, n, g.Adjacency.Size(), g.Adjacency.Size())
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d,\n", n)
	for _, c := range g.Caverns {
		fmt.Fprintf(bw, "%s,%s,\n", formatFloat(c.X), formatFloat(c.Y))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row, col := i, j
			if cfg.Order == ColumnMajor {
				row, col = j, i
			}
			v := g.Adjacency.Weight(row, col)
			if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
				return fmt.Errorf("%w: entry (%d,%d)=%g is not an integer flag", ErrBadNumber, row, col, v)
			}
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(strconv.Itoa(int(v)))
		}
		if i < n-1 {
			bw.WriteString(",\n")
		} else {
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
