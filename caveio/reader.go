// SPDX-License-Identifier: MIT

package caveio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/caverns/cavern"
	"github.com/katalvlaran/caverns/matrix"
)

// ReadFile opens path and decodes it with Read.
func ReadFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("caveio: %w", err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Read decodes one cavern file from r.
//
// Errors:
//
//   - ErrEmptyInput   if r holds no values at all.
//   - ErrBadNumber    if a value does not parse, or a coordinate is not finite.
//   - ErrBadCount     if n <= 0 or n exceeds the MaxCaverns option.
//   - ErrTruncated    if r ends before all coordinates and flags are read.
//   - ErrTrailingData if values follow the last flag.
//
// Number errors carry the 1-based position of the offending value.
func Read(r io.Reader, opts ...Option) (*Graph, error) {
	cfg := gatherOptions(opts)
	d := newDecoder(r)

	// 1) Cavern count.
	n, err := d.int("cavern count")
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > cfg.MaxCaverns {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrBadCount, n, cfg.MaxCaverns)
	}
	want := 1 + 2*n + n*n

	// 2) Coordinates. The slice grows with what is actually read.
	caves := make([]cavern.Cavern, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		x, err := d.float("x coordinate")
		if err != nil {
			return nil, d.truncated(err, want)
		}
		y, err := d.float("y coordinate")
		if err != nil {
			return nil, d.truncated(err, want)
		}
		caves = append(caves, cavern.Cavern{X: x, Y: y})
	}

	// 3) Connectivity flags. Only nonzero flags are kept until the last one
	// has been read, so a truncated file never costs an n×n allocation.
	var flags []flag
	for k := 0; k < n*n; k++ {
		v, err := d.int("connectivity flag")
		if err != nil {
			return nil, d.truncated(err, want)
		}
		if v != 0 {
			flags = append(flags, flag{k: k, v: v})
		}
	}

	// 4) Nothing may follow.
	if tok, err := d.next(); err == nil {
		return nil, fmt.Errorf("%w: value %d is %q", ErrTrailingData, d.pos, tok)
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("caveio: %w", err)
	}

	// 5) Build the matrix from the collected flags.
	adj, err := matrix.NewAdjacency(n)
	if err != nil {
		return nil, err
	}
	for _, f := range flags {
		if err := adj.Set(f.k/n, f.k%n, float64(f.v)); err != nil {
			return nil, err
		}
	}
	if cfg.Order == ColumnMajor {
		adj = adj.Transpose()
	}

	return &Graph{Caverns: caves, Adjacency: adj}, nil
}

// flag is one nonzero connectivity value at flat position k.
type flag struct {
	k, v int
}

// decoder hands out the values of a cavern file one at a time.
type decoder struct {
	sc  *bufio.Scanner
	pos int // 1-based position of the last value returned
}

func newDecoder(r io.Reader) *decoder {
	sc := bufio.NewScanner(r)
	sc.Split(splitValues)

	return &decoder{sc: sc}
}

// next returns the next raw value, or io.EOF.
func (d *decoder) next() (string, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	d.pos++

	return d.sc.Text(), nil
}

func (d *decoder) int(what string) (int, error) {
	tok, err := d.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: value %d (%s): %w", ErrBadNumber, d.pos, what, err)
	}

	return v, nil
}

func (d *decoder) float(what string) (float64, error) {
	tok, err := d.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: value %d (%s): %w", ErrBadNumber, d.pos, what, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: value %d (%s) is %q", ErrBadNumber, d.pos, what, tok)
	}

	return v, nil
}

// truncated turns io.EOF into ErrTruncated and passes other errors through.
func (d *decoder) truncated(err error, want int) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: got %d of %d values", ErrTruncated, d.pos, want)
	}
	if errors.Is(err, ErrBadNumber) {
		return err
	}

	return fmt.Errorf("caveio: %w", err)
}

func isSeparator(b byte) bool {
	switch b {
	case ',', ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

// splitValues is a bufio.SplitFunc yielding the values between separators.
// Runs of separators count as one.
func splitValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}
