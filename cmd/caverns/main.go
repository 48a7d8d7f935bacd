// SPDX-License-Identifier: MIT

// Command caverns loads a cavern file and prints the shortest route between
// two caverns.
//
// Usage:
//
//	caverns [flags] <file>
//
// The route is printed as "a -> b -> c" on stdout, or "no path" when the
// destination cannot be reached. Exit status is 0 on success, 2 when there is
// no path and 1 on any other error.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/caverns/cavern"
	"github.com/katalvlaran/caverns/caveio"
	"github.com/katalvlaran/caverns/matrix"
)

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

type cli struct {
	File        string `arg:"" help:"Cavern file to read" type:"existingfile"`
	Start       *int   `help:"Cavern to start from (default: the first)"`
	End         *int   `help:"Cavern to reach (default: the last)"`
	OneBased    bool   `help:"Number caverns from 1, as cavern files do" name:"one-based"`
	ColumnMajor bool   `help:"Read connectivity flags column by column" name:"column-major"`
	EdgeCost    string `help:"Tunnel cost: geometric distance or the matrix value" enum:"geometric,matrix" default:"geometric"`
	ShowCost    bool   `help:"Also print the total route cost" name:"show-cost"`
	Verbose     bool   `help:"Log debug details to stderr" short:"v"`
}

func main() {
	var params cli
	kong.Parse(&params,
		kong.Name("caverns"),
		kong.Description("Find the shortest route through a network of caverns."),
	)
	os.Exit(params.run(os.Stdout, newLogger(os.Stderr, params.Verbose)))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run does the work of main and returns the exit status.
func (c *cli) run(stdout io.Writer, log *slog.Logger) int {
	var readOpts []caveio.Option
	if c.ColumnMajor {
		readOpts = append(readOpts, caveio.WithOrder(caveio.ColumnMajor))
	}
	g, err := caveio.ReadFile(c.File, readOpts...)
	if err != nil {
		log.Error("Failed to read cavern file", "error", err)
		return exitError
	}
	log.Debug("Loaded caverns", "file", c.File, "caverns", g.Len(), "tunnels", g.Adjacency.Edges())
	if err := matrix.ValidateSymmetric(g.Adjacency, 0); err != nil {
		log.Debug("Some tunnels are one-way", "detail", err)
	}

	mode, err := cavern.ParseEdgeCost(c.EdgeCost)
	if err != nil {
		log.Error("Bad edge cost", "error", err)
		return exitError
	}

	base := 0
	if c.OneBased {
		base = 1
	}
	start := index(c.Start, 0, base)
	end := index(c.End, g.Len()-1, base)

	t0 := time.Now()
	p, err := cavern.FindPath(g.Caverns, g.Adjacency, start, end,
		cavern.WithEdgeCost(mode),
		cavern.WithStopAtTarget(),
	)
	log.Debug("Search finished", "start", start+base, "end", end+base, "elapsed", time.Since(t0))
	switch {
	case errors.Is(err, cavern.ErrUnreachable):
		fmt.Fprintln(stdout, "no path")
		return exitNoPath
	case err != nil:
		log.Error("Failed to find path", "error", err)
		return exitError
	}

	fmt.Fprintln(stdout, p.Format(base))
	if c.ShowCost {
		fmt.Fprintf(stdout, "cost %g\n", p.Cost)
	}

	return exitOK
}

// index converts a user-supplied cavern number to a 0-based index. A nil v
// means the flag was not given and def is used as is. Any given value,
// negative ones included, goes to FindPath for range checking.
func index(v *int, def, base int) int {
	if v == nil {
		return def
	}

	return *v - base
}
