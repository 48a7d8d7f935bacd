// SPDX-License-Identifier: MIT

// Package cavern_test contains unit tests for FindPath: input validation,
// small hand-checked graphs, directed tunnels, edge-cost modes and randomized
// graphs cross-checked against Bellman–Ford.
package cavern_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/caverns/cavern"
	"github.com/katalvlaran/caverns/matrix"
)

const eps = 1e-9

// unitSquare returns the corners of the unit square joined in a ring
// 0-1-2-3-0.
func unitSquare(t testing.TB) ([]cavern.Cavern, *matrix.Adjacency) {
	t.Helper()
	caves := []cavern.Cavern{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	adj, err := matrix.NewAdjacency(len(caves))
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, adj.Connect(e[0], e[1]))
	}

	return caves, adj
}

// randomGraph scatters n caverns on an integer grid and adds each directed
// tunnel with probability p.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) ([]cavern.Cavern, *matrix.Adjacency) {
	t.Helper()
	caves := make([]cavern.Cavern, n)
	for i := range caves {
		caves[i] = cavern.Cavern{X: float64(rng.Intn(100)), Y: float64(rng.Intn(100))}
	}
	adj, err := matrix.NewAdjacency(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < p {
				require.NoError(t, adj.Set(u, v, 1))
			}
		}
	}

	return caves, adj
}

// bellmanFord is the reference oracle: plain edge relaxation, n-1 rounds.
func bellmanFord(caves []cavern.Cavern, adj *matrix.Adjacency, start int) []float64 {
	n := len(caves)
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	for round := 0; round < n-1; round++ {
		changed := false
		for u := 0; u < n; u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for v := 0; v < n; v++ {
				if u == v || !adj.HasEdge(u, v) {
					continue
				}
				if d := dist[u] + cavern.Distance(caves[u], caves[v]); d < dist[v] {
					dist[v] = d
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// requireValidPath checks the structural properties every found path has.
func requireValidPath(t *testing.T, caves []cavern.Cavern, adj *matrix.Adjacency, p *cavern.Path, start, end int) {
	t.Helper()
	require.NotNil(t, p)
	require.NotEmpty(t, p.Nodes)
	require.Equal(t, start, p.Nodes[0], "path must begin at start")
	require.Equal(t, end, p.Nodes[p.Len()-1], "path must finish at end")
	seen := make(map[int]bool, p.Len())
	for i, v := range p.Nodes {
		require.False(t, seen[v], "cavern %d repeated in %v", v, p.Nodes)
		seen[v] = true
		if i > 0 {
			require.True(t, adj.HasEdge(p.Nodes[i-1], v), "no tunnel %d→%d", p.Nodes[i-1], v)
		}
	}
	require.InDelta(t, cavern.PathCost(caves, p.Nodes), p.Cost, eps)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestFindPath_Validation(t *testing.T) {
	caves, adj := unitSquare(t)
	small, err := matrix.NewAdjacency(2)
	require.NoError(t, err)

	cases := []struct {
		name    string
		caves   []cavern.Cavern
		adj     *matrix.Adjacency
		start   int
		end     int
		wantErr error
	}{
		{"empty", nil, adj, 0, 0, cavern.ErrEmptyGraph},
		{"nil adjacency", caves, nil, 0, 1, cavern.ErrNilAdjacency},
		{"size mismatch", caves, small, 0, 1, cavern.ErrDimensionMismatch},
		{"NaN coordinate", []cavern.Cavern{{X: 0}, {X: math.NaN()}, {}, {}}, adj, 0, 1, cavern.ErrBadCoordinate},
		{"Inf coordinate", []cavern.Cavern{{}, {}, {Y: math.Inf(-1)}, {}}, adj, 0, 1, cavern.ErrBadCoordinate},
		{"coordinate past bound", []cavern.Cavern{{}, {X: 1e151}, {}, {}}, adj, 0, 1, cavern.ErrBadCoordinate},
		{"huge coordinates", []cavern.Cavern{{X: -1e308}, {X: 1e308}, {}, {}}, adj, 0, 1, cavern.ErrBadCoordinate},
		{"negative start", caves, adj, -1, 1, cavern.ErrStartOutOfRange},
		{"start too big", caves, adj, 4, 1, cavern.ErrStartOutOfRange},
		{"negative end", caves, adj, 0, -1, cavern.ErrEndOutOfRange},
		{"end too big", caves, adj, 0, 4, cavern.ErrEndOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := cavern.FindPath(tc.caves, tc.adj, tc.start, tc.end)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, p)
		})
	}
}

func TestFindPath_NegativeWeightOnlyInMatrixMode(t *testing.T) {
	caves := []cavern.Cavern{{X: 0, Y: 0}, {X: 3, Y: 4}}
	adj, err := matrix.FromRows([][]float64{{0, -1}, {0, 0}})
	require.NoError(t, err)

	_, err = cavern.FindPath(caves, adj, 0, 1, cavern.WithEdgeCost(cavern.EdgeCostMatrix))
	require.ErrorIs(t, err, cavern.ErrNegativeWeight)
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)

	// Geometrically the -1 only marks the tunnel.
	p, err := cavern.FindPath(caves, adj, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.Nodes)
	assert.InDelta(t, 5.0, p.Cost, eps)
}

func TestWithEdgeCost_PanicsOnUnknownMode(t *testing.T) {
	assert.Panics(t, func() { cavern.WithEdgeCost(cavern.EdgeCost(7)) })
}

func TestWithCacheSize_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, cavern.ErrBadCacheSize.Error(), func() { cavern.WithCacheSize(-1) })
}

// ------------------------------------------------------------------------
// 2. Small graphs
// ------------------------------------------------------------------------

func TestFindPath_UnitSquare(t *testing.T) {
	caves, adj := unitSquare(t)

	p, err := cavern.FindPath(caves, adj, 0, 2)
	require.NoError(t, err)
	// Both 0→1→2 and 0→3→2 cost 2; cavern 1 is settled first and keeps it.
	if diff := cmp.Diff(&cavern.Path{Nodes: []int{0, 1, 2}, Cost: 2}, p); diff != "" {
		t.Errorf("FindPath(0,2) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "0 -> 1 -> 2", p.String())
	assert.Equal(t, "1 -> 2 -> 3", p.Format(1))
}

func TestFindPath_StartEqualsEnd(t *testing.T) {
	caves, adj := unitSquare(t)
	for v := range caves {
		p, err := cavern.FindPath(caves, adj, v, v)
		require.NoError(t, err)
		assert.Equal(t, []int{v}, p.Nodes)
		assert.Zero(t, p.Cost)
	}
}

func TestFindPath_StartEqualsEndIsolated(t *testing.T) {
	caves := []cavern.Cavern{{X: 0, Y: 0}, {X: 1, Y: 1}}
	adj, err := matrix.NewAdjacency(2)
	require.NoError(t, err)

	p, err := cavern.FindPath(caves, adj, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p.Nodes)
}

func TestFindPath_Unreachable(t *testing.T) {
	caves := []cavern.Cavern{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 5}}
	adj, err := matrix.NewAdjacency(3)
	require.NoError(t, err)
	require.NoError(t, adj.Connect(0, 1))

	p, err := cavern.FindPath(caves, adj, 0, 2)
	require.ErrorIs(t, err, cavern.ErrUnreachable)
	assert.Nil(t, p, "no partial path on failure")
}

func TestFindPath_DirectedTunnel(t *testing.T) {
	caves := []cavern.Cavern{{X: 0, Y: 0}, {X: 2, Y: 0}}
	adj, err := matrix.NewAdjacency(2)
	require.NoError(t, err)
	require.NoError(t, adj.Set(0, 1, 1))

	p, err := cavern.FindPath(caves, adj, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.Nodes)
	assert.InDelta(t, 2.0, p.Cost, eps)

	_, err = cavern.FindPath(caves, adj, 1, 0)
	require.ErrorIs(t, err, cavern.ErrUnreachable)
}

func TestFindPath_ShorterOfTwoRoutes(t *testing.T) {
	// 0→1→2 over the apex of a shallow triangle is about 10.2 long;
	// 0→3→2 along its base is exactly 10.
	caves := []cavern.Cavern{{X: 0, Y: 0}, {X: 5, Y: 1}, {X: 10, Y: 0}, {X: 5, Y: 0}}
	adj, err := matrix.NewAdjacency(4)
	require.NoError(t, err)
	require.NoError(t, adj.Connect(0, 1))
	require.NoError(t, adj.Connect(1, 2))
	require.NoError(t, adj.Connect(0, 3))
	require.NoError(t, adj.Connect(3, 2))

	p, err := cavern.FindPath(caves, adj, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2}, p.Nodes)
	assert.InDelta(t, 10.0, p.Cost, eps)
}

func TestFindPath_SelfLoopIgnored(t *testing.T) {
	caves := []cavern.Cavern{{X: 0, Y: 0}, {X: 1, Y: 0}}
	adj, err := matrix.FromRows([][]float64{{1, 1}, {0, 1}})
	require.NoError(t, err)

	p, err := cavern.FindPath(caves, adj, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.Nodes)
}

func TestFindPath_MatrixCosts(t *testing.T) {
	// Geometrically 0→1 is shortest; by matrix cost 0→2→1 is.
	caves := []cavern.Cavern{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 5}}
	adj, err := matrix.FromRows([][]float64{
		{0, 10, 1},
		{0, 0, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)

	geo, err := cavern.FindPath(caves, adj, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, geo.Nodes)
	assert.InDelta(t, 1.0, geo.Cost, eps)

	mat, err := cavern.FindPath(caves, adj, 0, 1, cavern.WithEdgeCost(cavern.EdgeCostMatrix))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, mat.Nodes)
	assert.InDelta(t, 2.0, mat.Cost, eps)
}

// TestFindPath_LargestCoordinates joins two caverns at opposite ends of the
// allowed range. The tunnel length stays finite, so the path is found.
func TestFindPath_LargestCoordinates(t *testing.T) {
	caves := []cavern.Cavern{{X: -cavern.MaxCoordinate, Y: -cavern.MaxCoordinate}, {X: cavern.MaxCoordinate, Y: cavern.MaxCoordinate}}
	adj, err := matrix.NewAdjacency(2)
	require.NoError(t, err)
	require.NoError(t, adj.Connect(0, 1))

	p, err := cavern.FindPath(caves, adj, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.Nodes)
	assert.False(t, math.IsInf(p.Cost, 0))
	assert.InEpsilon(t, 2*math.Sqrt2*cavern.MaxCoordinate, p.Cost, 1e-12)
}

// TestFindPath_CostOverflow chains two matrix costs whose sum exceeds the
// largest float64. The far cavern is reachable, so the error must not be
// ErrUnreachable.
func TestFindPath_CostOverflow(t *testing.T) {
	caves := make([]cavern.Cavern, 3)
	adj, err := matrix.FromRows([][]float64{
		{0, 1e308, 0},
		{0, 0, 1e308},
		{0, 0, 0},
	})
	require.NoError(t, err)

	p, err := cavern.FindPath(caves, adj, 0, 2, cavern.WithEdgeCost(cavern.EdgeCostMatrix))
	require.ErrorIs(t, err, cavern.ErrCostOverflow)
	assert.NotErrorIs(t, err, cavern.ErrUnreachable)
	assert.Nil(t, p)

	// A single huge tunnel still fits.
	p, err = cavern.FindPath(caves, adj, 0, 1, cavern.WithEdgeCost(cavern.EdgeCostMatrix), cavern.WithStopAtTarget())
	require.NoError(t, err)
	assert.Equal(t, 1e308, p.Cost)
}

func TestFindPath_InputsUntouched(t *testing.T) {
	caves, adj := unitSquare(t)
	wantCaves := append([]cavern.Cavern(nil), caves...)
	wantAdj := adj.String()

	_, err := cavern.FindPath(caves, adj, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, wantCaves, caves)
	assert.Equal(t, wantAdj, adj.String())
}

// ------------------------------------------------------------------------
// 3. Randomized graphs
// ------------------------------------------------------------------------

func TestFindPath_MatchesBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := 2 + rng.Intn(25)
		caves, adj := randomGraph(t, rng, n, 0.15)
		start := rng.Intn(n)
		want := bellmanFord(caves, adj, start)

		for end := 0; end < n; end++ {
			p, err := cavern.FindPath(caves, adj, start, end)
			if math.IsInf(want[end], 1) {
				require.ErrorIs(t, err, cavern.ErrUnreachable, "trial %d %d→%d", trial, start, end)
				require.Nil(t, p)
				continue
			}
			require.NoError(t, err, "trial %d %d→%d", trial, start, end)
			requireValidPath(t, caves, adj, p, start, end)
			require.InDelta(t, want[end], p.Cost, eps, "trial %d %d→%d", trial, start, end)
		}
	}
}

func TestFindPath_StopAtTargetSameResult(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(30)
		caves, adj := randomGraph(t, rng, n, 0.2)
		start, end := rng.Intn(n), rng.Intn(n)

		full, errFull := cavern.FindPath(caves, adj, start, end)
		early, errEarly := cavern.FindPath(caves, adj, start, end, cavern.WithStopAtTarget())
		if errFull != nil {
			require.ErrorIs(t, errFull, cavern.ErrUnreachable)
			require.ErrorIs(t, errEarly, cavern.ErrUnreachable)
			continue
		}
		require.NoError(t, errEarly)
		if diff := cmp.Diff(full, early); diff != "" {
			t.Fatalf("trial %d: StopAtTarget changed the result (-full +early):\n%s", trial, diff)
		}
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	// Integer grid points make equal-cost alternatives common.
	caves, adj := randomGraph(t, rng, 40, 0.25)

	first, err := cavern.FindPath(caves, adj, 0, 39)
	if err != nil {
		require.ErrorIs(t, err, cavern.ErrUnreachable)
	}
	for i := 0; i < 5; i++ {
		again, err2 := cavern.FindPath(caves, adj, 0, 39)
		require.Equal(t, err == nil, err2 == nil)
		require.Empty(t, cmp.Diff(first, again))
	}
}
