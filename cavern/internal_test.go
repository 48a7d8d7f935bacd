// SPDX-License-Identifier: MIT

package cavern

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/caverns/matrix"
)

// line returns n caverns on the x axis, each joined to the next.
func line(t *testing.T, n int) ([]Cavern, *matrix.Adjacency) {
	t.Helper()
	caves := make([]Cavern, n)
	adj, err := matrix.NewAdjacency(n)
	require.NoError(t, err)
	for i := range caves {
		caves[i] = Cavern{X: float64(i)}
		if i > 0 {
			require.NoError(t, adj.Connect(i-1, i))
		}
	}

	return caves, adj
}

func TestSearch_StopAtTargetSettlesFewer(t *testing.T) {
	caves, adj := line(t, 10)

	full, settledFull, err := search(caves, adj, DefaultOptions(), 0, 2)
	require.NoError(t, err)
	cfg := DefaultOptions()
	cfg.StopAtTarget = true
	early, settledEarly, err := search(caves, adj, cfg, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, full, early)
	assert.Equal(t, 10, settledFull)
	assert.Equal(t, 3, settledEarly)
}

func TestSearch_UnreachableStopsAtInfinity(t *testing.T) {
	caves, adj := line(t, 4)
	require.NoError(t, adj.Set(1, 2, 0))
	require.NoError(t, adj.Set(2, 1, 0))

	_, settled, err := search(caves, adj, DefaultOptions(), 0, 3)
	require.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, 2, settled, "only 0 and 1 have finite distances")
}

func TestPlanner_Metrics(t *testing.T) {
	caves, adj := line(t, 3)
	require.NoError(t, adj.Set(1, 2, 0))
	require.NoError(t, adj.Set(2, 1, 0))
	pl, err := NewPlanner(caves, adj)
	require.NoError(t, err)
	ctx := context.Background()

	found := testutil.ToFloat64(metricPlannerQueries.WithLabelValues(resultFound))
	unreachable := testutil.ToFloat64(metricPlannerQueries.WithLabelValues(resultUnreachable))
	invalid := testutil.ToFloat64(metricPlannerQueries.WithLabelValues(resultInvalid))
	canceled := testutil.ToFloat64(metricPlannerQueries.WithLabelValues(resultCanceled))
	hits := testutil.ToFloat64(metricPlannerCacheHits)

	_, err = pl.Path(ctx, 0, 1)
	require.NoError(t, err)
	_, err = pl.Path(ctx, 0, 1)
	require.NoError(t, err)
	_, err = pl.Path(ctx, 0, 2)
	require.ErrorIs(t, err, ErrUnreachable)
	_, err = pl.Path(ctx, 0, 7)
	require.ErrorIs(t, err, ErrEndOutOfRange)
	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = pl.Path(cctx, 0, 1)
	require.Error(t, err)

	assert.Equal(t, found+2, testutil.ToFloat64(metricPlannerQueries.WithLabelValues(resultFound)))
	assert.Equal(t, unreachable+1, testutil.ToFloat64(metricPlannerQueries.WithLabelValues(resultUnreachable)))
	assert.Equal(t, invalid+1, testutil.ToFloat64(metricPlannerQueries.WithLabelValues(resultInvalid)))
	assert.Equal(t, canceled+1, testutil.ToFloat64(metricPlannerQueries.WithLabelValues(resultCanceled)))
	assert.Equal(t, hits+1, testutil.ToFloat64(metricPlannerCacheHits))
}
