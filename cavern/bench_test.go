// SPDX-License-Identifier: MIT

package cavern_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/caverns/cavern"
)

func BenchmarkFindPath200(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	caves, adj := randomGraph(b, rng, 200, 0.05)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cavern.FindPath(caves, adj, 0, 199)
	}
}

func BenchmarkFindPath200StopAtTarget(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	caves, adj := randomGraph(b, rng, 200, 0.05)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cavern.FindPath(caves, adj, 0, 199, cavern.WithStopAtTarget())
	}
}

func BenchmarkPlannerCached(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	caves, adj := randomGraph(b, rng, 200, 0.05)
	pl, err := cavern.NewPlanner(caves, adj)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pl.Path(ctx, 0, i%200)
	}
}
