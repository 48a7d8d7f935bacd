// SPDX-License-Identifier: MIT

package cavern

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/caverns/matrix"
)

// Planner answers repeated queries against one fixed cavern graph.
//
// The graph is validated and copied once by NewPlanner, so queries only
// range-check their endpoints. Results, including unreachable targets, are
// kept in an LRU cache keyed by (start, end).
//
// A Planner is safe for concurrent use: every uncached query owns its own
// queue and tables, the graph is never written after construction, and the
// cache is internally synchronized.
type Planner struct {
	caverns []Cavern
	adj     *matrix.Adjacency
	options Options
	cache   *lru.Cache[query, answer] // nil when caching is disabled
}

type query struct {
	start, end int
}

// answer is a cached result: either a path or ErrUnreachable.
type answer struct {
	path        *Path
	unreachable bool
}

// NewPlanner validates the graph and returns a Planner over private copies
// of caverns and adj. Options apply to every query.
//
// Errors: ErrEmptyGraph, ErrNilAdjacency, ErrDimensionMismatch,
// ErrBadCoordinate, ErrNegativeWeight (as FindPath).
func NewPlanner(caverns []Cavern, adj *matrix.Adjacency, opts ...Option) (*Planner, error) {
	cfg := gatherOptions(opts)
	if err := validateGraph(caverns, adj, cfg); err != nil {
		return nil, err
	}

	p := &Planner{
		caverns: slices.Clone(caverns),
		adj:     adj.Clone(),
		options: cfg,
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[query, answer](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("cavern: result cache: %w", err)
		}
		p.cache = cache
	}

	return p, nil
}

// Len returns the number of caverns in the planner's graph.
func (p *Planner) Len() int { return len(p.caverns) }

// Cavern returns the coordinates of cavern i.
func (p *Planner) Cavern(i int) (Cavern, error) {
	if i < 0 || i >= len(p.caverns) {
		return Cavern{}, fmt.Errorf("%w: %d not in [0,%d)", ErrCavernOutOfRange, i, len(p.caverns))
	}

	return p.caverns[i], nil
}

// Path returns a shortest path from start to end. The returned Path is the
// caller's to keep; mutating it does not affect the cache.
//
// ctx is checked before any work is done; a search, once started, runs to
// completion.
func (p *Planner) Path(ctx context.Context, start, end int) (*Path, error) {
	if err := ctx.Err(); err != nil {
		metricPlannerQueries.WithLabelValues(resultCanceled).Inc()
		return nil, err
	}
	if err := validateEndpoints(len(p.caverns), start, end); err != nil {
		metricPlannerQueries.WithLabelValues(resultInvalid).Inc()
		return nil, err
	}

	q := query{start: start, end: end}
	if p.cache != nil {
		if a, ok := p.cache.Get(q); ok {
			metricPlannerCacheHits.Inc()
			return p.deliver(q, a)
		}
	}

	t0 := time.Now()
	path, settled, err := search(p.caverns, p.adj, p.options, start, end)
	metricPlannerSearchSeconds.Observe(time.Since(t0).Seconds())
	metricPlannerSettled.Observe(float64(settled))

	var a answer
	switch {
	case err == nil:
		a.path = path
	case errors.Is(err, ErrUnreachable):
		a.unreachable = true
	default:
		metricPlannerQueries.WithLabelValues(resultInvalid).Inc()
		return nil, err
	}
	if p.cache != nil {
		p.cache.Add(q, a)
	}

	return p.deliver(q, a)
}

// deliver turns a cached or fresh answer into the caller's result.
func (p *Planner) deliver(q query, a answer) (*Path, error) {
	if a.unreachable {
		metricPlannerQueries.WithLabelValues(resultUnreachable).Inc()
		return nil, fmt.Errorf("%w: no route from %d to %d", ErrUnreachable, q.start, q.end)
	}
	metricPlannerQueries.WithLabelValues(resultFound).Inc()

	return a.path.Clone(), nil
}

// Purge drops every cached result.
func (p *Planner) Purge() {
	if p.cache != nil {
		p.cache.Purge()
	}
}

// Cached returns the number of results currently cached.
func (p *Planner) Cached() int {
	if p.cache == nil {
		return 0
	}

	return p.cache.Len()
}
