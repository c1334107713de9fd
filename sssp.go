package bmssp

import (
	"math"

	"github.com/katalvlaran/bmssp/graph"
	"github.com/katalvlaran/bmssp/internal/engine"
)

// SSSP computes shortest distances from source to every vertex in g.
//
// Returns dist, where dist[v] is the minimum-weight path length from
// source to v, or math.Inf(1) if v is unreachable. dist[source] is always
// 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, g.N()) (ErrSourceOutOfRange).
//
// Complexity: sub-quadratic in the number of vertices for sparse graphs,
// per the BMSSP bound; see internal/engine for the recursive driver.
func SSSP(g *graph.Graph, source int, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.N()
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	if n == 1 {
		dist[0] = 0

		return dist, nil
	}

	k, t, l := engine.DeriveParams(n)
	st := engine.NewState(g, k, t, cfg.Logger)
	st.D[source] = 0

	engine.Run(st, l, math.Inf(1), []int{source})

	copy(dist, st.D)

	return dist, nil
}
