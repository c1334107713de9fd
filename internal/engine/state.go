package engine

import (
	"log"
	"math"

	"github.com/katalvlaran/bmssp/graph"
)

// State is the single shared resource passed by pointer into every BMSSP
// recursion frame (spec.md §5): the tentative distance, hop depth and
// predecessor arrays, the graph itself, and the two derived parameters k
// and t. Nothing else in this package holds mutable state of its own.
type State struct {
	G *graph.Graph

	D     []float64
	Depth []int
	Pred  []int

	K, T int

	Logger *log.Logger
}

// NewState allocates a State for g with every vertex initialized to
// distance +Inf, depth 0, and no predecessor.
func NewState(g *graph.Graph, k, t int, logger *log.Logger) *State {
	n := g.N()
	st := &State{
		G:      g,
		D:      make([]float64, n),
		Depth:  make([]int, n),
		Pred:   make([]int, n),
		K:      k,
		T:      t,
		Logger: logger,
	}
	for i := range st.D {
		st.D[i] = math.Inf(1)
		st.Pred[i] = -1
	}

	return st
}

func (st *State) logf(format string, args ...any) {
	if st.Logger != nil {
		st.Logger.Printf(format, args...)
	}
}
