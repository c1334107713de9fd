package bmssp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bmssp"
	"github.com/katalvlaran/bmssp/graph"
)

func mustBuilder(t *testing.T, n int) *graph.Builder {
	t.Helper()
	b, err := graph.NewBuilder(n)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func mustAddEdge(t *testing.T, b *graph.Builder, u, v int, w float64) {
	t.Helper()
	if err := b.AddEdge(u, v, w); err != nil {
		t.Fatal(err)
	}
}

func TestSSSP_NilGraph(t *testing.T) {
	if _, err := bmssp.SSSP(nil, 0); err != bmssp.ErrNilGraph {
		t.Fatalf("want ErrNilGraph, got %v", err)
	}
}

func TestSSSP_SourceOutOfRange(t *testing.T) {
	b := mustBuilder(t, 3)
	if _, err := bmssp.SSSP(b.Build(), 5); err != bmssp.ErrSourceOutOfRange {
		t.Fatalf("want ErrSourceOutOfRange, got %v", err)
	}
	if _, err := bmssp.SSSP(b.Build(), -1); err != bmssp.ErrSourceOutOfRange {
		t.Fatalf("want ErrSourceOutOfRange, got %v", err)
	}
}

func TestSSSP_Singleton(t *testing.T) {
	b := mustBuilder(t, 1)
	dist, err := bmssp.SSSP(b.Build(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != 0 {
		t.Fatalf("dist[0] = %v, want 0", dist[0])
	}
}

func TestSSSP_LinearChain(t *testing.T) {
	b := mustBuilder(t, 5)
	for i := 0; i < 4; i++ {
		mustAddEdge(t, b, i, i+1, 1.0)
	}

	dist, err := bmssp.SSSP(b.Build(), 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{0, 1, 2, 3, 4} {
		if dist[i] != want {
			t.Fatalf("dist[%d] = %v, want %v", i, dist[i], want)
		}
	}
}

func TestSSSP_ParallelPaths(t *testing.T) {
	b := mustBuilder(t, 4)
	mustAddEdge(t, b, 0, 1, 10)
	mustAddEdge(t, b, 0, 2, 1)
	mustAddEdge(t, b, 2, 1, 1)
	mustAddEdge(t, b, 1, 3, 1)

	dist, err := bmssp.SSSP(b.Build(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if dist[1] != 2 {
		t.Fatalf("dist[1] = %v, want 2", dist[1])
	}
	if dist[3] != 3 {
		t.Fatalf("dist[3] = %v, want 3", dist[3])
	}
}

func TestSSSP_UnreachableVertex(t *testing.T) {
	b := mustBuilder(t, 3)
	mustAddEdge(t, b, 0, 1, 1)

	dist, err := bmssp.SSSP(b.Build(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist[2], 1) {
		t.Fatalf("dist[2] = %v, want +Inf", dist[2])
	}
}

func TestSSSP_ZeroWeightEdge(t *testing.T) {
	b := mustBuilder(t, 2)
	mustAddEdge(t, b, 0, 1, 0)

	dist, err := bmssp.SSSP(b.Build(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if dist[1] != 0 {
		t.Fatalf("dist[1] = %v, want 0", dist[1])
	}
}

func TestSSSP_DiamondEqualCostPaths(t *testing.T) {
	b := mustBuilder(t, 4)
	mustAddEdge(t, b, 0, 1, 1)
	mustAddEdge(t, b, 0, 2, 1)
	mustAddEdge(t, b, 1, 3, 1)
	mustAddEdge(t, b, 2, 3, 1)

	dist, err := bmssp.SSSP(b.Build(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if dist[3] != 2 {
		t.Fatalf("dist[3] = %v, want 2", dist[3])
	}
}

func TestSSSP_SourceDistanceIsZero(t *testing.T) {
	b := mustBuilder(t, 10)
	for i := 0; i < 9; i++ {
		mustAddEdge(t, b, i, i+1, float64(i+1))
	}

	dist, err := bmssp.SSSP(b.Build(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if dist[3] != 0 {
		t.Fatalf("dist[source] = %v, want 0", dist[3])
	}
}

func TestSSSP_DistancesNeverNegative(t *testing.T) {
	b := mustBuilder(t, 30)
	for i := 0; i < 29; i++ {
		mustAddEdge(t, b, i, i+1, 0.5)
		if i+2 < 30 {
			mustAddEdge(t, b, i, i+2, 1.3)
		}
	}

	dist, err := bmssp.SSSP(b.Build(), 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, d := range dist {
		if d < 0 {
			t.Fatalf("dist[%d] = %v, must be non-negative", i, d)
		}
	}
}

func TestSSSP_IdempotentAcrossCalls(t *testing.T) {
	b := mustBuilder(t, 20)
	for i := 0; i < 19; i++ {
		mustAddEdge(t, b, i, i+1, float64((i%3)+1))
	}
	g := b.Build()

	first, err := bmssp.SSSP(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := bmssp.SSSP(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("dist[%d] differs across calls: %v vs %v", i, first[i], second[i])
		}
	}
}
