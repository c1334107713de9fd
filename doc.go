// Package bmssp computes single-source shortest paths over a directed
// graph with non-negative real edge weights using the Duan-Mao-Mao-Shu-Yin
// bounded multi-source shortest paths algorithm (BMSSP).
//
// BMSSP recursively partitions the distance range into shrinking bounds,
// using Pivot Finding to cut the frontier down to a small pivot set before
// each recursive step and a bounded Dijkstra base case to terminate the
// recursion, so the whole run costs less than repeatedly running Dijkstra
// from scratch. See the graph, pqueue, frontier and internal/engine
// packages for the pieces this assembles.
//
// Build a Graph with graph.Builder, then call SSSP:
//
//	b, _ := graph.NewBuilder(4)
//	b.AddEdge(0, 1, 1.5)
//	b.AddEdge(1, 2, 2.0)
//	b.AddEdge(0, 2, 5.0)
//	dist, err := bmssp.SSSP(b.Build(), 0)
package bmssp
