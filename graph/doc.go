// Package graph provides the immutable directed graph BMSSP operates on.
//
// Vertices are dense integer indices 0..n-1. Edges carry a non-negative
// float64 weight. A Graph is built once via Builder and frozen: BMSSP's
// contract requires the adjacency oracle to stay fixed for the duration of
// a single-source shortest-path call, so there is no mutation API once
// Build has run.
package graph
