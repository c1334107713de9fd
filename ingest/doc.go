// Package ingest reads a small line-oriented edge-list text format into a
// *graph.Graph: the first non-blank line holds the vertex count n, and
// every following non-blank line holds one "u v w" edge triple. Lines
// starting with '#' are comments and are skipped everywhere.
//
// This is the CLI's only collaborator outside the core algorithm; nothing
// in graph, pqueue, frontier, internal/engine, or the root package depends
// on it.
package ingest
