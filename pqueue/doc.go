// Package pqueue implements an addressable binary min-heap keyed by
// vertex -> priority, used by the BMSSP base case to run a bounded,
// extraction-capped Dijkstra.
//
// Unlike a plain container/heap priority queue, pqueue tracks each vertex's
// position so DecreaseKey can update an existing entry in place instead of
// pushing a stale duplicate — the base case needs a true decrease-key because
// it caps the number of extractions and cannot rely on lazily skipping
// superseded entries forever.
//
// Complexity: Insert, DecreaseKey O(log n); ExtractMin O(log n); Has O(1).
package pqueue
