// Package engine implements the recursive machinery behind BMSSP: the
// shared tie-break relaxation (spec.md §3), Pivot Finding (§4.3), the
// base-case bounded Dijkstra (§4.4), and the recursive BMSSP driver itself
// (§4.5). It is internal because spec.md §1 scopes all of this as the
// private core reached only through the public bmssp.SSSP entry point —
// exactly as the teacher library keeps its dijkstra.runner type unexported
// while exposing only dijkstra.Dijkstra.
//
// Every frame shares a single *State by pointer; spec.md §5 calls this
// "the only shared resource", written under a single-writer, no-concurrency
// discipline, so State carries no locking of its own.
package engine
