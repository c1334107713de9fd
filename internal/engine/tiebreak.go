package engine

// less reports whether triple (d1, depth1, pred1) precedes triple
// (d2, depth2, pred2) under the lexicographic tie-break order spec.md §3
// applies everywhere a relaxation decision is made: distance first, then
// hop depth along the path, then predecessor index.
func less(d1 float64, depth1, pred1 int, d2 float64, depth2, pred2 int) bool {
	if d1 != d2 {
		return d1 < d2
	}
	if depth1 != depth2 {
		return depth1 < depth2
	}

	return pred1 < pred2
}

// relax applies the shared tie-break relaxation across edge (u, v, w): it
// compares the candidate triple (d[u]+w, depth[u]+1, u) against v's current
// triple and, if the candidate precedes it, updates d[v], depth[v] and
// pred[v] in place. Every one of Pivot Finding, the base case, and BMSSP
// itself calls this same function so the tie-break order is applied
// identically everywhere (spec.md §3).
func relax(st *State, u, v int, w float64) bool {
	nd := st.D[u] + w
	ndepth := st.Depth[u] + 1

	if less(nd, ndepth, u, st.D[v], st.Depth[v], st.Pred[v]) {
		st.D[v] = nd
		st.Depth[v] = ndepth
		st.Pred[v] = u

		return true
	}

	return false
}
