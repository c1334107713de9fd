package engine

// FindPivots implements Pivot Finding (spec.md §4.3). Starting from frontier
// S, it performs up to k rounds of synchronous relaxation: round i only
// follows edges out of vertices discovered in round i-1, and a relaxed
// target v joins the next round iff the edge is tight (d[u]+w <= d[v] after
// relaxation), d[u]+w < B, and v was not already added in this same round;
// W accumulates every vertex added across all rounds.
//
// If |W| ever exceeds k*|S|, the frontier has expanded too far to shrink
// usefully: FindPivots aborts and reports every member of S as a pivot,
// alongside the (over-large) workset gathered so far. Otherwise, after k
// rounds (or once no new vertex is discovered), every vertex explored is
// reported as a pivot — W is returned as both the pivot set and the
// workset.
func FindPivots(st *State, B float64, S []int) (P, W []int) {
	inW := make(map[int]bool, len(S))
	W = append([]int(nil), S...)
	for _, v := range S {
		inW[v] = true
	}

	limit := st.K * len(S)
	layer := append([]int(nil), S...)

	for round := 0; round < st.K && len(layer) > 0; round++ {
		inRound := make(map[int]bool) // dedup within this round only, per spec.md §4.3
		var next []int
		for _, u := range layer {
			for _, arc := range st.G.Neighbors(u) {
				v := arc.To
				nd := st.D[u] + arc.Weight
				relax(st, u, v, arc.Weight) // always update the shared tie-break state

				if nd > st.D[v] || nd >= B || inRound[v] {
					continue
				}
				inRound[v] = true
				next = append(next, v)

				if !inW[v] {
					inW[v] = true
					W = append(W, v)

					if len(W) > limit {
						st.logf("bmssp: pivot search aborted, |W|=%d > %d", len(W), limit)
						P = append([]int(nil), S...)

						return P, W
					}
				}
			}
		}
		layer = next
	}

	P = append([]int(nil), W...)

	return P, W
}
