package engine

import "github.com/katalvlaran/bmssp/pqueue"

// BaseCase implements the bounded-Dijkstra base case (spec.md §4.4). It
// runs ordinary Dijkstra from the vertices in S, restricted to distances
// below B, and extracts at most k+1 vertices before stopping.
//
// If at most k vertices were extracted, every one of them is final and
// BaseCase returns (B, U0). If exactly k+1 were extracted, the (k+1)-th
// extraction distance becomes the tighter bound B', and BaseCase returns
// (B', U0 restricted to distance < B') — trimming the result back down to
// at most k vertices.
func BaseCase(st *State, B float64, S []int) (float64, []int) {
	pq := pqueue.New(len(S))
	for _, x := range S {
		pq.Insert(x, st.D[x])
	}

	limit := st.K + 1
	extracted := make([]int, 0, limit)
	visited := make(map[int]bool, limit)

	for !pq.IsEmpty() && len(extracted) < limit {
		u, _ := pq.ExtractMin()
		if st.D[u] >= B {
			break
		}

		visited[u] = true
		extracted = append(extracted, u)

		for _, arc := range st.G.Neighbors(u) {
			v, w := arc.To, arc.Weight
			if visited[v] {
				continue
			}
			if st.D[u]+w >= B {
				continue
			}

			relax(st, u, v, w) // always update the shared tie-break state
			if st.D[u]+w > st.D[v] {
				continue // a shorter path to v already exists
			}

			// v must be queued for its own expansion whenever this edge is
			// tight, even when relax made no change: Pivot Finding may
			// already have set d[v] through u without ever pushing it here.
			if pq.Has(v) {
				pq.DecreaseKey(v, st.D[v])
			} else {
				pq.Insert(v, st.D[v])
			}
		}
	}

	if len(extracted) <= st.K {
		return B, extracted
	}

	bPrime := st.D[extracted[st.K]]
	u0 := make([]int, 0, st.K)
	for _, v := range extracted {
		if st.D[v] < bPrime {
			u0 = append(u0, v)
		}
	}

	return bPrime, u0
}
