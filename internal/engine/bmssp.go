package engine

import (
	"math"

	"github.com/katalvlaran/bmssp/frontier"
)

// Run implements the recursive BMSSP driver (spec.md §4.5). l is the
// current recursion level, B the bound in force for this frame, and S the
// frontier of vertices to expand from. It returns a (possibly tightened)
// bound B' and the set U of vertices it finalized with distance < B'.
//
// At l == 0, Run delegates directly to BaseCase. Recursion always
// decreases l by exactly one per nested call, so it terminates after at
// most l levels; spec.md §9 notes that implementations targeting
// constrained call stacks may convert this to an explicit frame stack,
// but the recursive form mirrors the recursion depth bound directly.
func Run(st *State, l int, B float64, S []int) (float64, []int) {
	if l == 0 {
		return BaseCase(st, B, S)
	}

	P, W := FindPivots(st, B, S)

	m := pow2Capped((l - 1) * st.T)
	d := frontier.New(m, B)
	for _, x := range P {
		d.Insert(x, st.D[x])
	}

	limit := st.K * pow2Capped(l*st.T)
	var u []int
	inU := make(map[int]bool)
	bPrime := B

	for len(u) < limit && !d.IsEmpty() {
		bi, si := d.Pull()
		biPrime, ui := Run(st, l-1, bi, si)
		bPrime = biPrime

		for _, x := range ui {
			if !inU[x] {
				inU[x] = true
				u = append(u, x)
			}
		}

		var queued []frontier.Item
		for _, x := range ui {
			for _, arc := range st.G.Neighbors(x) {
				v, w := arc.To, arc.Weight
				relax(st, x, v, w)

				dPrime := st.D[x] + w
				if dPrime > st.D[v] {
					continue // only tight edges feed D
				}
				if bi <= dPrime && dPrime < B {
					d.Insert(v, dPrime)
				}
				if biPrime <= dPrime && dPrime < bi {
					queued = append(queued, frontier.Item{Key: v, Value: dPrime})
				}
			}
		}
		for _, x := range si {
			if biPrime <= st.D[x] && st.D[x] < bi {
				queued = append(queued, frontier.Item{Key: x, Value: st.D[x]})
			}
		}
		d.BatchPrepend(queued)
	}

	bFinal := math.Min(bPrime, B)
	for _, x := range W {
		if st.D[x] < bFinal && !inU[x] {
			inU[x] = true
			u = append(u, x)
		}
	}

	return bFinal, u
}
