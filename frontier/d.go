package frontier

import (
	"math"
	"sort"
)

// D is the partial-sort container described in spec.md §4.2. Capacity M
// bounds D1 blocks; D0 (BatchPrepend) blocks are capped at ceil(M/2). Every
// stored value is implicitly bounded above by upperBound.
//
// D is not safe for concurrent use; each BMSSP recursion frame owns exactly
// one D and drops it on return (spec.md §5).
type D struct {
	m          int
	upperBound float64
	d0         []*block
	d1         []*block
	loc        map[int]location
}

// New creates an empty container with pull-block size m and upper bound b.
// m is clamped to at least 1 so a degenerate call never divides by zero.
func New(m int, b float64) *D {
	if m < 1 {
		m = 1
	}

	return &D{
		m:          m,
		upperBound: b,
		loc:        make(map[int]location),
	}
}

// Len returns the number of distinct keys currently stored.
func (d *D) Len() int { return len(d.loc) }

// IsEmpty reports whether the container holds no keys.
func (d *D) IsEmpty() bool { return len(d.loc) == 0 }

// GetValue returns the stored value for key, or +Inf if key is absent.
func (d *D) GetValue(key int) float64 {
	loc, ok := d.loc[key]
	if !ok {
		return math.Inf(1)
	}

	return d.valueAt(loc)
}

func (d *D) valueAt(loc location) float64 {
	if loc.inD0 {
		return d.d0[loc.blockIdx].items[loc.itemIdx].value
	}

	return d.d1[loc.blockIdx].items[loc.itemIdx].value
}

// deleteKey removes key from wherever it currently lives, if present.
func (d *D) deleteKey(key int) {
	loc, ok := d.loc[key]
	if !ok {
		return
	}
	delete(d.loc, key)

	if loc.inD0 {
		blk := d.d0[loc.blockIdx]
		blk.items = append(blk.items[:loc.itemIdx], blk.items[loc.itemIdx+1:]...)
		d.reindexD0()
	} else {
		blk := d.d1[loc.blockIdx]
		blk.items = append(blk.items[:loc.itemIdx], blk.items[loc.itemIdx+1:]...)
		d.reindexD1()
	}
}

func (d *D) reindexD0() {
	for bi, blk := range d.d0 {
		for ii, e := range blk.items {
			d.loc[e.key] = location{inD0: true, blockIdx: bi, itemIdx: ii}
		}
	}
}

func (d *D) reindexD1() {
	for bi, blk := range d.d1 {
		for ii, e := range blk.items {
			d.loc[e.key] = location{inD0: false, blockIdx: bi, itemIdx: ii}
		}
	}
}

// Insert adds (key, value), or discards it if a strictly-better-or-equal
// entry for key already exists (spec.md §4.2).
func (d *D) Insert(key int, value float64) {
	if loc, ok := d.loc[key]; ok {
		if d.valueAt(loc) <= value {
			return
		}
		d.deleteKey(key)
	}

	d.insertIntoD1(key, value)
}

func (d *D) insertIntoD1(key int, value float64) {
	idx := sort.Search(len(d.d1), func(i int) bool { return d.d1[i].upper >= value })
	if idx == len(d.d1) {
		d.d1 = append(d.d1, &block{upper: d.upperBound})
	}

	blk := d.d1[idx]
	blk.items = append(blk.items, entry{key: key, value: value})
	d.loc[key] = location{inD0: false, blockIdx: idx, itemIdx: len(blk.items) - 1}

	if len(blk.items) > d.m {
		d.splitD1(idx)
	}
}

// splitD1 sorts the block at idx by value and splits it at the median,
// producing two blocks whose upper fields each equal that half's own
// maximum value (spec.md §4.2).
func (d *D) splitD1(idx int) {
	blk := d.d1[idx]
	sort.Slice(blk.items, func(i, j int) bool { return blk.items[i].value < blk.items[j].value })

	mid := len(blk.items) / 2
	left := &block{items: append([]entry(nil), blk.items[:mid]...), upper: blk.items[mid-1].value}
	right := &block{items: append([]entry(nil), blk.items[mid:]...), upper: blk.items[len(blk.items)-1].value}

	d.d1[idx] = left
	d.d1 = append(d.d1, nil)
	copy(d.d1[idx+2:], d.d1[idx+1:])
	d.d1[idx+1] = right

	d.reindexD1()
}

// BatchPrepend adds items, deduplicated by key (keeping the minimum value),
// dropping entries already weakly dominated by a present entry, and chunks
// the ascending-sorted survivors into blocks of ceil(M/2) prepended to D0.
func (d *D) BatchPrepend(items []Item) {
	if len(items) == 0 {
		return
	}

	best := make(map[int]float64, len(items))
	for _, it := range items {
		if v, ok := best[it.Key]; !ok || it.Value < v {
			best[it.Key] = it.Value
		}
	}

	survivors := make([]entry, 0, len(best))
	for k, v := range best {
		if loc, ok := d.loc[k]; ok {
			if d.valueAt(loc) <= v {
				continue
			}
			d.deleteKey(k)
		}
		survivors = append(survivors, entry{key: k, value: v})
	}
	if len(survivors) == 0 {
		return
	}

	sort.Slice(survivors, func(i, j int) bool { return survivors[i].value < survivors[j].value })

	chunkSize := (d.m + 1) / 2
	if chunkSize < 1 {
		chunkSize = 1
	}

	var newBlocks []*block
	for i := 0; i < len(survivors); i += chunkSize {
		end := i + chunkSize
		if end > len(survivors) {
			end = len(survivors)
		}
		chunk := append([]entry(nil), survivors[i:end]...)
		newBlocks = append(newBlocks, &block{items: chunk, upper: chunk[len(chunk)-1].value})
	}

	d.d0 = append(newBlocks, d.d0...)
	d.reindexD0()
}

// Pull gathers whole blocks front-to-back (all of D0, then D1 in order)
// until strictly more than M items have been collected or both sequences
// are exhausted, per spec.md §4.2.
func (d *D) Pull() (x float64, s []int) {
	count := 0
	i := 0
	for i < len(d.d0) && count <= d.m {
		count += len(d.d0[i].items)
		i++
	}
	j := 0
	if count <= d.m {
		for j < len(d.d1) && count <= d.m {
			count += len(d.d1[j].items)
			j++
		}
	}

	touchedD0, remainingD0 := d.d0[:i], d.d0[i:]
	touchedD1, remainingD1 := d.d1[:j], d.d1[j:]

	collected := make([]entry, 0, count)
	for _, blk := range touchedD0 {
		collected = append(collected, blk.items...)
	}
	for _, blk := range touchedD1 {
		collected = append(collected, blk.items...)
	}

	for _, e := range collected {
		delete(d.loc, e.key)
	}
	d.d0 = remainingD0
	d.d1 = remainingD1
	d.reindexD0()
	d.reindexD1()

	if len(collected) <= d.m {
		keys := make([]int, len(collected))
		for i, e := range collected {
			keys[i] = e.key
		}

		return d.upperBound, keys
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].value < collected[j].value })

	smallest := collected[:d.m]
	rest := collected[d.m:]

	keys := make([]int, len(smallest))
	for i, e := range smallest {
		keys[i] = e.key
	}
	for _, e := range rest {
		d.Insert(e.key, e.value)
	}

	return rest[0].value, keys
}
