// Package frontier implements D, the partial-sort container at the heart of
// BMSSP (spec.md §4.2). D replaces a full priority queue: it never sorts
// globally, only within a block at split or drain time, and it supports
// extracting a block of up to M approximately-smallest items per Pull.
//
// Internally D keeps two block sequences: D0 holds blocks added by
// BatchPrepend (conceptually the front — items already known to be small),
// and D1 holds blocks added by Insert, kept in ascending order of each
// block's upper bound so a binary search locates the insertion point.
//
// D is grounded in shape on the D0/D1 block-split idea used by reference
// BMSSP ports, but its Pull contract follows spec.md §4.2 literally: gather
// whole blocks, front to back, until strictly more than M items have been
// collected, then split that collection into the smallest M (returned) and
// everything else (reinserted, since Pull only removes what it returns).
package frontier
