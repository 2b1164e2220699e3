package interval

// Comparator defines the ordering over interval keys. An interval key
// represents a range between a lower bound ("min") and an upper bound
// ("max"); the key type itself is opaque to the tree, only the comparator
// understands its bounds.
//
// A comparator must implement a strict total preorder over mins and over
// maxes; if it does not, query results are unspecified. The tree never
// checks that a key's min is ordered at or before its max, that is the
// caller's responsibility.
type Comparator[K any] interface {
	// CompareMins orders two keys by their lower bound. It defines the
	// primary sort order of the tree.
	CompareMins(a, b K) int

	// CompareMaxes orders two keys by their upper bound. It breaks ties
	// between keys with equal mins and drives superset/subset tests.
	CompareMaxes(a, b K) int

	// CompareMinToMax relates the lower bound of a to the upper bound of b:
	//
	//	< 0: a starts before b ends, the edge overlaps
	//	== 0: a starts exactly where b ends, touching but not overlapping
	//	 > 0: a starts strictly beyond b's end, leaving a gap
	//
	// This single primitive encodes the interval convention. Whether a
	// zero-length interval participates in intersection at its boundary is
	// decided here, not by the tree.
	CompareMinToMax(a, b K) int
}

// compareKeys is the node placement order: mins first, maxes break ties.
func (r *treeMap[K, V]) compareKeys(a, b K) int {
	if c := r.cmp.CompareMins(a, b); c != 0 {
		return c
	}
	return r.cmp.CompareMaxes(a, b)
}

// intersects reports whether a and b overlap under the comparator's
// convention: each must start before the other ends.
func (r *treeMap[K, V]) intersects(a, b K) bool {
	return r.cmp.CompareMinToMax(a, b) < 0 && r.cmp.CompareMinToMax(b, a) < 0
}
