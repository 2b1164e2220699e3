package interval

// queryKind selects one of the interval relationships a query or view
// filters on.
type queryKind uint8

const (
	kindAll          queryKind = iota // every stored interval
	kindEquivalent                    // both bounds tie with the query
	kindIntersecting                  // overlaps the query
	kindSuperset                      // fully contains the query
	kindSubset                        // fully contained in the query
)

// matches reports whether node x satisfies the relationship against q.
func (r *treeMap[K, V]) matches(x uint32, kind queryKind, q K) bool {
	k := r.nodes[x].key
	switch kind {
	case kindAll:
		return true
	case kindEquivalent:
		return r.cmp.CompareMins(k, q) == 0 && r.cmp.CompareMaxes(k, q) == 0
	case kindIntersecting:
		return r.intersects(k, q)
	case kindSuperset:
		return r.cmp.CompareMins(k, q) <= 0 && r.cmp.CompareMaxes(k, q) >= 0
	case kindSubset:
		return r.cmp.CompareMins(k, q) >= 0 && r.cmp.CompareMaxes(k, q) <= 0
	}
	return false
}

// prunedSubtree reports whether the subtree rooted at x can be skipped
// entirely for the given relationship, based on the maxStop augmentation.
// Only a strict "the query starts beyond every upper bound in here" (or,
// for supersets, "no upper bound in here reaches the query's end") is safe
// for every comparator convention.
func (r *treeMap[K, V]) prunedSubtree(x uint32, kind queryKind, q K) bool {
	switch kind {
	case kindIntersecting, kindSubset:
		return r.cmp.CompareMinToMax(q, r.nodes[x].maxStop) > 0
	case kindSuperset:
		return r.cmp.CompareMaxes(r.nodes[x].maxStop, q) < 0
	}
	return false
}

// pastMatches reports that neither x nor any in-order later node can match:
// mins only grow to the right, so a min-based disqualification at x is
// final. Used to cut short ascending traversals.
func (r *treeMap[K, V]) pastMatches(x uint32, kind queryKind, q K) bool {
	k := r.nodes[x].key
	switch kind {
	case kindEquivalent:
		return r.compareKeys(k, q) > 0
	case kindIntersecting:
		return r.cmp.CompareMinToMax(k, q) >= 0
	case kindSuperset:
		return r.cmp.CompareMins(k, q) > 0
	case kindSubset:
		return r.cmp.CompareMinToMax(k, q) > 0
	}
	return false
}

// beforeMatches is the descending counterpart: neither x nor any in-order
// earlier node can match.
func (r *treeMap[K, V]) beforeMatches(x uint32, kind queryKind, q K) bool {
	k := r.nodes[x].key
	switch kind {
	case kindEquivalent:
		return r.compareKeys(k, q) < 0
	case kindSubset:
		return r.cmp.CompareMins(k, q) < 0
	}
	return false
}

// minMatchIn returns the in-order first node under x matching the
// relationship, or 0. Equivalence descends like an ordinary BST search;
// the interval relationships descend left first under maxStop pruning.
func (r *treeMap[K, V]) minMatchIn(x uint32, kind queryKind, q K) uint32 {
	if x == 0 {
		return 0
	}
	switch kind {
	case kindAll:
		return r.subtreeMin(x)
	case kindEquivalent:
		res := uint32(0)
		for x != 0 {
			c := r.compareKeys(q, r.nodes[x].key)
			switch {
			case c < 0:
				x = r.nodes[x].left
			case c > 0:
				x = r.nodes[x].right
			default:
				res = x
				x = r.nodes[x].left
			}
		}
		return res
	}
	if r.prunedSubtree(x, kind, q) {
		return 0
	}
	if res := r.minMatchIn(r.nodes[x].left, kind, q); res != 0 {
		return res
	}
	if r.matches(x, kind, q) {
		return x
	}
	if r.pastMatches(x, kind, q) {
		return 0
	}
	return r.minMatchIn(r.nodes[x].right, kind, q)
}

// maxMatchIn returns the in-order last node under x matching the
// relationship, or 0.
func (r *treeMap[K, V]) maxMatchIn(x uint32, kind queryKind, q K) uint32 {
	if x == 0 {
		return 0
	}
	switch kind {
	case kindAll:
		return r.subtreeMax(x)
	case kindEquivalent:
		res := uint32(0)
		for x != 0 {
			c := r.compareKeys(q, r.nodes[x].key)
			switch {
			case c < 0:
				x = r.nodes[x].left
			case c > 0:
				x = r.nodes[x].right
			default:
				res = x
				x = r.nodes[x].right
			}
		}
		return res
	}
	if r.prunedSubtree(x, kind, q) {
		return 0
	}
	if !r.pastMatches(x, kind, q) {
		if res := r.maxMatchIn(r.nodes[x].right, kind, q); res != 0 {
			return res
		}
	}
	if r.matches(x, kind, q) {
		return x
	}
	if r.beforeMatches(x, kind, q) {
		return 0
	}
	return r.maxMatchIn(r.nodes[x].left, kind, q)
}

// nextMatch walks from x to its in-order successor that still matches,
// pruning right subtrees by maxStop and stopping once mins have moved past
// any possible match. x must be a live node.
func (r *treeMap[K, V]) nextMatch(x uint32, kind queryKind, q K) uint32 {
	if res := r.minMatchIn(r.nodes[x].right, kind, q); res != 0 {
		return res
	}
	for {
		p := r.nodes[x].parent
		for p != 0 && x == r.nodes[p].right {
			x = p
			p = r.nodes[p].parent
		}
		if p == 0 {
			return 0
		}
		if r.matches(p, kind, q) {
			return p
		}
		if r.pastMatches(p, kind, q) {
			return 0
		}
		if res := r.minMatchIn(r.nodes[p].right, kind, q); res != 0 {
			return res
		}
		x = p
	}
}

// prevMatch is the descending counterpart of nextMatch.
func (r *treeMap[K, V]) prevMatch(x uint32, kind queryKind, q K) uint32 {
	if res := r.maxMatchIn(r.nodes[x].left, kind, q); res != 0 {
		return res
	}
	for {
		p := r.nodes[x].parent
		for p != 0 && x == r.nodes[p].left {
			x = p
			p = r.nodes[p].parent
		}
		if p == 0 {
			return 0
		}
		if r.matches(p, kind, q) {
			return p
		}
		if r.beforeMatches(p, kind, q) {
			return 0
		}
		if res := r.maxMatchIn(r.nodes[p].left, kind, q); res != 0 {
			return res
		}
		x = p
	}
}

// covers implements the superset-union sweep: walk the intervals
// intersecting q in ascending min order and advance a coverage frontier.
// Coverage fails on a gap before the frontier reaches q's end, or when the
// stored intervals start after q does.
func (r *treeMap[K, V]) covers(q K) bool {
	x := r.minMatchIn(r.root, kindIntersecting, q)
	if x == 0 || r.cmp.CompareMins(r.nodes[x].key, q) > 0 {
		return false
	}
	frontier := r.nodes[x].key
	for {
		if r.cmp.CompareMaxes(frontier, q) >= 0 {
			return true
		}
		x = r.nextMatch(x, kindIntersecting, q)
		if x == 0 {
			return false
		}
		k := r.nodes[x].key
		if r.cmp.CompareMinToMax(k, frontier) > 0 {
			return false // gap before the frontier reached q's end
		}
		if r.cmp.CompareMaxes(k, frontier) > 0 {
			frontier = k
		}
	}
}
