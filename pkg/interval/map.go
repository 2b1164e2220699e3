// Package interval provides an interval-indexed map: a red-black tree over
// interval keys, augmented so that intersection, superset, subset and
// coverage queries can prune whole subtrees. The interval convention
// (bounds, open/closed edges, zero-length behavior) is supplied by the
// caller as a Comparator.
package interval

// Map is an interval-indexed container. Keys are intervals under a
// caller-supplied Comparator; equivalent keys are kept side by side rather
// than overwritten, so the map behaves as a multiset of intervals.
//
// Lookups come in four relationship flavors besides plain equivalence:
// intersection, superset (a stored interval containing the query), subset
// (a stored interval contained in the query) and Covers, which asks whether
// the union of all stored intervals spans the query. First-match lookups
// return the in-order first stored interval satisfying the relationship.
//
// The map performs no internal locking; the caller synchronizes if it is
// shared across goroutines. Keys are stored by reference and must not be
// mutated while in the map.
type Map[K, V any] interface {
	// Put always inserts, even when an equivalent key is already present.
	Put(key K, value V)

	Get(key K) (V, bool)
	GetIntersection(key K) (V, bool)
	GetSuperset(key K) (V, bool)
	GetSubset(key K) (V, bool)

	Has(key K) bool
	HasIntersection(key K) bool
	HasSuperset(key K) bool
	// Covers reports whether the union of the stored intervals spans the
	// whole of key, even when no single stored interval does.
	Covers(key K) bool

	// Remove and friends delete exactly one matching node and return its
	// value, or false when nothing matches.
	Remove(key K) (V, bool)
	RemoveIntersection(key K) (V, bool)
	RemoveSuperset(key K) (V, bool)
	RemoveSubset(key K) (V, bool)

	// All and the relationship views are live: they observe the backing
	// tree at iteration time. Removing through a view's iterator, or
	// clearing a view, mutates the map. Mutating the map through any other
	// path while one of a view's iterators is active is unsafe.
	All() *View[K, V]
	Equivalent(key K) *View[K, V]
	Intersecting(key K) *View[K, V]
	Supersets(key K) *View[K, V]
	Subsets(key K) *View[K, V]

	Size() int
	IsEmpty() bool
	Clear()

	// ValidateMaxStops checks the subtree augmentation over the whole
	// tree. Diagnostic hook for tests; a non-nil error means corruption,
	// which cannot happen under correct usage.
	ValidateMaxStops() error
}

// New returns an empty map ordered by c. It panics when c is nil; a map
// without a comparator is unusable.
func New[K, V any](c Comparator[K]) Map[K, V] {
	if c == nil {
		panic("interval: nil comparator")
	}
	return &treeMap[K, V]{
		cmp:   c,
		nodes: make([]node[K, V], 1), // slot 0 is the sentinel
	}
}

func (r *treeMap[K, V]) Put(key K, value V) {
	r.insert(key, value)
}

func (r *treeMap[K, V]) lookup(kind queryKind, q K) (V, bool) {
	var zero V
	if r.root == 0 {
		return zero, false
	}
	x := r.minMatchIn(r.root, kind, q)
	if x == 0 {
		return zero, false
	}
	return r.nodes[x].value, true
}

func (r *treeMap[K, V]) Get(key K) (V, bool) {
	return r.lookup(kindEquivalent, key)
}

func (r *treeMap[K, V]) GetIntersection(key K) (V, bool) {
	return r.lookup(kindIntersecting, key)
}

func (r *treeMap[K, V]) GetSuperset(key K) (V, bool) {
	return r.lookup(kindSuperset, key)
}

func (r *treeMap[K, V]) GetSubset(key K) (V, bool) {
	return r.lookup(kindSubset, key)
}

func (r *treeMap[K, V]) Has(key K) bool {
	_, ok := r.Get(key)
	return ok
}

func (r *treeMap[K, V]) HasIntersection(key K) bool {
	_, ok := r.GetIntersection(key)
	return ok
}

func (r *treeMap[K, V]) HasSuperset(key K) bool {
	_, ok := r.GetSuperset(key)
	return ok
}

func (r *treeMap[K, V]) Covers(key K) bool {
	if r.root == 0 {
		return false
	}
	return r.covers(key)
}

func (r *treeMap[K, V]) removeFirst(kind queryKind, q K) (V, bool) {
	var zero V
	if r.root == 0 {
		return zero, false
	}
	x := r.minMatchIn(r.root, kind, q)
	if x == 0 {
		return zero, false
	}
	v := r.nodes[x].value
	r.deleteNode(x)
	return v, true
}

func (r *treeMap[K, V]) Remove(key K) (V, bool) {
	return r.removeFirst(kindEquivalent, key)
}

func (r *treeMap[K, V]) RemoveIntersection(key K) (V, bool) {
	return r.removeFirst(kindIntersecting, key)
}

func (r *treeMap[K, V]) RemoveSuperset(key K) (V, bool) {
	return r.removeFirst(kindSuperset, key)
}

func (r *treeMap[K, V]) RemoveSubset(key K) (V, bool) {
	return r.removeFirst(kindSubset, key)
}

func (r *treeMap[K, V]) All() *View[K, V] {
	return &View[K, V]{t: r, kind: kindAll}
}

func (r *treeMap[K, V]) Equivalent(key K) *View[K, V] {
	return &View[K, V]{t: r, kind: kindEquivalent, query: key}
}

func (r *treeMap[K, V]) Intersecting(key K) *View[K, V] {
	return &View[K, V]{t: r, kind: kindIntersecting, query: key}
}

func (r *treeMap[K, V]) Supersets(key K) *View[K, V] {
	return &View[K, V]{t: r, kind: kindSuperset, query: key}
}

func (r *treeMap[K, V]) Subsets(key K) *View[K, V] {
	return &View[K, V]{t: r, kind: kindSubset, query: key}
}

func (r *treeMap[K, V]) Size() int {
	return r.count
}

func (r *treeMap[K, V]) IsEmpty() bool {
	return r.count == 0
}

func (r *treeMap[K, V]) Clear() {
	// drop the arena wholesale so released keys and values are collectable
	r.nodes = make([]node[K, V], 1)
	r.free = nil
	r.root = 0
	r.count = 0
}

func (r *treeMap[K, V]) ValidateMaxStops() error {
	return r.validateMaxStops()
}
