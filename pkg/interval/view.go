package interval

// View is a live, ordered collection of the stored intervals satisfying one
// relationship against a query key. It owns no nodes; every iteration is a
// fresh walk of the backing tree, so a view always reflects the tree's
// current state. Clear and iterator removal write through to the tree.
type View[K, V any] struct {
	t          *treeMap[K, V]
	kind       queryKind
	query      K
	descending bool
}

// Descending returns the same view traversed in reverse key order.
func (r *View[K, V]) Descending() *View[K, V] {
	return &View[K, V]{
		t:          r.t,
		kind:       r.kind,
		query:      r.query,
		descending: !r.descending,
	}
}

// Iterator starts a traversal. The backing tree must not be structurally
// mutated while the iterator is active, except through the iterator's own
// Remove.
func (r *View[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{view: r}
	if r.t.root != 0 {
		if r.descending {
			it.next = r.t.maxMatchIn(r.t.root, r.kind, r.query)
		} else {
			it.next = r.t.minMatchIn(r.t.root, r.kind, r.query)
		}
	}
	return it
}

// Keys collects the matching keys in view order. Unlike the view itself the
// returned slice is a snapshot.
func (r *View[K, V]) Keys() []K {
	var keys []K
	it := r.Iterator()
	for it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// Values collects the matching values in view order.
func (r *View[K, V]) Values() []V {
	var vals []V
	it := r.Iterator()
	for it.Next() {
		vals = append(vals, it.Value())
	}
	return vals
}

// Entries collects the matching entries in view order.
func (r *View[K, V]) Entries() Entries[K, V] {
	var entries Entries[K, V]
	it := r.Iterator()
	for it.Next() {
		entries = append(entries, it.Entry())
	}
	return entries
}

func (r *View[K, V]) Size() int {
	n := 0
	it := r.Iterator()
	for it.Next() {
		n++
	}
	return n
}

func (r *View[K, V]) IsEmpty() bool {
	it := r.Iterator()
	return !it.Next()
}

// Clear removes every matching entry from the backing tree and returns how
// many were removed.
func (r *View[K, V]) Clear() int {
	n := 0
	for {
		if r.t.root == 0 {
			return n
		}
		x := r.t.minMatchIn(r.t.root, r.kind, r.query)
		if x == 0 {
			return n
		}
		r.t.deleteNode(x)
		n++
	}
}
