package interval

import "errors"

// ErrNoElement is returned by Iterator.Remove when there is no current
// element: before the first Next, or twice in a row without an intervening
// Next.
var ErrNoElement = errors.New("interval: iterator has no current element")

// Iterator is a cursor over a view. The successor is resolved eagerly when
// Next returns, so removing the current element never loses the cursor's
// place: deletion rebalances the tree but surviving nodes keep their
// identity and in-order position.
//
// Key, Value and Entry are only valid after Next has returned true.
type Iterator[K, V any] struct {
	view *View[K, V]
	next uint32 // next node to yield, 0 when exhausted
	last uint32 // last yielded node, 0 when consumed by Remove
}

// Next advances to the next matching element. It returns false when the
// view is exhausted.
func (r *Iterator[K, V]) Next() bool {
	if r.next == 0 {
		return false
	}
	v := r.view
	r.last = r.next
	if v.descending {
		r.next = v.t.prevMatch(r.last, v.kind, v.query)
	} else {
		r.next = v.t.nextMatch(r.last, v.kind, v.query)
	}
	return true
}

func (r *Iterator[K, V]) Key() K {
	return r.view.t.nodes[r.last].key
}

func (r *Iterator[K, V]) Value() V {
	return r.view.t.nodes[r.last].value
}

func (r *Iterator[K, V]) Entry() Entry[K, V] {
	n := r.view.t.nodes[r.last]
	return NewEntry[K, V](n.key, n.value)
}

// Remove deletes the last yielded element from the backing tree, running
// the full delete/rebalance/augmentation-repair sequence. The traversal
// continues from the already-resolved successor.
func (r *Iterator[K, V]) Remove() error {
	if r.last == 0 {
		return ErrNoElement
	}
	r.view.t.deleteNode(r.last)
	r.last = 0
	return nil
}
