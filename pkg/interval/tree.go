package interval

import "fmt"

// The tree is a red-black tree in the textbook form ("Introduction to
// Algorithms", Cormen et al, 3rd ed., ch. 13), augmented per ch. 14.3 with
// the max upper bound of every subtree. Nodes live in an arena and refer to
// each other by index; released indexes are kept on a free list for reuse.
type treeMap[K, V any] struct {
	cmp   Comparator[K]
	nodes []node[K, V] // index 0 is the sentinel
	free  []uint32     // released node indexes available for reuse
	root  uint32
	count int
}

// newNode takes a slot from the free list or grows the arena. New nodes
// start red with the key itself as maxStop.
func (r *treeMap[K, V]) newNode(key K, value V) uint32 {
	n := node[K, V]{
		key:     key,
		value:   value,
		color:   red,
		maxStop: key,
	}
	if l := len(r.free); l > 0 {
		x := r.free[l-1]
		r.free = r.free[:l-1]
		r.nodes[x] = n
		return x
	}
	r.nodes = append(r.nodes, n)
	return uint32(len(r.nodes) - 1)
}

// freeNode clears the slot so stored keys and values are released, and
// makes the index available for reuse.
func (r *treeMap[K, V]) freeNode(x uint32) {
	r.nodes[x] = node[K, V]{}
	r.free = append(r.free, x)
}

func (r *treeMap[K, V]) colorOf(x uint32) color {
	return r.nodes[x].color // sentinel stays black
}

func (r *treeMap[K, V]) subtreeMin(x uint32) uint32 {
	for r.nodes[x].left != 0 {
		x = r.nodes[x].left
	}
	return x
}

func (r *treeMap[K, V]) subtreeMax(x uint32) uint32 {
	for r.nodes[x].right != 0 {
		x = r.nodes[x].right
	}
	return x
}

// recomputeMaxStop refreshes a single node's maxStop from its own key and
// its children, without touching ancestors.
func (r *treeMap[K, V]) recomputeMaxStop(x uint32) {
	n := &r.nodes[x]
	max := n.key
	if n.left != 0 && r.cmp.CompareMaxes(r.nodes[n.left].maxStop, max) > 0 {
		max = r.nodes[n.left].maxStop
	}
	if n.right != 0 && r.cmp.CompareMaxes(r.nodes[n.right].maxStop, max) > 0 {
		max = r.nodes[n.right].maxStop
	}
	n.maxStop = max
}

// updateMaxStop repairs the augmentation from x up to the root, stopping
// early once a node's max upper bound is unchanged (ancestors only depend
// on the bound, not on which key carries it).
func (r *treeMap[K, V]) updateMaxStop(x uint32) {
	for x != 0 {
		old := r.nodes[x].maxStop
		r.recomputeMaxStop(x)
		if r.cmp.CompareMaxes(old, r.nodes[x].maxStop) == 0 {
			break
		}
		x = r.nodes[x].parent
	}
}

// rotateLeft moves x below its right child. Both rotated nodes change
// subtree membership, so both recompute maxStop from their new children.
func (r *treeMap[K, V]) rotateLeft(x uint32) {
	y := r.nodes[x].right
	r.nodes[x].right = r.nodes[y].left
	if r.nodes[y].left != 0 {
		r.nodes[r.nodes[y].left].parent = x
	}
	p := r.nodes[x].parent
	r.nodes[y].parent = p
	if p == 0 {
		r.root = y
	} else if x == r.nodes[p].left {
		r.nodes[p].left = y
	} else {
		r.nodes[p].right = y
	}
	r.nodes[y].left = x
	r.nodes[x].parent = y
	r.recomputeMaxStop(x)
	r.recomputeMaxStop(y)
}

// rotateRight moves x below its left child.
func (r *treeMap[K, V]) rotateRight(x uint32) {
	y := r.nodes[x].left
	r.nodes[x].left = r.nodes[y].right
	if r.nodes[y].right != 0 {
		r.nodes[r.nodes[y].right].parent = x
	}
	p := r.nodes[x].parent
	r.nodes[y].parent = p
	if p == 0 {
		r.root = y
	} else if x == r.nodes[p].right {
		r.nodes[p].right = y
	} else {
		r.nodes[p].left = y
	}
	r.nodes[y].right = x
	r.nodes[x].parent = y
	r.recomputeMaxStop(x)
	r.recomputeMaxStop(y)
}

// insert places a new node by (min, max) order. Ties always descend right,
// so equivalent keys accumulate instead of overwriting; the tree holds a
// multiset of intervals.
func (r *treeMap[K, V]) insert(key K, value V) {
	z := r.newNode(key, value)
	y := uint32(0)
	x := r.root
	for x != 0 {
		y = x
		if r.compareKeys(key, r.nodes[x].key) < 0 {
			x = r.nodes[x].left
		} else {
			x = r.nodes[x].right
		}
	}
	r.nodes[z].parent = y
	if y == 0 {
		r.root = z
	} else {
		if r.compareKeys(key, r.nodes[y].key) < 0 {
			r.nodes[y].left = z
		} else {
			r.nodes[y].right = z
		}
		r.updateMaxStop(y)
	}
	r.insertFixup(z)
	r.count++
}

func (r *treeMap[K, V]) insertFixup(z uint32) {
	for r.colorOf(r.nodes[z].parent) == red {
		p := r.nodes[z].parent
		g := r.nodes[p].parent
		if p == r.nodes[g].left {
			u := r.nodes[g].right
			if r.colorOf(u) == red {
				r.nodes[p].color = black
				r.nodes[u].color = black
				r.nodes[g].color = red
				z = g
			} else {
				if z == r.nodes[p].right {
					z = p
					r.rotateLeft(z)
					p = r.nodes[z].parent
					g = r.nodes[p].parent
				}
				r.nodes[p].color = black
				r.nodes[g].color = red
				r.rotateRight(g)
			}
		} else {
			u := r.nodes[g].left
			if r.colorOf(u) == red {
				r.nodes[p].color = black
				r.nodes[u].color = black
				r.nodes[g].color = red
				z = g
			} else {
				if z == r.nodes[p].left {
					z = p
					r.rotateRight(z)
					p = r.nodes[z].parent
					g = r.nodes[p].parent
				}
				r.nodes[p].color = black
				r.nodes[g].color = red
				r.rotateLeft(g)
			}
		}
	}
	r.nodes[r.root].color = black
}

// transplant replaces the subtree rooted at u with the one rooted at v.
// v may be the sentinel; its parent field is deliberately written so that
// deleteFixup can climb from it, exactly as the textbook uses T.nil.
func (r *treeMap[K, V]) transplant(u, v uint32) {
	p := r.nodes[u].parent
	if p == 0 {
		r.root = v
	} else if u == r.nodes[p].left {
		r.nodes[p].left = v
	} else {
		r.nodes[p].right = v
	}
	r.nodes[v].parent = p
}

// deleteNode unlinks exactly the node z. A node with two children is
// replaced structurally by its in-order successor; keys and values are
// never copied between nodes, so node identity survives for any iterator
// holding a reference past z.
func (r *treeMap[K, V]) deleteNode(z uint32) {
	y := z
	yColor := r.colorOf(y)
	var x uint32
	if r.nodes[z].left == 0 {
		x = r.nodes[z].right
		r.transplant(z, x)
	} else if r.nodes[z].right == 0 {
		x = r.nodes[z].left
		r.transplant(z, x)
	} else {
		y = r.subtreeMin(r.nodes[z].right)
		yColor = r.colorOf(y)
		x = r.nodes[y].right
		if r.nodes[y].parent == z {
			r.nodes[x].parent = y
		} else {
			r.transplant(y, x)
			r.nodes[y].right = r.nodes[z].right
			r.nodes[r.nodes[y].right].parent = y
		}
		r.transplant(z, y)
		r.nodes[y].left = r.nodes[z].left
		r.nodes[r.nodes[y].left].parent = y
		r.nodes[y].color = r.nodes[z].color
	}
	// x sits where the structure changed deepest; repair the augmentation
	// from there to the root before rebalancing.
	r.updateMaxStopAll(r.nodes[x].parent)
	if yColor == black {
		r.deleteFixup(x)
	}
	r.nodes[0].parent = 0 // clear sentinel scratch
	r.freeNode(z)
	r.count--
}

// updateMaxStopAll is updateMaxStop without the early exit. After a delete
// several levels can be stale at once (the successor moved up), so every
// node on the path recomputes.
func (r *treeMap[K, V]) updateMaxStopAll(x uint32) {
	for x != 0 {
		r.recomputeMaxStop(x)
		x = r.nodes[x].parent
	}
}

func (r *treeMap[K, V]) deleteFixup(x uint32) {
	for x != r.root && r.colorOf(x) == black {
		p := r.nodes[x].parent
		if x == r.nodes[p].left {
			w := r.nodes[p].right
			if r.colorOf(w) == red {
				r.nodes[w].color = black
				r.nodes[p].color = red
				r.rotateLeft(p)
				w = r.nodes[p].right
			}
			if r.colorOf(r.nodes[w].left) == black && r.colorOf(r.nodes[w].right) == black {
				r.nodes[w].color = red
				x = p
			} else {
				if r.colorOf(r.nodes[w].right) == black {
					r.nodes[r.nodes[w].left].color = black
					r.nodes[w].color = red
					r.rotateRight(w)
					w = r.nodes[p].right
				}
				r.nodes[w].color = r.colorOf(p)
				r.nodes[p].color = black
				r.nodes[r.nodes[w].right].color = black
				r.rotateLeft(p)
				x = r.root
			}
		} else {
			w := r.nodes[p].left
			if r.colorOf(w) == red {
				r.nodes[w].color = black
				r.nodes[p].color = red
				r.rotateRight(p)
				w = r.nodes[p].left
			}
			if r.colorOf(r.nodes[w].right) == black && r.colorOf(r.nodes[w].left) == black {
				r.nodes[w].color = red
				x = p
			} else {
				if r.colorOf(r.nodes[w].left) == black {
					r.nodes[r.nodes[w].right].color = black
					r.nodes[w].color = red
					r.rotateLeft(w)
					w = r.nodes[p].left
				}
				r.nodes[w].color = r.colorOf(p)
				r.nodes[p].color = black
				r.nodes[r.nodes[w].left].color = black
				r.rotateRight(p)
				x = r.root
			}
		}
	}
	r.nodes[x].color = black
	r.nodes[0].color = black
}

// validateMaxStops recomputes the augmentation over the whole tree and
// reports the first node whose cached maxStop disagrees. It exists as a
// test oracle, not for any hot path.
func (r *treeMap[K, V]) validateMaxStops() error {
	return r.validateSubtree(r.root)
}

func (r *treeMap[K, V]) validateSubtree(x uint32) error {
	if x == 0 {
		return nil
	}
	n := r.nodes[x]
	max := n.key
	if n.left != 0 && r.cmp.CompareMaxes(r.nodes[n.left].maxStop, max) > 0 {
		max = r.nodes[n.left].maxStop
	}
	if n.right != 0 && r.cmp.CompareMaxes(r.nodes[n.right].maxStop, max) > 0 {
		max = r.nodes[n.right].maxStop
	}
	if r.cmp.CompareMaxes(n.maxStop, max) != 0 {
		return fmt.Errorf("maxStop mismatch at key %v: cached %v, derived %v", n.key, n.maxStop, max)
	}
	if err := r.validateSubtree(n.left); err != nil {
		return err
	}
	return r.validateSubtree(n.right)
}
