package interval

type color uint8

const (
	black color = iota
	red
)

// node is an arena slot of the tree. Nodes reference each other by index
// into the arena rather than by pointer; index 0 is the shared sentinel,
// which is always black and never carries a key. Every node caches in
// maxStop the key of its subtree whose upper bound is maximal, which is
// what lets queries prune entire subtrees.
type node[K, V any] struct {
	key     K
	value   V
	left    uint32 // left child index, 0 for none
	right   uint32 // right child index, 0 for none
	parent  uint32 // parent index, 0 for the root
	color   color
	maxStop K // key with the maximal upper bound in this subtree
}
