package interval

import "fmt"

// Entry is a key/value pair observed through a view. The key is the one
// stored in the tree, not a copy.
type Entry[K, V any] interface {
	Key() K
	Value() V
	String() string
}

type entry[K, V any] struct {
	key   K
	value V
}

type Entries[K, V any] []Entry[K, V]

func (r entry[K, V]) Key() K   { return r.key }
func (r entry[K, V]) Value() V { return r.value }
func (r entry[K, V]) String() string {
	return fmt.Sprintf("key: %v, value: %v", r.key, r.value)
}

func NewEntry[K, V any](key K, value V) Entry[K, V] {
	return entry[K, V]{
		key:   key,
		value: value,
	}
}
