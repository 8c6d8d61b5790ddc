package ChainTable

import "fmt"

// Entry is one key value pair with the masked hash of its key. key and hash never change after creation.
type Entry[K comparable, V any] struct {
	key  K
	val  V
	hash int32
}

func newEntry[K comparable, V any](key K, val V, hash int32) *Entry[K, V] {
	return &Entry[K, V]{key: key, val: val, hash: hash}
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("%v : %v", e.key, e.val)
}
