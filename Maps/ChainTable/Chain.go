package ChainTable

import "github.com/g-m-twostay/go-hashtable/Maps"

// chain holds the entries of one bucket. A nil chain is an empty bucket. Order isn't meaningful.
type chain[K comparable, V any] []*Entry[K, V]

// find the position of key in the chain, -1 if it's absent.
func (c chain[K, V]) find(key K) int {
	for i, e := range c {
		if Maps.Equal(e.key, key) {
			return i
		}
	}
	return -1
}

// remove the entry at i by moving the last one into its place.
func (c chain[K, V]) remove(i int) chain[K, V] {
	last := len(c) - 1
	if last == 0 {
		return nil
	}
	c[i] = c[last]
	c[last] = nil
	return c[:last]
}
