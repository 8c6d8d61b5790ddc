/*
Package ChainTable implements a hash table that resolves collisions by separate chaining.

Every key is hashed once into a non-negative 31 bit hash, and the bucket of an entry is always hash%capacity, for insertion, lookup, removal and rehashing alike.
When an insertion pushes the size above floor(capacity*loadFactor), all entries are rehashed synchronously into twice as many buckets. The table never shrinks.

A ChainTable isn't safe for concurrent use.
*/
package ChainTable

import (
	"math"
	"strings"

	"github.com/g-m-twostay/go-hashtable/Maps"
)

// New ChainTable with the given number of buckets and load factor.
// capacity must be in [0, Maps.MaxCapacity]; 0 is treated as 1. loadFactor must be in (0,1].
// hashF is the raw hash of keys, nil selects Maps.HashComparable. It must return the same value for equal keys.
func New[K comparable, V any](capacity int, loadFactor float64, hashF func(K) int32) (*ChainTable[K, V], error) {
	if capacity < 0 {
		return nil, &Maps.InvalidArgumentError{Op: "new", Msg: "capacity must not be negative"}
	}
	if uint(capacity) > Maps.MaxCapacity {
		return nil, &Maps.InvalidArgumentError{Op: "new", Msg: "capacity exceeds MaxCapacity"}
	}
	if !(loadFactor > 0 && loadFactor <= 1) {
		return nil, &Maps.InvalidArgumentError{Op: "new", Msg: "load factor must be in (0,1]"}
	}
	if hashF == nil {
		hashF = Maps.HashComparable[K]
	}
	if capacity == 0 {
		capacity = 1
	}
	return &ChainTable[K, V]{
		buckets:    make([]chain[K, V], capacity),
		loadFactor: loadFactor,
		threshold:  threshold(uint(capacity), loadFactor),
		hashF:      hashF,
	}, nil
}

// WithCapacity creates a ChainTable with Maps.DefaultLoadFactor.
func WithCapacity[K comparable, V any](capacity int) (*ChainTable[K, V], error) {
	return New[K, V](capacity, Maps.DefaultLoadFactor, nil)
}

// Default creates a ChainTable with Maps.DefaultCapacity and Maps.DefaultLoadFactor.
func Default[K comparable, V any]() *ChainTable[K, V] {
	t, _ := New[K, V](Maps.DefaultCapacity, Maps.DefaultLoadFactor, nil)
	return t
}

type ChainTable[K comparable, V any] struct {
	buckets    []chain[K, V] //len(buckets) is the capacity.
	loadFactor float64
	threshold  uint
	size       uint
	hashF      func(K) int32
}

func threshold(capacity uint, loadFactor float64) uint {
	return uint(math.Floor(float64(capacity) * loadFactor))
}

func (u *ChainTable[K, V]) hash(key K) int32 {
	return Maps.Mask(u.hashF(key))
}

func (u *ChainTable[K, V]) index(hash int32) uint {
	return Maps.Index(hash, uint(len(u.buckets)))
}

func (u *ChainTable[K, V]) lookup(key K) *Entry[K, V] {
	c := u.buckets[u.index(u.hash(key))]
	if i := c.find(key); i >= 0 {
		return c[i]
	}
	return nil
}

// resize rehashes every entry into newCapacity buckets. The chains are rebuilt in bucket order.
func (u *ChainTable[K, V]) resize(newCapacity uint) {
	newBuckets := make([]chain[K, V], newCapacity)
	for _, c := range u.buckets {
		for _, e := range c {
			i := Maps.Index(e.hash, newCapacity)
			newBuckets[i] = append(newBuckets[i], e)
		}
	}
	u.buckets = newBuckets
	u.threshold = threshold(newCapacity, u.loadFactor)
}

// Put val at key. If key is already present, its value is replaced in place and the previous value is returned with loaded set to true.
// Returns Maps.ErrInvalidArgument if key is nil.
func (u *ChainTable[K, V]) Put(key K, val V) (old V, loaded bool, err error) {
	if Maps.IsNil(key) {
		err = Maps.NilKey("put")
		return
	}
	hash := u.hash(key)
	i := u.index(hash)
	if j := u.buckets[i].find(key); j >= 0 {
		e := u.buckets[i][j]
		old, e.val, loaded = e.val, val, true
		return
	}
	u.buckets[i] = append(u.buckets[i], newEntry(key, val, hash))
	if u.size++; u.size > u.threshold {
		if newCapacity := min(uint(len(u.buckets))<<1, Maps.MaxCapacity); newCapacity > uint(len(u.buckets)) {
			u.resize(newCapacity)
		}
	}
	return
}

// Get the value at key. ok is false if key isn't present.
// Returns Maps.ErrInvalidArgument if key is nil.
func (u *ChainTable[K, V]) Get(key K) (val V, ok bool, err error) {
	if Maps.IsNil(key) {
		err = Maps.NilKey("get")
		return
	}
	if e := u.lookup(key); e != nil {
		val, ok = e.val, true
	}
	return
}

// HasKey reports whether key is present.
// Returns Maps.ErrInvalidArgument if key is nil.
func (u *ChainTable[K, V]) HasKey(key K) (bool, error) {
	if Maps.IsNil(key) {
		return false, Maps.NilKey("has key")
	}
	return u.lookup(key) != nil, nil
}

// Remove key and return its value. ok is false if key isn't present. A nil key is never present, so it's not an error here.
func (u *ChainTable[K, V]) Remove(key K) (val V, ok bool) {
	if Maps.IsNil(key) {
		return
	}
	i := u.index(u.hash(key))
	if j := u.buckets[i].find(key); j >= 0 {
		val, ok = u.buckets[i][j].val, true
		u.buckets[i] = u.buckets[i].remove(j)
		u.size--
	}
	return
}

func (u *ChainTable[K, V]) Size() uint {
	return u.size
}

func (u *ChainTable[K, V]) IsEmpty() bool {
	return u.size == 0
}

// Capacity is the number of buckets.
func (u *ChainTable[K, V]) Capacity() uint {
	return uint(len(u.buckets))
}

// Threshold is the size above which the next insertion doubles the capacity.
func (u *ChainTable[K, V]) Threshold() uint {
	return u.threshold
}

// Range calls f on every entry until f returns false. The order is unspecified. f must not modify the table.
func (u *ChainTable[K, V]) Range(f func(K, V) bool) {
	for _, c := range u.buckets {
		for _, e := range c {
			if !f(e.key, e.val) {
				return
			}
		}
	}
}

// Take an arbitrary entry without removing it. ok is false if the table is empty.
func (u *ChainTable[K, V]) Take() (key K, val V, ok bool) {
	if u.size > 0 {
		for _, c := range u.buckets {
			if len(c) > 0 {
				return c[0].key, c[0].val, true
			}
		}
	}
	return
}

func (u *ChainTable[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for _, c := range u.buckets {
		for _, e := range c {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(e.String())
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
