package Maps

// HashCoder is implemented by keys that supply their own raw hash. The hash must stay the same while the key is in a map.
type HashCoder interface {
	HashCode() int32
}

// Equaler is implemented by keys that define their own equality. When a key implements it, Equal is used instead of ==.
type Equaler[K any] interface {
	Equal(K) bool
}

// Map is the sequential map interface. The ok results tell a stored zero value apart from a missing key.
type Map[K comparable, V any] interface {
	Put(K, V) (V, bool, error)
	HasKey(K) (bool, error)
	Get(K) (V, bool, error)
	Remove(K) (V, bool)
	Take() (K, V, bool)
	Range(func(K, V) bool)
	Size() uint
	IsEmpty() bool
}
