package Sets

type Set[E any] interface {
	Put(E) (bool, error)
	Has(E) (bool, error)
	Remove(E) bool
	Size() uint
	Take() (E, bool)
	Range(func(E) bool)
}

type ExtendedSet[E any] interface {
	Set[E]
	PutAll(Set[E]) (uint, error)
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
}
