package ChainSet

import (
	"github.com/g-m-twostay/go-hashtable/Maps/ChainTable"
	"github.com/g-m-twostay/go-hashtable/Sets"
)

// New ChainSet, see ChainTable.New for the parameters.
func New[E comparable](capacity int, loadFactor float64, hashF func(E) int32) (*ChainSet[E], error) {
	t, err := ChainTable.New[E, struct{}](capacity, loadFactor, hashF)
	if err != nil {
		return nil, err
	}
	return &ChainSet[E]{t}, nil
}

// Default ChainSet with the default capacity and load factor.
func Default[E comparable]() *ChainSet[E] {
	return &ChainSet[E]{ChainTable.Default[E, struct{}]()}
}

// ChainSet is a set backed by a ChainTable with empty values. Like the table, it isn't safe for concurrent use.
type ChainSet[E comparable] struct {
	t *ChainTable.ChainTable[E, struct{}]
}

// Put e into the set. Returns true if e wasn't present before.
func (u *ChainSet[E]) Put(e E) (bool, error) {
	_, loaded, err := u.t.Put(e, struct{}{})
	return err == nil && !loaded, err
}

// Has e in the set.
func (u *ChainSet[E]) Has(e E) (bool, error) {
	return u.t.HasKey(e)
}

// Remove e from the set. Returns true if e was present.
func (u *ChainSet[E]) Remove(e E) bool {
	_, ok := u.t.Remove(e)
	return ok
}

func (u *ChainSet[E]) Size() uint {
	return u.t.Size()
}

// Take an arbitrary element without removing it.
func (u *ChainSet[E]) Take() (e E, ok bool) {
	e, _, ok = u.t.Take()
	return
}

// Range over the elements until f returns false.
func (u *ChainSet[E]) Range(f func(E) bool) {
	u.t.Range(func(e E, _ struct{}) bool {
		return f(e)
	})
}

// PutAll elements of s. Returns the number of elements that were new. Stops at the first error.
func (u *ChainSet[E]) PutAll(s Sets.Set[E]) (n uint, err error) {
	s.Range(func(e E) bool {
		var added bool
		if added, err = u.Put(e); added {
			n++
		}
		return err == nil
	})
	return
}

// RemoveAll elements of s. Returns the number of elements removed.
func (u *ChainSet[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq reports whether both sets hold the same elements.
func (u *ChainSet[E]) Eq(s Sets.Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		has, _ := u.Has(e)
		eq = has
		return eq
	})
	return eq
}
