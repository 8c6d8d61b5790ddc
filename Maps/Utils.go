package Maps

import (
	"hash/maphash"
	"reflect"

	Go_Hashtable "github.com/g-m-twostay/go-hashtable"
)

var (
	comparableSeed = maphash.MakeSeed()
	hasher         Go_Hashtable.Hasher
)

// Mask clears the sign bit so that hash%capacity is never negative.
func Mask(hash int32) int32 {
	return hash & signMask
}

// Index of the bucket for the masked hash in a table of capacity buckets.
func Index(hash int32, capacity uint) uint {
	return uint(hash) % capacity
}

// HashComparable is the default raw hash. HashCoder keys use their own HashCode; strings, numbers and bools are hashed with xxhash; anything else comparable goes through maphash, which is only stable within one process.
func HashComparable[K comparable](key K) int32 {
	switch k := any(key).(type) {
	case HashCoder:
		return k.HashCode()
	case string:
		return Go_Hashtable.Fold(hasher.HashString(k))
	case int:
		return Go_Hashtable.Fold(hasher.HashInt(k))
	case int8:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case int16:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case int32:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case int64:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case uint:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case uint8:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case uint16:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case uint32:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case uint64:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case uintptr:
		return Go_Hashtable.Fold(Go_Hashtable.HashInteger(hasher, k))
	case float32:
		return Go_Hashtable.Fold(hasher.HashFloat(float64(k)))
	case float64:
		return Go_Hashtable.Fold(hasher.HashFloat(k))
	case bool:
		return Go_Hashtable.Fold(hasher.HashBool(k))
	}
	return Go_Hashtable.Fold(maphash.Comparable(comparableSeed, key))
}

// Equal reports whether a and b are the same key, using a's Equal method when it has one.
func Equal[K comparable](a, b K) bool {
	if e, ok := any(a).(Equaler[K]); ok {
		return e.Equal(b)
	}
	return a == b
}

// IsNil reports whether the dynamic value of key is nil.
func IsNil[K comparable](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Map, reflect.Slice, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
