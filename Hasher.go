package Go_Hashtable

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher is a seed for the xxhash based hash functions below. The zero Hasher is a valid seed, and equal seeds always give equal hashes, so results are stable across processes.
type Hasher uint64

func (u Hasher) sum(b []byte) uint64 {
	d := xxhash.NewWithSeed(uint64(u))
	d.Write(b)
	return d.Sum64()
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint64 {
	if u == 0 {
		return xxhash.Sum64(b)
	}
	return u.sum(b)
}

// HashString directly hashes a string without copying it.
func (u Hasher) HashString(v string) uint64 {
	if u == 0 {
		return xxhash.Sum64String(v)
	}
	d := xxhash.NewWithSeed(uint64(u))
	d.WriteString(v)
	return d.Sum64()
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint64 {
	return HashInteger(u, v)
}

// HashInteger hashes any integer type by its 64 bit little endian encoding, so the same numeric value hashes the same regardless of its type.
func HashInteger[T constraints.Integer](u Hasher, v T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return u.HashBytes(buf[:])
}

// HashFloat hashes v. 0 and -0 hash the same since they compare equal; NaN never compares equal so its hash doesn't matter.
func (u Hasher) HashFloat(v float64) uint64 {
	if v == 0 {
		v = 0
	}
	return HashInteger(u, math.Float64bits(v))
}

// HashBool hashes v.
func (u Hasher) HashBool(v bool) uint64 {
	if v {
		return HashInteger(u, 1)
	}
	return HashInteger(u, 0)
}

// Fold the 64 bit hash into a 32 bit one by xoring both halves.
func Fold(h uint64) int32 {
	return int32(uint32(h) ^ uint32(h>>32))
}
