package Go_Hashtable

import (
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestHasher_All(t *testing.T) {
	var u Hasher
	if u.HashString("abc") != xxhash.Sum64String("abc") || u.HashBytes([]byte("abc")) != u.HashString("abc") {
		t.Error("zero seed differs from xxhash")
	}
	s := Hasher(42)
	if s.HashString("abc") != s.HashBytes([]byte("abc")) {
		t.Error("seeded string and bytes differ")
	}
	if s.HashString("abc") == u.HashString("abc") {
		t.Error("seed ignored")
	}
	if u.HashInt(-1) != HashInteger(u, int8(-1)) || u.HashInt(7) != HashInteger(u, uint16(7)) {
		t.Error("integer widths hash differently")
	}
	if u.HashFloat(0) != u.HashFloat(math.Copysign(0, -1)) {
		t.Error("-0 and 0 hash differently")
	}
	if u.HashBool(true) == u.HashBool(false) {
		t.Error("bools collide")
	}
}

func TestFold(t *testing.T) {
	for _, c := range []struct {
		h    uint64
		want int32
	}{{0, 0}, {1, 1}, {1 << 32, 1}, {0xFFFFFFFF00000000, -1}, {0x8000000000000000, math.MinInt32}} {
		if got := Fold(c.h); got != c.want {
			t.Errorf("Fold(%x) = %d, wants %d", c.h, got, c.want)
		}
	}
}
