package Maps

import (
	"errors"
	"math"
	"testing"
)

type O int

func (u O) HashCode() int32 { return -int32(u) }

type caseless string

func (u caseless) Equal(o caseless) bool {
	return len(u) == len(o) && (u == o || u[0]^0x20 == o[0] && u[1:] == o[1:])
}

func TestMask(t *testing.T) {
	for _, h := range []int32{0, 1, -1, math.MinInt32, math.MaxInt32, -12345} {
		if m := Mask(h); m < 0 || m != h&0x7FFFFFFF {
			t.Errorf("Mask(%d) = %d", h, m)
		}
	}
	if Index(Mask(-1), 10) != uint(math.MaxInt32%10) {
		t.Error("wrong index")
	}
}

func TestHashComparable(t *testing.T) {
	if HashComparable(O(5)) != -5 {
		t.Error("HashCode ignored")
	}
	if HashComparable("abc") != HashComparable("abc") || HashComparable(3) != HashComparable(int64(3)) {
		t.Error("unstable hash")
	}
	type pair struct{ a, b int }
	if HashComparable(pair{1, 2}) != HashComparable(pair{1, 2}) {
		t.Error("unstable struct hash")
	}
	if HashComparable(0.0) != HashComparable(math.Copysign(0, -1)) {
		t.Error("zeros hash differently")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(caseless("abc"), caseless("Abc")) || Equal(caseless("abc"), caseless("abd")) {
		t.Error("Equal method ignored")
	}
	if !Equal(1, 1) || Equal(1, 2) {
		t.Error("wrong ==")
	}
}

func TestIsNil(t *testing.T) {
	var p *int
	var a any
	if !IsNil(p) || !IsNil(a) || !IsNil[any](p) || !IsNil[error](nil) {
		t.Error("nil not detected")
	}
	x := 0
	if IsNil(&x) || IsNil(0) || IsNil("") || IsNil[any](0) {
		t.Error("non nil reported nil")
	}
}

func TestInvalidArgumentError(t *testing.T) {
	err := NilKey("put")
	if !errors.Is(err, ErrInvalidArgument) || err.Error() != "put: key cannot be nil" {
		t.Errorf("wrong error %v", err)
	}
	var e *InvalidArgumentError
	if !errors.As(err, &e) || e.Op != "put" {
		t.Error("wrong error type")
	}
}
