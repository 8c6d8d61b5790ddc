/*
Package Maps holds what the map implementations share: the key contract, the default hash, and the error type.

# Keys
A key may implement HashCoder to supply its own raw hash and Equaler to supply its own equality. Keys that don't are compared with == and hashed by HashComparable.
A key whose dynamic value is nil (nil pointer, nil interface, nil channel) is a nil key. Maps reject nil keys on every operation except removal.

# Concurrency
Nothing here is safe for concurrent use. Synchronize externally.
*/
package Maps

import (
	"errors"
	"math"
)

const (
	DefaultCapacity   int     = 10
	DefaultLoadFactor float64 = 0.75
	MaxCapacity       uint    = math.MaxInt32 //largest bucket count a masked hash can address.
	signMask          int32   = math.MaxInt32
)

// ErrInvalidArgument is matched by every InvalidArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned for out of contract arguments. No state is changed when it's returned.
type InvalidArgumentError struct {
	Op  string
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.Op + ": " + e.Msg
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NilKey is the error for a nil key passed to op.
func NilKey(op string) error {
	return &InvalidArgumentError{Op: op, Msg: "key cannot be nil"}
}
