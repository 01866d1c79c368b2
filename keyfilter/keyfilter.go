// Package keyfilter provides a bloom-filter prefilter for key lookups: a
// negative answer is definite, a positive answer means the backing store
// still has to be consulted. It exists so that chains of misses (lookups of
// keys never inserted) can be answered without scanning.
package keyfilter

import (
	"encoding/binary"
	"errors"

	"github.com/bits-and-blooms/bloom/v3"
)

const (
	// DefaultCapacity is the expected key count used when the caller
	// passes zero.
	DefaultCapacity = 1024

	// DefaultFPRate is the target false-positive rate used when the
	// caller passes a rate outside (0, 1).
	DefaultFPRate = 0.01
)

// HashFunc reduces a key to the bytes fed to the filter. Keys that compare
// equal must produce equal bytes.
type HashFunc[K any] func(K) []byte

// Filter is a probabilistic key-membership set. Not safe for concurrent use.
type Filter[K any] struct {
	hash HashFunc[K]
	bits *bloom.BloomFilter
}

// New creates a filter sized for capacity keys at the given false-positive
// rate. Out-of-range parameters fall back to the defaults; a nil hash is an
// error.
func New[K any](capacity uint, fpRate float64, hash HashFunc[K]) (*Filter[K], error) {
	if hash == nil {
		return nil, errors.New("keyfilter: nil hash function")
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = DefaultFPRate
	}
	return &Filter[K]{
		hash: hash,
		bits: bloom.NewWithEstimates(capacity, fpRate),
	}, nil
}

// Add records key as present.
func (f *Filter[K]) Add(key K) {
	f.bits.Add(f.hash(key))
}

// MayContain reports whether key might be present. False means key was never
// added since the last Reset.
func (f *Filter[K]) MayContain(key K) bool {
	return f.bits.Test(f.hash(key))
}

// Reset forgets every added key.
func (f *Filter[K]) Reset() {
	f.bits.ClearAll()
}

// String is a HashFunc for string keys.
func String(s string) []byte {
	return []byte(s)
}

// Int64 is a HashFunc for integer keys.
func Int64(k int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(k))
	return b[:]
}
