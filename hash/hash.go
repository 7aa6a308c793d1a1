// Package hash provides the keyed hasher contract consumed by linearmap's
// Map: a pure function from (key, seed0, seed1) to a 64-bit hash, such
// that equal keys hash equally under the same seed pair.
//
// The (seed0, seed1) pair is owned by the Map, not by the hasher: a single
// Func value returned from this package can be shared across every Map
// that uses it, and each Map still gets its own independent seed pair
// folded in at hash time. Comparable, String and Bytes additionally draw
// a random seed of their own each time they are called, so two Funcs
// obtained from separate calls hash the same key differently even under
// the same seed pair; Number has no seed of its own.
package hash

import (
	"hash/maphash"
	"math/bits"
	"unsafe"

	dolthash "github.com/dolthub/maphash"
)

// Func is the hasher contract: hash(key, seed0, seed1) -> integer.
type Func[K any] func(key K, seed0, seed1 uint64) uint64

// Comparable returns the default hasher used by linearmap.New and
// linearmap.WithCapacity. It hashes arbitrary comparable key shapes
// (structs, arrays, strings, integers, ...) via dolthub/maphash's generic
// Hasher, then folds in the caller's two seeds so that many Maps can
// share the one underlying Hasher while still hashing independently of
// each other.
func Comparable[K comparable]() Func[K] {
	h := dolthash.NewHasher[K]()
	return func(key K, seed0, seed1 uint64) uint64 {
		return mix(h.Hash(key)^seed0, seed1)
	}
}

// String returns a hasher for string keys, built on the standard library's
// hash/maphash.
func String() Func[string] {
	seed := maphash.MakeSeed()
	return func(s string, seed0, seed1 uint64) uint64 {
		return mix(maphash.String(seed, s)^seed0, seed1)
	}
}

// Bytes returns a hasher for []byte keys, built on the standard library's
// hash/maphash.
func Bytes() Func[[]byte] {
	seed := maphash.MakeSeed()
	return func(b []byte, seed0, seed1 uint64) uint64 {
		return mix(maphash.Bytes(seed, b)^seed0, seed1)
	}
}

// IntType is the set of integer key kinds Number accepts.
type IntType interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Number returns a hasher for integer keys, using a rapidhash-inspired
// mixer (see https://github.com/Nicoshev/rapidhash) instead of going
// through hash/maphash's byte-oriented API.
func Number[T IntType]() Func[T] {
	return func(v T, seed0, seed1 uint64) uint64 {
		var a, b uint64
		b = uint64(v)
		if unsafe.Sizeof(v) == 4 {
			b |= b << 32
			a = b
		} else {
			a = bits.RotateLeft64(b, 32)
		}
		hi, lo := bits.Mul64(a^seed1, b^seed0)
		return mix(hi^seed0^uint64(unsafe.Sizeof(v)), lo^seed1)
	}
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
