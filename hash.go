package indexedmap

import "hash/maphash"

type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a maphash based hash function bound to seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// HashSplit splits a hash into the group selector (h1) and the 7-bit
// fingerprint stored in the control byte (h2).
func HashSplit(hash uint64) (uintptr, uint8) {
	h1 := uintptr(hash >> 7)
	h2 := uint8(hash & 0x7F)

	return h1, h2
}
