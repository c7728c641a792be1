package indexedmap

import (
	"math/bits"
)

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

// normalizeCapacity rounds a sizing hint up to a power of two holding
// at least one group.
func normalizeCapacity(capacity int) uintptr {
	if capacity < groupSize {
		return groupSize
	}

	return uintptr(NextPowerOf2(uint32(capacity)))
}
