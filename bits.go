package indexedmap

import (
	"math/bits"
)

const (
	bitsetLSB = 0x0101010101010101
	bitsetMSB = 0x8080808080808080
)

// bitset is the result of matching all 8 control bytes of a group at once.
//
// Each byte is 0x80 when the slot matched and 0x00 otherwise, so a whole
// group is answered with a handful of word operations.
type bitset uint64

// first returns the index of the lowest matched slot.
// Returns groupSize if the bitset is empty.
func (b bitset) first() uintptr {
	return uintptr(bits.TrailingZeros64(uint64(b)) >> 3)
}

// removeFirst clears the lowest matched slot.
func (b bitset) removeFirst() bitset {
	return b & ^(bitset(slotEmpty) << (bits.TrailingZeros64(uint64(b)) & ^7))
}

// matchH2 may report false positives, callers always compare keys.
//
//go:inline
func matchH2(ctrl uint64, h2 uint8) bitset {
	v := ctrl ^ (bitsetLSB * uint64(h2))
	return bitset(((v - bitsetLSB) &^ v) & bitsetMSB)
}

// matchEmpty: MSB set and bit 1 clear.
// (0x80 is 10000000, 0xFE is 11111110)
//
//go:inline
func matchEmpty(ctrl uint64) bitset {
	return bitset((ctrl &^ (ctrl << 6)) & bitsetMSB)
}

// matchEmptyOrDeleted: MSB set, full slots never have it.
//
//go:inline
func matchEmptyOrDeleted(ctrl uint64) bitset {
	return bitset(ctrl & bitsetMSB)
}
