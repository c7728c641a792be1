package indexedmap

import "unsafe"

const (
	groupSize = 8

	slotEmpty   = 0x80
	slotDeleted = 0xFE
)

var emptyCtrls = [groupSize]uint8{
	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,

	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,
}

// group is one probe unit of the position index.
type group[K comparable] struct {
	// 8 bytes of metadata (h2 or control states), loaded as a single uint64.
	ctrls [groupSize]uint8

	keys [groupSize]K

	// Dense store slot of each key. Kept next to the keys so a hit
	// touches one group only.
	positions [groupSize]int
}

func (g *group[K]) ctrlWord() uint64 {
	return *(*uint64)(unsafe.Pointer(&g.ctrls))
}
