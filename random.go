package indexedmap

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
)

// entropySeed reads a seed from the OS entropy source.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint64(buf[:])
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// sampleSlots picks k distinct slots out of [0, n), every k-subset being
// equally likely (Floyd's algorithm). Requires 0 <= k <= n.
func sampleSlots(rng *rand.Rand, n, k int) []int {
	picked := make(map[int]struct{}, k)
	slots := make([]int, 0, k)

	for j := n - k; j < n; j++ {
		slot := rng.Intn(j + 1)
		if _, ok := picked[slot]; ok {
			slot = j
		}

		picked[slot] = struct{}{}
		slots = append(slots, slot)
	}

	return slots
}
