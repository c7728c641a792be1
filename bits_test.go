package indexedmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input uint64
		want  bitset
	}{
		{"All empty", 0x8080808080808080, 0x8080808080808080},
		{"All deleted", 0xFEFEFEFEFEFEFEFE, 0},
		{"All full", 0x0102030405060708, 0},
		{"Mixed: full, empty, deleted", 0x00_80_FE_42_80_FE_7F_01, 0x00_80_00_00_80_00_00_00},
		{"Single empty slot (first byte)", 0xFEFEFEFEFEFEFE80, 0x0000000000000080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, matchEmpty(tt.input))
		})
	}
}

func TestMatchEmptyOrDeleted(t *testing.T) {
	require.Equal(t, bitset(0x00_80_80_00_80_80_00_00), matchEmptyOrDeleted(0x00_80_FE_42_80_FE_7F_01))
	require.Zero(t, matchEmptyOrDeleted(0x7F7F7F7F7F7F7F7F))
}

func TestMatchH2(t *testing.T) {
	// Slots 0 and 5 hold 0x42.
	ctrl := uint64(0x80_FE_42_11_80_22_33_42)

	got := matchH2(ctrl, 0x42)
	require.Equal(t, uintptr(0), got.first())

	got = got.removeFirst()
	require.Equal(t, uintptr(5), got.first())

	got = got.removeFirst()
	require.Zero(t, got)

	// Empty and deleted control bytes never match a fingerprint.
	require.Zero(t, matchH2(0x8080808080808080, 0x00))
	require.Zero(t, matchH2(0xFEFEFEFEFEFEFEFE, 0x7E))
}

func TestBitset_first_Empty(t *testing.T) {
	require.Equal(t, uintptr(groupSize), bitset(0).first())
}
