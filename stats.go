package indexedmap

type Stats struct {
	Size                    int
	Capacity                int
	EffectiveCapacity       int
	Tombstones              int
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}
