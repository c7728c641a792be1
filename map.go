package indexedmap

import (
	"errors"
	"hash/maphash"
	"iter"
	"log/slog"

	"golang.org/x/exp/rand"
)

// ErrEmpty is returned when a random key is requested from an empty map.
var ErrEmpty = errors.New("indexedmap: map is empty")

// IndexedMap is a map, which also draws a uniformly random key in O(1).
//
// Entries live in a dense slice with no holes, and a swiss table maps every
// key to its slot. Removal moves the last entry into the freed slot, so the
// slice stays dense and every live key has the same 1/Len() chance to be
// drawn. The order of entries carries no meaning: overwriting a key moves
// it to the tail and removing a key may move another one.
//
// IndexedMap is not safe for concurrent use.
type IndexedMap[K comparable, V any] struct {
	store store[K, V]
	index table[K]

	rng      *rand.Rand
	hashFunc HashFunc[K]
	logger   *slog.Logger
}

type Option[K comparable, V any] func(m *IndexedMap[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(m *IndexedMap[K, V]) {
		m.hashFunc = f
	}
}

// WithSeed makes random selection reproducible.
func WithSeed[K comparable, V any](seed uint64) Option[K, V] {
	return func(m *IndexedMap[K, V]) {
		m.rng = newRand(seed)
	}
}

// WithSource draws random slots from src. The map takes ownership of it.
func WithSource[K comparable, V any](src rand.Source) Option[K, V] {
	return func(m *IndexedMap[K, V]) {
		m.rng = rand.New(src)
	}
}

// WithLogger enables debug records about position index rebuilds.
func WithLogger[K comparable, V any](logger *slog.Logger) Option[K, V] {
	return func(m *IndexedMap[K, V]) {
		m.logger = logger
	}
}

// New returns an empty map. The capacity is a sizing hint only, the map
// grows as needed.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *IndexedMap[K, V] {
	m := &IndexedMap[K, V]{}

	for _, opt := range opts {
		opt(m)
	}

	if m.hashFunc == nil {
		m.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if m.rng == nil {
		m.rng = newRand(entropySeed())
	}

	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}

	m.index.init(capacity, m.hashFunc)
	m.store.entries = make([]entry[K, V], 0, max(capacity, 0))

	return m
}

// Get returns the value stored for key.
func (m *IndexedMap[K, V]) Get(key K) (V, bool) {
	slot, ok := m.index.get(key)
	if !ok {
		var zero V
		return zero, false
	}

	return m.store.entries[slot].value, true
}

// Has checks whether a key is in the map.
func (m *IndexedMap[K, V]) Has(key K) bool {
	_, _, ok := m.index.lookup(key)

	return ok
}

// Set stores value under key, replacing any previous value. The key always
// ends up in the last slot. Returns whether the key is new.
func (m *IndexedMap[K, V]) Set(key K, value V) bool {
	existed := m.remove(key)

	slot := m.store.push(key, value)
	if !m.index.put(key, slot) {
		// The rebuild indexes the entry pushed above as well.
		m.rehash()
	}

	return !existed
}

// Delete removes key. Unknown keys are ignored.
// Returns whether a key was removed.
func (m *IndexedMap[K, V]) Delete(key K) bool {
	return m.remove(key)
}

func (m *IndexedMap[K, V]) remove(key K) bool {
	g, idx, ok := m.index.lookup(key)
	if !ok {
		return false
	}

	slot := g.positions[idx]
	if moved, relocated := m.store.swapRemove(slot); relocated {
		if !m.index.update(moved, slot) {
			panic("indexedmap: corrupt position index")
		}
	}

	// update never touches control bytes, g and idx still point at key.
	m.index.deleteAt(g, idx)

	return true
}

// Len returns the number of entries.
func (m *IndexedMap[K, V]) Len() int {
	return m.store.len()
}

// RandomKey returns a uniformly chosen key, or ErrEmpty.
func (m *IndexedMap[K, V]) RandomKey() (K, error) {
	n := m.store.len()
	if n == 0 {
		var zero K
		return zero, ErrEmpty
	}

	return m.store.entries[m.rng.Intn(n)].key, nil
}

// MustRandomKey is like RandomKey but panics on an empty map.
func (m *IndexedMap[K, V]) MustRandomKey() K {
	key, err := m.RandomKey()
	if err != nil {
		panic(err)
	}

	return key
}

// RandomEntry returns a uniformly chosen key and its value, or ErrEmpty.
func (m *IndexedMap[K, V]) RandomEntry() (K, V, error) {
	n := m.store.len()
	if n == 0 {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, ErrEmpty
	}

	e := m.store.entries[m.rng.Intn(n)]

	return e.key, e.value, nil
}

// RandomKeys returns min(n, Len()) distinct keys. Every subset of that
// size is equally likely; the order of the result is not shuffled.
func (m *IndexedMap[K, V]) RandomKeys(n int) []K {
	n = min(max(n, 0), m.store.len())

	keys := make([]K, 0, n)
	for _, slot := range sampleSlots(m.rng, m.store.len(), n) {
		keys = append(keys, m.store.entries[slot].key)
	}

	return keys
}

// Keys returns a copy of all keys in slot order.
func (m *IndexedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.store.len())
	for _, e := range m.store.entries {
		keys = append(keys, e.key)
	}

	return keys
}

// All iterates over entries in slot order. The map must not be modified
// during iteration.
func (m *IndexedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.store.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Reset drops all entries and keeps the allocated memory.
func (m *IndexedMap[K, V]) Reset() {
	m.store.reset()
	m.index.reset()
}

func (m *IndexedMap[K, V]) Stats() Stats {
	stats := Stats{
		Size:              m.store.len(),
		Capacity:          int(m.index.capacity),
		EffectiveCapacity: m.index.EffectiveCapacity(),
		Tombstones:        int(m.index.tombstones),
	}

	stats.TombstonesCapacityRatio = float32(stats.Tombstones) / float32(stats.Capacity)
	if stats.Size > 0 {
		stats.TombstonesSizeRatio = float32(stats.Tombstones) / float32(stats.Size)
	}

	return stats
}

// rehash rebuilds the position index from the dense store. The capacity
// doubles until live entries fit in half of the effective capacity;
// otherwise the rebuild only purges tombstones.
func (m *IndexedMap[K, V]) rehash() {
	oldCapacity := m.index.capacity
	live := uintptr(m.store.len())

	capacity := oldCapacity
	for live*2 > capacity*7/8 {
		capacity <<= 1
	}

	m.logger.Debug("indexedmap: rebuilding position index",
		slog.Int("size", int(live)),
		slog.Int("tombstones", int(m.index.tombstones)),
		slog.Int("old_capacity", int(oldCapacity)),
		slog.Int("capacity", int(capacity)),
	)

	if capacity == oldCapacity {
		m.index.reset()
	} else {
		m.index.init(int(capacity), m.hashFunc)
	}

	for slot, e := range m.store.entries {
		m.index.put(e.key, slot)
	}
}
