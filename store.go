package indexedmap

type entry[K comparable, V any] struct {
	key   K
	value V
}

// store is the dense, gap-free sequence of live entries. Entries are only
// appended at the tail and removed by moving the tail into the hole.
type store[K comparable, V any] struct {
	entries []entry[K, V]
}

func (s *store[K, V]) len() int {
	return len(s.entries)
}

// push appends an entry and returns its slot.
func (s *store[K, V]) push(key K, value V) int {
	s.entries = append(s.entries, entry[K, V]{key: key, value: value})

	return len(s.entries) - 1
}

// swapRemove drops slot by moving the tail entry into it. When an entry
// was relocated, its key is returned along with true.
func (s *store[K, V]) swapRemove(slot int) (K, bool) {
	last := len(s.entries) - 1
	relocated := slot != last
	if relocated {
		s.entries[slot] = s.entries[last]
	}

	// Release whatever the vacated tail referenced.
	s.entries[last] = entry[K, V]{}
	s.entries = s.entries[:last]

	if !relocated {
		var zero K
		return zero, false
	}

	return s.entries[slot].key, true
}

func (s *store[K, V]) reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
