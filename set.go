package indexedmap

import "iter"

// IndexedSet is a set, which also draws a uniformly random member in O(1).
// It shares the IndexedMap layout and its caveats: membership order carries
// no meaning and the set is not safe for concurrent use.
type IndexedSet[K comparable] struct {
	m *IndexedMap[K, struct{}]
}

func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *IndexedSet[K] {
	return &IndexedSet[K]{m: New(capacity, opts...)}
}

func (s *IndexedSet[K]) Has(key K) bool {
	return s.m.Has(key)
}

// Puts a key in the set. Returns whether a key is new.
func (s *IndexedSet[K]) Put(key K) bool {
	if s.m.Has(key) {
		return false
	}

	return s.m.Set(key, struct{}{})
}

func (s *IndexedSet[K]) Delete(key K) bool {
	return s.m.Delete(key)
}

func (s *IndexedSet[K]) Len() int {
	return s.m.Len()
}

func (s *IndexedSet[K]) RandomKey() (K, error) {
	return s.m.RandomKey()
}

func (s *IndexedSet[K]) RandomKeys(n int) []K {
	return s.m.RandomKeys(n)
}

// PopRandom removes and returns a uniformly chosen member.
func (s *IndexedSet[K]) PopRandom() (K, error) {
	key, err := s.m.RandomKey()
	if err != nil {
		return key, err
	}

	s.m.Delete(key)

	return key, nil
}

func (s *IndexedSet[K]) Keys() []K {
	return s.m.Keys()
}

func (s *IndexedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (s *IndexedSet[K]) Reset() {
	s.m.Reset()
}

func (s *IndexedSet[K]) Stats() Stats {
	return s.m.Stats()
}
