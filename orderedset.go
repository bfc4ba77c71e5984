package fsa

import "slices"

// orderedSet is a set that remembers insertion order, so every enumeration
// of states or symbols is reproducible.
type orderedSet[S comparable] struct {
	items []S
	index map[S]int
}

func newOrderedSet[S comparable](items ...S) *orderedSet[S] {
	s := &orderedSet[S]{index: make(map[S]int, len(items))}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was absent.
func (s *orderedSet[S]) Add(v S) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet[S]) Has(v S) bool {
	_, ok := s.index[v]
	return ok
}

// Remove deletes v and reports whether it was present.
func (s *orderedSet[S]) Remove(v S) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.items = slices.Delete(s.items, i, i+1)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
	return true
}

func (s *orderedSet[S]) Len() int {
	return len(s.items)
}

// Items returns a copy of the members in insertion order.
func (s *orderedSet[S]) Items() []S {
	return slices.Clone(s.items)
}

// Equal compares membership only.
func (s *orderedSet[S]) Equal(o *orderedSet[S]) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, v := range s.items {
		if !o.Has(v) {
			return false
		}
	}
	return true
}

func (s *orderedSet[S]) Clone() *orderedSet[S] {
	return newOrderedSet(s.items...)
}

// orderedMap is a map with insertion-ordered keys.
type orderedMap[K comparable, V any] struct {
	keys   *orderedSet[K]
	values map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{
		keys:   newOrderedSet[K](),
		values: make(map[K]V),
	}
}

func (m *orderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

func (m *orderedMap[K, V]) Set(k K, v V) {
	m.keys.Add(k)
	m.values[k] = v
}

func (m *orderedMap[K, V]) Delete(k K) {
	if m.keys.Remove(k) {
		delete(m.values, k)
	}
}

func (m *orderedMap[K, V]) Keys() []K {
	return m.keys.Items()
}

func (m *orderedMap[K, V]) Len() int {
	return m.keys.Len()
}
