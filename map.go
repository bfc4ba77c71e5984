package fsa

import "iter"

// Hashable is a key of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. It lets the
// algorithms look a mutable StateSet up against frozen keys without
// converting it first. It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets []*entry[T]
	size    int
	mask    uint64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

// loadFactor is the fill ratio that triggers doubling.
const loadFactor = 0.75

type optionsHashMap struct {
	capacity int
}

// OptionsHashMap configures NewHashMap.
type OptionsHashMap func(*optionsHashMap)

// WithCapacity sizes the table for about capacity keys; it is rounded up to a
// power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := &optionsHashMap{
		capacity: 1,
	}
	for _, fn := range options {
		fn(opt)
	}
	realCap := 1
	for realCap < opt.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets: make([]*entry[T], realCap),
		mask:    uint64(realCap - 1),
	}
}

// Set inserts or replaces the value of key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > loadFactor {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	buckets := make([]*entry[T], newCap)
	mask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			i := e.key.Hash() & mask
			buckets[i] = &entry[T]{
				key:   e.key,
				value: e.value,
				next:  buckets[i],
			}
		}
	}

	m.buckets = buckets
	m.mask = mask
}

func (m *HashMap[T]) Size() int {
	return m.size
}

// All iterates over every key and value in bucket order.
func (m *HashMap[T]) All() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, head := range m.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
