package fsa

import "slices"

// IntSet is a hashable set of state handles, the key type of the subset
// cache used by determinization.
type IntSet interface {
	Hashable

	// GetArray returns the members in ascending order.
	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is an immutable IntSet remembering the DFA state built for it.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

// NewFrozenIntSet freezes values, which must be sorted and free of
// duplicates, as the subset behind DFA state handle state.
func NewFrozenIntSet(values []int, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashSet(values)}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals compares members with any other IntSet.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	o, ok := other.(IntSet)
	if !ok {
		return false
	}
	if f == nil || isNilIntSet(o) {
		return isNilIntSet(f) && isNilIntSet(o)
	}
	return f.Hash() == o.Hash() && slices.Equal(f.values, o.GetArray())
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State returns the DFA state handle built for this subset.
func (f *FrozenIntSet) State() int {
	return f.state
}

func isNilIntSet(s IntSet) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *FrozenIntSet:
		return v == nil
	case *StateSet:
		return v == nil
	}
	return false
}

var _ IntSet = &StateSet{}

// StateSet is a mutable IntSet used to accumulate the destinations of a
// subset before looking it up in the cache.
type StateSet struct {
	inner       map[int]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet() *StateSet {
	return &StateSet{
		inner: make(map[int]struct{}),
	}
}

func (s *StateSet) Hash() uint64 {
	if !s.hashUpdated {
		s.hashCode = hashSet(s.GetArray())
		s.hashUpdated = true
	}
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	o, ok := other.(IntSet)
	if !ok {
		return false
	}
	if s == nil || isNilIntSet(o) {
		return isNilIntSet(s) && isNilIntSet(o)
	}
	return s.Hash() == o.Hash() && slices.Equal(s.GetArray(), o.GetArray())
}

func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, len(s.inner))
	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.inner)
}

// Add inserts state; adding a member twice is a no-op.
func (s *StateSet) Add(state int) {
	if _, ok := s.inner[state]; ok {
		return
	}
	s.inner[state] = struct{}{}
	s.hashUpdated = false
}

// Freeze snapshots the members as the subset of DFA state handle state.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), state)
}
