package fsa

import "fmt"

// Automata builds small dense DFAs over Domain, minting states from Fresh.
type Automata[S comparable, T Integer] struct {
	Domain Domain[T]
	Fresh  Factory[S]
}

// MakeEmpty returns a new (deterministic) automaton with the empty language.
func (m Automata[S, T]) MakeEmpty() *Automaton[S, T, Interval[T]] {
	a := NewDense[S](m.Domain)
	a.SetInitial(m.Fresh(), true)
	return a
}

// MakeEmptyString returns a new (deterministic) automaton that accepts only
// the empty string.
func (m Automata[S, T]) MakeEmptyString() *Automaton[S, T, Interval[T]] {
	a := NewDense[S](m.Domain)
	s := m.Fresh()
	a.SetInitial(s, true)
	a.SetAccept(s, true)
	return a
}

// MakeAnyString returns a new (deterministic) automaton that accepts all
// strings.
func (m Automata[S, T]) MakeAnyString() (*Automaton[S, T, Interval[T]], error) {
	a := m.MakeEmptyString()
	s := a.Initial()[0]
	if err := a.AddTransition(s, m.Domain.Interval(), s); err != nil {
		return nil, err
	}
	return a, nil
}

// MakeRange returns a new (deterministic) automaton accepting a single
// symbol in [lo, hi].
func (m Automata[S, T]) MakeRange(lo, hi T) (*Automaton[S, T, Interval[T]], error) {
	a := NewDense[S](m.Domain)
	s, e := m.Fresh(), m.Fresh()
	a.SetInitial(s, true)
	a.SetAccept(e, true)
	if err := a.AddTransition(s, Span(lo, hi), e); err != nil {
		return nil, err
	}
	return a, nil
}

// MakeString returns a new (deterministic) automaton accepting exactly syms.
func (m Automata[S, T]) MakeString(syms ...T) (*Automaton[S, T, Interval[T]], error) {
	a := NewDense[S](m.Domain)
	cur := m.Fresh()
	a.SetInitial(cur, true)
	for _, v := range syms {
		next := m.Fresh()
		if err := a.AddTransition(cur, Single(v), next); err != nil {
			return nil, err
		}
		cur = next
	}
	a.SetAccept(cur, true)
	return a, nil
}

// CommonPrefix returns the longest sequence of symbols every accepted string
// starts with. a must be deterministic.
func CommonPrefix[S comparable, T Integer](a *Automaton[S, T, Interval[T]]) ([]T, error) {
	if err := checkDeterministic(a); err != nil {
		return nil, fmt.Errorf("common prefix: %w", err)
	}
	if IsEmpty(a) {
		return nil, nil
	}
	live, err := RemoveDeadStates(a)
	if err != nil {
		return nil, err
	}

	var prefix []T
	visited := newOrderedSet[S]()
	s := live.Initial()[0]
	for {
		visited.Add(s)
		trs := live.Transitions(s)
		if live.IsAccept(s) || len(trs) != 1 {
			break
		}
		tr := trs[0]
		if tr.Label.Lo != tr.Label.Hi || visited.Has(tr.Targets[0]) {
			break
		}
		prefix = append(prefix, tr.Label.Lo)
		s = tr.Targets[0]
	}
	return prefix, nil
}
