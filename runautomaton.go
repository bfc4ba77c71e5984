package fsa

import (
	"fmt"
	"sort"
)

// RunAutomaton is a dense DFA compiled into a transition table for fast
// matching. The domain is cut into symbol classes, the maximal intervals on
// which no state of the DFA distinguishes two symbols, and every state keeps
// one table cell per class. States are numbered 0..Size()-1; -1 is the dead
// state.
type RunAutomaton[T Integer] struct {
	domain      Domain[T]
	points      []T
	accept      []bool
	initial     int
	transitions []int
}

// NewRunAutomaton compiles the deterministic automaton a.
func NewRunAutomaton[S comparable, T Integer](a *Automaton[S, T, Interval[T]]) (*RunAutomaton[T], error) {
	if err := checkDeterministic(a); err != nil {
		return nil, fmt.Errorf("run automaton: %w", err)
	}
	st := a.store.(*denseStore[S, T])
	r := newArena(a)
	classes := st.refine(append(r.labels(allStates(r)), st.universe()...))

	ra := &RunAutomaton[T]{
		domain:      st.domain,
		points:      make([]T, len(classes)),
		accept:      make([]bool, r.size()),
		initial:     r.initial[0],
		transitions: make([]int, r.size()*len(classes)),
	}
	for x, c := range classes {
		ra.points[x] = c.Lo
	}
	for i := 0; i < r.size(); i++ {
		ra.accept[i] = r.isAccept(i)
		row := ra.transitions[i*len(classes) : (i+1)*len(classes)]
		for x, c := range classes {
			row[x] = -1
			for _, t := range r.arcs[i] {
				if t.label.Covers(c) {
					row[x] = t.to
					break
				}
			}
		}
	}
	Logger.Debug("compiled run automaton", "states", r.size(), "classes", len(classes))
	return ra, nil
}

// Size returns the number of states.
func (ra *RunAutomaton[T]) Size() int {
	return len(ra.accept)
}

// Initial returns the start state.
func (ra *RunAutomaton[T]) Initial() int {
	return ra.initial
}

// IsAccept reports whether state is accepting; the dead state never is.
func (ra *RunAutomaton[T]) IsAccept(state int) bool {
	return state >= 0 && ra.accept[state]
}

// Step returns the state reached from state on sym, or -1.
func (ra *RunAutomaton[T]) Step(state int, sym T) int {
	if state < 0 || sym < ra.domain.Min || sym > ra.domain.Max {
		return -1
	}
	x := sort.Search(len(ra.points), func(i int) bool {
		return ra.points[i] > sym
	}) - 1
	return ra.transitions[state*len(ra.points)+x]
}

// Run reports whether input is accepted.
func (ra *RunAutomaton[T]) Run(input []T) bool {
	p := ra.initial
	for _, sym := range input {
		p = ra.Step(p, sym)
		if p == -1 {
			return false
		}
	}
	return ra.accept[p]
}

// ByteRunAutomaton matches byte slices.
type ByteRunAutomaton struct {
	*RunAutomaton[byte]
}

func NewByteRunAutomaton[S comparable](a *Automaton[S, byte, Interval[byte]]) (*ByteRunAutomaton, error) {
	ra, err := NewRunAutomaton(a)
	if err != nil {
		return nil, err
	}
	return &ByteRunAutomaton{ra}, nil
}

// Run returns true if the given byte slice is accepted by this automaton.
func (r *ByteRunAutomaton) Run(s []byte) bool {
	return r.RunAutomaton.Run(s)
}
