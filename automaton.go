package fsa

import "fmt"

// Automaton is a finite automaton over states S and input symbols T whose
// transitions are keyed by labels L. States have no separate declaration: a
// state exists once a transition, the initial set or the accepting set
// references it.
//
// An Automaton is built by mutating it (AddTransition, AddEpsilon,
// SetInitial, SetAccept). Every algorithm in this package treats its input as
// read-only and returns a new automaton. Concurrent reads of a finished
// automaton are safe; concurrent mutation is not.
type Automaton[S comparable, T any, L any] struct {
	states  *orderedSet[S]
	initial *orderedSet[S]
	accept  *orderedSet[S]
	store   Store[S, T, L]
	eps     *orderedMap[S, *orderedSet[S]]
}

// NewSparse returns an empty automaton keyed by discrete symbols. alphabet
// declares symbols beyond the ones transitions will use; completion and
// complement treat declared plus used symbols as the whole alphabet.
func NewSparse[S comparable, T comparable](alphabet ...T) *Automaton[S, T, T] {
	return newAutomaton[S, T, T](newSparseStore[S](alphabet...))
}

// NewDense returns an empty automaton keyed by symbol intervals within domain.
func NewDense[S comparable, T Integer](domain Domain[T]) *Automaton[S, T, Interval[T]] {
	return newAutomaton[S, T, Interval[T]](newDenseStore[S](domain))
}

func newAutomaton[S comparable, T any, L any](store Store[S, T, L]) *Automaton[S, T, L] {
	return &Automaton[S, T, L]{
		states:  newOrderedSet[S](),
		initial: newOrderedSet[S](),
		accept:  newOrderedSet[S](),
		store:   store,
		eps:     newOrderedMap[S, *orderedSet[S]](),
	}
}

// derive returns an empty automaton over the same alphabet.
func (a *Automaton[S, T, L]) derive() *Automaton[S, T, L] {
	return newAutomaton(a.store.empty())
}

// Clone returns a deep copy.
func (a *Automaton[S, T, L]) Clone() *Automaton[S, T, L] {
	c := &Automaton[S, T, L]{
		states:  a.states.Clone(),
		initial: a.initial.Clone(),
		accept:  a.accept.Clone(),
		store:   a.store.clone(),
		eps:     newOrderedMap[S, *orderedSet[S]](),
	}
	for _, src := range a.eps.Keys() {
		dests, _ := a.eps.Get(src)
		c.eps.Set(src, dests.Clone())
	}
	return c
}

// AddTransition adds src --label--> dst.
func (a *Automaton[S, T, L]) AddTransition(src S, label L, dst S) error {
	if err := a.store.Add(src, label, dst); err != nil {
		return err
	}
	a.states.Add(src)
	a.states.Add(dst)
	return nil
}

// AddEpsilon adds an edge from src to dst that consumes no input.
func (a *Automaton[S, T, L]) AddEpsilon(src, dst S) {
	dests, ok := a.eps.Get(src)
	if !ok {
		dests = newOrderedSet[S]()
		a.eps.Set(src, dests)
	}
	dests.Add(dst)
	a.states.Add(src)
	a.states.Add(dst)
}

// SetInitial marks or unmarks state as initial.
func (a *Automaton[S, T, L]) SetInitial(state S, initial bool) {
	if initial {
		a.initial.Add(state)
		a.states.Add(state)
		return
	}
	a.initial.Remove(state)
}

// SetAccept marks or unmarks state as accepting.
func (a *Automaton[S, T, L]) SetAccept(state S, accept bool) {
	if accept {
		a.accept.Add(state)
		a.states.Add(state)
		return
	}
	a.accept.Remove(state)
}

// RemoveState drops state together with every transition touching it.
func (a *Automaton[S, T, L]) RemoveState(state S) {
	a.states.Remove(state)
	a.initial.Remove(state)
	a.accept.Remove(state)
	a.store.Remove(state)
	a.eps.Delete(state)
	for _, src := range a.eps.Keys() {
		dests, _ := a.eps.Get(src)
		if dests.Remove(state) && dests.Len() == 0 {
			a.eps.Delete(src)
		}
	}
}

// States returns every known state in the order it was first referenced.
func (a *Automaton[S, T, L]) States() []S {
	return a.states.Items()
}

// NumStates returns the number of known states.
func (a *Automaton[S, T, L]) NumStates() int {
	return a.states.Len()
}

// NumTransitions returns the number of symbol transitions, one per
// (source, label, destination).
func (a *Automaton[S, T, L]) NumTransitions() int {
	return a.store.Len()
}

// Has reports whether state is known.
func (a *Automaton[S, T, L]) Has(state S) bool {
	return a.states.Has(state)
}

func (a *Automaton[S, T, L]) Initial() []S {
	return a.initial.Items()
}

func (a *Automaton[S, T, L]) Accepting() []S {
	return a.accept.Items()
}

func (a *Automaton[S, T, L]) IsInitial(state S) bool {
	return a.initial.Has(state)
}

func (a *Automaton[S, T, L]) IsAccept(state S) bool {
	return a.accept.Has(state)
}

// Transitions returns the outgoing symbol transitions of state, grouped by
// label.
func (a *Automaton[S, T, L]) Transitions(state S) []Transition[S, L] {
	return a.store.Transitions(state)
}

// Edges returns the outgoing symbol transitions of state, one per destination.
func (a *Automaton[S, T, L]) Edges(state S) []Edge[S, L] {
	var out []Edge[S, L]
	for _, tr := range a.store.Transitions(state) {
		for _, to := range tr.Targets {
			out = append(out, Edge[S, L]{From: state, Label: tr.Label, To: to})
		}
	}
	return out
}

// Epsilons returns the epsilon successors of state.
func (a *Automaton[S, T, L]) Epsilons(state S) []S {
	dests, ok := a.eps.Get(state)
	if !ok {
		return nil
	}
	return dests.Items()
}

// HasEpsilons reports whether any epsilon edge exists.
func (a *Automaton[S, T, L]) HasEpsilons() bool {
	return a.eps.Len() > 0
}

// Step returns the destinations of state on sym, ignoring epsilon edges.
func (a *Automaton[S, T, L]) Step(state S, sym T) []S {
	return a.store.Lookup(state, sym)
}

// Alphabet returns labels covering the automaton's whole alphabet: the domain
// of a dense automaton, the declared and used symbols of a sparse one.
func (a *Automaton[S, T, L]) Alphabet() []L {
	return a.store.universe()
}

// IsDeterministic reports whether the automaton has exactly one initial
// state, no epsilon edges and at most one destination per (state, symbol).
func (a *Automaton[S, T, L]) IsDeterministic() bool {
	return checkDeterministic(a) == nil
}

func checkDeterministic[S comparable, T any, L any](a *Automaton[S, T, L]) error {
	if n := a.initial.Len(); n != 1 {
		if n == 0 {
			return fmt.Errorf("%w: %w", ErrNotDeterministic, ErrNoInitialState)
		}
		return fmt.Errorf("%w: %d initial states", ErrNotDeterministic, n)
	}
	if a.HasEpsilons() {
		return fmt.Errorf("%w: epsilon transitions present", ErrNotDeterministic)
	}
	for _, src := range a.store.Sources() {
		for _, tr := range a.store.Transitions(src) {
			if len(tr.Targets) > 1 {
				return fmt.Errorf("%w: state %v has %d destinations on %v",
					ErrNotDeterministic, src, len(tr.Targets), tr.Label)
			}
		}
	}
	return nil
}
