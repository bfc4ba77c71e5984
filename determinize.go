package fsa

import "fmt"

// Determinize returns a DFA accepting the language of a, built by subset
// construction. Epsilon edges are followed, so a need not be epsilon-free.
// The DFA states come from fresh. Worst case complexity: exponential in the
// number of states of a.
func Determinize[S comparable, T any, L any](a *Automaton[S, T, L], fresh Factory[S]) (*Automaton[S, T, L], error) {
	d, _, err := DeterminizeSets(a, fresh)
	return d, err
}

// DeterminizeSets is Determinize that also reports, for every DFA state, the
// states of a it stands for.
func DeterminizeSets[S comparable, T any, L any](a *Automaton[S, T, L], fresh Factory[S]) (*Automaton[S, T, L], map[S][]S, error) {
	r := newArena(a)
	if len(r.initial) == 0 {
		return nil, nil, fmt.Errorf("determinize: %w", ErrNoInitialState)
	}

	out := a.derive()
	cache := NewHashMap[*FrozenIntSet](WithCapacity(r.size()))
	var dstates []S
	var worklist []*FrozenIntSet
	widest := 0

	// intern returns the DFA state handle of subset, creating it on first sight.
	intern := func(subset *StateSet) int {
		if frozen, ok := cache.Get(subset); ok {
			return frozen.State()
		}
		frozen := subset.Freeze(len(dstates))
		s := fresh()
		dstates = append(dstates, s)
		cache.Set(frozen, frozen)
		worklist = append(worklist, frozen)
		widest = max(widest, frozen.Size())
		if r.anyAccept(frozen.GetArray()) {
			out.SetAccept(s, true)
		}
		return frozen.State()
	}

	start := intern(closedSet(r, r.initial))
	out.SetInitial(dstates[start], true)

	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]
		members := p.GetArray()

		// Every elementary label leads the whole subset to a single target
		// set, which is what makes the result deterministic.
		for _, e := range a.store.refine(r.labels(members)) {
			var targets []int
			for _, m := range members {
				for _, t := range r.arcs[m] {
					if a.store.covers(t.label, e) {
						targets = append(targets, t.to)
					}
				}
			}
			q := intern(closedSet(r, targets))
			if err := out.AddTransition(dstates[p.State()], e, dstates[q]); err != nil {
				return nil, nil, err
			}
		}
	}

	subsets := make(map[S][]S, len(dstates))
	for _, frozen := range cache.All() {
		members := make([]S, frozen.Size())
		for i, id := range frozen.GetArray() {
			members[i] = r.states[id]
		}
		subsets[dstates[frozen.State()]] = members
	}

	Logger.Debug("determinized", "nfa_states", r.size(), "dfa_states", len(dstates), "widest_subset", widest)
	return out, subsets, nil
}

// closedSet returns the epsilon closure of ids as a StateSet.
func closedSet[S comparable, L any](r *arena[S, L], ids []int) *StateSet {
	set := NewStateSet()
	for _, id := range r.closure(ids) {
		set.Add(id)
	}
	return set
}
