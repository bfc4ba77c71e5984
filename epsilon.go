package fsa

// EpsilonClosure returns every state reachable from states through zero or
// more epsilon edges, states included.
func EpsilonClosure[S comparable, T any, L any](a *Automaton[S, T, L], states ...S) []S {
	closure := newOrderedSet(states...)
	stack := closure.Items()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.Epsilons(s) {
			if closure.Add(t) {
				stack = append(stack, t)
			}
		}
	}
	return closure.Items()
}

// RemoveEpsilons returns an automaton accepting the same language without
// epsilon edges. Each state takes over the symbol transitions of its epsilon
// closure, and accepts if its closure holds an accepting state. On an
// epsilon-free automaton the result has the same transition relation.
func RemoveEpsilons[S comparable, T any, L any](a *Automaton[S, T, L]) (*Automaton[S, T, L], error) {
	r := newArena(a)
	out := a.derive()
	for i, s := range r.states {
		closure := r.closure([]int{i})
		for _, c := range closure {
			for _, t := range r.arcs[c] {
				if err := out.AddTransition(s, t.label, r.states[t.to]); err != nil {
					return nil, err
				}
			}
		}
		if r.anyAccept(closure) {
			out.SetAccept(s, true)
		}
	}
	for _, i := range r.initial {
		out.SetInitial(r.states[i], true)
	}

	Logger.Debug("removed epsilons", "states", out.NumStates(), "transitions", out.NumTransitions())
	return out, nil
}
