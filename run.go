package fsa

// Accepts reports whether the automaton accepts input. It simulates the
// automaton on the set of current states, following epsilon edges, so it
// works on any automaton, deterministic or not.
func (a *Automaton[S, T, L]) Accepts(input []T) bool {
	current := EpsilonClosure(a, a.Initial()...)
	for _, sym := range input {
		if len(current) == 0 {
			return false
		}
		next := newOrderedSet[S]()
		for _, s := range current {
			for _, t := range a.Step(s, sym) {
				next.Add(t)
			}
		}
		current = EpsilonClosure(a, next.Items()...)
	}
	for _, s := range current {
		if a.IsAccept(s) {
			return true
		}
	}
	return false
}

// Run reports whether a accepts the runes of s.
func Run[S comparable, L any](a *Automaton[S, rune, L], s string) bool {
	return a.Accepts([]rune(s))
}
