package fsa

// Transition groups every destination reachable from one state on one label.
type Transition[S comparable, L any] struct {
	Label   L
	Targets []S
}

// Edge is a single (from, label, to) arc.
type Edge[S comparable, L any] struct {
	From  S
	Label L
	To    S
}

// Store holds the symbol transitions of an automaton. S is the state type, T
// the input symbol type and L the label a transition is keyed by: T itself
// for the sparse store, Interval[T] for the dense one.
//
// Besides the adjacency queries a store owns the alphabet algebra the
// algorithms run on, which is why it cannot be implemented outside this
// package.
type Store[S comparable, T any, L any] interface {
	// Add records src --label--> dst.
	Add(src S, label L, dst S) error

	// Lookup returns the destinations of src on sym.
	Lookup(src S, sym T) []S

	// Transitions returns the outgoing transitions of src in canonical order.
	Transitions(src S) []Transition[S, L]

	// Sources returns the states with at least one outgoing transition.
	Sources() []S

	// Remove drops state and every transition incident to it.
	Remove(state S)

	// Len returns the number of (src, label, dst) triples.
	Len() int

	// universe returns labels covering the whole alphabet.
	universe() []L

	// refine splits labels into pairwise disjoint elementary labels. Every
	// input label is the union of the elementary labels it covers and every
	// elementary label is covered by at least one input label.
	refine(labels []L) []L

	// covers reports whether elementary label e lies inside l.
	covers(l, e L) bool

	compatible(o Store[S, T, L]) bool

	// declare widens the alphabet with labels.
	declare(labels []L)

	// empty returns a store over the same alphabet with no transitions.
	empty() Store[S, T, L]

	clone() Store[S, T, L]
}

// missing returns the elementary labels of the store's universe that no label
// in labels covers.
func missing[S comparable, T any, L any](st Store[S, T, L], labels []L) []L {
	elems := st.refine(append(st.universe(), labels...))
	var out []L
	for _, e := range elems {
		covered := false
		for _, l := range labels {
			if st.covers(l, e) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, e)
		}
	}
	return out
}
