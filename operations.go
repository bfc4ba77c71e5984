package fsa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Complete returns a copy of a in which every state has a transition for
// every symbol of the alphabet. Missing transitions lead to a new
// non-accepting sink minted by fresh, which loops onto itself. If a is
// already complete no sink is added.
func Complete[S comparable, T any, L any](a *Automaton[S, T, L], fresh Factory[S]) (*Automaton[S, T, L], error) {
	out := a.Clone()
	var sink S
	hasSink := false
	for _, s := range a.States() {
		var labels []L
		for _, tr := range a.Transitions(s) {
			labels = append(labels, tr.Label)
		}
		for _, m := range missing(a.store, labels) {
			if !hasSink {
				sink, hasSink = fresh(), true
			}
			if err := out.AddTransition(s, m, sink); err != nil {
				return nil, err
			}
		}
	}
	if hasSink {
		for _, u := range a.store.universe() {
			if err := out.AddTransition(sink, u, sink); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Product runs a and b side by side over pairs of states. A pair accepts when
// accept(a accepts, b accepts) holds. Both operands are determinized first if
// needed and treated as complete, a missing transition standing for a dead
// sink.
func Product[S comparable, T any, L any](a, b *Automaton[S, T, L], fresh Factory[S], accept func(inA, inB bool) bool) (*Automaton[S, T, L], error) {
	if !a.store.compatible(b.store) {
		return nil, ErrAlphabetMismatch
	}
	da, err := asDFA(a, fresh)
	if err != nil {
		return nil, fmt.Errorf("product: left operand: %w", err)
	}
	db, err := asDFA(b, fresh)
	if err != nil {
		return nil, fmt.Errorf("product: right operand: %w", err)
	}

	ra, rb := newArena(da), newArena(db)
	labels := append(ra.labels(allStates(ra)), rb.labels(allStates(rb))...)
	labels = append(labels, da.store.universe()...)
	labels = append(labels, db.store.universe()...)
	elems := da.store.refine(labels)

	out := da.derive()
	out.store.declare(db.store.universe())

	type pair struct{ p, q int }
	sinkA, sinkB := ra.size(), rb.size()
	step := func(r *arena[S, L], sink, i int, e L) int {
		if i == sink {
			return sink
		}
		for _, t := range r.arcs[i] {
			if da.store.covers(t.label, e) {
				return t.to
			}
		}
		return sink
	}
	accepts := func(x pair) bool {
		return accept(x.p != sinkA && ra.isAccept(x.p), x.q != sinkB && rb.isAccept(x.q))
	}
	keepDead := accept(false, false)

	seen := make(map[pair]S)
	var queue []pair
	visit := func(x pair) S {
		if s, ok := seen[x]; ok {
			return s
		}
		s := fresh()
		seen[x] = s
		queue = append(queue, x)
		if accepts(x) {
			out.SetAccept(s, true)
		}
		return s
	}

	start := visit(pair{ra.initial[0], rb.initial[0]})
	out.SetInitial(start, true)
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		from := seen[x]
		for _, e := range elems {
			y := pair{step(ra, sinkA, x.p, e), step(rb, sinkB, x.q, e)}
			if y.p == sinkA && y.q == sinkB && !keepDead {
				continue
			}
			if err := out.AddTransition(from, e, visit(y)); err != nil {
				return nil, err
			}
		}
	}

	Logger.Debug("product", "left_states", ra.size(), "right_states", rb.size(), "states", len(seen))
	return out, nil
}

// Union accepts what a or b accepts.
func Union[S comparable, T any, L any](a, b *Automaton[S, T, L], fresh Factory[S]) (*Automaton[S, T, L], error) {
	return Product(a, b, fresh, func(x, y bool) bool { return x || y })
}

// Intersection accepts what both a and b accept.
func Intersection[S comparable, T any, L any](a, b *Automaton[S, T, L], fresh Factory[S]) (*Automaton[S, T, L], error) {
	return Product(a, b, fresh, func(x, y bool) bool { return x && y })
}

// Difference accepts what a accepts and b rejects.
func Difference[S comparable, T any, L any](a, b *Automaton[S, T, L], fresh Factory[S]) (*Automaton[S, T, L], error) {
	return Product(a, b, fresh, func(x, y bool) bool { return x && !y })
}

// SymmetricDifference accepts what exactly one of a and b accepts.
func SymmetricDifference[S comparable, T any, L any](a, b *Automaton[S, T, L], fresh Factory[S]) (*Automaton[S, T, L], error) {
	return Product(a, b, fresh, func(x, y bool) bool { return x != y })
}

// Complement returns a complete DFA accepting every string over the alphabet
// of a that a rejects. a must be deterministic; it is completed first.
func Complement[S comparable, T any, L any](a *Automaton[S, T, L], fresh Factory[S]) (*Automaton[S, T, L], error) {
	if err := checkDeterministic(a); err != nil {
		return nil, fmt.Errorf("complement: %w", err)
	}
	out, err := Complete(a, fresh)
	if err != nil {
		return nil, err
	}
	for _, s := range out.States() {
		out.SetAccept(s, !out.IsAccept(s))
	}
	return out, nil
}

// Reverse returns an automaton accepting the reversed strings of a: every
// edge is flipped and the initial and accepting sets are swapped.
func Reverse[S comparable, T any, L any](a *Automaton[S, T, L]) (*Automaton[S, T, L], error) {
	out := a.derive()
	for _, s := range a.States() {
		for _, e := range a.Edges(s) {
			if err := out.AddTransition(e.To, e.Label, e.From); err != nil {
				return nil, err
			}
		}
		for _, t := range a.Epsilons(s) {
			out.AddEpsilon(t, s)
		}
	}
	for _, s := range a.Accepting() {
		out.SetInitial(s, true)
	}
	for _, s := range a.Initial() {
		out.SetAccept(s, true)
	}
	return out, nil
}

// RemoveDeadStates returns a copy of a restricted to states that are both
// reachable from an initial state and able to reach an accepting one.
// Initial states are always kept so the result still has somewhere to start.
func RemoveDeadStates[S comparable, T any, L any](a *Automaton[S, T, L]) (*Automaton[S, T, L], error) {
	r := newArena(a)
	keep := r.reachable().Intersection(r.live())

	out := a.derive()
	for _, i := range toInts(keep) {
		s := r.states[i]
		for _, t := range r.arcs[i] {
			if keep.Test(uint(t.to)) {
				if err := out.AddTransition(s, t.label, r.states[t.to]); err != nil {
					return nil, err
				}
			}
		}
		for _, t := range r.eps[i] {
			if keep.Test(uint(t)) {
				out.AddEpsilon(s, r.states[t])
			}
		}
		if r.isAccept(i) {
			out.SetAccept(s, true)
		}
	}
	for _, i := range r.initial {
		out.SetInitial(r.states[i], true)
	}
	return out, nil
}

// IsEmpty reports whether a accepts no string at all.
func IsEmpty[S comparable, T any, L any](a *Automaton[S, T, L]) bool {
	r := newArena(a)
	reach := r.reachable()
	return !reach.Intersection(r.accept).Any()
}

// Equivalent reports whether a and b accept the same language.
func Equivalent[S comparable, T any, L any](a, b *Automaton[S, T, L], fresh Factory[S]) (bool, error) {
	x, err := SymmetricDifference(a, b, fresh)
	if err != nil {
		return false, err
	}
	return IsEmpty(x), nil
}

// asDFA returns a itself when it is already deterministic.
func asDFA[S comparable, T any, L any](a *Automaton[S, T, L], fresh Factory[S]) (*Automaton[S, T, L], error) {
	if a.IsDeterministic() {
		return a, nil
	}
	return Determinize(a, fresh)
}

func allStates[S comparable, L any](r *arena[S, L]) []int {
	set := bitset.New(uint(r.size()))
	set.FlipRange(0, uint(r.size()))
	return toInts(set)
}
