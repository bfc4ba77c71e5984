package fsa

import (
	"github.com/bits-and-blooms/bitset"
)

// arc is a symbol transition between arena handles.
type arc[L any] struct {
	label L
	to    int
}

// arena is a read-only snapshot of an automaton where every state is replaced
// by its index in states. The algorithms work on handles so state sets can
// live in bitsets and sorted int slices whatever S is.
type arena[S comparable, L any] struct {
	states  []S
	index   map[S]int
	arcs    [][]arc[L]
	eps     [][]int
	initial []int
	accept  *bitset.BitSet
}

func newArena[S comparable, T any, L any](a *Automaton[S, T, L]) *arena[S, L] {
	states := a.States()
	r := &arena[S, L]{
		states: states,
		index:  make(map[S]int, len(states)),
		arcs:   make([][]arc[L], len(states)),
		eps:    make([][]int, len(states)),
		accept: bitset.New(uint(len(states))),
	}
	for i, s := range states {
		r.index[s] = i
	}
	for i, s := range states {
		for _, tr := range a.Transitions(s) {
			for _, to := range tr.Targets {
				r.arcs[i] = append(r.arcs[i], arc[L]{label: tr.Label, to: r.index[to]})
			}
		}
		for _, to := range a.Epsilons(s) {
			r.eps[i] = append(r.eps[i], r.index[to])
		}
		if a.IsAccept(s) {
			r.accept.Set(uint(i))
		}
	}
	for _, s := range a.Initial() {
		r.initial = append(r.initial, r.index[s])
	}
	return r
}

func (r *arena[S, L]) size() int {
	return len(r.states)
}

func (r *arena[S, L]) isAccept(i int) bool {
	return r.accept.Test(uint(i))
}

// anyAccept reports whether one of ids is accepting.
func (r *arena[S, L]) anyAccept(ids []int) bool {
	for _, i := range ids {
		if r.isAccept(i) {
			return true
		}
	}
	return false
}

// closure returns the sorted epsilon closure of seeds.
func (r *arena[S, L]) closure(seeds []int) []int {
	seen := bitset.New(uint(r.size()))
	stack := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !seen.Test(uint(s)) {
			seen.Set(uint(s))
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range r.eps[s] {
			if !seen.Test(uint(t)) {
				seen.Set(uint(t))
				stack = append(stack, t)
			}
		}
	}
	return toInts(seen)
}

// labels returns every arc label leaving ids.
func (r *arena[S, L]) labels(ids []int) []L {
	var out []L
	for _, i := range ids {
		for _, t := range r.arcs[i] {
			out = append(out, t.label)
		}
	}
	return out
}

// reachable returns the states reachable from the initial states.
func (r *arena[S, L]) reachable() *bitset.BitSet {
	seen := bitset.New(uint(r.size()))
	stack := make([]int, 0, len(r.initial))
	visit := func(i int) {
		if !seen.Test(uint(i)) {
			seen.Set(uint(i))
			stack = append(stack, i)
		}
	}
	for _, i := range r.initial {
		visit(i)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range r.arcs[s] {
			visit(t.to)
		}
		for _, t := range r.eps[s] {
			visit(t)
		}
	}
	return seen
}

// live returns the states from which an accepting state is reachable.
func (r *arena[S, L]) live() *bitset.BitSet {
	preds := make([][]int, r.size())
	for s := range r.arcs {
		for _, t := range r.arcs[s] {
			preds[t.to] = append(preds[t.to], s)
		}
		for _, t := range r.eps[s] {
			preds[t] = append(preds[t], s)
		}
	}
	live := r.accept.Clone()
	stack := toInts(live)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range preds[s] {
			if !live.Test(uint(p)) {
				live.Set(uint(p))
				stack = append(stack, p)
			}
		}
	}
	return live
}

// toInts lists the set bits in ascending order.
func toInts(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}
