package fsa

import (
	"fmt"
	"slices"
)

type minimizeOptions[S comparable] struct {
	equivalent func(p, q S) bool
}

// MinimizeOption configures Minimize.
type MinimizeOption[S comparable] func(*minimizeOptions[S])

// WithEquivalence keeps states apart unless equivalent(p, q) holds, on top of
// the language equivalence Minimize computes. It must be an equivalence
// relation. Lexer generators use it so states accepting different tokens are
// never merged.
func WithEquivalence[S comparable](equivalent func(p, q S) bool) MinimizeOption[S] {
	return func(o *minimizeOptions[S]) {
		o.equivalent = equivalent
	}
}

// Minimize returns the minimal DFA accepting the language of the DFA a, with
// states from fresh.
//
// Missing transitions are treated as leading to an implicit non-accepting
// sink, so a need not be complete. States are split by partition refinement
// starting from {dead, accepting, non-accepting}; a state is dead when no
// accepting state is reachable from it. Dead states collapse into one
// non-accepting sink that is kept whenever a live state, or the initial
// state, leads to it, so the result is the complete canonical DFA. When the
// language is empty the result is that sink alone.
//
// a must be deterministic, see IsDeterministic.
func Minimize[S comparable, T any, L any](a *Automaton[S, T, L], fresh Factory[S], opts ...MinimizeOption[S]) (*Automaton[S, T, L], error) {
	if err := checkDeterministic(a); err != nil {
		return nil, fmt.Errorf("minimize: %w", err)
	}
	o := &minimizeOptions[S]{}
	for _, fn := range opts {
		fn(o)
	}

	r := newArena(a)
	reach := r.reachable()
	ids := toInts(reach)
	pos := make([]int, r.size())
	for i := range pos {
		pos[i] = -1
	}
	for k, id := range ids {
		pos[id] = k
	}

	n := len(ids)
	sink := n
	elems := a.store.refine(append(r.labels(ids), a.store.universe()...))

	// delta[k][x] is the successor of ids[k] on elems[x]; row n is the sink.
	delta := make([][]int, n+1)
	for k, id := range ids {
		row := make([]int, len(elems))
		for x, e := range elems {
			row[x] = sink
			for _, t := range r.arcs[id] {
				if a.store.covers(t.label, e) {
					row[x] = pos[t.to]
					break
				}
			}
		}
		delta[k] = row
	}
	delta[sink] = slices.Repeat([]int{sink}, len(elems))

	live := r.live()
	isLive := func(k int) bool {
		return k < n && live.Test(uint(ids[k]))
	}

	// Block 0 gathers every dead state with the sink.
	block := make([]int, n+1)
	reps := []int{sink}
	for k := 0; k < n; k++ {
		if !isLive(k) {
			continue
		}
		found := -1
		for b := 1; b < len(reps); b++ {
			rep := reps[b]
			if r.isAccept(ids[rep]) != r.isAccept(ids[k]) {
				continue
			}
			if o.equivalent != nil && !o.equivalent(r.states[ids[rep]], r.states[ids[k]]) {
				continue
			}
			found = b
			break
		}
		if found < 0 {
			found = len(reps)
			reps = append(reps, k)
		}
		block[k] = found
	}

	count := len(reps)
	for {
		table := NewHashMap[int](WithCapacity(count))
		next := make([]int, n+1)
		for k := 0; k <= n; k++ {
			sig := make(signature, 0, len(elems)+1)
			sig = append(sig, block[k])
			for _, t := range delta[k] {
				sig = append(sig, block[t])
			}
			id, ok := table.Get(sig)
			if !ok {
				id = table.Size()
				table.Set(sig, id)
			}
			next[k] = id
		}
		block = next
		if table.Size() == count {
			break
		}
		count = table.Size()
	}

	// The dead block only becomes a state when something reaches it.
	dead := block[sink]
	initial := pos[r.initial[0]]
	needSink := block[initial] == dead
	for k := 0; k < n && !needSink; k++ {
		if block[k] == dead {
			continue
		}
		for _, t := range delta[k] {
			if block[t] == dead {
				needSink = true
				break
			}
		}
	}

	states := make(map[int]S, count)
	rep := make(map[int]int, count)
	var order []int
	visit := func(k int) {
		b := block[k]
		if _, ok := rep[b]; ok || (b == dead && !needSink) {
			return
		}
		states[b] = fresh()
		rep[b] = k
		order = append(order, b)
	}
	visit(initial)
	for k := 0; k <= n; k++ {
		visit(k)
	}

	// Members of a block agree on every elementary label, so the row of any
	// one of them describes the block.
	out := a.derive()
	for _, b := range order {
		k := rep[b]
		s := states[b]
		if k < n && r.isAccept(ids[k]) {
			out.SetAccept(s, true)
		}
		for x, e := range elems {
			if err := out.AddTransition(s, e, states[block[delta[k][x]]]); err != nil {
				return nil, err
			}
		}
	}
	out.SetInitial(states[block[initial]], true)

	Logger.Debug("minimized", "dfa_states", n, "min_states", len(order), "sink", needSink)
	return out, nil
}

// signature is the block of a state followed by the blocks of its successors.
type signature []int

func (s signature) Hash() uint64 {
	return hashSeq(s)
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	return ok && slices.Equal(s, o)
}
