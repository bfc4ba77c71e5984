package fsa

import (
	"fmt"
	"slices"
	"sort"
)

var _ Store[int, rune, Interval[rune]] = &denseStore[int, rune]{}

// span is one entry of a dense row: every symbol of iv leads to the states in to.
type span[S comparable, T Integer] struct {
	iv Interval[T]
	to *orderedSet[S]
}

// denseStore maps source state -> intervals sorted by Lo. Intervals of a row
// never overlap, and two adjacent intervals never lead to the same set, so
// every symbol of a row resolves to exactly one span and the row is canonical.
type denseStore[S comparable, T Integer] struct {
	domain Domain[T]
	rows   *orderedMap[S, []span[S, T]]
}

func newDenseStore[S comparable, T Integer](domain Domain[T]) *denseStore[S, T] {
	return &denseStore[S, T]{
		domain: domain,
		rows:   newOrderedMap[S, []span[S, T]](),
	}
}

// Add inserts src --iv--> dst, splitting the spans iv partially overlaps.
func (st *denseStore[S, T]) Add(src S, iv Interval[T], dst S) error {
	if !iv.Valid() || iv.Lo < st.domain.Min || iv.Hi > st.domain.Max {
		return fmt.Errorf("%w: %v not within %v", ErrInvalidInterval, iv, st.domain.Interval())
	}
	row, _ := st.rows.Get(src)
	st.rows.Set(src, insertSpan(row, iv, dst))
	return nil
}

func insertSpan[S comparable, T Integer](row []span[S, T], iv Interval[T], dst S) []span[S, T] {
	out := make([]span[S, T], 0, len(row)+2)
	// [cur, iv.Hi] is the part of iv not yet emitted.
	cur := iv.Lo
	done := false
	for _, sp := range row {
		if done || sp.iv.Hi < iv.Lo {
			out = append(out, sp)
			continue
		}
		if sp.iv.Lo > iv.Hi {
			out = append(out, span[S, T]{Span(cur, iv.Hi), newOrderedSet(dst)})
			out = append(out, sp)
			done = true
			continue
		}
		if sp.iv.Lo < iv.Lo {
			out = append(out, span[S, T]{Span(sp.iv.Lo, iv.Lo-1), sp.to})
		}
		if cur < sp.iv.Lo {
			out = append(out, span[S, T]{Span(cur, sp.iv.Lo-1), newOrderedSet(dst)})
		}
		both := sp.to.Clone()
		both.Add(dst)
		out = append(out, span[S, T]{Span(max(sp.iv.Lo, iv.Lo), min(sp.iv.Hi, iv.Hi)), both})
		if sp.iv.Hi >= iv.Hi {
			if sp.iv.Hi > iv.Hi {
				out = append(out, span[S, T]{Span(iv.Hi+1, sp.iv.Hi), sp.to})
			}
			done = true
		} else {
			cur = sp.iv.Hi + 1
		}
	}
	if !done {
		out = append(out, span[S, T]{Span(cur, iv.Hi), newOrderedSet(dst)})
	}
	return mergeSpans(out)
}

// mergeSpans joins adjacent spans leading to the same set.
func mergeSpans[S comparable, T Integer](row []span[S, T]) []span[S, T] {
	merged := row[:0]
	for _, sp := range row {
		if n := len(merged); n > 0 && merged[n-1].iv.Adjacent(sp.iv) && merged[n-1].to.Equal(sp.to) {
			merged[n-1].iv.Hi = sp.iv.Hi
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func (st *denseStore[S, T]) Lookup(src S, sym T) []S {
	row, _ := st.rows.Get(src)
	i := sort.Search(len(row), func(i int) bool {
		return row[i].iv.Hi >= sym
	})
	if i < len(row) && row[i].iv.Lo <= sym {
		return row[i].to.Items()
	}
	return nil
}

func (st *denseStore[S, T]) Transitions(src S) []Transition[S, Interval[T]] {
	row, _ := st.rows.Get(src)
	if len(row) == 0 {
		return nil
	}
	out := make([]Transition[S, Interval[T]], 0, len(row))
	for _, sp := range row {
		out = append(out, Transition[S, Interval[T]]{Label: sp.iv, Targets: sp.to.Items()})
	}
	return out
}

func (st *denseStore[S, T]) Sources() []S {
	return st.rows.Keys()
}

func (st *denseStore[S, T]) Remove(state S) {
	st.rows.Delete(state)
	for _, src := range st.rows.Keys() {
		row, _ := st.rows.Get(src)
		kept := make([]span[S, T], 0, len(row))
		for _, sp := range row {
			if !sp.to.Has(state) {
				kept = append(kept, sp)
				continue
			}
			to := sp.to.Clone()
			to.Remove(state)
			if to.Len() > 0 {
				kept = append(kept, span[S, T]{sp.iv, to})
			}
		}
		if len(kept) == 0 {
			st.rows.Delete(src)
			continue
		}
		st.rows.Set(src, mergeSpans(kept))
	}
}

func (st *denseStore[S, T]) Len() int {
	n := 0
	for _, src := range st.rows.Keys() {
		row, _ := st.rows.Get(src)
		for _, sp := range row {
			n += sp.to.Len()
		}
	}
	return n
}

func (st *denseStore[S, T]) universe() []Interval[T] {
	return []Interval[T]{st.domain.Interval()}
}

// refine cuts the domain at every label start and right after every label
// end, and keeps the pieces some label covers.
func (st *denseStore[S, T]) refine(labels []Interval[T]) []Interval[T] {
	if len(labels) == 0 {
		return nil
	}
	cuts := make([]T, 0, 2*len(labels))
	for _, l := range labels {
		cuts = append(cuts, l.Lo)
		if l.Hi < st.domain.Max {
			cuts = append(cuts, l.Hi+1)
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	// depth[i] counts the labels covering the piece starting at cuts[i].
	depth := make([]int, len(cuts)+1)
	for _, l := range labels {
		i, _ := slices.BinarySearch(cuts, l.Lo)
		depth[i]++
		if l.Hi < st.domain.Max {
			j, _ := slices.BinarySearch(cuts, l.Hi+1)
			depth[j]--
		}
	}

	var out []Interval[T]
	covered := 0
	for i, lo := range cuts {
		covered += depth[i]
		if covered == 0 {
			continue
		}
		hi := st.domain.Max
		if i+1 < len(cuts) {
			hi = cuts[i+1] - 1
		}
		out = append(out, Span(lo, hi))
	}
	return out
}

func (st *denseStore[S, T]) covers(l, e Interval[T]) bool {
	return l.Covers(e)
}

func (st *denseStore[S, T]) compatible(o Store[S, T, Interval[T]]) bool {
	d, ok := o.(*denseStore[S, T])
	return ok && d.domain == st.domain
}

func (st *denseStore[S, T]) declare([]Interval[T]) {}

func (st *denseStore[S, T]) empty() Store[S, T, Interval[T]] {
	return newDenseStore[S](st.domain)
}

func (st *denseStore[S, T]) clone() Store[S, T, Interval[T]] {
	c := newDenseStore[S](st.domain)
	for _, src := range st.rows.Keys() {
		row, _ := st.rows.Get(src)
		cp := make([]span[S, T], len(row))
		for i, sp := range row {
			cp[i] = span[S, T]{sp.iv, sp.to.Clone()}
		}
		c.rows.Set(src, cp)
	}
	return c
}
