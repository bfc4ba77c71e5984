package fsa

var _ Store[int, rune, rune] = &sparseStore[int, rune]{}

// sparseStore maps source state -> discrete symbol -> destination set. Its
// alphabet is every symbol declared or ever used.
type sparseStore[S comparable, T comparable] struct {
	rows    *orderedMap[S, *orderedMap[T, *orderedSet[S]]]
	symbols *orderedSet[T]
}

func newSparseStore[S comparable, T comparable](alphabet ...T) *sparseStore[S, T] {
	return &sparseStore[S, T]{
		rows:    newOrderedMap[S, *orderedMap[T, *orderedSet[S]]](),
		symbols: newOrderedSet(alphabet...),
	}
}

func (st *sparseStore[S, T]) Add(src S, label T, dst S) error {
	row, ok := st.rows.Get(src)
	if !ok {
		row = newOrderedMap[T, *orderedSet[S]]()
		st.rows.Set(src, row)
	}
	dests, ok := row.Get(label)
	if !ok {
		dests = newOrderedSet[S]()
		row.Set(label, dests)
	}
	dests.Add(dst)
	st.symbols.Add(label)
	return nil
}

func (st *sparseStore[S, T]) Lookup(src S, sym T) []S {
	row, ok := st.rows.Get(src)
	if !ok {
		return nil
	}
	dests, ok := row.Get(sym)
	if !ok {
		return nil
	}
	return dests.Items()
}

func (st *sparseStore[S, T]) Transitions(src S) []Transition[S, T] {
	row, ok := st.rows.Get(src)
	if !ok {
		return nil
	}
	out := make([]Transition[S, T], 0, row.Len())
	for _, sym := range row.Keys() {
		dests, _ := row.Get(sym)
		out = append(out, Transition[S, T]{Label: sym, Targets: dests.Items()})
	}
	return out
}

func (st *sparseStore[S, T]) Sources() []S {
	return st.rows.Keys()
}

func (st *sparseStore[S, T]) Remove(state S) {
	st.rows.Delete(state)
	for _, src := range st.rows.Keys() {
		row, _ := st.rows.Get(src)
		for _, sym := range row.Keys() {
			dests, _ := row.Get(sym)
			if dests.Remove(state) && dests.Len() == 0 {
				row.Delete(sym)
			}
		}
		if row.Len() == 0 {
			st.rows.Delete(src)
		}
	}
}

func (st *sparseStore[S, T]) Len() int {
	n := 0
	for _, src := range st.rows.Keys() {
		row, _ := st.rows.Get(src)
		for _, sym := range row.Keys() {
			dests, _ := row.Get(sym)
			n += dests.Len()
		}
	}
	return n
}

func (st *sparseStore[S, T]) universe() []T {
	return st.symbols.Items()
}

func (st *sparseStore[S, T]) refine(labels []T) []T {
	return newOrderedSet(labels...).Items()
}

func (st *sparseStore[S, T]) covers(l, e T) bool {
	return l == e
}

func (st *sparseStore[S, T]) compatible(o Store[S, T, T]) bool {
	_, ok := o.(*sparseStore[S, T])
	return ok
}

func (st *sparseStore[S, T]) declare(labels []T) {
	for _, l := range labels {
		st.symbols.Add(l)
	}
}

func (st *sparseStore[S, T]) empty() Store[S, T, T] {
	return newSparseStore[S](st.symbols.Items()...)
}

func (st *sparseStore[S, T]) clone() Store[S, T, T] {
	c := newSparseStore[S](st.symbols.Items()...)
	for _, src := range st.rows.Keys() {
		row, _ := st.rows.Get(src)
		for _, sym := range row.Keys() {
			dests, _ := row.Get(sym)
			for _, dst := range dests.Items() {
				_ = c.Add(src, sym, dst)
			}
		}
	}
	return c
}
