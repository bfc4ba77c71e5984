package fsa

import "fmt"

// Thompson adds to a a sub-automaton recognizing exactly the language of n
// and returns its start and end states. Only epsilon and single-label edges
// are used, and every state comes from fresh, so sub-automata built by
// different calls never share states as long as fresh never repeats itself.
//
// Thompson does not mark start or end; see Compile.
func Thompson[S comparable, T any, L any](a *Automaton[S, T, L], n *Node[L], fresh Factory[S]) (start, end S, err error) {
	c := &thompson[S, T, L]{a: a, fresh: fresh}
	return c.build(n)
}

// Compile builds n into a with Thompson and marks the start state initial
// and the end state accepting.
func Compile[S comparable, T any, L any](a *Automaton[S, T, L], n *Node[L], fresh Factory[S]) error {
	start, end, err := Thompson(a, n, fresh)
	if err != nil {
		return err
	}
	a.SetInitial(start, true)
	a.SetAccept(end, true)
	Logger.Debug("compiled regex", "states", a.NumStates(), "transitions", a.NumTransitions())
	return nil
}

type thompson[S comparable, T any, L any] struct {
	a     *Automaton[S, T, L]
	fresh Factory[S]
}

func (c *thompson[S, T, L]) build(n *Node[L]) (S, S, error) {
	var zero S
	if n == nil {
		return zero, zero, fmt.Errorf("%w: nil node", ErrInvalidNode)
	}

	switch n.kind {
	case KindLiteral, KindSet, KindEnd:
		s, e := c.fresh(), c.fresh()
		for _, l := range n.labels {
			if err := c.a.AddTransition(s, l, e); err != nil {
				return zero, zero, fmt.Errorf("%s %v: %w", n.kind, l, err)
			}
		}
		return s, e, nil

	case KindEpsilon:
		s, e := c.fresh(), c.fresh()
		c.a.AddEpsilon(s, e)
		return s, e, nil

	case KindConcat:
		if len(n.children) == 0 {
			s, e := c.fresh(), c.fresh()
			c.a.AddEpsilon(s, e)
			return s, e, nil
		}
		start, end, err := c.build(n.children[0])
		if err != nil {
			return zero, zero, err
		}
		for _, child := range n.children[1:] {
			cs, ce, err := c.build(child)
			if err != nil {
				return zero, zero, err
			}
			c.a.AddEpsilon(end, cs)
			end = ce
		}
		return start, end, nil

	case KindAlt:
		s, e := c.fresh(), c.fresh()
		for _, child := range n.children {
			cs, ce, err := c.build(child)
			if err != nil {
				return zero, zero, err
			}
			c.a.AddEpsilon(s, cs)
			c.a.AddEpsilon(ce, e)
		}
		return s, e, nil

	case KindRepeat:
		return c.repeat(n)
	}
	return zero, zero, fmt.Errorf("%w: unknown kind %v", ErrInvalidNode, n.kind)
}

// repeat chains min mandatory copies of the child, then either a loop on the
// last copy (no upper bound) or max-min optional copies, each of which may be
// skipped to the end.
func (c *thompson[S, T, L]) repeat(n *Node[L]) (S, S, error) {
	var zero S
	if n.min < 0 || (n.max >= 0 && n.max < n.min) {
		return zero, zero, fmt.Errorf("%w: {%d,%d}", ErrInvalidRepeat, n.min, n.max)
	}
	child := n.children[0]

	s, e := c.fresh(), c.fresh()
	cur := s
	var lastStart, lastEnd S
	for i := 0; i < n.min; i++ {
		cs, ce, err := c.build(child)
		if err != nil {
			return zero, zero, err
		}
		c.a.AddEpsilon(cur, cs)
		cur = ce
		lastStart, lastEnd = cs, ce
	}

	if n.max < 0 {
		if n.min == 0 {
			cs, ce, err := c.build(child)
			if err != nil {
				return zero, zero, err
			}
			c.a.AddEpsilon(cur, cs)
			c.a.AddEpsilon(cur, e)
			cur = ce
			lastStart, lastEnd = cs, ce
		}
		c.a.AddEpsilon(lastEnd, lastStart)
	} else {
		for i := n.min; i < n.max; i++ {
			cs, ce, err := c.build(child)
			if err != nil {
				return zero, zero, err
			}
			c.a.AddEpsilon(cur, e)
			c.a.AddEpsilon(cur, cs)
			cur = ce
		}
	}
	c.a.AddEpsilon(cur, e)
	return s, e, nil
}
