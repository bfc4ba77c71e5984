package fsa

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies the operator of a Node.
type Kind int

const (
	KindLiteral Kind = iota // a single label
	KindSet                 // any one of several labels
	KindConcat              // children in sequence
	KindAlt                 // any one child
	KindRepeat              // child repeated min..max times
	KindEpsilon             // the empty string
	KindEnd                 // the end-of-input marker
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindSet:
		return "set"
	case KindConcat:
		return "concat"
	case KindAlt:
		return "alt"
	case KindRepeat:
		return "repeat"
	case KindEpsilon:
		return "epsilon"
	case KindEnd:
		return "end"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is an immutable regular-expression tree over labels L. It is produced
// by an external front end and consumed by Thompson.
type Node[L any] struct {
	kind     Kind
	labels   []L
	children []*Node[L]
	min, max int
}

// Literal matches exactly one symbol of label.
func Literal[L any](label L) *Node[L] {
	return &Node[L]{kind: KindLiteral, labels: []L{label}}
}

// Set matches one symbol of any of labels. An empty set matches nothing.
func Set[L any](labels ...L) *Node[L] {
	return &Node[L]{kind: KindSet, labels: slices.Clone(labels)}
}

// Range matches one symbol in [lo, hi].
func Range[T Integer](lo, hi T) *Node[Interval[T]] {
	return Literal(Span(lo, hi))
}

// Symbol matches v alone.
func Symbol[T Integer](v T) *Node[Interval[T]] {
	return Literal(Single(v))
}

// Text matches s rune by rune on a dense rune alphabet.
func Text(s string) *Node[Interval[rune]] {
	var ns []*Node[Interval[rune]]
	for _, r := range s {
		ns = append(ns, Symbol(r))
	}
	return Concat(ns...)
}

// Sequence matches labels one after another.
func Sequence[L any](labels ...L) *Node[L] {
	ns := make([]*Node[L], len(labels))
	for i, l := range labels {
		ns[i] = Literal(l)
	}
	return Concat(ns...)
}

// Concat matches its children in order; with no children it matches the
// empty string.
func Concat[L any](children ...*Node[L]) *Node[L] {
	return &Node[L]{kind: KindConcat, children: slices.Clone(children)}
}

// Alt matches any one child; with no children it matches nothing.
func Alt[L any](children ...*Node[L]) *Node[L] {
	return &Node[L]{kind: KindAlt, children: slices.Clone(children)}
}

// Repeat matches child at least min and at most max times; a negative max
// means no upper bound.
func Repeat[L any](child *Node[L], min, max int) *Node[L] {
	return &Node[L]{kind: KindRepeat, children: []*Node[L]{child}, min: min, max: max}
}

func Star[L any](child *Node[L]) *Node[L] {
	return Repeat(child, 0, -1)
}

func Plus[L any](child *Node[L]) *Node[L] {
	return Repeat(child, 1, -1)
}

func Optional[L any](child *Node[L]) *Node[L] {
	return Repeat(child, 0, 1)
}

// Epsilon matches the empty string.
func Epsilon[L any]() *Node[L] {
	return &Node[L]{kind: KindEpsilon}
}

// End matches the end-of-input marker, which the producer of the tree encodes
// as marker.
func End[L any](marker L) *Node[L] {
	return &Node[L]{kind: KindEnd, labels: []L{marker}}
}

func (n *Node[L]) Kind() Kind {
	return n.kind
}

// Labels returns the labels of a literal, set or end node.
func (n *Node[L]) Labels() []L {
	return slices.Clone(n.labels)
}

func (n *Node[L]) Children() []*Node[L] {
	return slices.Clone(n.children)
}

// Bounds returns the repetition bounds of a repeat node.
func (n *Node[L]) Bounds() (min, max int) {
	return n.min, n.max
}

func (n *Node[L]) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node[L]) write(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	switch n.kind {
	case KindLiteral:
		fmt.Fprint(b, n.labels[0])
	case KindSet:
		b.WriteByte('[')
		for i, l := range n.labels {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(b, l)
		}
		b.WriteByte(']')
	case KindConcat:
		b.WriteByte('(')
		for _, c := range n.children {
			c.write(b)
		}
		b.WriteByte(')')
	case KindAlt:
		b.WriteByte('(')
		for i, c := range n.children {
			if i > 0 {
				b.WriteByte('|')
			}
			c.write(b)
		}
		b.WriteByte(')')
	case KindRepeat:
		n.children[0].write(b)
		switch {
		case n.min == 0 && n.max < 0:
			b.WriteByte('*')
		case n.min == 1 && n.max < 0:
			b.WriteByte('+')
		case n.min == 0 && n.max == 1:
			b.WriteByte('?')
		case n.max < 0:
			fmt.Fprintf(b, "{%d,}", n.min)
		default:
			fmt.Fprintf(b, "{%d,%d}", n.min, n.max)
		}
	case KindEpsilon:
		b.WriteString("ε")
	case KindEnd:
		b.WriteByte('$')
	}
}
