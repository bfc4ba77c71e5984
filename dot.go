package fsa

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Graph is the read-only view DOT export needs. *Automaton implements it.
type Graph[S comparable, L any] interface {
	States() []S
	IsInitial(state S) bool
	IsAccept(state S) bool
	Transitions(state S) []Transition[S, L]
	Epsilons(state S) []S
}

var _ Graph[int, rune] = &Automaton[int, rune, rune]{}

// DotWriter renders a Graph in the Graphviz DOT language. Zero fields fall
// back to defaults: the graph is named "fsa" and states and labels are
// printed with fmt.
type DotWriter[S comparable, L any] struct {
	Name      string
	StateName func(S) string
	LabelName func(L) string
}

// WriteDot renders g with the default DotWriter.
func WriteDot[S comparable, L any](w io.Writer, g Graph[S, L]) error {
	return DotWriter[S, L]{}.Write(w, g)
}

// Write renders g to w. Initial states get an invisible point node with an
// edge into them, accepting states are drawn as double circles and epsilon
// edges are dashed and labeled ε.
func (d DotWriter[S, L]) Write(w io.Writer, g Graph[S, L]) error {
	name := d.Name
	if name == "" {
		name = "fsa"
	}
	stateName := d.StateName
	if stateName == nil {
		stateName = func(s S) string { return fmt.Sprint(s) }
	}
	labelName := d.LabelName
	if labelName == nil {
		labelName = func(l L) string { return fmt.Sprint(l) }
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", strconv.Quote(name))
	buf.WriteString("  rankdir=LR;\n")

	states := g.States()
	for _, s := range states {
		shape := "circle"
		if g.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "  %s [shape=%s];\n", strconv.Quote(stateName(s)), shape)
	}

	start := 0
	for _, s := range states {
		if !g.IsInitial(s) {
			continue
		}
		marker := strconv.Quote("__start" + strconv.Itoa(start))
		start++
		fmt.Fprintf(&buf, "  %s [shape=point];\n", marker)
		fmt.Fprintf(&buf, "  %s -> %s;\n", marker, strconv.Quote(stateName(s)))
	}

	for _, s := range states {
		from := strconv.Quote(stateName(s))
		for _, tr := range g.Transitions(s) {
			label := strconv.Quote(labelName(tr.Label))
			for _, to := range tr.Targets {
				fmt.Fprintf(&buf, "  %s -> %s [label=%s];\n", from, strconv.Quote(stateName(to)), label)
			}
		}
		for _, to := range g.Epsilons(s) {
			fmt.Fprintf(&buf, "  %s -> %s [label=\"ε\", style=dashed];\n", from, strconv.Quote(stateName(to)))
		}
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}
