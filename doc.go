// Package fsa builds and transforms finite automata over arbitrary state and
// symbol types.
//
// An Automaton keeps its symbol transitions in one of two stores. A sparse
// automaton (NewSparse) maps each state and discrete symbol to a set of
// destinations. A dense automaton (NewDense) keys transitions by integer
// intervals, so a transition on 'a'-'z' or on a whole Unicode range costs one
// entry.
//
// The usual pipeline compiles a regular-expression tree (Node) with Thompson,
// then applies RemoveEpsilons, Determinize and Minimize. Complete, Product,
// Complement and friends implement the boolean algebra of regular languages,
// and WriteDot renders any automaton for Graphviz.
//
// Algorithms never mint states on their own: they call a Factory supplied by
// the caller, such as Counter or UUIDs.
package fsa
