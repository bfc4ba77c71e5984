package main

import (
	"fmt"

	"github.com/geange/fsa"
)

type automaton = fsa.Automaton[int, rune, label]

// compile runs n through the pipeline up to stage.
func compile(n *node, stage string) (*automaton, error) {
	fresh := fsa.Counter(0)
	a := fsa.NewDense[int](domain)
	if err := fsa.Compile(a, n, fresh); err != nil {
		return nil, fmt.Errorf("compiling: %w", err)
	}
	if stage == "nfa" {
		return a, nil
	}

	a, err := fsa.RemoveEpsilons(a)
	if err != nil {
		return nil, err
	}
	if stage == "eps" {
		return a, nil
	}

	if a, err = fsa.Determinize(a, fresh); err != nil {
		return nil, err
	}
	if stage == "dfa" {
		return a, nil
	}

	if stage != "min" {
		return nil, fmt.Errorf("unknown stage %q", stage)
	}
	return fsa.Minimize(a, fsa.Counter(0))
}

func validStage(stage string) error {
	switch stage {
	case "nfa", "eps", "dfa", "min":
		return nil
	}
	return fmt.Errorf("unknown stage %q (want nfa, eps, dfa or min)", stage)
}
