package fsa

import "errors"

var (
	// ErrNotDeterministic is returned by DFA-only operations given an automaton
	// with several initial states, epsilon edges or several destinations for
	// one (state, symbol) pair.
	ErrNotDeterministic = errors.New("automaton is not deterministic")

	ErrNoInitialState = errors.New("automaton has no initial state")

	// ErrInvalidInterval is returned for an empty interval or one outside the
	// domain of a dense automaton.
	ErrInvalidInterval = errors.New("invalid interval")

	ErrInvalidRepeat = errors.New("invalid repeat bounds")

	ErrInvalidNode = errors.New("invalid regex node")

	// ErrAlphabetMismatch is returned when combining dense automata over
	// different domains.
	ErrAlphabetMismatch = errors.New("automata have incompatible alphabets")
)
