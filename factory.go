package fsa

import (
	"sync"

	"github.com/google/uuid"
)

// Factory mints fresh states. Construction algorithms call it whenever they
// need a new state and rely on it never returning a value already used in the
// same construction run; the factory, not the algorithm, owns that guarantee.
type Factory[S any] func() S

// Counter returns a factory producing start, start+1, ... It is not safe for
// concurrent use; wrap it with Synchronized when sharing it.
func Counter(start int) Factory[int] {
	next := start
	return func() int {
		s := next
		next++
		return s
	}
}

// UUIDs returns a factory of random UUID states, unique across runs and safe
// for concurrent use.
func UUIDs() Factory[uuid.UUID] {
	return uuid.New
}

// Synchronized serializes calls to f.
func Synchronized[S any](f Factory[S]) Factory[S] {
	var mu sync.Mutex
	return func() S {
		mu.Lock()
		defer mu.Unlock()
		return f()
	}
}
