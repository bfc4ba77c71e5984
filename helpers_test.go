package fsa

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// words lists every string over alphabet of length at most n.
func words(alphabet []rune, n int) [][]rune {
	out := [][]rune{{}}
	layer := [][]rune{{}}
	for i := 0; i < n; i++ {
		var next [][]rune
		for _, w := range layer {
			for _, r := range alphabet {
				next = append(next, append(append([]rune(nil), w...), r))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// matches walks n directly and reports whether it matches all of s.
func matches(n *Node[Interval[rune]], s []rune) bool {
	_, ok := ends(n, s, 0)[len(s)]
	return ok
}

// ends returns the positions where a match of n starting at i can stop.
func ends(n *Node[Interval[rune]], s []rune, i int) map[int]struct{} {
	out := map[int]struct{}{}
	switch n.Kind() {
	case KindLiteral, KindSet, KindEnd:
		if i < len(s) {
			for _, l := range n.Labels() {
				if l.Contains(s[i]) {
					out[i+1] = struct{}{}
					break
				}
			}
		}
	case KindEpsilon:
		out[i] = struct{}{}
	case KindConcat:
		out[i] = struct{}{}
		for _, c := range n.Children() {
			next := map[int]struct{}{}
			for j := range out {
				for k := range ends(c, s, j) {
					next[k] = struct{}{}
				}
			}
			out = next
		}
	case KindAlt:
		for _, c := range n.Children() {
			for k := range ends(c, s, i) {
				out[k] = struct{}{}
			}
		}
	case KindRepeat:
		lo, hi := n.Bounds()
		if hi < 0 {
			hi = lo + len(s) + 1
		}
		child := n.Children()[0]
		cur := map[int]struct{}{i: {}}
		for k := 0; ; k++ {
			if k >= lo {
				for j := range cur {
					out[j] = struct{}{}
				}
			}
			if k == hi {
				break
			}
			next := map[int]struct{}{}
			for j := range cur {
				for e := range ends(child, s, j) {
					next[e] = struct{}{}
				}
			}
			cur = next
		}
	}
	return out
}

// compileRunes builds n into a fresh dense rune automaton.
func compileRunes(t *testing.T, n *Node[Interval[rune]], fresh Factory[int]) *Automaton[int, rune, Interval[rune]] {
	t.Helper()
	a := NewDense[int](RuneDomain())
	require.NoError(t, Compile(a, n, fresh))
	return a
}

// names mints prefix1, prefix2, ... for automata keyed by strings.
func names(prefix string) Factory[string] {
	next := Counter(1)
	return func() string {
		return prefix + strconv.Itoa(next())
	}
}

// minimal determinizes and then minimizes a.
func minimal[S comparable, T any, L any](t *testing.T, a *Automaton[S, T, L], fresh Factory[S]) *Automaton[S, T, L] {
	t.Helper()
	d, err := Determinize(a, fresh)
	require.NoError(t, err)
	m, err := Minimize(d, fresh)
	require.NoError(t, err)
	return m
}

// pipeline runs n through every stage and returns the minimal DFA.
func pipeline(t *testing.T, n *Node[Interval[rune]]) *Automaton[int, rune, Interval[rune]] {
	t.Helper()
	fresh := Counter(0)
	a := compileRunes(t, n, fresh)
	a, err := RemoveEpsilons(a)
	require.NoError(t, err)
	a, err = Determinize(a, fresh)
	require.NoError(t, err)
	a, err = Minimize(a, Counter(0))
	require.NoError(t, err)
	return a
}

// assertLanguage checks that a agrees with want on every word over alphabet
// up to length n.
func assertLanguage[S comparable, L any](t *testing.T, a *Automaton[S, rune, L], want func([]rune) bool, alphabet []rune, n int) {
	t.Helper()
	for _, w := range words(alphabet, n) {
		assert.Equalf(t, want(w), a.Accepts(w), "input %q", string(w))
	}
}

// sameLanguage checks a and b on every word over alphabet up to length n.
func sameLanguage[S comparable, L any](t *testing.T, a, b *Automaton[S, rune, L], alphabet []rune, n int) {
	t.Helper()
	assertLanguage(t, a, b.Accepts, alphabet, n)
}

// regexes is a shared corpus of trees over {a, b, c}.
var regexes = []struct {
	name string
	node *Node[Interval[rune]]
}{
	{"literal", Text("ab")},
	{"alt", Alt(Text("a"), Text("bc"))},
	{"star", Star(Text("ab"))},
	{"plus", Plus(Range('a', 'b'))},
	{"optional", Concat(Optional(Text("a")), Text("b"))},
	{"abb", Concat(Star(Alt(Text("a"), Text("b"))), Text("abb"))},
	{"bounded", Repeat(Text("a"), 1, 3)},
	{"at least two", Repeat(Alt(Text("a"), Text("b")), 2, -1)},
	{"exactly zero", Repeat(Text("a"), 0, 0)},
	{"set", Concat(Set(Single('a'), Single('c')), Star(Set(Span('a', 'c'))))},
	{"nested star", Star(Star(Text("a")))},
	{"star of optional", Star(Optional(Text("ab")))},
	{"empty set", Set[Interval[rune]]()},
	{"empty alt", Concat(Text("a"), Alt[Interval[rune]]())},
	{"epsilon", Epsilon[Interval[rune]]()},
	{"overlap", Alt(Concat(Range('a', 'b'), Text("c")), Concat(Range('b', 'c'), Text("a")))},
}

var abc = []rune("abc")
