package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseStore(t *testing.T) {
	st := newSparseStore[string]("z")
	require.NoError(t, st.Add("p", "a", "q"))
	require.NoError(t, st.Add("p", "a", "r"))
	require.NoError(t, st.Add("p", "a", "q"))
	require.NoError(t, st.Add("p", "b", "p"))
	require.NoError(t, st.Add("q", "a", "r"))

	assert.Equal(t, []string{"q", "r"}, st.Lookup("p", "a"))
	assert.Nil(t, st.Lookup("p", "c"))
	assert.Nil(t, st.Lookup("r", "a"))
	assert.Equal(t, 4, st.Len())
	assert.Equal(t, []string{"p", "q"}, st.Sources())
	assert.Equal(t, []Transition[string, string]{
		{Label: "a", Targets: []string{"q", "r"}},
		{Label: "b", Targets: []string{"p"}},
	}, st.Transitions("p"))
	assert.Equal(t, []string{"z", "a", "b"}, st.universe())

	st.Remove("r")
	assert.Equal(t, []string{"q"}, st.Lookup("p", "a"))
	assert.Equal(t, []string{"p"}, st.Sources())
	assert.Equal(t, 2, st.Len())
	assert.Contains(t, st.universe(), "a", "removing states keeps the alphabet")
}

func TestSparseStoreAlgebra(t *testing.T) {
	st := newSparseStore[int, rune]()
	assert.Equal(t, []rune{'b', 'a'}, st.refine([]rune{'b', 'a', 'b'}))
	assert.True(t, st.covers('a', 'a'))
	assert.False(t, st.covers('a', 'b'))

	st.declare([]rune{'x'})
	assert.Equal(t, []rune{'x'}, st.universe())

	require.NoError(t, st.Add(0, 'y', 1))
	assert.Equal(t, []rune{'x'}, missing[int, rune, rune](st, []rune{'y'}))

	e := st.empty()
	assert.Zero(t, e.Len())
	assert.Equal(t, []rune{'x', 'y'}, e.universe())
	assert.True(t, st.compatible(e))
}

func TestSparseStoreCloneIsDeep(t *testing.T) {
	st := newSparseStore[int, rune]()
	require.NoError(t, st.Add(0, 'a', 1))
	c := st.clone()
	require.NoError(t, c.Add(0, 'a', 2))
	require.NoError(t, c.Add(0, 'b', 2))

	assert.Equal(t, []int{1}, st.Lookup(0, 'a'))
	assert.Equal(t, []int{1, 2}, c.Lookup(0, 'a'))
	assert.Equal(t, []rune{'a'}, st.universe())
}

// Dense and sparse automata built from the same tree accept the same words,
// including words that straddle interval boundaries.
func TestDenseSparseAgree(t *testing.T) {
	runes := []rune("abcdef")
	set := func(lo, hi rune) []rune {
		var out []rune
		for r := lo; r <= hi; r++ {
			out = append(out, r)
		}
		return out
	}
	dense := Concat(Plus(Range('a', 'd')), Alt(Range('c', 'f'), Text("ab")))
	sparse := Concat(Plus(Set(set('a', 'd')...)), Alt(Set(set('c', 'f')...), Sequence('a', 'b')))

	fresh := Counter(0)
	d := NewDense[int](RuneDomain())
	require.NoError(t, Compile(d, dense, fresh))
	s := NewSparse[int](runes...)
	require.NoError(t, Compile(s, sparse, fresh))

	dm, err := Determinize(d, fresh)
	require.NoError(t, err)
	dm, err = Minimize(dm, fresh)
	require.NoError(t, err)
	sm, err := Determinize(s, fresh)
	require.NoError(t, err)
	sm, err = Minimize(sm, fresh)
	require.NoError(t, err)

	assert.Equal(t, dm.NumStates(), sm.NumStates())
	for _, w := range words(runes, 4) {
		want := matches(dense, w)
		assert.Equalf(t, want, d.Accepts(w), "dense nfa %q", string(w))
		assert.Equalf(t, want, s.Accepts(w), "sparse nfa %q", string(w))
		assert.Equalf(t, want, dm.Accepts(w), "dense min %q", string(w))
		assert.Equalf(t, want, sm.Accepts(w), "sparse min %q", string(w))
	}
}
