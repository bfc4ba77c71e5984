package fsa

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminize(t *testing.T) {
	for _, tt := range regexes {
		t.Run(tt.name, func(t *testing.T) {
			fresh := Counter(0)
			a := compileRunes(t, tt.node, fresh)
			d, err := Determinize(a, fresh)
			require.NoError(t, err)

			assert.True(t, d.IsDeterministic())
			sameLanguage(t, d, a, abc, 5)
		})
	}
}

func TestDeterminizeRepeatable(t *testing.T) {
	// Two runs over the same NFA with identically seeded factories agree on
	// the language, whatever states they pick.
	for _, tt := range regexes {
		t.Run(tt.name, func(t *testing.T) {
			a := compileRunes(t, tt.node, Counter(0))
			first, err := Determinize(a, Counter(1000))
			require.NoError(t, err)
			second, err := Determinize(a, Counter(1000))
			require.NoError(t, err)

			same, err := Equivalent(first, second, Counter(10000))
			require.NoError(t, err)
			assert.True(t, same)
			assert.Equal(t, first.NumStates(), second.NumStates())
			assert.Equal(t, first.NumTransitions(), second.NumTransitions())
		})
	}
}

func TestDeterminizeSets(t *testing.T) {
	// Classic NFA for strings whose second to last symbol is 'a'.
	a := NewSparse[int, rune]('a', 'b')
	a.SetInitial(0, true)
	require.NoError(t, a.AddTransition(0, 'a', 0))
	require.NoError(t, a.AddTransition(0, 'b', 0))
	require.NoError(t, a.AddTransition(0, 'a', 1))
	require.NoError(t, a.AddTransition(1, 'a', 2))
	require.NoError(t, a.AddTransition(1, 'b', 2))
	a.SetAccept(2, true)

	d, sets, err := DeterminizeSets(a, Counter(100))
	require.NoError(t, err)
	assert.True(t, d.IsDeterministic())
	assert.Equal(t, 4, d.NumStates())
	assert.Len(t, sets, 4)
	assert.Equal(t, []int{0}, sets[d.Initial()[0]])
	for _, s := range d.Accepting() {
		assert.Contains(t, sets[s], 2)
	}
	sameLanguage(t, d, a, []rune("ab"), 6)
}

func TestDeterminizeOverlappingIntervals(t *testing.T) {
	a := NewDense[int](RuneDomain())
	a.SetInitial(0, true)
	require.NoError(t, a.AddTransition(0, Span('a', 'm'), 1))
	require.NoError(t, a.AddTransition(0, Span('h', 'z'), 2))
	a.SetAccept(1, true)
	a.SetAccept(2, true)
	require.NoError(t, a.AddTransition(2, Single('!'), 3))
	a.SetAccept(3, true)

	d, err := Determinize(a, Counter(10))
	require.NoError(t, err)
	assert.True(t, d.IsDeterministic())

	start := d.Initial()[0]
	assert.Len(t, d.Transitions(start), 3, "[a-g] [h-m] [n-z]")
	for _, w := range []string{"a", "h", "m", "z", "h!", "z!"} {
		assert.Truef(t, Run(d, w), "accepts %q", w)
	}
	for _, w := range []string{"", "a!", "!", "A"} {
		assert.Falsef(t, Run(d, w), "rejects %q", w)
	}
}

func TestDeterminizeUUIDStates(t *testing.T) {
	fresh := UUIDs()
	a := NewDense[uuid.UUID](RuneDomain())
	require.NoError(t, Compile(a, regexes[5].node, fresh))

	d, err := Determinize(a, fresh)
	require.NoError(t, err)
	m, err := Minimize(d, fresh)
	require.NoError(t, err)

	assert.Equal(t, 5, m.NumStates(), "four live states and the sink")
	assert.True(t, Run(m, "babb"))
	assert.False(t, Run(m, "bab"))
}

func TestDeterminizeNoInitial(t *testing.T) {
	a := NewSparse[int, rune]()
	require.NoError(t, a.AddTransition(0, 'a', 1))

	_, err := Determinize(a, Counter(0))
	assert.True(t, errors.Is(err, ErrNoInitialState))
}
