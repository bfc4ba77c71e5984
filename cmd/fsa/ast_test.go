package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geange/fsa"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAST(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		accept  []string
		reject  []string
		wantErr error
	}{
		{
			name:   "literal",
			src:    `{"lit":"abc"}`,
			accept: []string{"abc"},
			reject: []string{"", "ab", "abcd"},
		},
		{
			name:   "range star",
			src:    `{"star":{"range":["a","c"]}}`,
			accept: []string{"", "a", "cab"},
			reject: []string{"d", "abd"},
		},
		{
			name:   "set with span",
			src:    `{"plus":{"set":["x","0-9"]}}`,
			accept: []string{"x", "0x9"},
			reject: []string{"", "y"},
		},
		{
			name:   "alternation",
			src:    `{"cat":[{"alt":[{"lit":"a"},{"lit":"b"}]},{"opt":{"lit":"c"}}]}`,
			accept: []string{"a", "bc"},
			reject: []string{"c", "abc"},
		},
		{
			name:   "bounded repeat",
			src:    `{"repeat":{"node":{"lit":"a"},"min":2,"max":3}}`,
			accept: []string{"aa", "aaa"},
			reject: []string{"a", "aaaa"},
		},
		{
			name:   "unbounded repeat",
			src:    `{"repeat":{"node":{"lit":"a"},"min":2}}`,
			accept: []string{"aa", "aaaaa"},
			reject: []string{"", "a"},
		},
		{
			name:   "epsilon",
			src:    `{"eps":true}`,
			accept: []string{""},
			reject: []string{"a"},
		},
		{name: "empty object", src: `{}`, wantErr: fsa.ErrInvalidNode},
		{name: "bad range", src: `{"range":["ab","c"]}`, wantErr: fsa.ErrInvalidNode},
		{name: "reversed set span", src: `{"set":["z-a"]}`, wantErr: fsa.ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := parseAST([]byte(tt.src))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			for _, stage := range []string{"nfa", "eps", "dfa", "min"} {
				a, err := compile(n, stage)
				require.NoError(t, err)
				for _, s := range tt.accept {
					assert.Truef(t, fsa.Run(a, s), "%s should accept %q", stage, s)
				}
				for _, s := range tt.reject {
					assert.Falsef(t, fsa.Run(a, s), "%s should reject %q", stage, s)
				}
			}
		})
	}
}

func TestEndMarker(t *testing.T) {
	n, err := parseAST([]byte(`{"cat":[{"lit":"ab"},{"end":true}]}`))
	require.NoError(t, err)
	a, err := compile(n, "min")
	require.NoError(t, err)

	assert.True(t, a.Accepts([]rune{'a', 'b', endMarker}))
	assert.False(t, a.Accepts([]rune("ab")))
}

func TestCompileUnknownStage(t *testing.T) {
	_, err := compile(fsa.Text("a"), "nope")
	assert.Error(t, err)
	assert.Error(t, validStage("nope"))
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ast.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cat":[{"star":{"alt":[{"lit":"a"},{"lit":"b"}]}},{"lit":"abb"}]}`), 0o644))

	t.Run("match", func(t *testing.T) {
		viper.Set("stage", "min")
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"match", path, "aabb", "ab"})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "aabb\taccept\nab\treject\n", out.String())
	})

	t.Run("dot", func(t *testing.T) {
		viper.Set("stage", "min")
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"dot", path, "--name", "abb"})
		require.NoError(t, rootCmd.Execute())
		assert.True(t, strings.HasPrefix(out.String(), "digraph \"abb\" {\n"))
		assert.Contains(t, out.String(), "doublecircle")
		assert.Contains(t, out.String(), `label="'b'"`)
	})
}
