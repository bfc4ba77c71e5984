package main

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/geange/fsa"
)

// endMarker encodes the end-of-input symbol just past the last code point.
const endMarker = unicode.MaxRune + 1

// domain is every code point plus the end marker.
var domain = fsa.Domain[rune]{Min: 0, Max: endMarker}

type (
	label = fsa.Interval[rune]
	node  = fsa.Node[label]
)

// jsonNode is one AST node; exactly one field is set.
type jsonNode struct {
	Lit    *string     `json:"lit,omitempty"`
	Range  []string    `json:"range,omitempty"`
	Set    []string    `json:"set,omitempty"`
	Cat    []*jsonNode `json:"cat,omitempty"`
	Alt    []*jsonNode `json:"alt,omitempty"`
	Star   *jsonNode   `json:"star,omitempty"`
	Plus   *jsonNode   `json:"plus,omitempty"`
	Opt    *jsonNode   `json:"opt,omitempty"`
	Repeat *jsonRepeat `json:"repeat,omitempty"`
	Eps    bool        `json:"eps,omitempty"`
	End    bool        `json:"end,omitempty"`
}

type jsonRepeat struct {
	Node *jsonNode `json:"node"`
	Min  int       `json:"min"`
	Max  *int      `json:"max,omitempty"`
}

func readAST(path string) (*node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading AST file: %w", err)
	}
	return parseAST(src)
}

func parseAST(src []byte) (*node, error) {
	var j jsonNode
	if err := json.Unmarshal(src, &j); err != nil {
		return nil, fmt.Errorf("parsing AST: %w", err)
	}
	return j.node()
}

func (j *jsonNode) node() (*node, error) {
	if j == nil {
		return nil, fmt.Errorf("%w: null node", fsa.ErrInvalidNode)
	}
	switch {
	case j.Lit != nil:
		return fsa.Text(*j.Lit), nil

	case j.Range != nil:
		if len(j.Range) != 2 {
			return nil, fmt.Errorf("%w: range needs two bounds", fsa.ErrInvalidNode)
		}
		lo, err := single(j.Range[0])
		if err != nil {
			return nil, err
		}
		hi, err := single(j.Range[1])
		if err != nil {
			return nil, err
		}
		return fsa.Range(lo, hi), nil

	case j.Set != nil:
		labels := make([]label, 0, len(j.Set))
		for _, item := range j.Set {
			l, err := setItem(item)
			if err != nil {
				return nil, err
			}
			labels = append(labels, l)
		}
		return fsa.Set(labels...), nil

	case j.Cat != nil:
		children, err := nodes(j.Cat)
		if err != nil {
			return nil, err
		}
		return fsa.Concat(children...), nil

	case j.Alt != nil:
		children, err := nodes(j.Alt)
		if err != nil {
			return nil, err
		}
		return fsa.Alt(children...), nil

	case j.Star != nil:
		child, err := j.Star.node()
		if err != nil {
			return nil, err
		}
		return fsa.Star(child), nil

	case j.Plus != nil:
		child, err := j.Plus.node()
		if err != nil {
			return nil, err
		}
		return fsa.Plus(child), nil

	case j.Opt != nil:
		child, err := j.Opt.node()
		if err != nil {
			return nil, err
		}
		return fsa.Optional(child), nil

	case j.Repeat != nil:
		child, err := j.Repeat.Node.node()
		if err != nil {
			return nil, err
		}
		upper := -1
		if j.Repeat.Max != nil {
			upper = *j.Repeat.Max
		}
		return fsa.Repeat(child, j.Repeat.Min, upper), nil

	case j.Eps:
		return fsa.Epsilon[label](), nil

	case j.End:
		return fsa.End(fsa.Single[rune](endMarker)), nil
	}
	return nil, fmt.Errorf("%w: empty node", fsa.ErrInvalidNode)
}

func nodes(js []*jsonNode) ([]*node, error) {
	out := make([]*node, len(js))
	for i, j := range js {
		n, err := j.node()
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// single decodes a string holding exactly one rune.
func single(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: %q is not a single character", fsa.ErrInvalidNode, s)
	}
	return r, nil
}

// setItem decodes "a" or "a-z".
func setItem(s string) (label, error) {
	rs := []rune(s)
	switch {
	case len(rs) == 1:
		return fsa.Single(rs[0]), nil
	case len(rs) == 3 && rs[1] == '-':
		if rs[0] > rs[2] {
			return label{}, fmt.Errorf("%w: %q", fsa.ErrInvalidInterval, s)
		}
		return fsa.Span(rs[0], rs[2]), nil
	}
	return label{}, fmt.Errorf("%w: bad set item %q", fsa.ErrInvalidNode, s)
}
