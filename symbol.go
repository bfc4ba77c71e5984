package fsa

import (
	"fmt"
	"unicode"
)

// Integer is the symbol constraint of dense automata. Any integer kind has the
// total order and successor a dense store needs to split and merge intervals.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Interval is an inclusive range of symbols [Lo, Hi].
type Interval[T Integer] struct {
	Lo, Hi T
}

// Span returns the interval [lo, hi].
func Span[T Integer](lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi}
}

// Single returns the interval holding only v.
func Single[T Integer](v T) Interval[T] {
	return Interval[T]{Lo: v, Hi: v}
}

// Valid reports whether Lo <= Hi.
func (i Interval[T]) Valid() bool {
	return i.Lo <= i.Hi
}

// Contains reports whether v lies in the interval.
func (i Interval[T]) Contains(v T) bool {
	return i.Lo <= v && v <= i.Hi
}

// Covers reports whether o lies entirely inside i.
func (i Interval[T]) Covers(o Interval[T]) bool {
	return i.Lo <= o.Lo && o.Hi <= i.Hi
}

// Overlaps reports whether the intervals share at least one symbol.
func (i Interval[T]) Overlaps(o Interval[T]) bool {
	return i.Lo <= o.Hi && o.Lo <= i.Hi
}

// Adjacent reports whether o starts right after i ends.
func (i Interval[T]) Adjacent(o Interval[T]) bool {
	return i.Hi < o.Lo && o.Lo-i.Hi == 1
}

// Intersect returns the common part of both intervals; ok is false when they
// do not overlap.
func (i Interval[T]) Intersect(o Interval[T]) (Interval[T], bool) {
	if !i.Overlaps(o) {
		return Interval[T]{}, false
	}
	return Interval[T]{Lo: max(i.Lo, o.Lo), Hi: min(i.Hi, o.Hi)}, true
}

func (i Interval[T]) String() string {
	if i.Lo == i.Hi {
		return fmt.Sprint(i.Lo)
	}
	return fmt.Sprintf("%v-%v", i.Lo, i.Hi)
}

// RuneLabel formats a rune interval with quoted characters, e.g. 'a'-'z'.
func RuneLabel[T Integer](i Interval[T]) string {
	quote := func(v T) string {
		// uint64 keeps values above MaxInt64 from wrapping negative.
		if v < 0 || uint64(v) > unicode.MaxRune {
			return fmt.Sprintf("#%d", v)
		}
		return fmt.Sprintf("%q", rune(v))
	}
	if i.Lo == i.Hi {
		return quote(i.Lo)
	}
	return quote(i.Lo) + "-" + quote(i.Hi)
}

// Domain is the full alphabet of a dense automaton.
type Domain[T Integer] struct {
	Min, Max T
}

// Interval returns the domain as a single interval.
func (d Domain[T]) Interval() Interval[T] {
	return Interval[T]{Lo: d.Min, Hi: d.Max}
}

// RuneDomain covers every Unicode code point.
func RuneDomain() Domain[rune] {
	return Domain[rune]{Min: 0, Max: unicode.MaxRune}
}

// ByteDomain covers every byte value.
func ByteDomain() Domain[byte] {
	return Domain[byte]{Min: 0, Max: 0xFF}
}
