package goprop

import (
	"cmp"
	"slices"
)

// Char is a single-byte character value. It is a defined type on purpose:
// byte aliases uint8 and rune aliases int32, so a bare byte or rune must keep
// its numeric kind. Only values written as goprop.Char take the character
// encoding path.
type Char byte

// Source is the property-source contract. An implementation calls
// e.Property once per member, in the order the members should be considered
// (insertion-ordered sinks retain that order).
type Source interface {
	VisitProperties(e *Encoder)
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(e *Encoder)

func (f SourceFunc) VisitProperties(e *Encoder) { f(e) }

// Sequence is the capability interface for ordered containers. Elems returns
// the elements in encoding order.
type Sequence interface {
	Elems() []any
}

// Pair is one key/value entry of a Mapping.
type Pair struct {
	Key   any
	Value any
}

// Mapping is the capability interface for associative containers. Pairs
// returns entries in encoding order.
type Mapping interface {
	Pairs() []Pair
}

type sliceSeq []any

func (s sliceSeq) Elems() []any { return s }

// Items builds a Sequence from the given elements, preserving their order.
func Items[T any](xs ...T) Sequence { return SliceSeq(xs) }

// SliceSeq wraps a typed slice as a Sequence without copying element order.
func SliceSeq[T any](xs []T) Sequence {
	out := make(sliceSeq, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

type pairList []Pair

func (p pairList) Pairs() []Pair { return p }

// OrderedPairs builds a Mapping that encodes entries exactly in the given
// order.
func OrderedPairs(pairs ...Pair) Mapping { return pairList(pairs) }

// SortedMap wraps a Go map as a Mapping with entries ordered by key. Go map
// iteration order is randomized, so a deterministic view has to pick an
// order; key sort keeps output stable across runs.
func SortedMap[K cmp.Ordered, V any](m map[K]V) Mapping {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make(pairList, 0, len(keys))
	for _, k := range keys {
		out = append(out, Pair{Key: k, Value: m[k]})
	}
	return out
}
