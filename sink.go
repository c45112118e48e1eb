package goprop

import (
	"sort"
	"strings"
)

// Order selects how a Sink arranges properties at assembly time.
type Order int

const (
	OrderUnordered Order = iota // no positional guarantee, stable within a session
	OrderInsertion              // first-seen position, overwrite keeps the slot
	OrderReverse                // reverse of insertion order
	OrderSorted                 // key-sorted
)

func (o Order) String() string {
	switch o {
	case OrderInsertion:
		return "insertion"
	case OrderReverse:
		return "reverse"
	case OrderSorted:
		return "sorted"
	default:
		return "unordered"
	}
}

type sinkEntry struct {
	name string
	frag string
}

// Sink accumulates (name, encoded fragment) pairs and assembles the final
// object literal. All ordering policies share one store, so overwriting a
// name always updates the existing entry in place and never duplicates a key.
type Sink struct {
	order   Order
	entries []sinkEntry
	index   map[string]int
}

// NewSink returns an empty sink with the given ordering policy.
func NewSink(order Order) *Sink {
	return &Sink{order: order, index: make(map[string]int)}
}

// Order reports the sink's ordering policy.
func (s *Sink) Order() Order { return s.order }

// Put stores an already-encoded fragment under name. A later Put with the
// same name replaces the value; under OrderInsertion the original position is
// retained.
func (s *Sink) Put(name, fragment string) {
	if i, ok := s.index[name]; ok {
		s.entries[i].frag = fragment
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, sinkEntry{name: name, frag: fragment})
}

// Len reports the number of distinct properties held.
func (s *Sink) Len() int { return len(s.entries) }

// Names returns the property names in assembly order.
func (s *Sink) Names() []string {
	ordered := s.arranged()
	out := make([]string, len(ordered))
	for i, e := range ordered {
		out[i] = e.name
	}
	return out
}

// Clear empties the sink while preserving its ordering policy, so a session
// can be reused without reallocation.
func (s *Sink) Clear() {
	s.entries = s.entries[:0]
	clear(s.index)
}

// Assemble renders the accumulated properties as a single object literal.
// Keys are quoted and escaped; values are inserted verbatim since they are
// already valid fragments.
func (s *Sink) Assemble() string {
	if len(s.entries) == 0 {
		return "{}"
	}
	ordered := s.arranged()

	n := 2
	for _, e := range ordered {
		n += len(e.name) + len(e.frag) + 4
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteByte('{')
	for i, e := range ordered {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteString(e.name))
		b.WriteByte(':')
		b.WriteString(e.frag)
	}
	b.WriteByte('}')
	return b.String()
}

func (s *Sink) arranged() []sinkEntry {
	switch s.order {
	case OrderReverse:
		out := make([]sinkEntry, len(s.entries))
		for i, e := range s.entries {
			out[len(s.entries)-1-i] = e
		}
		return out
	case OrderSorted:
		out := make([]sinkEntry, len(s.entries))
		copy(out, s.entries)
		sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
		return out
	default:
		// Unordered makes no positional promise; insertion order is the
		// stable arrangement both policies can share.
		return s.entries
	}
}
