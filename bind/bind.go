// Package bind offers an explicit field-registration builder producing
// goprop Sources. A type registers its ordered field list once; binding a
// value then yields a Source that emits those fields in registration order.
// This replaces compile-time member enumeration with plain code.
package bind

import goprop "github.com/reoring/goprop"

// Builder holds the ordered field list registered for T. Build it once
// (package-level var is typical) and reuse it for every value.
type Builder[T any] struct {
	steps []step[T]
}

type step[T any] struct {
	name string
	get  func(*T) any
	emit func(*T, *goprop.Encoder)
}

// For starts an empty builder for T.
func For[T any]() *Builder[T] { return &Builder[T]{} }

// Field registers one named accessor. Fields are emitted in registration
// order.
func (b *Builder[T]) Field(name string, get func(*T) any) *Builder[T] {
	b.steps = append(b.steps, step[T]{name: name, get: get})
	return b
}

// Emit registers a free-form step, e.g. to splice in the fields of an
// embedded base type before or between regular fields.
func (b *Builder[T]) Emit(fn func(v *T, e *goprop.Encoder)) *Builder[T] {
	b.steps = append(b.steps, step[T]{emit: fn})
	return b
}

// Bind attaches the field list to a concrete value.
func (b *Builder[T]) Bind(v *T) goprop.Source { return bound[T]{b: b, v: v} }

type bound[T any] struct {
	b *Builder[T]
	v *T
}

func (s bound[T]) VisitProperties(e *goprop.Encoder) {
	for _, st := range s.b.steps {
		if st.emit != nil {
			st.emit(s.v, e)
			continue
		}
		e.Property(st.name, st.get(s.v))
	}
}
