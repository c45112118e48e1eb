package goprop

import (
	"fmt"
	"strconv"

	"github.com/reoring/goprop/i18n"
)

// DefaultMaxDepth bounds nesting when EncodeOpt.MaxDepth is zero. The
// original recursion had no bound and a cyclic object graph would overflow
// the stack; the limit turns that into a recorded max_depth issue while
// siblings keep encoding.
const DefaultMaxDepth = 256

// EncodeOpt bundles encoding session options.
type EncodeOpt struct {
	// Order selects the sink's ordering policy. The zero value is
	// OrderUnordered.
	Order Order
	// Validator is the rule registry consulted before each property is
	// committed. Nil disables validation.
	Validator *Validator
	// MaxDepth caps nesting depth; 0 means DefaultMaxDepth.
	MaxDepth int
}

// session is the state shared between a top-level Encoder and the child
// encoders spawned for nested objects: one issue collector and one dotted
// path stack. Sinks are never shared.
type session struct {
	issues Issues
	path   pathStack
}

func (st *session) record(is Issue) {
	is.Path = st.path.String()
	st.issues = AppendIssues(st.issues, is)
}

// Encoder is one encoding session. It owns a Sink, optionally consults a
// Validator, and accumulates Issues with dotted paths. A session is
// single-owner: drive it from one goroutine, then Clear for reuse or drop it.
type Encoder struct {
	sink     *Sink
	vld      *Validator
	maxDepth int
	st       *session
}

// NewEncoder creates an encoding session. The Validator, when given, is an
// explicit dependency of this session; it is never ambient state.
func NewEncoder(opt ...EncodeOpt) *Encoder {
	var o EncodeOpt
	if len(opt) > 0 {
		o = opt[0]
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return &Encoder{
		sink:     NewSink(o.Order),
		vld:      o.Validator,
		maxDepth: o.MaxDepth,
		st:       &session{},
	}
}

// Marshal encodes a Source into a document. The returned document is always
// the best-effort assembly; err carries the accumulated Issues when any
// property was rejected or unsupported.
func Marshal(src Source, opt ...EncodeOpt) (string, error) {
	e := NewEncoder(opt...)
	src.VisitProperties(e)
	doc := e.Document()
	if e.HasIssues() {
		return doc, e.Issues()
	}
	return doc, nil
}

// Property is the generic accept-property entry point. The value is resolved
// to its canonical kind, encoded, validated, and committed to the sink. A
// validation failure records one Issue at the current dotted path and leaves
// the property out of the document; encoding continues.
func (e *Encoder) Property(name string, v any) {
	e.st.path.push(name)
	defer e.st.path.pop()

	frag, kind, ok := e.fragment(v)
	if !ok {
		return
	}
	if e.vld != nil {
		if is := e.vld.check(name, kind, v, frag, true); is != nil {
			e.st.record(*is)
			return
		}
	}
	e.sink.Put(name, frag)
}

// Document assembles the best-effort document: every committed property,
// with rejected ones silently absent. Inspect Issues for the reasons.
func (e *Encoder) Document() string { return e.sink.Assemble() }

// StrictDocument assembles the document, or fails with the aggregated Issues
// when any were recorded. This is the only hard-failure point in the
// pipeline.
func (e *Encoder) StrictDocument() (string, error) {
	if e.HasIssues() {
		return "", e.Issues()
	}
	return e.sink.Assemble(), nil
}

// HasIssues reports in O(1) whether any issue was recorded.
func (e *Encoder) HasIssues() bool { return len(e.st.issues) > 0 }

// Issues returns the recorded issues in encounter order.
func (e *Encoder) Issues() Issues { return e.st.issues }

// Report renders all recorded issues as human-readable lines.
func (e *Encoder) Report() string { return e.st.issues.Report() }

// Sink exposes the session's property sink.
func (e *Encoder) Sink() *Sink { return e.sink }

// Clear resets the session for reuse: the sink is emptied (keeping its
// ordering policy), issues are dropped and the path stack is reset. The
// validator registration is untouched.
func (e *Encoder) Clear() {
	e.sink.Clear()
	e.st.issues = nil
	e.st.path.reset()
}

// Check validates a candidate value against the registered rules without
// committing anything. It returns nil when no validator is attached.
func (e *Encoder) Check(name string, v any) error {
	if e.vld == nil {
		return nil
	}
	scratch := &Encoder{sink: NewSink(e.sink.Order()), maxDepth: e.maxDepth, st: &session{}}
	frag, _, ok := scratch.fragment(v)
	if !ok {
		return scratch.st.issues
	}
	return e.vld.Validate(name, v, frag)
}

// CheckEncoded validates an already-encoded fragment against property-name
// and wildcard rules without committing anything.
func (e *Encoder) CheckEncoded(name, encoded string) error {
	if e.vld == nil {
		return nil
	}
	return e.vld.ValidateEncoded(name, encoded)
}

// child spawns the independent session used for a nested object: a fresh
// sink with the same policy, sharing the issue collector and path stack.
func (e *Encoder) child() *Encoder {
	return &Encoder{
		sink:     NewSink(e.sink.Order()),
		vld:      e.vld,
		maxDepth: e.maxDepth,
		st:       e.st,
	}
}

// fragment encodes one value of any supported shape. ok is false when the
// subtree was abandoned (depth limit); the issue is already recorded.
func (e *Encoder) fragment(v any) (frag string, kind Kind, ok bool) {
	if f, k, isScalar := encodeScalar(v); isScalar {
		return f, k, true
	}
	switch x := v.(type) {
	case Source:
		if e.exceeded() {
			return "", KindObject, false
		}
		c := e.child()
		x.VisitProperties(c)
		return c.sink.Assemble(), KindObject, true
	case Mapping:
		return e.mappingFragment(x)
	case map[string]any:
		return e.mappingFragment(SortedMap(x))
	case Sequence:
		return e.sequenceFragment(x)
	case []any:
		return e.sequenceFragment(sliceSeq(x))
	}
	if e.vld != nil {
		e.st.record(Issue{
			Code:    CodeUnsupportedType,
			Message: i18n.T(CodeUnsupportedType, nil),
			Type:    fmt.Sprintf("%T", v),
		})
	}
	return UnsupportedFragment, KindUnsupported, true
}

// sequenceFragment walks a sequence, sending every element through the full
// pipeline. Elements run kind-scoped and wildcard rules with their index as
// path segment; failing elements are left out of the array.
func (e *Encoder) sequenceFragment(s Sequence) (string, Kind, bool) {
	if e.exceeded() {
		return "", KindSequence, false
	}
	elems := s.Elems()
	parts := make([]string, 0, len(elems))
	for i, el := range elems {
		seg := strconv.Itoa(i)
		if f, ok := e.elementFragment(seg, el); ok {
			parts = append(parts, f)
		}
	}
	return assembleArray(parts), KindSequence, true
}

// mappingFragment walks an associative container. Keys are encoded through
// the scalar pipeline and quoted unless their encoded form already is; values
// run the identical element pipeline with the key as path segment.
func (e *Encoder) mappingFragment(m Mapping) (string, Kind, bool) {
	if e.exceeded() {
		return "", KindMapping, false
	}
	pairs := m.Pairs()
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		kf, _, ok := e.fragment(p.Key)
		if !ok {
			continue
		}
		if len(kf) == 0 || kf[0] != '"' {
			// Stringify non-string keys; an already-quoted key is used
			// as-is to avoid double quoting.
			kf = quoteString(kf)
		}
		seg := fmt.Sprint(p.Key)
		if f, ok := e.elementFragment(seg, p.Value); ok {
			parts = append(parts, kf+":"+f)
		}
	}
	return assembleObject(parts), KindMapping, true
}

func (e *Encoder) elementFragment(seg string, v any) (string, bool) {
	e.st.path.push(seg)
	defer e.st.path.pop()

	frag, kind, ok := e.fragment(v)
	if !ok {
		return "", false
	}
	if e.vld != nil {
		if is := e.vld.check(seg, kind, v, frag, false); is != nil {
			e.st.record(*is)
			return "", false
		}
	}
	return frag, true
}

func (e *Encoder) exceeded() bool {
	if e.st.path.depth() <= e.maxDepth {
		return false
	}
	e.st.record(Issue{
		Code:    CodeMaxDepth,
		Message: i18n.T(CodeMaxDepth, nil),
		Params:  map[string]any{"max": e.maxDepth},
	})
	return true
}

func assembleArray(parts []string) string {
	if len(parts) == 0 {
		return "[]"
	}
	n := 2
	for _, p := range parts {
		n += len(p) + 1
	}
	out := make([]byte, 0, n)
	out = append(out, '[')
	for i, p := range parts {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, p...)
	}
	return string(append(out, ']'))
}

func assembleObject(parts []string) string {
	if len(parts) == 0 {
		return "{}"
	}
	n := 2
	for _, p := range parts {
		n += len(p) + 1
	}
	out := make([]byte, 0, n)
	out = append(out, '{')
	for i, p := range parts {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, p...)
	}
	return string(append(out, '}'))
}
