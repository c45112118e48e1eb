package goprop_test

import (
	"fmt"
	"strings"
	"testing"

	goprop "github.com/reoring/goprop"
	"github.com/reoring/goprop/rules"
)

func maxLen3() goprop.Rule { return rules.MaxLen(3) }

func TestValidation_ShortStringScenario(t *testing.T) {
	vld := goprop.NewValidator().ForKind(goprop.KindString, maxLen3(), "strings up to 3 chars")

	e := goprop.NewEncoder(goprop.EncodeOpt{Order: goprop.OrderInsertion, Validator: vld})
	e.Property("name", "Bob")
	if e.HasIssues() {
		t.Fatalf("Bob must pass: %v", e.Issues())
	}
	if got := e.Document(); got != `{"name":"Bob"}` {
		t.Fatalf("got %s", got)
	}

	e.Clear()
	e.Property("name", "Alice")
	iss := e.Issues()
	if len(iss) != 1 {
		t.Fatalf("expected exactly one issue, got %v", iss)
	}
	if iss[0].Path != "name" {
		t.Fatalf("expected path name, got %q", iss[0].Path)
	}
	if got := e.Document(); got != `{}` {
		t.Fatalf("rejected property must be absent, got %s", got)
	}
}

func TestValidation_NonAbortCounts(t *testing.T) {
	vld := goprop.NewValidator().ForKind(goprop.KindString, maxLen3(), "short")

	e := goprop.NewEncoder(goprop.EncodeOpt{Order: goprop.OrderInsertion, Validator: vld})
	e.Property("a", "ok")
	e.Property("b", "too long")
	e.Property("c", 7)
	e.Property("d", "nope too")
	e.Property("e", "yes")

	if got := e.Document(); got != `{"a":"ok","c":7,"e":"yes"}` {
		t.Fatalf("got %s", got)
	}
	if len(e.Issues()) != 2 {
		t.Fatalf("expected 2 issues, got %v", e.Issues())
	}
}

func TestValidation_ScopeOrderAndShortCircuit(t *testing.T) {
	var ran []string
	mk := func(tag string, fail bool) goprop.Rule {
		return func(name string, value any, encoded string) error {
			ran = append(ran, tag)
			if fail {
				return fmt.Errorf("%s failed", tag)
			}
			return nil
		}
	}
	vld := goprop.NewValidator().
		ForKind(goprop.KindString, mk("kind", true), "").
		ForProperty("x", mk("prop", false), "").
		ForAll(mk("all", false), "")

	e := goprop.NewEncoder(goprop.EncodeOpt{Validator: vld})
	e.Property("x", "v")

	if len(ran) != 1 || ran[0] != "kind" {
		t.Fatalf("kind rule must run first and short-circuit, ran: %v", ran)
	}
	iss := e.Issues()
	if len(iss) != 1 || iss[0].Message != "kind failed" {
		t.Fatalf("expected one issue from the kind rule, got %v", iss)
	}

	// Passing kind rule falls through to property then wildcard.
	ran = nil
	vld2 := goprop.NewValidator().
		ForKind(goprop.KindString, mk("kind", false), "").
		ForProperty("x", mk("prop", false), "").
		ForAll(mk("all", true), "")
	e2 := goprop.NewEncoder(goprop.EncodeOpt{Validator: vld2})
	e2.Property("x", "v")
	if strings.Join(ran, ",") != "kind,prop,all" {
		t.Fatalf("scope order wrong: %v", ran)
	}
	if len(e2.Issues()) != 1 {
		t.Fatalf("expected one issue, got %v", e2.Issues())
	}
}

func TestValidation_NestedDottedPath(t *testing.T) {
	vld := goprop.NewValidator().ForKind(goprop.KindString, maxLen3(), "short")
	e := goprop.NewEncoder(goprop.EncodeOpt{Order: goprop.OrderInsertion, Validator: vld})

	p := &person{id: 1, name: "Al", addr: &address{city: "Gotham"}}
	p.VisitProperties(e)

	iss := e.Issues()
	if len(iss) != 1 || iss[0].Path != "addr.city" {
		t.Fatalf("expected one issue at addr.city, got %v", iss)
	}
	// The nested document simply misses the rejected member.
	if got := e.Document(); got != `{"id":1,"name":"Al","addr":{}}` {
		t.Fatalf("got %s", got)
	}
}

func TestValidation_PathDoesNotLeakAcrossSiblings(t *testing.T) {
	vld := goprop.NewValidator().ForKind(goprop.KindString, maxLen3(), "short")
	e := goprop.NewEncoder(goprop.EncodeOpt{Order: goprop.OrderInsertion, Validator: vld})

	e.Property("first", "toolong")
	e.Property("second", "nope too long")

	iss := e.Issues()
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
	if iss[0].Path != "first" || iss[1].Path != "second" {
		t.Fatalf("sibling paths polluted: %v", iss)
	}
}

func TestValidation_SequenceElementPath(t *testing.T) {
	vld := goprop.NewValidator().ForKind(goprop.KindString, maxLen3(), "short")
	e := goprop.NewEncoder(goprop.EncodeOpt{Validator: vld})

	e.Property("tags", goprop.Items("ok", "too long", "yes"))

	iss := e.Issues()
	if len(iss) != 1 || iss[0].Path != "tags.1" {
		t.Fatalf("expected one issue at tags.1, got %v", iss)
	}
	if got := e.Document(); got != `{"tags":["ok","yes"]}` {
		t.Fatalf("failing element must be omitted, got %s", got)
	}
}

func TestValidation_PropertyRulesSkipElements(t *testing.T) {
	// A rule bound to the property name must not fire for container
	// elements, whose path segments are positional.
	vld := goprop.NewValidator().ForProperty("0", func(name string, v any, enc string) error {
		return fmt.Errorf("should never fire")
	}, "")
	e := goprop.NewEncoder(goprop.EncodeOpt{Validator: vld})
	e.Property("xs", goprop.Items("a", "b"))
	if e.HasIssues() {
		t.Fatalf("property rule fired for an element: %v", e.Issues())
	}
}

func TestValidation_TypeMismatchIsFailureNotPanic(t *testing.T) {
	vld := goprop.NewValidator().ForKind(goprop.KindSigned,
		goprop.TypedRule(func(name string, v int64, enc string) error { return nil }),
		"int64 only")

	e := goprop.NewEncoder(goprop.EncodeOpt{Validator: vld})
	e.Property("n", int32(5)) // KindSigned, but dynamic type int32

	iss := e.Issues()
	if len(iss) != 1 || iss[0].Code != goprop.CodeTypeMismatch {
		t.Fatalf("expected a type_mismatch issue, got %v", iss)
	}
	if got := e.Document(); got != `{}` {
		t.Fatalf("mismatched property must not commit, got %s", got)
	}
}

func TestValidation_PreFlightChecks(t *testing.T) {
	vld := goprop.NewValidator().ForKind(goprop.KindString, maxLen3(), "short")
	e := goprop.NewEncoder(goprop.EncodeOpt{Validator: vld})

	if err := e.Check("name", "Bob"); err != nil {
		t.Fatalf("Bob must pass pre-flight: %v", err)
	}
	if err := e.Check("name", "Alice"); err == nil {
		t.Fatalf("Alice must fail pre-flight")
	}
	// Pre-flight never records or commits.
	if e.HasIssues() || e.Document() != `{}` {
		t.Fatalf("pre-flight leaked state: %v %s", e.Issues(), e.Document())
	}

	if err := e.CheckEncoded("name", `"Bob"`); err != nil {
		t.Fatalf("CheckEncoded without matching rules must pass: %v", err)
	}
	vld.ForProperty("name", func(name string, v any, enc string) error {
		if len(enc) > 5 {
			return fmt.Errorf("encoded too long")
		}
		return nil
	}, "encoded length")
	if err := e.CheckEncoded("name", `"Alice"`); err == nil {
		t.Fatalf("expected CheckEncoded failure")
	}
}

func TestValidator_RulesIntrospection(t *testing.T) {
	vld := goprop.NewValidator().
		ForKind(goprop.KindString, maxLen3(), "strings up to 3 chars").
		ForProperty("email", func(n string, v any, e string) error { return nil }, "must look like email").
		ForAll(func(n string, v any, e string) error { return nil }, "always on")

	lines := vld.Rules()
	if len(lines) != 3 {
		t.Fatalf("expected 3 rule lines, got %v", lines)
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{
		"kind rule (string): strings up to 3 chars",
		"property 'email': must look like email",
		"wildcard rule: always on",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in %q", want, joined)
		}
	}
	if vld.Len() != 3 {
		t.Fatalf("Len = %d", vld.Len())
	}
}

func TestStrictDocument(t *testing.T) {
	vld := goprop.NewValidator().ForKind(goprop.KindString, maxLen3(), "short")
	e := goprop.NewEncoder(goprop.EncodeOpt{Order: goprop.OrderInsertion, Validator: vld})

	e.Property("id", 7)
	doc, err := e.StrictDocument()
	if err != nil || doc != `{"id":7}` {
		t.Fatalf("clean session must pass strict assembly: %s %v", doc, err)
	}

	e.Property("name", "Alice")
	if _, err := e.StrictDocument(); err == nil {
		t.Fatalf("expected strict failure")
	} else if iss, ok := goprop.AsIssues(err); !ok || len(iss) != 1 {
		t.Fatalf("expected Issues error, got %v", err)
	}
	// Best-effort surface still available.
	if got := e.Document(); got != `{"id":7}` {
		t.Fatalf("got %s", got)
	}
}

func TestIssues_ReportFormat(t *testing.T) {
	iss := goprop.Issues{
		{Path: "name", Message: "too long", Type: "string"},
		{Path: "addr.city", Message: "rejected"},
	}
	rep := iss.Report()
	if !strings.Contains(rep, "property 'name': too long (type: string)") {
		t.Fatalf("report: %q", rep)
	}
	if !strings.Contains(rep, "property 'addr.city': rejected\n") {
		t.Fatalf("report: %q", rep)
	}
	if iss.Error() == "" {
		t.Fatalf("expected non-empty error summary")
	}
}

func TestValidator_SharedAcrossSessions(t *testing.T) {
	vld := goprop.NewValidator().ForKind(goprop.KindString, maxLen3(), "short")
	a := goprop.NewEncoder(goprop.EncodeOpt{Validator: vld})
	b := goprop.NewEncoder(goprop.EncodeOpt{Validator: vld})

	a.Property("x", "toolong")
	b.Property("x", "ok")

	if len(a.Issues()) != 1 || b.HasIssues() {
		t.Fatalf("sessions must not share issue state: %v %v", a.Issues(), b.Issues())
	}
}
