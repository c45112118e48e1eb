package rules_test

import (
	"regexp"
	"testing"

	goprop "github.com/reoring/goprop"
	"github.com/reoring/goprop/rules"
)

func TestStringRules(t *testing.T) {
	cases := []struct {
		name string
		rule goprop.Rule
		v    string
		pass bool
	}{
		{"non_empty pass", rules.NonEmpty(), "x", true},
		{"non_empty fail", rules.NonEmpty(), "", false},
		{"max_len pass", rules.MaxLen(3), "Bob", true},
		{"max_len fail", rules.MaxLen(3), "Alice", false},
		{"min_len pass", rules.MinLen(2), "ab", true},
		{"min_len fail", rules.MinLen(2), "a", false},
		{"match pass", rules.Match(regexp.MustCompile(`^[A-Z]`)), "Bob", true},
		{"match fail", rules.Match(regexp.MustCompile(`^[A-Z]`)), "bob", false},
		{"one_of pass", rules.OneOf("a", "b"), "a", true},
		{"one_of fail", rules.OneOf("a", "b"), "c", false},
	}
	for _, tc := range cases {
		err := tc.rule("p", tc.v, `"`+tc.v+`"`)
		if tc.pass && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.pass && err == nil {
			t.Errorf("%s: expected failure", tc.name)
		}
	}
}

func TestStringRules_MismatchOnNonString(t *testing.T) {
	err := rules.MaxLen(3)("p", 42, "42")
	if err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestNumericRules(t *testing.T) {
	if err := rules.Min(0)("p", 5, "5"); err != nil {
		t.Fatalf("min: %v", err)
	}
	if err := rules.Min(0)("p", -1, "-1"); err == nil {
		t.Fatalf("min must fail for -1")
	}
	if err := rules.Max(10)("p", uint8(11), "11"); err == nil {
		t.Fatalf("max must fail for 11")
	}
	if err := rules.Between(0, 1)("p", 0.5, "0.5"); err != nil {
		t.Fatalf("between: %v", err)
	}
	if err := rules.Between(0, 1)("p", float32(1.5), "1.5"); err == nil {
		t.Fatalf("between must fail for 1.5")
	}
	if err := rules.Min(0)("p", "nope", `"nope"`); err == nil {
		t.Fatalf("non-numeric must report mismatch")
	}
}

func TestWellFormed(t *testing.T) {
	wf := rules.WellFormed()
	for _, frag := range []string{`7`, `"x"`, `[1,2]`, `{"a":1}`, `true`} {
		if err := wf("p", nil, frag); err != nil {
			t.Errorf("%s flagged as malformed: %v", frag, err)
		}
	}
	for _, frag := range []string{`{`, `"unterminated`, `[1,`} {
		if err := wf("p", nil, frag); err == nil {
			t.Errorf("%s must be flagged as malformed", frag)
		}
	}
}

func TestRulesInsidePipeline(t *testing.T) {
	vld := goprop.NewValidator().
		ForProperty("email", rules.Match(regexp.MustCompile("@")), "email shape").
		ForAll(rules.WellFormed(), "well-formed fragments")

	e := goprop.NewEncoder(goprop.EncodeOpt{Order: goprop.OrderInsertion, Validator: vld})
	e.Property("email", "a@b")
	e.Property("n", 3)
	if e.HasIssues() {
		t.Fatalf("unexpected issues: %v", e.Issues())
	}
	e.Property("email", "nope")
	if len(e.Issues()) != 1 {
		t.Fatalf("expected one issue, got %v", e.Issues())
	}
	if got := e.Document(); got != `{"email":"a@b","n":3}` {
		t.Fatalf("got %s", got)
	}
}
