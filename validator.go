package goprop

import (
	"errors"
	"fmt"

	"github.com/reoring/goprop/i18n"
)

// Rule is one validation predicate over a property. It receives the property
// name, the decoded value and the already-encoded fragment, and returns nil
// to pass. Returning a *MismatchError marks the failure as type_mismatch
// instead of rule_violation.
type Rule func(name string, value any, encoded string) error

// TypedRule wraps a predicate over a concrete value type. When the dynamic
// type of the value differs from T the rule reports a type-mismatch
// validation failure for that property rather than panicking.
func TypedRule[T any](fn func(name string, value T, encoded string) error) Rule {
	return func(name string, value any, encoded string) error {
		tv, ok := value.(T)
		if !ok {
			var zero T
			return &MismatchError{Want: fmt.Sprintf("%T", zero), Got: fmt.Sprintf("%T", value)}
		}
		return fn(name, tv, encoded)
	}
}

type ruleEntry struct {
	rule Rule
	desc string
}

// Validator is a registry of validation rules. Rules are registered before
// encoding begins and are read-only afterwards, so one Validator may back any
// number of concurrent encoding sessions.
//
// Scope evaluation order per property: kind-scoped rules, then rules bound to
// the exact property name, then wildcard rules. The first failing rule stops
// evaluation for that property and yields exactly one Issue.
type Validator struct {
	kindRules map[Kind][]ruleEntry
	propRules map[string][]ruleEntry
	propNames []string // first-registration order, for Rules()
	allRules  []ruleEntry
}

// NewValidator returns an empty rule registry.
func NewValidator() *Validator {
	return &Validator{
		kindRules: make(map[Kind][]ruleEntry),
		propRules: make(map[string][]ruleEntry),
	}
}

// ForKind registers a rule applying to every property whose value resolves to
// the given kind. desc is a short human-readable description used in
// diagnostics; it may be empty.
func (v *Validator) ForKind(k Kind, r Rule, desc string) *Validator {
	v.kindRules[k] = append(v.kindRules[k], ruleEntry{rule: r, desc: desc})
	return v
}

// ForProperty registers a rule applying only to the property with the exact
// given name.
func (v *Validator) ForProperty(name string, r Rule, desc string) *Validator {
	if _, ok := v.propRules[name]; !ok {
		v.propNames = append(v.propNames, name)
	}
	v.propRules[name] = append(v.propRules[name], ruleEntry{rule: r, desc: desc})
	return v
}

// ForAll registers a wildcard rule applying to every property.
func (v *Validator) ForAll(r Rule, desc string) *Validator {
	v.allRules = append(v.allRules, ruleEntry{rule: r, desc: desc})
	return v
}

// Len reports the total number of registered rules.
func (v *Validator) Len() int {
	n := len(v.allRules)
	for _, rs := range v.kindRules {
		n += len(rs)
	}
	for _, rs := range v.propRules {
		n += len(rs)
	}
	return n
}

// Rules lists a description line for every registered rule, for diagnostics.
func (v *Validator) Rules() []string {
	var out []string
	for k := KindUnsupported; k <= KindMapping; k++ {
		for _, e := range v.kindRules[k] {
			out = append(out, fmt.Sprintf("kind rule (%s): %s", k, e.desc))
		}
	}
	for _, name := range v.propNames {
		for _, e := range v.propRules[name] {
			out = append(out, fmt.Sprintf("property '%s': %s", name, e.desc))
		}
	}
	for _, e := range v.allRules {
		out = append(out, "wildcard rule: "+e.desc)
	}
	return out
}

// Validate runs all applicable rules against a candidate value and its
// encoded fragment without recording anything. It returns nil on pass, or an
// Issues error carrying exactly one Issue (Path set to the bare name).
func (v *Validator) Validate(name string, value any, encoded string) error {
	if is := v.check(name, Resolve(value), value, encoded, true); is != nil {
		is.Path = name
		return Issues{*is}
	}
	return nil
}

// ValidateEncoded runs property-name and wildcard rules against an
// already-encoded fragment when the decoded value is not available.
// Kind-scoped rules are skipped since there is no value to resolve.
func (v *Validator) ValidateEncoded(name, encoded string) error {
	if is := v.checkEntries(name, nil, encoded, v.propRules[name]); is != nil {
		is.Path = name
		return Issues{*is}
	}
	if is := v.checkEntries(name, nil, encoded, v.allRules); is != nil {
		is.Path = name
		return Issues{*is}
	}
	return nil
}

// check evaluates rules for one property. withProps controls whether
// name-bound rules participate; container elements run with withProps false
// because their path segment is positional, not a property name. The returned
// Issue has no Path; the caller stamps the current dotted path.
func (v *Validator) check(name string, kind Kind, value any, encoded string, withProps bool) *Issue {
	if is := v.checkEntries(name, value, encoded, v.kindRules[kind]); is != nil {
		return is
	}
	if withProps {
		if is := v.checkEntries(name, value, encoded, v.propRules[name]); is != nil {
			return is
		}
	}
	return v.checkEntries(name, value, encoded, v.allRules)
}

func (v *Validator) checkEntries(name string, value any, encoded string, entries []ruleEntry) *Issue {
	for _, e := range entries {
		err := e.rule(name, value, encoded)
		if err == nil {
			continue
		}
		is := &Issue{
			Code:    CodeRuleViolation,
			Message: err.Error(),
			Rule:    e.desc,
		}
		var mm *MismatchError
		if errors.As(err, &mm) {
			is.Code = CodeTypeMismatch
			is.Message = i18n.T(CodeTypeMismatch, map[string]string{"want": mm.Want, "got": mm.Got})
		}
		if value != nil {
			is.Type = fmt.Sprintf("%T", value)
		}
		return is
	}
	return nil
}
