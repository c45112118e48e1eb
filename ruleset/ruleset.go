// Package ruleset builds goprop validators from a declarative YAML
// description, so rule registries can live next to deployment config instead
// of code. Only rule compilation happens here; reading bytes from files or
// elsewhere is the caller's concern.
package ruleset

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	goprop "github.com/reoring/goprop"
	"github.com/reoring/goprop/rules"
)

// Spec declares the rules attached to one scope. Unset fields register
// nothing.
type Spec struct {
	NonEmpty   bool     `yaml:"non_empty"`
	MaxLength  *int     `yaml:"max_length"`
	MinLength  *int     `yaml:"min_length"`
	Pattern    string   `yaml:"pattern"`
	OneOf      []string `yaml:"one_of"`
	Min        *float64 `yaml:"min"`
	Max        *float64 `yaml:"max"`
	WellFormed bool     `yaml:"well_formed"`
}

// File is the top-level YAML document:
//
//	properties:
//	  name: {max_length: 3, pattern: "^[A-Z]"}
//	kinds:
//	  string: {max_length: 10}
//	all:
//	  well_formed: true
type File struct {
	Properties map[string]Spec `yaml:"properties"`
	Kinds      map[string]Spec `yaml:"kinds"`
	All        *Spec           `yaml:"all"`
}

// FromYAML compiles a YAML ruleset into a fresh Validator. Unknown fields,
// unknown kind names and invalid patterns are errors; no partial registry is
// returned.
func FromYAML(b []byte) (*goprop.Validator, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("ruleset: parse yaml: %w", err)
	}

	v := goprop.NewValidator()

	for _, name := range sortedKeys(f.Kinds) {
		k, ok := goprop.KindFromName(name)
		if !ok {
			return nil, fmt.Errorf("ruleset: unknown kind %q", name)
		}
		compiled, err := compile(f.Kinds[name])
		if err != nil {
			return nil, fmt.Errorf("ruleset: kind %q: %w", name, err)
		}
		for _, c := range compiled {
			v.ForKind(k, c.rule, c.desc)
		}
	}

	for _, name := range sortedKeys(f.Properties) {
		compiled, err := compile(f.Properties[name])
		if err != nil {
			return nil, fmt.Errorf("ruleset: property %q: %w", name, err)
		}
		for _, c := range compiled {
			v.ForProperty(name, c.rule, c.desc)
		}
	}

	if f.All != nil {
		compiled, err := compile(*f.All)
		if err != nil {
			return nil, fmt.Errorf("ruleset: all: %w", err)
		}
		for _, c := range compiled {
			v.ForAll(c.rule, c.desc)
		}
	}

	return v, nil
}

type compiledRule struct {
	rule goprop.Rule
	desc string
}

func compile(s Spec) ([]compiledRule, error) {
	var out []compiledRule
	if s.NonEmpty {
		out = append(out, compiledRule{rules.NonEmpty(), "non_empty"})
	}
	if s.MaxLength != nil {
		out = append(out, compiledRule{rules.MaxLen(*s.MaxLength), fmt.Sprintf("max_length %d", *s.MaxLength)})
	}
	if s.MinLength != nil {
		out = append(out, compiledRule{rules.MinLen(*s.MinLength), fmt.Sprintf("min_length %d", *s.MinLength)})
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		out = append(out, compiledRule{rules.Match(re), "pattern " + s.Pattern})
	}
	if len(s.OneOf) > 0 {
		out = append(out, compiledRule{rules.OneOf(s.OneOf...), fmt.Sprintf("one_of %v", s.OneOf)})
	}
	if s.Min != nil {
		out = append(out, compiledRule{rules.Min(*s.Min), fmt.Sprintf("min %v", *s.Min)})
	}
	if s.Max != nil {
		out = append(out, compiledRule{rules.Max(*s.Max), fmt.Sprintf("max %v", *s.Max)})
	}
	if s.WellFormed {
		out = append(out, compiledRule{rules.WellFormed(), "well_formed"})
	}
	return out, nil
}

func sortedKeys(m map[string]Spec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
