// Package rules provides reusable validation rule constructors for goprop
// validators. Each constructor returns a goprop.Rule closure; register them
// with Validator.ForKind, ForProperty or ForAll.
package rules

import (
	"fmt"
	"regexp"

	j "github.com/goccy/go-json"

	goprop "github.com/reoring/goprop"
)

// NonEmpty fails for empty strings.
func NonEmpty() goprop.Rule {
	return goprop.TypedRule(func(name string, v string, encoded string) error {
		if v == "" {
			return fmt.Errorf("must not be empty")
		}
		return nil
	})
}

// MaxLen fails for strings longer than n bytes.
func MaxLen(n int) goprop.Rule {
	return goprop.TypedRule(func(name string, v string, encoded string) error {
		if len(v) > n {
			return fmt.Errorf("length %d exceeds maximum %d", len(v), n)
		}
		return nil
	})
}

// MinLen fails for strings shorter than n bytes.
func MinLen(n int) goprop.Rule {
	return goprop.TypedRule(func(name string, v string, encoded string) error {
		if len(v) < n {
			return fmt.Errorf("length %d below minimum %d", len(v), n)
		}
		return nil
	})
}

// Match fails for strings the pattern does not match.
func Match(re *regexp.Regexp) goprop.Rule {
	return goprop.TypedRule(func(name string, v string, encoded string) error {
		if !re.MatchString(v) {
			return fmt.Errorf("does not match pattern %s", re)
		}
		return nil
	})
}

// OneOf fails for strings outside the allowed set.
func OneOf(allowed ...string) goprop.Rule {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return goprop.TypedRule(func(name string, v string, encoded string) error {
		if _, ok := set[v]; !ok {
			return fmt.Errorf("%q is not one of the allowed values", v)
		}
		return nil
	})
}

// Min fails for numeric values below limit. Any signed, unsigned or float
// value is accepted; other types report a mismatch.
func Min(limit float64) goprop.Rule {
	return func(name string, value any, encoded string) error {
		f, err := numberOf(value)
		if err != nil {
			return err
		}
		if f < limit {
			return fmt.Errorf("%v is below minimum %v", f, limit)
		}
		return nil
	}
}

// Max fails for numeric values above limit.
func Max(limit float64) goprop.Rule {
	return func(name string, value any, encoded string) error {
		f, err := numberOf(value)
		if err != nil {
			return err
		}
		if f > limit {
			return fmt.Errorf("%v exceeds maximum %v", f, limit)
		}
		return nil
	}
}

// Between fails for numeric values outside [lo, hi].
func Between(lo, hi float64) goprop.Rule {
	return func(name string, value any, encoded string) error {
		f, err := numberOf(value)
		if err != nil {
			return err
		}
		if f < lo || f > hi {
			return fmt.Errorf("%v is outside [%v, %v]", f, lo, hi)
		}
		return nil
	}
}

// WellFormed fails when the encoded fragment is not parseable JSON. Useful
// as a wildcard rule to assert every committed fragment stays embeddable.
func WellFormed() goprop.Rule {
	return func(name string, value any, encoded string) error {
		if !j.Valid([]byte(encoded)) {
			return fmt.Errorf("encoded fragment is not well-formed JSON")
		}
		return nil
	}
}

func numberOf(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case uintptr:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	}
	return 0, &goprop.MismatchError{Want: "number", Got: fmt.Sprintf("%T", v)}
}
