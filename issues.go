package goprop

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnsupportedType = "unsupported_type"
	CodeRuleViolation   = "rule_violation"
	CodeTypeMismatch    = "type_mismatch"
	CodeMaxDepth        = "max_depth"
)

// Issue represents a single recorded problem with one property.
type Issue struct {
	Path    string // dotted property path (for example: addr.city)
	Code    string // one of the codes listed above
	Message string
	Type    string // dynamic type of the offending value, when known
	// Params carries structured parameters (e.g., {"max":3, "got":5})
	// for diagnostics and observability.
	Params map[string]any
	// Rule optionally records the description of the rule that produced
	// this issue.
	Rule string
}

// Issues is a collection of recorded problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Report renders every issue as one human-readable line.
func (iss Issues) Report() string {
	b := &strings.Builder{}
	for _, it := range iss {
		fmt.Fprintf(b, "property '%s': %s", it.Path, it.Message)
		if it.Type != "" {
			fmt.Fprintf(b, " (type: %s)", it.Type)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// MismatchError reports that a typed rule received a value of the wrong
// dynamic type. Rules return it instead of panicking; the pipeline records it
// as a type_mismatch validation failure for the property.
type MismatchError struct {
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("type mismatch: rule expects %s, got %s", e.Want, e.Got)
}
