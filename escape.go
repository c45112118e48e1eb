package goprop

import "strings"

const hexDigits = "0123456789ABCDEF"

// EscapeString escapes a raw string for embedding inside a quoted JSON-like
// fragment. Quote, backslash, backspace, form feed, newline, carriage return
// and tab use their named escapes; any other byte below 0x20 becomes a
// four-hex-digit \u escape. Bytes >= 0x20 pass through untouched, so UTF-8
// sequences survive as-is.
func EscapeString(s string) string {
	// Fast path: nothing to escape.
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '"' || c == '\\' || c < 0x20 {
			break
		}
		i++
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xF])
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

func quoteString(s string) string { return `"` + EscapeString(s) + `"` }
