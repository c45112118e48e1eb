package goprop_test

import (
	"testing"

	goprop "github.com/reoring/goprop"
)

func TestEscapeString_Table(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{``, ``},
		{`plain`, `plain`},
		{`with "quotes"`, `with \"quotes\"`},
		{`back\slash`, `back\\slash`},
		{"tab\there", `tab\there`},
		{"line\nbreak", `line\nbreak`},
		{"cr\rlf", `cr\rlf`},
		{"bs\bff\f", `bs\bff\f`},
		{string([]byte{0x00}), `\u0000`},
		{string([]byte{0x01, 0x1F}), `\u0001\u001F`},
		{"héllo wörld", "héllo wörld"}, // UTF-8 passthrough
		{"日本語", "日本語"},
	}
	for _, tc := range cases {
		if got := goprop.EscapeString(tc.in); got != tc.want {
			t.Errorf("EscapeString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeString_IdentityOnSafeText(t *testing.T) {
	safe := []string{"", "abc", "already safe text 123", "ü€日", "a.b-c_d"}
	for _, s := range safe {
		if got := goprop.EscapeString(s); got != s {
			t.Errorf("expected identity for %q, got %q", s, got)
		}
		// Escaping safe text twice is still the identity.
		if got := goprop.EscapeString(goprop.EscapeString(s)); got != s {
			t.Errorf("double escape changed %q to %q", s, got)
		}
	}
}

func TestEscapeString_AllControlBytes(t *testing.T) {
	for c := byte(0); c < 0x20; c++ {
		out := goprop.EscapeString(string([]byte{c}))
		if len(out) < 2 || out[0] != '\\' {
			t.Fatalf("byte 0x%02X not escaped: %q", c, out)
		}
	}
}
