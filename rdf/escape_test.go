package rdf

import "testing"

func TestEscapeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`back\slash`, `back\\slash`},
		{`say "hi"`, `say \"hi\"`},
		{"a\nb\rc\td", `a\nb\rc\td`},
		{"bell\x07", `bell\u0007`},
		{"del\x7f", `del\u007F`},
		{"é😀", "é😀"},
		{"a\xff\"b", "a\xff\\\"b"},
		{"\xfe\n\xff", "\xfe\\n\xff"},
	}
	for _, tt := range tests {
		if got := EscapeString(tt.in); got != tt.want {
			t.Errorf("EscapeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnescapeString(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "plain", false},
		{`a\nb`, "a\nb", false},
		{`\"\'\\`, `"'\`, false},
		{`\u00E9`, "é", false},
		{`end\u0041`, "endA", false},
		{`\U0001F600`, "😀", false},
		{`\uD83D\uDE00`, "😀", false},
		{`\uD83D`, "", true},
		{`\uDE00`, "", true},
		{`\U00110000`, "", true},
		{`\u12`, "", true},
		{`\uZZZZ`, "", true},
		{`\q`, "", true},
		{`trailing\`, "", true},
	}
	for _, tt := range tests {
		got, err := UnescapeString(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("UnescapeString(%q) expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("UnescapeString(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("UnescapeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, s := range []string{"", "simple", "quote\" and \\ slash", "ctrl\x01\x1f", "new\nline\ttab", "ünïcödé", "a\xff\"b", "\xc3\\\x28"} {
		got, err := UnescapeString(EscapeString(s))
		if err != nil {
			t.Fatalf("round trip of %q failed: %v", s, err)
		}
		if got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestNormalizeIRI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://example.org/a", "http://example.org/a"},
		{"http://example.org/a b", "http://example.org/a%20b"},
		{"http://example.org/{x}", "http://example.org/%7Bx%7D"},
		{"http://example.org/a%20b", "http://example.org/a%20b"},
		{"http://example.org/é", "http://example.org/é"},
		{"http://example.org/\xff", "http://example.org/%FF"},
		{"http://example.org/<a|b>", "http://example.org/%3Ca%7Cb%3E"},
	}
	for _, tt := range tests {
		if got := NormalizeIRI(tt.in); got != tt.want {
			t.Errorf("NormalizeIRI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
