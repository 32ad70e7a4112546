package rdf

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Escaper escapes the value of an IRI or literal for its text form.
type Escaper func(string) string

// Unicode surrogate pair constants
const (
	unicodeSurrogateHighStart = 0xD800
	unicodeSurrogateHighEnd   = 0xDBFF
	unicodeSurrogateLowStart  = 0xDC00
	unicodeSurrogateLowEnd    = 0xDFFF
	unicodeSurrogateBase      = 0x10000
)

const hexDigits = "0123456789ABCDEF"

// FormatTerm renders a term in its N-Triples form: <iri>, _:token,
// "literal"@lang or "literal"^^<datatype>. A nil term renders as "".
func FormatTerm(term Term) string {
	return formatTerm(term, EscapeString)
}

func formatTerm(term Term, escape Escaper) string {
	switch value := term.(type) {
	case nil:
		return ""
	case IRI:
		return formatIRI(value, escape)
	case BlankNode:
		return value.String()
	case Literal:
		quoted := `"` + escape(value.Lexical) + `"`
		if value.Lang != "" {
			return quoted + "@" + value.Lang
		}
		if !value.Datatype.IsZero() {
			return quoted + "^^" + formatIRI(value.Datatype, escape)
		}
		return quoted
	case TripleTerm:
		return value.String()
	default:
		return value.String()
	}
}

func formatIRI(iri IRI, escape Escaper) string {
	return "<" + escape(NormalizeIRI(iri.Value)) + ">"
}

// EscapeString escapes backslashes, double quotes and control characters
// so the result can sit between double quotes in N-Triples. Bytes that are
// not valid UTF-8 are kept as they are.
func EscapeString(s string) string {
	if !needsEscape(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 is copied through byte for byte.
			b.WriteByte(s[i])
			i++
			continue
		}
		i += size
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7F {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\\' || ch == '"' || ch < 0x20 || ch == 0x7F {
			return true
		}
	}
	return false
}

// NormalizeIRI percent-encodes the characters that may not appear raw
// inside <...>: space, control characters and <>"{}|^`\.
// Invalid UTF-8 bytes are percent-encoded as well. Existing escapes are kept.
func NormalizeIRI(value string) string {
	first := -1
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		if (r == utf8.RuneError && size == 1) || isIRIExcluded(r) {
			first = i
			break
		}
		i += size
	}
	if first < 0 {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 8)
	b.WriteString(value[:first])
	for i := first; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		if (r == utf8.RuneError && size == 1) || isIRIExcluded(r) {
			for _, ch := range []byte(value[i : i+size]) {
				b.WriteByte('%')
				b.WriteByte(hexDigits[ch>>4])
				b.WriteByte(hexDigits[ch&0x0F])
			}
		} else {
			b.WriteString(value[i : i+size])
		}
		i += size
	}
	return b.String()
}

func isIRIExcluded(r rune) bool {
	if r <= 0x20 || r == 0x7F {
		return true
	}
	switch r {
	case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
		return true
	}
	return false
}

// UnescapeString decodes escape sequences in RDF string literals.
// It handles simple escapes (\n, \t, etc.), Unicode escapes (\uXXXX), and Unicode long escapes (\UXXXXXXXX).
// Surrogate pairs are supported for \uXXXX sequences.
func UnescapeString(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var builder strings.Builder
	pos := 0
	for pos < len(s) {
		ch := s[pos]
		if ch != '\\' {
			builder.WriteByte(ch)
			pos++
			continue
		}
		if pos+1 >= len(s) {
			return "", fmt.Errorf("unterminated escape")
		}
		var advance int
		var err error
		switch next := s[pos+1]; next {
		case 'n', 't', 'r', 'b', 'f', '"', '\'', '\\':
			builder.WriteByte(simpleEscapes[next])
			advance = 2
		case 'u':
			advance, err = unescapeUnicodeEscape(&builder, s, pos)
		case 'U':
			advance, err = unescapeUnicodeLongEscape(&builder, s, pos)
		default:
			return "", fmt.Errorf("invalid escape sequence \\%c", next)
		}
		if err != nil {
			return "", err
		}
		pos += advance
	}
	return builder.String(), nil
}

var simpleEscapes = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', 'b': '\b', 'f': '\f',
	'"': '"', '\'': '\'', '\\': '\\',
}

// unescapeUnicodeEscape handles \uXXXX escape sequences, including surrogate pairs.
func unescapeUnicodeEscape(builder *strings.Builder, s string, pos int) (int, error) {
	if pos+6 > len(s) {
		return 0, fmt.Errorf("invalid escape sequence")
	}
	codePoint := decodeUChar(s[pos+2 : pos+6])
	if codePoint < 0 {
		return 0, fmt.Errorf("invalid escape sequence")
	}
	if codePoint >= unicodeSurrogateHighStart && codePoint <= unicodeSurrogateHighEnd {
		return unescapeSurrogatePair(builder, s, pos, codePoint)
	}
	if !isValidUnicodeCodePoint(codePoint) {
		return 0, fmt.Errorf("invalid escape sequence")
	}
	builder.WriteRune(codePoint)
	return 6, nil
}

// unescapeSurrogatePair handles surrogate pair escape sequences \uXXXX\uYYYY.
func unescapeSurrogatePair(builder *strings.Builder, s string, pos int, high rune) (int, error) {
	if pos+12 > len(s) || s[pos+6] != '\\' || s[pos+7] != 'u' {
		return 0, fmt.Errorf("invalid escape sequence")
	}
	low := decodeUChar(s[pos+8 : pos+12])
	if low < unicodeSurrogateLowStart || low > unicodeSurrogateLowEnd {
		return 0, fmt.Errorf("invalid escape sequence")
	}
	combined := unicodeSurrogateBase + ((high - unicodeSurrogateHighStart) << 10) + (low - unicodeSurrogateLowStart)
	builder.WriteRune(combined)
	return 12, nil
}

// unescapeUnicodeLongEscape handles \UXXXXXXXX escape sequences.
func unescapeUnicodeLongEscape(builder *strings.Builder, s string, pos int) (int, error) {
	if pos+10 > len(s) {
		return 0, fmt.Errorf("invalid escape sequence")
	}
	codePoint := decodeUChar(s[pos+2 : pos+10])
	if codePoint < 0 || !isValidUnicodeCodePoint(codePoint) {
		return 0, fmt.Errorf("invalid escape sequence")
	}
	builder.WriteRune(codePoint)
	return 10, nil
}

func isValidUnicodeCodePoint(codePoint rune) bool {
	if codePoint > 0x10FFFF {
		return false
	}
	if codePoint >= unicodeSurrogateHighStart && codePoint <= unicodeSurrogateLowEnd {
		return false
	}
	return true
}

// parseHexDigit converts a single hex digit byte to its integer value.
func parseHexDigit(hex byte) (int, bool) {
	switch {
	case hex >= '0' && hex <= '9':
		return int(hex - '0'), true
	case hex >= 'a' && hex <= 'f':
		return int(hex-'a') + 10, true
	case hex >= 'A' && hex <= 'F':
		return int(hex-'A') + 10, true
	default:
		return 0, false
	}
}

func decodeUChar(hexStr string) rune {
	if len(hexStr) != 4 && len(hexStr) != 8 {
		return -1
	}
	var codePoint rune
	for i := 0; i < len(hexStr); i++ {
		digit, ok := parseHexDigit(hexStr[i])
		if !ok {
			return -1
		}
		codePoint = codePoint*16 + rune(digit)
	}
	return codePoint
}
