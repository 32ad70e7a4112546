package rdf

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// XSD namespace and the datatypes LiteralOf assigns.
const XSDNamespace Namespace = "http://www.w3.org/2001/XMLSchema#"

var (
	XSDString       = XSDNamespace.Term("string")
	XSDBoolean      = XSDNamespace.Term("boolean")
	XSDInteger      = XSDNamespace.Term("integer")
	XSDDouble       = XSDNamespace.Term("double")
	XSDDateTime     = XSDNamespace.Term("dateTime")
	XSDDuration     = XSDNamespace.Term("duration")
	XSDBase64Binary = XSDNamespace.Term("base64Binary")
)

// Literal represents an RDF literal.
//
// An empty Lang and a zero Datatype mean "absent". A well-formed literal
// sets at most one of them; Validate reports literals that set both.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// NewLiteral returns a plain literal.
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewLangLiteral returns a language-tagged literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// NewTypedLiteral returns a literal with an explicit datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// LiteralOf converts a Go value into a typed literal.
//
// Supported kinds are string, bool, every signed and unsigned integer type,
// float32, float64, time.Time, time.Duration and []byte. Strings become
// plain literals. Any other type fails with ErrUnsupportedType.
func LiteralOf(value any) (Literal, error) {
	switch v := value.(type) {
	case string:
		return Literal{Lexical: v}, nil
	case bool:
		return NewTypedLiteral(strconv.FormatBool(v), XSDBoolean), nil
	case int:
		return integerLiteral(int64(v)), nil
	case int8:
		return integerLiteral(int64(v)), nil
	case int16:
		return integerLiteral(int64(v)), nil
	case int32:
		return integerLiteral(int64(v)), nil
	case int64:
		return integerLiteral(v), nil
	case uint:
		return unsignedLiteral(uint64(v)), nil
	case uint8:
		return unsignedLiteral(uint64(v)), nil
	case uint16:
		return unsignedLiteral(uint64(v)), nil
	case uint32:
		return unsignedLiteral(uint64(v)), nil
	case uint64:
		return unsignedLiteral(v), nil
	case float32:
		return NewTypedLiteral(formatXSDDouble(float64(v), 32), XSDDouble), nil
	case float64:
		return NewTypedLiteral(formatXSDDouble(v, 64), XSDDouble), nil
	case time.Time:
		return NewTypedLiteral(v.Format(time.RFC3339Nano), XSDDateTime), nil
	case time.Duration:
		return NewTypedLiteral(formatXSDDuration(v), XSDDuration), nil
	case []byte:
		return NewTypedLiteral(base64.StdEncoding.EncodeToString(v), XSDBase64Binary), nil
	default:
		return Literal{}, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// MustLiteralOf is like LiteralOf but panics on unsupported types.
func MustLiteralOf(value any) Literal {
	lit, err := LiteralOf(value)
	if err != nil {
		panic(err)
	}
	return lit
}

func integerLiteral(v int64) Literal {
	return NewTypedLiteral(strconv.FormatInt(v, 10), XSDInteger)
}

func unsignedLiteral(v uint64) Literal {
	return NewTypedLiteral(strconv.FormatUint(v, 10), XSDInteger)
}

// formatXSDDouble writes the xsd:double lexical form, which spells the
// special values INF, -INF and NaN.
func formatXSDDouble(v float64, bitSize int) string {
	switch {
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, bitSize)
}

// formatXSDDuration renders d as an xsd:duration restricted to the day/time part.
func formatXSDDuration(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}
	sign := ""
	// The magnitude is taken as uint64 so math.MinInt64 does not overflow.
	ns := uint64(d)
	if d < 0 {
		sign = "-"
		ns = uint64(-(d + 1)) + 1
	}
	hours := ns / uint64(time.Hour)
	ns -= hours * uint64(time.Hour)
	minutes := ns / uint64(time.Minute)
	ns -= minutes * uint64(time.Minute)

	out := sign + "PT"
	if hours > 0 {
		out += strconv.FormatUint(hours, 10) + "H"
	}
	if minutes > 0 {
		out += strconv.FormatUint(minutes, 10) + "M"
	}
	if ns > 0 {
		out += strconv.FormatUint(ns/uint64(time.Second), 10)
		if frac := ns % uint64(time.Second); frac > 0 {
			out += "." + strings.TrimRight(fmt.Sprintf("%09d", frac), "0")
		}
		out += "S"
	}
	return out
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns the lexical form, matching how a literal reads in prose.
// Use FormatTerm for the N-Triples form.
func (l Literal) String() string { return l.Lexical }

// LangMatch reports whether two language tags name the same language.
// Primary subtags must agree; a tag without a subtag matches any of its
// regional forms, so "en" matches "en-US" but "en-US" does not match
// "en-GB". Comparison is case-insensitive. Two empty tags match; an empty
// tag never matches a non-empty one.
func LangMatch(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	primaryA, subA, _ := strings.Cut(a, "-")
	primaryB, subB, _ := strings.Cut(b, "-")
	if !strings.EqualFold(primaryA, primaryB) {
		return false
	}
	return subA == "" || subB == "" || strings.EqualFold(subA, subB)
}

// Validate reports literals carrying both a language tag and a datatype.
func (l Literal) Validate() error {
	if l.Lang != "" && !l.Datatype.IsZero() {
		return fmt.Errorf("%w: literal %q has both language %q and datatype <%s>",
			ErrInvalidArgument, l.Lexical, l.Lang, l.Datatype.Value)
	}
	return nil
}
