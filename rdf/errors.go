package rdf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a statement that is not present.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeGraphNotFound indicates a graph name unknown to a dataset.
	ErrCodeGraphNotFound ErrorCode = "GRAPH_NOT_FOUND"
	// ErrCodeInvalidArgument indicates a malformed argument.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeUnsupportedType indicates a Go value with no literal conversion.
	ErrCodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"
	// ErrCodeUnresolvedPrefix indicates a prefixed name whose prefix is unknown.
	ErrCodeUnresolvedPrefix ErrorCode = "UNRESOLVED_PREFIX"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeUnknown is returned for errors that did not originate in this package.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrNotFound indicates the statement is not a member of the graph.
	ErrNotFound = errors.New("rdf: statement not found")
	// ErrGraphNotFound indicates the dataset holds no graph with that name.
	ErrGraphNotFound = errors.New("rdf: graph not found")
	// ErrInvalidArgument indicates a malformed argument.
	ErrInvalidArgument = errors.New("rdf: invalid argument")
	// ErrUnsupportedType indicates a Go value with no literal conversion.
	ErrUnsupportedType = errors.New("rdf: unsupported literal value type")
	// ErrUnresolvedPrefix indicates a prefixed name whose prefix has no mapping and no default.
	ErrUnresolvedPrefix = errors.New("rdf: unresolved prefix")
)

// Code returns the error code for an error.
// Returns empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, ErrGraphNotFound):
		return ErrCodeGraphNotFound
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, ErrUnsupportedType):
		return ErrCodeUnsupportedType
	case errors.Is(err, ErrUnresolvedPrefix):
		return ErrCodeUnresolvedPrefix
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return ErrCodeParseError
	}
	return ErrCodeUnknown
}

// ParseError provides structured context for parse failures.
type ParseError struct {
	Format    string // Format name (e.g., "ntriples", "profile")
	Statement string // Offending statement or input excerpt
	Line      int    // 1-based line number (0 if unknown)
	Column    int    // 1-based column number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())

	if excerpt := e.formatExcerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}
	return msg.String()
}

// formatExcerpt formats a readable excerpt of the statement around the error position.
func (e *ParseError) formatExcerpt() string {
	if e.Statement == "" {
		return ""
	}

	const maxExcerptLen = 80
	const contextLen = 40

	if e.Column > 0 {
		start := e.Column - 1
		excerptStart := max(start-contextLen, 0)
		excerptEnd := min(start+contextLen, len(e.Statement))
		if excerptStart > excerptEnd {
			excerptStart = excerptEnd
		}

		excerpt := e.Statement[excerptStart:excerptEnd]
		caretPos := start - excerptStart
		if excerptStart > 0 {
			excerpt = "..." + excerpt
			caretPos += 3
		}
		if excerptEnd < len(e.Statement) {
			excerpt += "..."
		}
		caretPos = max(min(caretPos, len(excerpt)-1), 0)

		return excerpt + "\n  " + strings.Repeat(" ", caretPos) + "^"
	}

	if len(e.Statement) > maxExcerptLen {
		return e.Statement[:maxExcerptLen] + "..."
	}
	return e.Statement
}

func (e *ParseError) Unwrap() error { return e.Err }
