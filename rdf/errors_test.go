package rdf

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ""},
		{ErrNotFound, ErrCodeNotFound},
		{fmt.Errorf("wrapped: %w", ErrGraphNotFound), ErrCodeGraphNotFound},
		{ErrInvalidArgument, ErrCodeInvalidArgument},
		{ErrUnsupportedType, ErrCodeUnsupportedType},
		{ErrUnresolvedPrefix, ErrCodeUnresolvedPrefix},
		{&ParseError{Format: "nquads", Err: errors.New("boom")}, ErrCodeParseError},
		{errors.New("other"), ErrCodeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err), "error %v", tt.err)
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{
		Format:    "nquads",
		Statement: "<http://ex/s> <http://ex/p> oops .",
		Line:      3,
		Column:    29,
		Err:       errors.New("unexpected token 'o'"),
	}
	msg := err.Error()
	lines := strings.Split(msg, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "nquads:3:29: unexpected token 'o'", lines[0])
	assert.Equal(t, "  "+err.Statement, lines[1])
	assert.Equal(t, strings.Repeat(" ", 2+28)+"^", lines[2])
}

func TestParseErrorWithoutPosition(t *testing.T) {
	err := &ParseError{Format: "profile", Err: errors.New("bad yaml")}
	assert.Equal(t, "profile: bad yaml", err.Error())
}

func TestParseErrorExcerptIsTruncated(t *testing.T) {
	statement := strings.Repeat("a", 100) + "X" + strings.Repeat("b", 100)
	err := &ParseError{Format: "ntriples", Statement: statement, Line: 1, Column: 101, Err: errors.New("bad")}
	lines := strings.Split(err.Error(), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "  ..."))
	assert.True(t, strings.HasSuffix(lines[1], "..."))
	caret := strings.Index(lines[2], "^")
	assert.Equal(t, byte('X'), lines[1][caret])
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	assert.ErrorIs(t, &ParseError{Format: "term", Err: inner}, inner)
}
