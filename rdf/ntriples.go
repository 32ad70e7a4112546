package rdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/btree"
)

const (
	formatNTriples = "ntriples"
	formatNQuads   = "nquads"
)

// QuadHandler receives statements decoded by ParseNQuads.
type QuadHandler func(Quad) error

// ReadNTriples decodes an N-Triples document into g.
// Blank node labels are scoped to this call unless OptPreserveBlankNodeLabels is given.
func ReadNTriples(r io.Reader, g *Graph, opts ...Option) error {
	options := applyOptions(opts)
	count := 0
	err := parseStatements(r, formatNTriples, options, func(q Quad) error {
		g.Add(q.ToTriple())
		count++
		return nil
	})
	options.Logger.WithFields(logrus.Fields{
		"format":     formatNTriples,
		"statements": count,
		"graph":      graphLabel(g.Name()),
	}).Debug("read statements")
	return err
}

// ReadNQuads decodes an N-Quads document into ds.
// Blank node labels are scoped to this call unless OptPreserveBlankNodeLabels is given.
func ReadNQuads(r io.Reader, ds *Dataset, opts ...Option) error {
	options := applyOptions(opts)
	count := 0
	err := parseStatements(r, formatNQuads, options, func(q Quad) error {
		ds.Add(q)
		count++
		return nil
	})
	options.Logger.WithFields(logrus.Fields{
		"format":     formatNQuads,
		"statements": count,
	}).Debug("read statements")
	return err
}

// ParseNQuads decodes an N-Quads document and streams each statement to
// handler. N-Triples input is accepted as N-Quads in the default graph.
func ParseNQuads(r io.Reader, handler QuadHandler, opts ...Option) error {
	return parseStatements(r, formatNQuads, applyOptions(opts), handler)
}

func parseStatements(r io.Reader, format string, opts Options, handler QuadHandler) error {
	reader := bufio.NewReader(r)
	scope := newBlankNodeScope(opts.BlankNodes)
	if opts.PreserveBlankNodeLabels {
		scope = &blankNodeScope{}
	}
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && errors.Is(err, io.EOF) {
			return nil
		}
		lineNo++
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			quad, perr := parseNTLine(trimmed, format, scope)
			if perr != nil {
				perr.Line = lineNo
				return perr
			}
			if herr := handler(quad); herr != nil {
				return herr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

func parseNTLine(line string, format string, scope *blankNodeScope) (Quad, *ParseError) {
	cursor := &ntCursor{input: line, format: format, scope: scope}
	quad, err := cursor.parseStatement()
	if err != nil {
		return Quad{}, &ParseError{
			Format:    format,
			Statement: line,
			Column:    cursor.pos + 1,
			Err:       err,
		}
	}
	return quad, nil
}

type ntCursor struct {
	input  string
	pos    int
	format string
	scope  *blankNodeScope
}

func (c *ntCursor) parseStatement() (Quad, error) {
	subject, err := c.parseTerm(false)
	if err != nil {
		return Quad{}, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return Quad{}, err
	}
	object, err := c.parseTerm(true)
	if err != nil {
		return Quad{}, err
	}

	var graph Term
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] != '.' {
		if c.format == formatNTriples {
			return Quad{}, c.errorf("graph term not allowed in N-Triples")
		}
		graph, err = c.parseTerm(false)
		if err != nil {
			return Quad{}, err
		}
	}
	if !c.consume('.') {
		return Quad{}, c.errorf("expected '.' at end of statement")
	}
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] != '#' {
		return Quad{}, c.errorf("unexpected content after '.'")
	}
	return Quad{S: subject, P: predicate, O: object, G: graph}, nil
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "<<"):
		return c.parseTripleTerm()
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token %q", c.input[c.pos])
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	if !c.consume('<') {
		return IRI{}, c.errorf("expected IRI")
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		if c.input[c.pos] == ' ' {
			return IRI{}, c.errorf("space in IRI")
		}
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, c.errorf("unterminated IRI")
	}
	value, err := UnescapeString(c.input[start:c.pos])
	if err != nil {
		return IRI{}, c.errorf("%v", err)
	}
	c.pos++
	return IRI{Value: value}, nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.skipWS()
	c.pos += len("_:")
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	// A label may contain '.' but not end with one.
	for c.pos > start && c.input[c.pos-1] == '.' {
		c.pos--
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node label missing")
	}
	return c.scope.node(c.input[start:c.pos]), nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	if !c.consume('"') {
		return Literal{}, c.errorf("expected literal")
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '"' {
		if c.input[c.pos] == '\\' {
			c.pos++
		}
		c.pos++
	}
	if c.pos >= len(c.input) {
		return Literal{}, c.errorf("unterminated literal")
	}
	lexical, err := UnescapeString(c.input[start:c.pos])
	if err != nil {
		return Literal{}, c.errorf("%v", err)
	}
	c.pos++

	if c.pos < len(c.input) && c.input[c.pos] == '@' {
		c.pos++
		langStart := c.pos
		for c.pos < len(c.input) && isLangChar(c.input[c.pos]) {
			c.pos++
		}
		if langStart == c.pos {
			return Literal{}, c.errorf("language tag missing")
		}
		return NewLangLiteral(lexical, c.input[langStart:c.pos]), nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return NewTypedLiteral(lexical, dt), nil
	}
	return NewLiteral(lexical), nil
}

func (c *ntCursor) parseTripleTerm() (Term, error) {
	c.pos += len("<<")
	subject, err := c.parseTerm(false)
	if err != nil {
		return nil, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return nil, err
	}
	object, err := c.parseTerm(true)
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], ">>") {
		return nil, c.errorf("expected '>>'")
	}
	c.pos += len(">>")
	return TripleTerm{S: subject, P: predicate, O: object}, nil
}

func (c *ntCursor) errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '<', '"', '>':
		return true
	default:
		return false
	}
}

func isLangChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-'
}

// WriteNTriples writes every triple of g as N-Triples, one statement per
// line in lexicographic order.
func WriteNTriples(w io.Writer, g *Graph) error {
	return writeSorted(w, func(add func(string)) {
		for t := range g.All() {
			add(t.String())
		}
	})
}

// WriteNQuads writes every quad of ds as N-Quads, one statement per line in
// lexicographic order. Quads in the default graph have no graph term.
func WriteNQuads(w io.Writer, ds *Dataset) error {
	return WriteQuads(w, ds.All())
}

// WriteQuads writes the quads produced by seq as sorted N-Quads lines.
// Duplicate statements are written once.
func WriteQuads(w io.Writer, seq iter.Seq[Quad]) error {
	return writeSorted(w, func(add func(string)) {
		for q := range seq {
			add(q.String())
		}
	})
}

func writeSorted(w io.Writer, fill func(add func(string))) error {
	lines := btree.NewBTreeG[string](func(a, b string) bool { return a < b })
	fill(func(line string) { lines.Set(line) })

	writer := bufio.NewWriter(w)
	var err error
	lines.Scan(func(line string) bool {
		_, err = writer.WriteString(line)
		return err == nil
	})
	if err != nil {
		return err
	}
	return writer.Flush()
}

// ParseTerm reads a single term written as <iri>, _:token, or a quoted
// literal with optional @lang or ^^<datatype>. Any other text is passed to
// resolver, which may be nil. Blank node tokens are kept verbatim, so
// "_:b1" parses to BlankNode{ID: "b1"}.
func ParseTerm(text string, resolver Resolver) (Term, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty term", ErrInvalidArgument)
	}
	switch {
	case text[0] == '<', text[0] == '"', strings.HasPrefix(text, "_:"):
		cursor := &ntCursor{input: text, scope: &blankNodeScope{}}
		term, err := cursor.parseTerm(true)
		if err != nil {
			return nil, &ParseError{Format: "term", Statement: text, Column: cursor.pos + 1, Err: err}
		}
		cursor.skipWS()
		if cursor.pos != len(text) {
			return nil, &ParseError{Format: "term", Statement: text, Column: cursor.pos + 1, Err: errors.New("trailing input")}
		}
		return term, nil
	case resolver == nil:
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedPrefix, text)
	default:
		return resolver.Resolve(text)
	}
}
