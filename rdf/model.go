package rdf

import "fmt"

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
	// TermTriple represents an RDF-star triple term.
	TermTriple
)

func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlankNode:
		return "blank"
	case TermLiteral:
		return "literal"
	case TermTriple:
		return "triple"
	default:
		return fmt.Sprintf("TermKind(%d)", uint8(k))
	}
}

// Term is a value that can appear in RDF statements.
//
// Every concrete term is a comparable value type, so terms can be used
// directly as map keys and compared with ==.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// IsZero reports whether the IRI is empty.
func (i IRI) IsZero() bool { return i.Value == "" }

// TripleTerm is an RDF-star quoted triple term.
type TripleTerm struct {
	// S is the subject of the quoted triple.
	S Term
	// P is the predicate of the quoted triple.
	P Term
	// O is the object of the quoted triple.
	O Term
}

// Kind returns TermTriple.
func (t TripleTerm) Kind() TermKind { return TermTriple }

// String returns a string representation of the triple term.
func (t TripleTerm) String() string {
	return "<< " + FormatTerm(t.S) + " " + FormatTerm(t.P) + " " + FormatTerm(t.O) + " >>"
}

// Triple is an RDF triple.
//
// No constraint on term kinds is enforced: a literal subject is stored
// like any other term.
type Triple struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P Term
	// O is the object.
	O Term
}

// NewTriple returns the triple (s, p, o).
func NewTriple(s, p, o Term) Triple {
	return Triple{S: s, P: p, O: o}
}

// String renders the triple as an N-Triples line, including the trailing newline.
func (t Triple) String() string {
	return FormatTerm(t.S) + " " + FormatTerm(t.P) + " " + FormatTerm(t.O) + " .\n"
}

// ToQuadInGraph converts a triple to a quad in the given graph.
// A nil graph places the quad in the default graph.
func (t Triple) ToQuadInGraph(graph Term) Quad {
	return Quad{S: t.S, P: t.P, O: t.O, G: graph}
}

// Quad is an RDF quad (triple + optional graph name).
type Quad struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P Term
	// O is the object.
	O Term
	// G is the graph name, or nil for the default graph.
	G Term
}

// NewQuad returns the quad (s, p, o, g).
func NewQuad(s, p, o, g Term) Quad {
	return Quad{S: s, P: p, O: o, G: g}
}

// IsZero reports whether the quad has no subject/predicate/object.
func (q Quad) IsZero() bool {
	return q.S == nil && q.P == nil && q.O == nil && q.G == nil
}

// ToTriple extracts the triple from a quad (ignores graph).
func (q Quad) ToTriple() Triple {
	return Triple{S: q.S, P: q.P, O: q.O}
}

// InDefaultGraph reports whether the quad is in the default graph (no named graph).
func (q Quad) InDefaultGraph() bool {
	return q.G == nil
}

// String renders the quad as an N-Quads line, including the trailing newline.
// The graph term is omitted for the default graph.
func (q Quad) String() string {
	line := FormatTerm(q.S) + " " + FormatTerm(q.P) + " " + FormatTerm(q.O)
	if q.G != nil {
		line += " " + FormatTerm(q.G)
	}
	return line + " .\n"
}
