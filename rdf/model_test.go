package rdf

import "testing"

func TestTermKindsAndStrings(t *testing.T) {
	iri := IRI{Value: "http://example.org/s"}
	if iri.Kind() != TermIRI {
		t.Fatalf("expected IRI kind")
	}
	if iri.String() != "http://example.org/s" {
		t.Fatalf("unexpected IRI string: %s", iri.String())
	}

	blank := BlankNode{ID: "b1"}
	if blank.Kind() != TermBlankNode {
		t.Fatalf("expected blank node kind")
	}
	if blank.String() != "_:b1" {
		t.Fatalf("unexpected blank node string: %s", blank.String())
	}

	lit := Literal{Lexical: "plain"}
	if lit.Kind() != TermLiteral {
		t.Fatalf("expected literal kind")
	}
	if lit.String() != "plain" {
		t.Fatalf("unexpected literal string: %s", lit.String())
	}

	tt := TripleTerm{S: iri, P: IRI{Value: "http://example.org/p"}, O: lit}
	if tt.Kind() != TermTriple {
		t.Fatalf("expected triple term kind")
	}
	if tt.String() != `<< <http://example.org/s> <http://example.org/p> "plain" >>` {
		t.Fatalf("unexpected triple term string: %s", tt.String())
	}

	if TermLiteral.String() != "literal" {
		t.Fatalf("unexpected kind name: %s", TermLiteral)
	}
}

func TestFormatTerm(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{IRI{Value: "http://example.org/s"}, "<http://example.org/s>"},
		{IRI{Value: "http://example.org/a b"}, "<http://example.org/a%20b>"},
		{BlankNode{ID: "x"}, "_:x"},
		{NewLiteral("v"), `"v"`},
		{NewLiteral("say \"hi\"\n"), `"say \"hi\"\n"`},
		{NewLangLiteral("hi", "en"), `"hi"@en`},
		{NewTypedLiteral("1", XSDInteger), `"1"^^<http://www.w3.org/2001/XMLSchema#integer>`},
		{Literal{Lexical: "both", Lang: "en", Datatype: XSDString}, `"both"@en`},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := FormatTerm(tt.term); got != tt.want {
			t.Errorf("FormatTerm(%#v) = %s, want %s", tt.term, got, tt.want)
		}
	}
}

func TestTripleAndQuadText(t *testing.T) {
	s := IRI{Value: "http://ex/s"}
	p := IRI{Value: "http://ex/p"}
	g := IRI{Value: "http://ex/g"}
	triple := NewTriple(s, p, NewLiteral("v"))

	if got := triple.String(); got != "<http://ex/s> <http://ex/p> \"v\" .\n" {
		t.Fatalf("unexpected triple text: %q", got)
	}
	if got := triple.ToQuadInGraph(g).String(); got != "<http://ex/s> <http://ex/p> \"v\" <http://ex/g> .\n" {
		t.Fatalf("unexpected quad text: %q", got)
	}
	if got := triple.ToQuadInGraph(nil).String(); got != triple.String() {
		t.Fatalf("default graph quad should render like its triple, got %q", got)
	}
}

func TestTripleQuadConversionsAreInverse(t *testing.T) {
	g := IRI{Value: "http://ex/g"}
	triple := NewTriple(IRI{Value: "http://ex/s"}, IRI{Value: "http://ex/p"}, BlankNode{ID: "o"})
	quad := triple.ToQuadInGraph(g)
	if quad.G != g {
		t.Fatalf("graph not carried: %v", quad.G)
	}
	if quad.ToTriple() != triple {
		t.Fatalf("narrowing lost data: %v", quad.ToTriple())
	}
	if quad.ToTriple().ToQuadInGraph(g) != quad {
		t.Fatalf("widening lost data")
	}
	if quad.InDefaultGraph() {
		t.Fatalf("named quad reported in default graph")
	}
	if !triple.ToQuadInGraph(nil).InDefaultGraph() {
		t.Fatalf("nil graph should be default graph")
	}
}

func TestQuadIsZero(t *testing.T) {
	var q Quad
	if !q.IsZero() {
		t.Fatal("expected zero quad")
	}
	q.S = IRI{Value: "http://example.org/s"}
	if q.IsZero() {
		t.Fatal("expected non-zero quad")
	}
}

func TestTermsAreValueComparable(t *testing.T) {
	a := NewTriple(IRI{Value: "http://ex/s"}, IRI{Value: "http://ex/p"}, NewTypedLiteral("1", XSDInteger))
	b := NewTriple(IRI{Value: "http://ex/s"}, IRI{Value: "http://ex/p"}, NewTypedLiteral("1", XSDInteger))
	if a != b {
		t.Fatal("triples with equal fields must be equal")
	}
	set := map[Triple]struct{}{a: {}}
	if _, ok := set[b]; !ok {
		t.Fatal("equal triples must hash equally")
	}
	if NewLiteral("1") == NewTypedLiteral("1", XSDInteger) {
		t.Fatal("datatype must take part in literal equality")
	}
	if NewLangLiteral("a", "en") == NewLangLiteral("a", "fr") {
		t.Fatal("language must take part in literal equality")
	}
}
