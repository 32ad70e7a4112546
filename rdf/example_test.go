package rdf_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/geoknoesis/rdfstore/rdf"
)

var ex = rdf.Namespace("http://example.org/").Term

func ExampleGraph_Match() {
	g := rdf.NewGraph(ex("people"))
	g.Add(rdf.NewTriple(ex("alice"), ex("knows"), ex("bob")))
	g.Add(rdf.NewTriple(ex("bob"), ex("knows"), ex("carol")))
	g.Add(rdf.NewTriple(ex("alice"), ex("name"), rdf.NewLiteral("Alice")))

	for t := range g.Match(nil, nil, ex("carol")) {
		fmt.Print(t)
	}
	// Output:
	// <http://example.org/bob> <http://example.org/knows> <http://example.org/carol> .
}

func ExampleDataset() {
	ds := rdf.NewDataset()
	ds.Add(rdf.NewQuad(ex("s"), ex("p"), rdf.MustLiteralOf(42), ex("g1")))
	ds.Add(rdf.NewQuad(ex("s"), ex("p"), rdf.NewLangLiteral("hi", "en"), nil))

	if err := rdf.WriteNQuads(os.Stdout, ds); err != nil {
		fmt.Println(err)
	}
	fmt.Println(ds.GraphCount(), ds.Len())
	// Output:
	// <http://example.org/s> <http://example.org/p> "42"^^<http://www.w3.org/2001/XMLSchema#integer> <http://example.org/g1> .
	// <http://example.org/s> <http://example.org/p> "hi"@en .
	// 2 2
}

func ExampleReadNTriples() {
	doc := `<http://example.org/a> <http://example.org/p> "x" .
<http://example.org/a> <http://example.org/p> "y" .
`
	g := rdf.NewGraph(nil)
	if err := rdf.ReadNTriples(strings.NewReader(doc), g); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.RemoveMatches(ex("a"), nil, nil), g.Len())
	// Output:
	// 2 0
}

func ExampleParseTerm() {
	profile := rdf.NewProfile()
	profile.SetPrefix("foaf", "http://xmlns.com/foaf/0.1/")

	term, err := rdf.ParseTerm("foaf:name", profile)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rdf.FormatTerm(term), profile.Shrink(term.(rdf.IRI)))
	// Output:
	// <http://xmlns.com/foaf/0.1/name> foaf:name
}

func ExampleNamespace() {
	foaf := rdf.Namespace("http://xmlns.com/foaf/0.1/")
	fmt.Println(rdf.FormatTerm(foaf.Term("knows")))
	// Output:
	// <http://xmlns.com/foaf/0.1/knows>
}

func ExampleLangMatch() {
	fmt.Println(rdf.LangMatch("en", "en-GB"), rdf.LangMatch("en-US", "en-GB"))
	// Output:
	// true false
}

func ExampleLiteralOf() {
	lit, err := rdf.LiteralOf(true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rdf.FormatTerm(lit))

	_, err = rdf.LiteralOf(struct{}{})
	fmt.Println(rdf.Code(err))
	// Output:
	// "true"^^<http://www.w3.org/2001/XMLSchema#boolean>
	// UNSUPPORTED_TYPE
}
