// Package rdf provides an in-memory RDF statement store.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// The package is built from three layers:
//   - Terms: IRI, BlankNode, Literal and TripleTerm are comparable value
//     types; Triple and Quad combine them into statements.
//   - Graph: a set of triples indexed three ways (SPO, POS, OSP) so that any
//     pattern with at least one bound term is answered by key descent
//     instead of a scan.
//   - Dataset: named graphs keyed by graph name, queried with quads.
//
// Example (pattern lookup):
//
//	ex := func(local string) rdf.IRI { return rdf.IRI{Value: "http://example.org/" + local} }
//
//	g := rdf.NewGraph(ex("g"))
//	g.Add(rdf.NewTriple(ex("alice"), ex("knows"), ex("bob")))
//	g.Add(rdf.NewTriple(ex("alice"), ex("name"), rdf.NewLiteral("Alice")))
//
//	for t := range g.Match(ex("alice"), nil, nil) {
//	    // every statement about alice
//	}
//
// A nil term in Match is unbound. Match returns a lazy iter.Seq that reads
// the live indexes: do not modify a graph or dataset while ranging over one
// of its Match sequences. RemoveMatches collects its matches before
// removing them.
//
// Graph and Dataset do no locking. Callers sharing them between goroutines
// must serialise writes against each other and against reads.
//
// Blank nodes carry an explicit token. NewBlankNode allocates a fresh
// random token; ReadNTriples and ReadNQuads map each document label to a
// fresh node, so loading the same document twice yields disjoint blank
// nodes. OptPreserveBlankNodeLabels keeps the labels as tokens instead.
//
// Namespace mints IRIs from a common prefix and LangMatch compares
// language tags by primary subtag.
//
// Text forms follow N-Triples: FormatTerm renders a single term and
// Triple.String and Quad.String render complete statements. WriteNTriples
// and WriteNQuads emit sorted output.
//
// Prefixed names are expanded by PrefixMap, TermMap and Profile, which can be
// loaded from YAML with LoadProfile.
package rdf
