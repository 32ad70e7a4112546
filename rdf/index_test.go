package rdf

import "testing"

func TestIndexInsertAndLookup(t *testing.T) {
	ix := newIndex(posOrder)
	s := IRI{Value: "http://ex/s"}
	p := IRI{Value: "http://ex/p"}
	o := NewLiteral("o")
	triple := NewTriple(s, p, o)
	ix.insert(triple)

	if got := ix.level2(p, o)[s]; got != triple {
		t.Fatalf("expected triple at [p][o][s], got %v", got)
	}
	if len(ix.level1(p)) != 1 {
		t.Fatalf("expected one object under predicate")
	}
	if ix.level1(s) != nil {
		t.Fatalf("subject must not be a first-level key in POS")
	}
	if ix.level2(p, s) != nil {
		t.Fatalf("missing second-level key must read as nil")
	}
	if ix.size() != 1 {
		t.Fatalf("unexpected size %d", ix.size())
	}
}

func TestIndexDeletePrunesEmptyLevels(t *testing.T) {
	ix := newIndex(spoOrder)
	s := IRI{Value: "http://ex/s"}
	p1 := IRI{Value: "http://ex/p1"}
	p2 := IRI{Value: "http://ex/p2"}
	a := NewTriple(s, p1, NewLiteral("a"))
	b := NewTriple(s, p2, NewLiteral("b"))
	ix.insert(a)
	ix.insert(b)

	if !ix.delete(a) {
		t.Fatal("expected delete to report presence")
	}
	if _, ok := ix.root[s][p1]; ok {
		t.Fatal("empty predicate branch was not pruned")
	}
	if !ix.delete(b) {
		t.Fatal("expected delete to report presence")
	}
	if len(ix.root) != 0 {
		t.Fatalf("expected empty root, got %d keys", len(ix.root))
	}
	if ix.delete(b) {
		t.Fatal("deleting an absent triple must report false")
	}
}

func TestIndexReadsDoNotCreateLevels(t *testing.T) {
	ix := newIndex(ospOrder)
	missing := IRI{Value: "http://ex/missing"}
	_ = ix.level1(missing)
	_ = ix.level2(missing, missing)
	if ix.size() != 0 {
		t.Fatal("reads must not create levels")
	}
}
