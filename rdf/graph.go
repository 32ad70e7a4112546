package rdf

import (
	"fmt"
	"iter"
)

// Graph is a named set of triples with three redundant indexes (SPO, POS,
// OSP) for pattern lookup.
//
// Every mutating call updates the primary set and all three indexes before
// returning. A Graph does no locking: callers that share one across
// goroutines must serialise writes against each other and against any
// iteration in progress.
//
// The zero value is an empty, unnamed graph ready to use.
type Graph struct {
	name    Term
	triples map[Triple]struct{}
	spo     *index
	pos     *index
	osp     *index
}

// NewGraph returns a graph with the given name holding the given triples.
// The name may be nil for an unnamed graph.
func NewGraph(name Term, triples ...Triple) *Graph {
	g := &Graph{name: name}
	g.init(len(triples))
	for _, t := range triples {
		g.Add(t)
	}
	return g
}

func (g *Graph) init(capacity int) {
	if g.triples != nil {
		return
	}
	g.triples = make(map[Triple]struct{}, capacity)
	g.spo = newIndex(spoOrder)
	g.pos = newIndex(posOrder)
	g.osp = newIndex(ospOrder)
}

// Name returns the graph name, or nil if the graph is unnamed.
func (g *Graph) Name() Term { return g.name }

// Add inserts t. Adding a triple that is already present is a no-op.
// Add returns the receiver so calls can be chained.
func (g *Graph) Add(t Triple) *Graph {
	g.init(0)
	if _, ok := g.triples[t]; ok {
		return g
	}
	g.triples[t] = struct{}{}
	g.spo.insert(t)
	g.pos.insert(t)
	g.osp.insert(t)
	return g
}

// AddAll adds every triple produced by seq.
func (g *Graph) AddAll(seq iter.Seq[Triple]) *Graph {
	for t := range seq {
		g.Add(t)
	}
	return g
}

// Remove deletes t from the graph. It fails with ErrNotFound if t is not a
// member, in which case the graph is left untouched.
func (g *Graph) Remove(t Triple) error {
	if _, ok := g.triples[t]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, t.key())
	}
	delete(g.triples, t)
	g.spo.delete(t)
	g.pos.delete(t)
	g.osp.delete(t)
	return nil
}

// RemoveMatches removes every triple matching the pattern and returns how
// many were removed. Matches are collected before anything is removed.
func (g *Graph) RemoveMatches(s, p, o Term) int {
	matched := g.collect(s, p, o)
	for _, t := range matched {
		// Cannot fail: every triple was just read from the graph.
		_ = g.Remove(t)
	}
	return len(matched)
}

// Match returns the triples matching the pattern (s, p, o), where a nil
// term is unbound and matches anything.
//
// Each call returns a fresh lazy sequence that reads the live indexes.
// The graph must not be modified while the sequence is being consumed;
// use RemoveMatches or collect the results first. Order is unspecified.
func (g *Graph) Match(s, p, o Term) iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		if g.triples == nil {
			return
		}
		switch {
		case s != nil && p != nil && o != nil:
			t := Triple{S: s, P: p, O: o}
			if g.Contains(t) {
				yield(t)
			}
		case s != nil && p != nil:
			yieldLeaves(g.spo.level2(s, p), yield)
		case s != nil && o != nil:
			yieldLeaves(g.osp.level2(o, s), yield)
		case s != nil:
			yieldBranch(g.spo.level1(s), yield)
		case p != nil && o != nil:
			yieldLeaves(g.pos.level2(p, o), yield)
		case p != nil:
			yieldBranch(g.pos.level1(p), yield)
		case o != nil:
			yieldBranch(g.osp.level1(o), yield)
		default:
			for t := range g.triples {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func yieldLeaves(l leaves, yield func(Triple) bool) bool {
	for _, t := range l {
		if !yield(t) {
			return false
		}
	}
	return true
}

func yieldBranch(b branch, yield func(Triple) bool) {
	for _, l := range b {
		if !yieldLeaves(l, yield) {
			return
		}
	}
}

// collect materialises Match into a slice.
func (g *Graph) collect(s, p, o Term) []Triple {
	var out []Triple
	for t := range g.Match(s, p, o) {
		out = append(out, t)
	}
	return out
}

// Merge returns a new graph holding the union of g and other. The result
// carries g's name. Neither input is modified.
func (g *Graph) Merge(other *Graph) *Graph {
	merged := NewGraph(g.name)
	merged.AddAll(other.All())
	merged.AddAll(g.All())
	return merged
}

// Contains reports whether t is a member of the graph.
func (g *Graph) Contains(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// All returns every triple in the graph in unspecified order.
func (g *Graph) All() iter.Seq[Triple] {
	return g.Match(nil, nil, nil)
}

// Triples returns a snapshot of the graph's triples.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	return out
}

// key renders t without the trailing newline for use in error messages.
func (t Triple) key() string {
	s := t.String()
	return s[:len(s)-1]
}
