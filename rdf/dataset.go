package rdf

import (
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
)

// Dataset is a collection of graphs keyed by graph name. The default graph
// is keyed by nil.
//
// Like Graph, a Dataset does no locking and its Match sequences are live
// views that must not outlive a mutation. The zero value is an empty
// dataset that logs nowhere.
type Dataset struct {
	graphs map[Term]*Graph
	log    logrus.FieldLogger
}

// NewDataset returns an empty dataset.
func NewDataset(opts ...Option) *Dataset {
	options := applyOptions(opts)
	return &Dataset{
		graphs: make(map[Term]*Graph),
		log:    options.Logger,
	}
}

func (d *Dataset) init() {
	if d.graphs == nil {
		d.graphs = make(map[Term]*Graph)
	}
	if d.log == nil {
		d.log = discardLogger()
	}
}

// graph returns the graph named name, creating it if needed.
func (d *Dataset) graph(name Term) *Graph {
	d.init()
	g, ok := d.graphs[name]
	if !ok {
		g = NewGraph(name)
		d.graphs[name] = g
		d.log.WithField("graph", graphLabel(name)).Debug("created graph")
	}
	return g
}

// Add inserts q into the graph named q.G, creating that graph on first use.
func (d *Dataset) Add(q Quad) {
	d.graph(q.G).Add(q.ToTriple())
}

// AddAll adds every quad produced by seq.
func (d *Dataset) AddAll(seq iter.Seq[Quad]) *Dataset {
	for q := range seq {
		d.Add(q)
	}
	return d
}

// Remove deletes q from the graph named q.G. It fails with ErrGraphNotFound
// if the dataset has no such graph and with ErrNotFound if the graph does
// not hold the triple. An emptied graph stays registered.
func (d *Dataset) Remove(q Quad) error {
	g, ok := d.graphs[q.G]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGraphNotFound, graphLabel(q.G))
	}
	return g.Remove(q.ToTriple())
}

// RemoveMatches removes every quad matching the pattern and returns how many
// were removed. Matches are collected before anything is removed.
func (d *Dataset) RemoveMatches(s, p, o, graph Term) int {
	var matched []Quad
	for q := range d.Match(s, p, o, graph) {
		matched = append(matched, q)
	}
	for _, q := range matched {
		_ = d.Remove(q)
	}
	return len(matched)
}

// AddGraph registers g under name, or under g's own name when name is nil.
// The graph is renamed to the key it is registered under, replacing any
// graph already registered there and dropping any earlier registration of
// the same graph under another key. It fails with ErrInvalidArgument when
// neither name is available.
func (d *Dataset) AddGraph(g *Graph, name Term) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrInvalidArgument)
	}
	if name == nil {
		name = g.Name()
	}
	if name == nil {
		return fmt.Errorf("%w: graph must be named", ErrInvalidArgument)
	}
	d.init()
	for key, registered := range d.graphs {
		if registered == g && key != name {
			delete(d.graphs, key)
		}
	}
	g.name = name
	d.graphs[name] = g
	d.log.WithFields(logrus.Fields{
		"graph":   graphLabel(name),
		"triples": g.Len(),
	}).Debug("registered graph")
	return nil
}

// RemoveGraph drops the graph named name and all of its triples.
func (d *Dataset) RemoveGraph(name Term) error {
	if _, ok := d.graphs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrGraphNotFound, graphLabel(name))
	}
	delete(d.graphs, name)
	d.init()
	d.log.WithField("graph", graphLabel(name)).Debug("removed graph")
	return nil
}

// Graph returns the graph named name without creating it.
func (d *Dataset) Graph(name Term) (*Graph, bool) {
	g, ok := d.graphs[name]
	return g, ok
}

// Graphs returns every graph in the dataset in unspecified order.
func (d *Dataset) Graphs() iter.Seq[*Graph] {
	return func(yield func(*Graph) bool) {
		for _, g := range d.graphs {
			if !yield(g) {
				return
			}
		}
	}
}

// GraphCount returns the number of registered graphs.
func (d *Dataset) GraphCount() int { return len(d.graphs) }

// Match returns the quads matching (s, p, o) in the graph named graph, or in
// every graph when graph is nil. Nil terms are unbound. Looking up an unknown
// graph yields nothing and does not create it.
func (d *Dataset) Match(s, p, o, graph Term) iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		if graph != nil {
			g, ok := d.graphs[graph]
			if !ok {
				return
			}
			yieldQuads(graph, g.Match(s, p, o), yield)
			return
		}
		for name, g := range d.graphs {
			if !yieldQuads(name, g.Match(s, p, o), yield) {
				return
			}
		}
	}
}

func yieldQuads(name Term, triples iter.Seq[Triple], yield func(Quad) bool) bool {
	for t := range triples {
		if !yield(t.ToQuadInGraph(name)) {
			return false
		}
	}
	return true
}

// Contains reports whether q is in the graph named q.G. A nil q.G means the
// default graph, matching Add and Remove; use ContainsTriple to look in
// every graph.
func (d *Dataset) Contains(q Quad) bool {
	g, ok := d.graphs[q.G]
	return ok && g.Contains(q.ToTriple())
}

// ContainsTriple reports whether any graph holds t.
func (d *Dataset) ContainsTriple(t Triple) bool {
	for _, g := range d.graphs {
		if g.Contains(t) {
			return true
		}
	}
	return false
}

// Len returns the total number of triples across all graphs.
func (d *Dataset) Len() int {
	n := 0
	for _, g := range d.graphs {
		n += g.Len()
	}
	return n
}

// All returns every triple of every graph as a quad tagged with its graph name.
func (d *Dataset) All() iter.Seq[Quad] {
	return d.Match(nil, nil, nil, nil)
}

// Quads returns a snapshot of every quad in the dataset.
func (d *Dataset) Quads() []Quad {
	out := make([]Quad, 0, d.Len())
	for q := range d.All() {
		out = append(out, q)
	}
	return out
}

func graphLabel(name Term) string {
	if name == nil {
		return "(default)"
	}
	return FormatTerm(name)
}
