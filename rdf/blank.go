package rdf

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// BlankNode represents an RDF blank node.
//
// Identity lives in ID, an opaque token assigned at construction. Two blank
// nodes are equal exactly when their tokens are equal. NewBlankNode draws
// tokens from a random UUID, so separately constructed nodes never collide
// within or across processes; labels read from documents are re-scoped to
// fresh tokens on every load.
type BlankNode struct {
	// ID is the blank node token.
	ID string
}

// NewBlankNode returns a blank node with a fresh, globally unique token.
func NewBlankNode() BlankNode {
	return BlankNode{ID: "b" + strings.ReplaceAll(uuid.NewString(), "-", "")}
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// BlankNodeFactory allocates blank nodes for decoders.
type BlankNodeFactory func() BlankNode

// CounterBlankNodes returns a factory producing prefix1, prefix2, ...
// Tokens are only unique among nodes from the same factory, which makes it
// suited to tests and single-document tooling.
func CounterBlankNodes(prefix string) BlankNodeFactory {
	var counter atomic.Int64
	return func() BlankNode {
		return BlankNode{ID: prefix + strconv.FormatInt(counter.Add(1), 10)}
	}
}

// blankNodeScope maps document labels to allocated blank nodes.
// A scope without a factory keeps labels as tokens.
type blankNodeScope struct {
	factory BlankNodeFactory
	labels  map[string]BlankNode
}

func newBlankNodeScope(factory BlankNodeFactory) *blankNodeScope {
	if factory == nil {
		factory = NewBlankNode
	}
	return &blankNodeScope{factory: factory, labels: make(map[string]BlankNode)}
}

func (s *blankNodeScope) node(label string) BlankNode {
	if s.factory == nil {
		return BlankNode{ID: label}
	}
	if b, ok := s.labels[label]; ok {
		return b
	}
	b := s.factory()
	s.labels[label] = b
	return b
}
