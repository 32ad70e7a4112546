package rdf

// keyOrder projects a triple onto the three keys of one index permutation.
type keyOrder func(Triple) (Term, Term, Term)

func spoOrder(t Triple) (Term, Term, Term) { return t.S, t.P, t.O }
func posOrder(t Triple) (Term, Term, Term) { return t.P, t.O, t.S }
func ospOrder(t Triple) (Term, Term, Term) { return t.O, t.S, t.P }

// leaves is the terminal level of an index, keyed by the third term.
type leaves map[Term]Triple

// branch is the middle level of an index.
type branch map[Term]leaves

// index is a three-level nested map over one key permutation.
//
// Levels are created explicitly on insert and pruned on delete, so an
// index never holds an empty branch or leaf map. Reads never create levels.
type index struct {
	order keyOrder
	root  map[Term]branch
}

func newIndex(order keyOrder) *index {
	return &index{order: order, root: make(map[Term]branch)}
}

func (ix *index) insert(t Triple) {
	a, b, c := ix.order(t)
	mid, ok := ix.root[a]
	if !ok {
		mid = make(branch)
		ix.root[a] = mid
	}
	leaf, ok := mid[b]
	if !ok {
		leaf = make(leaves)
		mid[b] = leaf
	}
	leaf[c] = t
}

// delete removes t and prunes any level left empty. It reports whether t was present.
func (ix *index) delete(t Triple) bool {
	a, b, c := ix.order(t)
	mid, ok := ix.root[a]
	if !ok {
		return false
	}
	leaf, ok := mid[b]
	if !ok {
		return false
	}
	if _, ok := leaf[c]; !ok {
		return false
	}
	delete(leaf, c)
	if len(leaf) == 0 {
		delete(mid, b)
		if len(mid) == 0 {
			delete(ix.root, a)
		}
	}
	return true
}

// level1 returns the branch below a, or nil when a is absent.
func (ix *index) level1(a Term) branch {
	return ix.root[a]
}

// level2 returns the leaves below a then b, or nil when either is absent.
func (ix *index) level2(a, b Term) leaves {
	mid, ok := ix.root[a]
	if !ok {
		return nil
	}
	return mid[b]
}

// size returns the number of distinct first-level keys.
func (ix *index) size() int {
	return len(ix.root)
}
