package locmatch

// Walker descends a matcher's index one segment at a time, in step with a
// traversal of the tree being filtered. At every depth below the root, Result
// reports what Match would report for the path accumulated so far, without
// rescanning from the root: the walker carries the set of trie nodes still
// reachable by the consumed segments. At the root itself, Result is
// DescendantMatch whenever any pattern is indexed, since the root is a strict
// ancestor of every pattern.
//
// A Walker only reads the index it came from, so it follows the same
// concurrency rules as Match.
type Walker struct {
	active []*node
}

// Walk returns a walker positioned at the root of the index.
func (m *Matcher) Walk() *Walker {
	if m.Empty() {
		return &Walker{}
	}
	return &Walker{active: []*node{m.root}}
}

// Down steps into the child location called name. The receiver is unchanged,
// so sibling subtrees can be walked from the same position.
func (w *Walker) Down(name string) *Walker {
	var next []*node
	for _, n := range w.active {
		n.candidates(name, func(label string, child *node) bool {
			if wildcardMatch(name, label) {
				next = append(next, child)
			}
			return true
		})
	}
	return &Walker{active: next}
}

// Result reports the match state at the walker's current position: Match if
// a pattern ends exactly here, DescendantMatch if one ends somewhere below,
// NoMatch otherwise. Once a walk reaches NoMatch every deeper position is
// NoMatch too, so a traversal can stop descending.
func (w *Walker) Result() Result {
	if len(w.active) == 0 {
		return NoMatch
	}
	for _, n := range w.active {
		if n.terminator {
			return Match
		}
	}
	return DescendantMatch
}
