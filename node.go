package locmatch

import (
	"sort"
	"strings"
)

// node is one trie node. Each child edge is labelled with one pattern segment
// (literal or containing the wildcard), and terminator marks a node where an
// inserted pattern ends. A node exists only on the path of at least one
// inserted pattern, so every non-terminator node has a terminator somewhere
// beneath it. Each node exclusively owns its children.
type node struct {
	children   []childEntry
	wildcards  int
	terminator bool
}

// childEntry is one labelled edge. The children slice is kept sorted bytewise
// by label so literal lookups can binary search.
type childEntry struct {
	label string
	child *node
}

// child returns the child reached by exactly label, or nil. Insertion always
// looks children up by literal label equality, never wildcard expansion, so a
// pattern's own wildcard segments are labels like any other.
func (n *node) child(label string) *node {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].label >= label
	})
	if i < len(n.children) && n.children[i].label == label {
		return n.children[i].child
	}
	return nil
}

// addChild inserts a new child under label, keeping the index sorted.
func (n *node) addChild(label string, c *node) {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].label >= label
	})
	n.children = append(n.children, childEntry{})
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = childEntry{label: label, child: c}
	if strings.IndexByte(label, wildcard) >= 0 {
		n.wildcards++
	}
}

// candidates visits every child whose label could match the query segment
// once wildcard expansion is considered, in label order, stopping early if fn
// returns false. With purely literal children only the exactly-equal label
// qualifies, found by binary search. Wildcard siblings force a scan under
// compareSegments equivalence: the relation is not transitive, so it cannot
// bound a contiguous range of a sorted index.
func (n *node) candidates(seg string, fn func(label string, child *node) bool) {
	if n.wildcards == 0 {
		if c := n.child(seg); c != nil {
			fn(seg, c)
		}
		return
	}
	for i := range n.children {
		if compareSegments(n.children[i].label, seg) != 0 {
			continue
		}
		if !fn(n.children[i].label, n.children[i].child) {
			return
		}
	}
}
