// Package locmatch indexes slash-delimited path patterns and answers
// hierarchical match queries against them. Pattern segments may contain a
// multi-character wildcard ('*'); a query path either matches an indexed
// pattern exactly, is a strict ancestor of one, or matches nothing. The
// tri-state answer lets a tree traversal prune whole subtrees the moment no
// pattern can be reached beneath them.
package locmatch

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Matcher is an in-memory index of path patterns.
//
// The zero value is an empty matcher ready for use. Add and Clear mutate the
// index and must be externally synchronized against all other calls,
// including in-flight Match calls. Match performs no mutation: any number of
// goroutines may call it concurrently once no mutation is in flight.
type Matcher struct {
	root        *node
	traceLogger io.Writer
}

// New returns an empty matcher.
func New(opts ...Option) *Matcher {
	cfg := config{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	return &Matcher{
		root:        &node{},
		traceLogger: cfg.traceLogger,
	}
}

// Clear discards every pattern, replacing the index with a fresh empty one.
func (m *Matcher) Clear() {
	m.root = &node{}
}

// Empty reports whether the index holds no patterns.
func (m *Matcher) Empty() bool {
	return m.root == nil || len(m.root.children) == 0
}

// Add inserts one /-delimited pattern. Empty segments are dropped, and
// inserting the same pattern again is a no-op.
func (m *Matcher) Add(path string) {
	m.AddPath(splitSegments(path))
}

// AddPath is Add for a pattern that is already split into segments.
func (m *Matcher) AddPath(segments []string) {
	if m.root == nil {
		m.root = &node{}
	}
	n := m.root
	consumed := 0
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		c := n.child(seg)
		if c == nil {
			c = &node{}
			n.addChild(seg, c)
		}
		n = c
		consumed++
	}
	if consumed == 0 {
		// A pattern with no segments names nothing; the root never becomes
		// a terminator.
		return
	}
	n.terminator = true
}

// Match reports how the /-delimited query path relates to the indexed
// patterns. Queries are expected to be literal; wildcard expansion applies to
// the stored pattern segments only.
func (m *Matcher) Match(path string) Result {
	return m.MatchPath(splitSegments(path))
}

// MatchPath is Match for a query that is already split into segments.
func (m *Matcher) MatchPath(segments []string) Result {
	if m.root == nil {
		return NoMatch
	}
	segs := segments[:0:0]
	for _, seg := range segments {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	if len(segs) == 0 {
		// The walk ends at the root, which is never a terminator: an empty
		// query matches nothing.
		return NoMatch
	}
	return m.matchWalk(m.root, segs)
}

// matchWalk matches the remaining segments against the subtree at n, folding
// the best result over every candidate branch.
func (m *Matcher) matchWalk(n *node, segments []string) Result {
	if len(segments) == 0 {
		if n.terminator {
			return Match
		}
		// n lies on the path of some longer pattern.
		return DescendantMatch
	}

	head, rest := segments[0], segments[1:]
	result := NoMatch
	n.candidates(head, func(label string, child *node) bool {
		if !wildcardMatch(head, label) {
			return true
		}
		m.logf("segment %q descending into %q\n", head, label)
		result = best(result, m.matchWalk(child, rest))
		// A Match cannot be beaten, so stop scanning siblings.
		return result != Match
	})
	return result
}

// Patterns returns every pattern stored in the index, sorted. Wildcard
// segments come back as inserted.
func (m *Matcher) Patterns() []string {
	var out []string
	if m.root != nil {
		collectPatterns(m.root, nil, &out)
	}
	sort.Strings(out)
	return out
}

func collectPatterns(n *node, prefix []string, out *[]string) {
	if n.terminator {
		*out = append(*out, strings.Join(prefix, "/"))
	}
	for i := range n.children {
		collectPatterns(n.children[i].child, append(prefix, n.children[i].label), out)
	}
}

// splitSegments tokenizes a /-delimited path, dropping empty segments so
// leading, trailing, and doubled separators are harmless.
func splitSegments(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

func (m *Matcher) logf(f string, v ...any) {
	if m.traceLogger == nil {
		return
	}
	fmt.Fprintf(m.traceLogger, f, v...)
}
