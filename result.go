package locmatch

// Result is the outcome of matching one query path against the index,
// ordered by priority: Match beats DescendantMatch beats NoMatch.
type Result int8

const (
	// NoMatch means the query path neither matches an indexed pattern nor
	// leads to one.
	NoMatch Result = iota

	// DescendantMatch means the query path is a strict ancestor of at least
	// one indexed pattern: no pattern equals the query, but the query is a
	// proper prefix of one under wildcard expansion.
	DescendantMatch

	// Match means the query path exactly matches an indexed pattern.
	Match
)

func (r Result) String() string {
	switch r {
	case NoMatch:
		return "NoMatch"
	case DescendantMatch:
		return "DescendantMatch"
	case Match:
		return "Match"
	}
	return "invalid"
}

// best returns the higher-priority of two results.
func best(a, b Result) Result {
	if a > b {
		return a
	}
	return b
}
