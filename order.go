package locmatch

// compareSegments orders two segment labels for candidate selection. Labels
// are compared bytewise until the first divergence; if either label has the
// wildcard at that position the two are equivalent (0), since the wildcard
// side could expand to cover the other. Otherwise the differing byte decides,
// with an exact prefix ordering before the longer label.
//
// Wildcard equivalence is not transitive ("a*" ~ "ab", "a*" ~ "ac", but
// "ab" < "ac"), so this comparison must only be used to test whether one
// child label is a candidate for one query segment. It cannot sort a mixed
// set of literal and wildcard labels.
func compareSegments(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	switch {
	case i == len(a) && i == len(b):
		return 0
	case i < len(a) && a[i] == wildcard:
		return 0
	case i < len(b) && b[i] == wildcard:
		return 0
	case i == len(a):
		return -1
	case i == len(b):
		return 1
	case a[i] < b[i]:
		return -1
	}
	return 1
}
