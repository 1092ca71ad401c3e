package locmatch

// wildcard is the single metacharacter recognised in pattern segments. It
// matches any run of characters, including an empty one.
const wildcard = '*'

// wildcardMatch reports whether the segment s matches the pattern segment.
// The pattern is scanned left to right: a literal byte must equal the byte at
// the same position in s, and the wildcard accepts zero or more arbitrary
// bytes. When the wildcard is not the last byte of the pattern, every split of
// the remaining segment is tried, shortest first. No character classes,
// escaping, or single-character wildcards.
func wildcardMatch(s, pattern string) bool {
	for len(pattern) > 0 {
		c := pattern[0]
		pattern = pattern[1:]

		if c != wildcard {
			if len(s) == 0 || s[0] != c {
				return false
			}
			s = s[1:]
			continue
		}

		if len(pattern) == 0 {
			// Trailing wildcard accepts whatever is left of s.
			return true
		}

		for {
			if wildcardMatch(s, pattern) {
				return true
			}
			if len(s) == 0 {
				return false
			}
			s = s[1:]
		}
	}
	return len(s) == 0
}
