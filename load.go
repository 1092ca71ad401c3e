package locmatch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// ParsePatterns reads one pattern per line. Leading and trailing whitespace
// is trimmed; blank lines and lines starting with '#' are skipped.
func ParsePatterns(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}
	return out, nil
}

// LoadPatterns reads and parses patterns from a file.
func LoadPatterns(fsys afero.Fs, name string) ([]string, error) {
	if fsys == nil {
		return nil, ErrNilFilesystem
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open pattern file: %w", err)
	}
	defer func() { _ = f.Close() }()

	patterns, err := ParsePatterns(f)
	if err != nil {
		return nil, fmt.Errorf("parse pattern file %q: %w", name, err)
	}
	return patterns, nil
}

// AddFromFile loads a pattern file and adds every pattern to the index,
// returning the number of patterns read.
func (m *Matcher) AddFromFile(fsys afero.Fs, name string) (int, error) {
	patterns, err := LoadPatterns(fsys, name)
	if err != nil {
		return 0, err
	}
	for _, p := range patterns {
		m.Add(p)
	}
	return len(patterns), nil
}
