package locmatch

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPatternFile = `# render set
assets/*/geo
lights/key

	crowd/agent*/skin
`

func TestParsePatterns(t *testing.T) {
	patterns, err := ParsePatterns(strings.NewReader(testPatternFile))
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/*/geo", "lights/key", "crowd/agent*/skin"}, patterns)
}

func TestParsePatternsEmptyInput(t *testing.T) {
	patterns, err := ParsePatterns(strings.NewReader("\n# only comments\n\n"))
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestLoadPatterns(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "patterns.txt", []byte(testPatternFile), 0o644))

	patterns, err := LoadPatterns(fsys, "patterns.txt")
	require.NoError(t, err)
	assert.Len(t, patterns, 3)
}

func TestLoadPatternsMissingFile(t *testing.T) {
	_, err := LoadPatterns(afero.NewMemMapFs(), "nope.txt")
	assert.Error(t, err)
}

func TestLoadPatternsNilFilesystem(t *testing.T) {
	_, err := LoadPatterns(nil, "patterns.txt")
	assert.ErrorIs(t, err, ErrNilFilesystem)
}

func TestAddFromFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "patterns.txt", []byte(testPatternFile), 0o644))

	m := New()
	n, err := m.AddFromFile(fsys, "patterns.txt")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, Match, m.Match("assets/ship/geo"))
	assert.Equal(t, Match, m.Match("crowd/agent07/skin"))
	assert.Equal(t, DescendantMatch, m.Match("lights"))
	assert.Equal(t, NoMatch, m.Match("cameras/main"))
}
