package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `package sample

func checks() []func() bool {
	x := 3
	return []func() bool{
		func() bool { return 4 == 2+2 },
		func() bool {
			return x ==
				2+1
		},
		func() bool {
			y := x * 2
			return y == 6
		},
	}
}
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.go")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))
	return path
}

func TestGoSourceParser_ExpressionSource(t *testing.T) {
	path := writeSample(t)
	p := NewGoSourceParser()

	tests := []struct {
		name     string
		line     int
		expected string
	}{
		{name: "single line return", line: 6, expected: "4 == 2+2"},
		{name: "multi line return", line: 7, expected: "x ==\n\t2+1"},
		{name: "statement body", line: 11, expected: "y := x * 2\n\treturn y == 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := p.ExpressionSource(path, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, src)
		})
	}
}

func TestGoSourceParser_ExpressionSource_Errors(t *testing.T) {
	p := NewGoSourceParser()

	t.Run("no literal on line", func(t *testing.T) {
		_, err := p.ExpressionSource(writeSample(t), 3)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := p.ExpressionSource("/non/existent/file.go", 1)
		assert.Error(t, err)
	})

	t.Run("invalid go", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.go")
		require.NoError(t, os.WriteFile(path, []byte("package broken\nfunc {"), 0644))
		_, err := p.ExpressionSource(path, 2)
		assert.Error(t, err)
	})
}

func TestGoSourceParser_CachesFiles(t *testing.T) {
	path := writeSample(t)
	p := NewGoSourceParser()

	_, err := p.ExpressionSource(path, 6)
	require.NoError(t, err)

	// Later reads come from the cache even if the file disappears
	require.NoError(t, os.Remove(path))
	src, err := p.ExpressionSource(path, 6)
	require.NoError(t, err)
	assert.Equal(t, "4 == 2+2", src)
}

func TestGoSourceParser_SourceOf(t *testing.T) {
	p := NewGoSourceParser()

	fn := func() bool { return len("abc") == 3 }
	assert.Equal(t, `len("abc") == 3`, p.SourceOf(fn))

	var nilFn func() bool
	assert.Equal(t, "<nil>", p.SourceOf(nilFn))
	assert.Equal(t, "<nil>", p.SourceOf(42))
}

func TestGoSourceParser_SourceOf_Fallback(t *testing.T) {
	p := NewGoSourceParser()

	// Named functions are not literals, so the location is reported instead
	src := p.SourceOf(strings.TrimSpace)
	assert.Regexp(t, `\.go:\d+$`, src)
}
