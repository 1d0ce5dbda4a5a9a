package fileset

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sophiekatz/workbench/internal/config"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		full := filepath.Join(dir, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

func TestResolveIncludeExclude(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "src/a.ts", "src/a.test.ts", "src/b.ts")

	paths, err := Resolve(dir, &config.FileSet{
		Include: []string{"src/*.ts"},
		Exclude: []string{"src/*.test.ts"},
	})
	require.NoError(t, err)
	sort.Strings(paths)
	require.Equal(t, []string{"src/a.ts", "src/b.ts"}, paths)
}

func TestResolveNil(t *testing.T) {
	paths, err := Resolve(t.TempDir(), nil)
	require.NoError(t, err)
	require.Nil(t, paths)
}

func TestResolveBadPattern(t *testing.T) {
	_, err := Resolve(t.TempDir(), &config.FileSet{Include: []string{"["}})
	require.Error(t, err)
	var patternErr *PatternError
	require.ErrorAs(t, err, &patternErr)
}

func TestResolveNoMatches(t *testing.T) {
	dir := t.TempDir()
	paths, err := Resolve(dir, &config.FileSet{Include: []string{"nope/*.go"}})
	require.NoError(t, err)
	require.Empty(t, paths)
}
