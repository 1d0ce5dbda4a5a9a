// Package fileset expands include/exclude glob specifications into concrete
// filesystem paths by wrapping a glob matcher over a directory walk.
package fileset

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/sophiekatz/workbench/internal/config"
)

// PatternError reports a glob pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// GlobError reports an I/O failure while expanding a pattern against the
// filesystem.
type GlobError struct {
	Pattern string
	Err     error
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("expanding glob pattern %q: %v", e.Pattern, e.Err)
}

func (e *GlobError) Unwrap() error { return e.Err }

// Resolve expands files against dir (normally the process's working
// directory), returning the concrete path list. Output order follows
// (include-pattern order, walk order); duplicates are not deduplicated.
// Callers must tolerate them.
func Resolve(dir string, files *config.FileSet) ([]string, error) {
	if files == nil {
		return nil, nil
	}

	excludes := make([]glob.Glob, 0, len(files.Exclude))
	for _, pattern := range files.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}
		excludes = append(excludes, g)
	}

	var out []string
	for _, pattern := range files.Include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}

		matches, err := expand(dir, pattern, g)
		if err != nil {
			return nil, &GlobError{Pattern: pattern, Err: err}
		}

		for _, m := range matches {
			if excluded(m, excludes) {
				continue
			}
			out = append(out, m)
		}
	}
	return out, nil
}

// expand walks dir, returning every relative path matching g. Patterns
// without wildcards (a literal filename) still go through the same walk so
// behavior is uniform regardless of pattern shape.
func expand(dir, pattern string, g glob.Glob) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if g.Match(rel) {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func excluded(path string, excludes []glob.Glob) bool {
	for _, g := range excludes {
		if g.Match(path) {
			return true
		}
	}
	return false
}
