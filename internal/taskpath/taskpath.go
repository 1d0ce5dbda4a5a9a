// Package taskpath parses and renders task-path strings.
//
// A task path addresses a task as `[namespace:]name[.property]`, or
// `:name[.property]` for a built-in task. It is the primary argument to a
// workbench invocation and the edge label used throughout the dependency
// graph.
package taskpath

import (
	"fmt"
	"regexp"
)

// identifier matches one or more Unicode letters or hyphens.
const identifier = `[\p{L}-]+`

var pathPattern = regexp.MustCompile(
	`^(?:(` + identifier + `)?(:))?(` + identifier + `)(?:\.(` + identifier + `))?$`,
)

// TaskPath is an immutable, hashable, displayable address of a task.
type TaskPath struct {
	Namespace string
	BuiltIn   bool
	Name      string
	Property  string
}

// InvalidTaskPathError reports a task-path string that failed to parse.
type InvalidTaskPathError struct {
	Text string
}

func (e *InvalidTaskPathError) Error() string {
	return fmt.Sprintf("invalid task path: %q", e.Text)
}

// Parse parses text into a TaskPath, or returns an *InvalidTaskPathError.
func Parse(text string) (TaskPath, error) {
	m := pathPattern.FindStringSubmatch(text)
	if m == nil {
		return TaskPath{}, &InvalidTaskPathError{Text: text}
	}

	namespace, colon, name, property := m[1], m[2], m[3], m[4]

	// A leading bare colon with no namespace identifier sets BuiltIn.
	builtIn := colon != "" && namespace == ""

	if name == "" {
		return TaskPath{}, &InvalidTaskPathError{Text: text}
	}

	return TaskPath{
		Namespace: namespace,
		BuiltIn:   builtIn,
		Name:      name,
		Property:  property,
	}, nil
}

// Display renders path back to its canonical string form. Display(Parse(s))
// round-trips to s for every valid s.
func Display(p TaskPath) string {
	var out string
	switch {
	case p.Namespace != "":
		out = p.Namespace + ":"
	case p.BuiltIn:
		out = ":"
	}
	out += p.Name
	if p.Property != "" {
		out += "." + p.Property
	}
	return out
}

// String implements fmt.Stringer via Display.
func (p TaskPath) String() string {
	return Display(p)
}
