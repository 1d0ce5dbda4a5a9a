// Package config loads and exposes the workbench.yaml configuration.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level, read-only configuration loaded from a workbench
// YAML document. Both Tasks and Namespaces may be nil.
type Config struct {
	Tasks      map[string]Task      `yaml:"tasks,omitempty"`
	Namespaces map[string]Namespace `yaml:"namespaces,omitempty"`
}

// Namespace groups a set of tasks under a shared name.
type Namespace struct {
	Tasks map[string]Task `yaml:"tasks,omitempty"`
}

// Shell represents a task's resolved shell setting: unset, a boolean
// (true = default interpreter, false = none), or an explicit interpreter
// path.
type Shell struct {
	set     bool
	enabled bool
	path    string
}

// IsSet reports whether the task declared a shell setting at all.
func (s Shell) IsSet() bool { return s.set }

// IsExplicit reports whether the task named an explicit interpreter path.
func (s Shell) IsExplicit() bool { return s.set && s.path != "" }

// Bool reports the boolean value when the setting was a plain true/false.
func (s Shell) Bool() bool { return s.enabled }

// Path returns the explicit interpreter path, if any.
func (s Shell) Path() string { return s.path }

// UnmarshalYAML accepts either a bool or a string scalar.
func (s *Shell) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		*s = Shell{set: true, enabled: b}
		return nil
	}
	var str string
	if err := value.Decode(&str); err != nil {
		return fmt.Errorf("shell: expected bool or string, got %s", value.Tag)
	}
	*s = Shell{set: true, enabled: true, path: str}
	return nil
}

// Run is a task's invocation: either a single shell command string or an
// argv list with at least one element.
type Run struct {
	Command string
	Argv    []string
}

// IsShellForm reports whether Run was declared as a single command string.
func (r Run) IsShellForm() bool { return r.Argv == nil }

// UnmarshalYAML accepts either a scalar string or a sequence of strings.
func (r *Run) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		*r = Run{Command: s}
		return nil
	}
	var argv []string
	if err := value.Decode(&argv); err != nil {
		return fmt.Errorf("run: expected string or list of strings: %w", err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("run: argv form requires at least one element")
	}
	*r = Run{Argv: argv}
	return nil
}

// FileSet is an include/exclude glob specification.
type FileSet struct {
	Include []string
	Exclude []string
}

// UnmarshalYAML accepts either a flat list (where a leading "!" marks an
// exclude pattern) or an object with separate include/exclude lists.
func (f *FileSet) UnmarshalYAML(value *yaml.Node) error {
	var flat []string
	if err := value.Decode(&flat); err == nil {
		for _, pattern := range flat {
			if strings.HasPrefix(pattern, "!") {
				f.Exclude = append(f.Exclude, strings.TrimPrefix(pattern, "!"))
			} else {
				f.Include = append(f.Include, pattern)
			}
		}
		return nil
	}
	var obj struct {
		Include []string `yaml:"include"`
		Exclude []string `yaml:"exclude"`
	}
	if err := value.Decode(&obj); err != nil {
		return fmt.Errorf("file set: expected list or {include, exclude} object: %w", err)
	}
	f.Include = obj.Include
	f.Exclude = obj.Exclude
	return nil
}

// Task is a named unit of work.
type Task struct {
	Run          Run      `yaml:"run"`
	Shell        Shell    `yaml:"shell,omitempty"`
	Dependencies []string `yaml:"dependencies,omitempty"`
	Inputs       *FileSet `yaml:"inputs,omitempty"`
	Outputs      *FileSet `yaml:"outputs,omitempty"`

	// Documentation fields, consumed only by external built-ins.
	Usage       string   `yaml:"usage,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Examples    []string `yaml:"examples,omitempty"`
}
