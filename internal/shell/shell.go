// Package shell resolves a task's shell setting to an optional interpreter.
package shell

import "github.com/sophiekatz/workbench/internal/config"

// DefaultInterpreter is used when a task's shell is set to true.
const DefaultInterpreter = "/bin/sh"

// Resolve maps a Shell setting to an optional interpreter path. Unset maps
// to none; true maps to DefaultInterpreter; false maps to none; an
// explicit string maps to itself.
func Resolve(s config.Shell) (interpreter string, ok bool) {
	if !s.IsSet() {
		return "", false
	}
	if s.IsExplicit() {
		return s.Path(), true
	}
	if s.Bool() {
		return DefaultInterpreter, true
	}
	return "", false
}

// ResolveForTask resolves task.Shell, applying the Executor's defaulting
// rule when the task left shell unset: a string-form run defaults to true
// (shell enabled), an argv-form run defaults to false (no shell).
func ResolveForTask(task *config.Task) (interpreter string, ok bool) {
	if task.Shell.IsSet() {
		return Resolve(task.Shell)
	}
	if task.Run.IsShellForm() {
		return DefaultInterpreter, true
	}
	return "", false
}
