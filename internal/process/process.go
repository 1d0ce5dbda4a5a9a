// Package process spawns a task's command, capturing merged stdout/stderr
// and its exit status.
package process

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/sophiekatz/workbench/internal/config"
	"github.com/sophiekatz/workbench/internal/shell"
	"github.com/sophiekatz/workbench/internal/taskpath"
)

// killedExitCode is returned when a child was terminated by a signal rather
// than exiting normally.
const killedExitCode = 255

// Output is the result of a completed task invocation.
type Output struct {
	Combined []byte
	ExitCode int
	Duration time.Duration
}

// ShellRequiredError reports a string-form run whose shell resolved to
// none.
type ShellRequiredError struct {
	Path    taskpath.TaskPath
	Command string
}

func (e *ShellRequiredError) Error() string {
	return fmt.Sprintf("task %s: shell required to run %q but none resolved", e.Path, e.Command)
}

// Handle spawns task's command and waits for it to complete.
func Handle(ctx context.Context, dir string, path taskpath.TaskPath, task *config.Task) (Output, error) {
	interpreter, hasShell := shell.ResolveForTask(task)

	var cmd *exec.Cmd
	switch {
	case task.Run.IsShellForm():
		if !hasShell {
			return Output{}, &ShellRequiredError{Path: path, Command: task.Run.Command}
		}
		cmd = exec.CommandContext(ctx, interpreter, "-c", task.Run.Command)

	case hasShell:
		quoted := shellquote.Join(task.Run.Argv...)
		cmd = exec.CommandContext(ctx, interpreter, "-c", quoted)

	default:
		cmd = exec.CommandContext(ctx, task.Run.Argv[0], task.Run.Argv[1:]...)
	}

	cmd.Dir = dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	exitCode := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return Output{}, fmt.Errorf("spawning task %s: %w", path, err)
		}
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			exitCode = killedExitCode
		} else {
			exitCode = exitErr.ExitCode()
		}
	}

	return Output{
		Combined: buf.Bytes(),
		ExitCode: exitCode,
		Duration: duration,
	}, nil
}
