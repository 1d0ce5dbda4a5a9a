// Package executor walks a task's dependency DAG, running each task's
// dependencies concurrently (one goroutine each), awaiting every sibling and
// aggregating their errors, and skipping tasks whose outputs are up to date.
package executor

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sophiekatz/workbench/internal/config"
	"github.com/sophiekatz/workbench/internal/console"
	"github.com/sophiekatz/workbench/internal/process"
	"github.com/sophiekatz/workbench/internal/staleness"
	"github.com/sophiekatz/workbench/internal/taskpath"
)

// Initializable is implemented by Progress sinks that want to size a
// progress bar before the walk begins. Console.Init satisfies it; test
// doubles may opt out by not implementing it.
type Initializable interface {
	Init(total int)
}

// Sink is the composite Log+Progress capability set the Executor consumes.
type Sink interface {
	console.Log
	console.Progress
}

// Exec resolves target's transitive dependencies, running each exactly
// once per reachable path (siblings sharing a dependency each schedule
// their own run; there is no cross-sibling memoization), and returns true
// iff every reached task's final state is Skipped or Succeeded. The
// progress bar is guaranteed cleared before Exec returns on any path.
func Exec(ctx context.Context, cfg *config.Config, sink Sink, dir string, target taskpath.TaskPath) (bool, error) {
	if init, ok := sink.(Initializable); ok {
		total := 1
		if n, ok := config.CountDependencies(cfg, target); ok {
			total = int(n) + 1
		}
		init.Init(total)
	}
	defer sink.Clear()

	return execTask(ctx, cfg, sink, dir, target)
}

// execTask runs a single task: its dependencies first, then itself if
// staleness.ShouldRun says so.
func execTask(ctx context.Context, cfg *config.Config, sink Sink, dir string, path taskpath.TaskPath) (bool, error) {
	task, ok := config.GetTask(cfg, path)
	if !ok {
		return false, &TaskNotFoundError{Path: path}
	}

	ok, err := runDependencies(ctx, cfg, sink, dir, task.Dependencies)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	sink.BeginTask(path, task)

	reason, run, err := staleness.ShouldRun(dir, task)
	if err != nil {
		return false, err
	}
	if !run {
		sink.LogExecSkipped(path, reason)
		sink.CompleteTask()
		return true, nil
	}

	out, err := process.Handle(ctx, dir, path, task)
	if err != nil {
		return false, err
	}
	sink.LogExecOutput(path, task, out)
	sink.CompleteTask()
	return out.ExitCode == 0, nil
}

// runDependencies fans each dependency text out onto its own goroutine via
// an errgroup, awaits every one of them (no short-circuit, so output stays
// deterministic), and folds the results: any raised error aggregates into
// an *AggregateError; otherwise any false result fails the whole set.
func runDependencies(ctx context.Context, cfg *config.Config, sink Sink, dir string, depTexts []string) (bool, error) {
	if len(depTexts) == 0 {
		return true, nil
	}

	results := make([]bool, len(depTexts))
	errs := make([]error, len(depTexts))

	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	for i, text := range depTexts {
		i, text := i, text
		g.Go(func() error {
			depPath, err := taskpath.Parse(text)
			if err != nil {
				mu.Lock()
				errs[i] = err
				mu.Unlock()
				return nil
			}

			ok, err := execTask(gctx, cfg, sink, dir, depPath)

			mu.Lock()
			results[i] = ok
			errs[i] = err
			mu.Unlock()
			return nil
		})
	}
	// Wait never itself returns an error here: every goroutine above always
	// returns nil and records its own (bool, error) pair, so siblings are
	// never short-circuited by errgroup's own fail-fast Wait() semantics.
	_ = g.Wait()

	if agg := aggregate(errs); agg != nil {
		return false, agg
	}
	for _, ok := range results {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
