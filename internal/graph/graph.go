// Package graph builds a dag.AcyclicGraph view of a task's dependency edges,
// used for introspection (dot rendering) only. The Executor's own
// concurrency model is recursive and does not consult this package.
package graph

import (
	"github.com/pyr-sh/dag"

	"github.com/sophiekatz/workbench/internal/config"
	"github.com/sophiekatz/workbench/internal/taskpath"
)

// Build walks the dependency edges reachable from root and returns a
// dag.AcyclicGraph with one vertex per visited task path display string and
// one edge per declared dependency. Each task path is expanded once, so
// Build terminates on a cyclic dependency set; it does not detect or report
// the cycle, whose edges are added to the returned graph like any other.
func Build(c *config.Config, root taskpath.TaskPath) (*dag.AcyclicGraph, error) {
	g := &dag.AcyclicGraph{}
	visited := map[string]bool{}
	if err := add(g, c, root, visited); err != nil {
		return nil, err
	}
	return g, nil
}

func add(g *dag.AcyclicGraph, c *config.Config, path taskpath.TaskPath, visited map[string]bool) error {
	display := taskpath.Display(path)
	if visited[display] {
		return nil
	}
	visited[display] = true
	g.Add(display)

	task, ok := config.GetTask(c, path)
	if !ok {
		return &taskNotFoundError{Path: path}
	}

	for _, depText := range task.Dependencies {
		depPath, err := taskpath.Parse(depText)
		if err != nil {
			return err
		}
		if err := add(g, c, depPath, visited); err != nil {
			return err
		}
		g.Add(taskpath.Display(depPath))
		g.Connect(dag.BasicEdge(display, taskpath.Display(depPath)))
	}
	return nil
}

type taskNotFoundError struct {
	Path taskpath.TaskPath
}

func (e *taskNotFoundError) Error() string {
	return "task not found: " + taskpath.Display(e.Path)
}

// Dot renders g in Graphviz dot format.
func Dot(g *dag.AcyclicGraph) string {
	return string(g.Dot(&dag.DotOpts{}))
}
