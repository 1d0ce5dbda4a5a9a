// Package builtin implements the CLI-layer built-in task paths (`:ls`,
// `:config-path`, and the `.help`/`.description`/`.resolved-inputs`/
// `.resolved-outputs` property suffixes), all handled outside the
// Executor core.
package builtin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sophiekatz/workbench/internal/config"
	"github.com/sophiekatz/workbench/internal/fileset"
	"github.com/sophiekatz/workbench/internal/taskpath"
)

// ListTasks returns every resolvable task path, sorted, including the
// ":ls" and ":config-path" built-ins themselves.
func ListTasks(c *config.Config) []string {
	names := []string{":ls", ":config-path"}
	for name := range c.Tasks {
		names = append(names, name)
	}
	for ns, bundle := range c.Namespaces {
		for name := range bundle.Tasks {
			names = append(names, ns+":"+name)
		}
	}
	sort.Strings(names)
	return names
}

// UnknownPropertyError reports a property suffix this layer doesn't know
// how to handle.
type UnknownPropertyError struct {
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown task path property: %q", e.Property)
}

// ResolveProperty dispatches a task path's property suffix to the Config
// view or the File-set resolver, never to the Executor.
func ResolveProperty(c *config.Config, dir string, path taskpath.TaskPath) (string, error) {
	task, ok := config.GetTask(c, path)
	if !ok {
		return "", fmt.Errorf("task not found: %s", taskpath.Display(path))
	}

	switch path.Property {
	case "help":
		if task.Usage != "" {
			return task.Usage, nil
		}
		return task.Description, nil
	case "description":
		return task.Description, nil
	case "resolved-inputs":
		paths, err := fileset.Resolve(dir, task.Inputs)
		if err != nil {
			return "", err
		}
		return strings.Join(paths, "\n"), nil
	case "resolved-outputs":
		paths, err := fileset.Resolve(dir, task.Outputs)
		if err != nil {
			return "", err
		}
		return strings.Join(paths, "\n"), nil
	default:
		return "", &UnknownPropertyError{Property: path.Property}
	}
}
