package config

import (
	"github.com/sophiekatz/workbench/internal/taskpath"
)

// GetTask looks up the task addressed by path. It performs no mutation; the
// returned Task is a copy of the stored entry, whose slice and pointer
// fields still share storage with the Config.
func GetTask(c *Config, path taskpath.TaskPath) (*Task, bool) {
	if path.Namespace != "" {
		ns, ok := c.Namespaces[path.Namespace]
		if !ok {
			return nil, false
		}
		t, ok := ns.Tasks[path.Name]
		if !ok {
			return nil, false
		}
		return &t, true
	}
	t, ok := c.Tasks[path.Name]
	if !ok {
		return nil, false
	}
	return &t, true
}

// CountDependencies depth-first sums the number of dependency edges
// reachable from path, counting a task visited along multiple paths once
// per visit (multi-paths are not deduplicated, matching the Executor's own
// no-memoization fan-out). It returns false if any reachable task cannot be
// resolved.
func CountDependencies(c *Config, path taskpath.TaskPath) (uint64, bool) {
	task, ok := GetTask(c, path)
	if !ok {
		return 0, false
	}

	var total uint64
	for _, depText := range task.Dependencies {
		depPath, err := taskpath.Parse(depText)
		if err != nil {
			return 0, false
		}
		total++
		sub, ok := CountDependencies(c, depPath)
		if !ok {
			return 0, false
		}
		total += sub
	}
	return total, true
}

// NamespaceNames lists every namespace name declared in the config.
func (c *Config) NamespaceNames() []string {
	names := make([]string, 0, len(c.Namespaces))
	for n := range c.Namespaces {
		names = append(names, n)
	}
	return names
}
