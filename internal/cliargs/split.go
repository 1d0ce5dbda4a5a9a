// Package cliargs splits a raw argv into the workbench front-end's own
// flags and the target task's forwarded arguments. cobra alone can't
// express "forward everything after the task name unconditionally", so
// this pre-pass runs before cobra's own flag parsing.
package cliargs

// argsWithValues lists workbench flags that consume the following argv
// element as their value, rather than standing alone as a boolean switch.
var argsWithValues = map[string]bool{
	"-j":       true,
	"--jobs":   true,
	"-c":       true,
	"--config": true,
}

// Split is the result of partitioning a raw argv.
type Split struct {
	WorkbenchArgs  []string
	TargetTaskPath string
	HasTarget      bool
	TaskArgs       []string
}

// SplitArgs partitions args (NOT including the binary name) into workbench
// flags, an optional target task path, and the task's own forwarded
// arguments. It stops collecting workbench flags at the first argument
// that doesn't start with "-", which becomes the target task path; every
// remaining argument is forwarded verbatim as task_args.
func SplitArgs(args []string) Split {
	var workbenchArgs []string
	i := 0

	for i < len(args) {
		arg := args[i]
		if len(arg) == 0 || arg[0] != '-' {
			break
		}
		workbenchArgs = append(workbenchArgs, arg)
		i++

		if argsWithValues[arg] {
			if i < len(args) {
				workbenchArgs = append(workbenchArgs, args[i])
				i++
			} else {
				break
			}
		}
	}

	s := Split{WorkbenchArgs: workbenchArgs}

	if i < len(args) {
		s.TargetTaskPath = args[i]
		s.HasTarget = true
		i++
	}

	if i < len(args) {
		s.TaskArgs = append([]string{}, args[i:]...)
	}

	return s
}
