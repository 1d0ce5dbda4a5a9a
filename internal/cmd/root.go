// Package cmd wires workbench's cobra command tree: the argument-splitting
// pre-pass, the run command that drives the Executor, and the built-in
// introspection commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sophiekatz/workbench/internal/builtin"
	"github.com/sophiekatz/workbench/internal/cliargs"
	"github.com/sophiekatz/workbench/internal/config"
	"github.com/sophiekatz/workbench/internal/console"
	"github.com/sophiekatz/workbench/internal/executor"
	"github.com/sophiekatz/workbench/internal/graph"
	"github.com/sophiekatz/workbench/internal/taskpath"
)

// diagLogger carries workbench's own diagnostic trail, separate from the
// user-facing Console: named and leveled like a component logger, it is
// never shown to a non-verbose user.
var diagLogger = hclog.New(&hclog.LoggerOptions{
	Name:  "workbench",
	Level: hclog.Warn,
})

// Options are the front-end's own flags, split out from the target task's
// forwarded arguments by cliargs before cobra ever sees them.
type Options struct {
	Jobs            uint32
	Verbose         bool
	ConfigPath      string
	DisableProgress bool
	DisableColor    bool
	DisableUnicode  bool
}

var opts Options

var rootCmd = &cobra.Command{
	Use:           "workbench <task> [task-args...]",
	Short:         "Workbench is a configuration-driven task runner",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Workbench executes a target task after first executing its transitive
dependencies, exploiting independence between dependencies to run them
concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		csl := newConsole()
		cfg, dir, err := loadConfig(csl)
		if err != nil {
			csl.LogMessage(console.Error, err.Error())
			return err
		}
		if err := runTarget(csl, cfg, dir, args[0]); err != nil {
			if _, ok := err.(*taskFailedError); !ok {
				csl.LogMessage(console.Error, err.Error())
			}
			return err
		}
		return nil
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph <task>",
	Short: "Print the dependency graph reachable from a task, in Graphviz dot format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		csl := newConsole()
		cfg, _, err := loadConfig(csl)
		if err != nil {
			csl.LogMessage(console.Error, err.Error())
			return err
		}
		path, err := taskpath.Parse(args[0])
		if err != nil {
			csl.LogMessage(console.Error, err.Error())
			return err
		}
		g, err := graph.Build(cfg, path)
		if err != nil {
			csl.LogMessage(console.Error, err.Error())
			return err
		}
		fmt.Println(graph.Dot(g))
		return nil
	},
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every resolvable task path",
	RunE: func(cmd *cobra.Command, args []string) error {
		csl := newConsole()
		cfg, _, err := loadConfig(csl)
		if err != nil {
			csl.LogMessage(console.Error, err.Error())
			return err
		}
		for _, name := range builtin.ListTasks(cfg) {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Uint32VarP(&opts.Jobs, "jobs", "j", 0, "number of tasks to run in parallel (0 = auto)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to the workbench configuration file")
	flags.BoolVar(&opts.DisableProgress, "no-progress", false, "disable the live progress bar")
	flags.BoolVar(&opts.DisableColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.DisableUnicode, "no-unicode", false, "disable unicode spinner characters")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// Stop flag parsing at the target task path, so its forwarded arguments
	// reach RunE verbatim instead of being parsed as workbench flags.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(lsCmd)
}

func newConsole() *console.Console {
	return console.New(console.Options{
		Verbose:         opts.Verbose,
		DisableProgress: opts.DisableProgress,
		DisableColor:    opts.DisableColor,
		DisableUnicode:  opts.DisableUnicode,
	})
}

func loadConfig(csl *console.Console) (*config.Config, string, error) {
	if opts.Verbose {
		diagLogger.SetLevel(hclog.Debug)
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, "resolving working directory")
	}
	cfgPath, err := config.Discover(dir, opts.ConfigPath)
	if err != nil {
		return nil, "", errors.Wrap(err, "discovering configuration")
	}
	diagLogger.Debug("resolved configuration file", "path", cfgPath)

	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		return nil, "", errors.Wrap(err, "loading configuration")
	}
	return cfg, dir, nil
}

// runTarget dispatches a target task path: the ":ls" and ":config-path"
// built-ins, a property suffix, or a real Executor invocation.
func runTarget(csl *console.Console, cfg *config.Config, dir, target string) error {
	if target == ":ls" {
		for _, name := range builtin.ListTasks(cfg) {
			fmt.Println(name)
		}
		return nil
	}

	if target == ":config-path" {
		cfgPath, err := config.Discover(dir, opts.ConfigPath)
		if err != nil {
			return err
		}
		fmt.Println(cfgPath)
		return nil
	}

	path, err := taskpath.Parse(target)
	if err != nil {
		return err
	}

	if path.Property != "" {
		out, err := builtin.ResolveProperty(cfg, dir, path)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	ok, err := executor.Exec(context.Background(), cfg, csl, dir, path)
	if err != nil {
		return err
	}
	if !ok {
		return &taskFailedError{}
	}
	return nil
}

type taskFailedError struct{}

func (e *taskFailedError) Error() string { return "" }

// Execute parses rawArgs (not including the binary name) via the
// workbench/task-args split, runs the resolved cobra command, and returns
// the process exit code.
func Execute(rawArgs []string) int {
	split := cliargs.SplitArgs(rawArgs)

	cobraArgs := append([]string{}, split.WorkbenchArgs...)
	if split.HasTarget {
		cobraArgs = append(cobraArgs, split.TargetTaskPath)
		cobraArgs = append(cobraArgs, split.TaskArgs...)
	}

	rootCmd.SetArgs(cobraArgs)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
