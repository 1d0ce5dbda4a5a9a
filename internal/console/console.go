// Package console implements the Executor's logging and progress-bar
// capability set: a single shared sink that serializes interleaved output
// from concurrently completing tasks.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/cli"

	"github.com/sophiekatz/workbench/internal/config"
	"github.com/sophiekatz/workbench/internal/process"
	"github.com/sophiekatz/workbench/internal/taskpath"
)

// Level orders log messages. Messages below a Console's minimum level are
// dropped.
type Level int

const (
	Status Level = iota
	Warning
	Error
)

// Log is the logging half of the Executor's console capability set.
type Log interface {
	LogMessage(level Level, msg string)
	LogExecOutput(path taskpath.TaskPath, task *config.Task, out process.Output)
	LogExecSkipped(path taskpath.TaskPath, reason string)
}

// Progress is the progress-bar half of the Executor's console capability
// set. When disabled, implementations make every call a no-op.
type Progress interface {
	BeginTask(path taskpath.TaskPath, task *config.Task)
	CompleteTask()
	Clear()
}

// Console combines Log and Progress behind one mutex-guarded sink, wrapping
// a cli.ConcurrentUi so concurrent tasks can log without interleaving.
type Console struct {
	ui       cli.Ui
	minLevel Level
	verbose  bool

	mu          sync.Mutex
	progressOn  bool
	spin        *spinner.Spinner
	completed   int
	total       int
	spinStarted bool
}

// Options configures a new Console.
type Options struct {
	Out             io.Writer
	Err             io.Writer
	MinLevel        Level
	Verbose         bool
	DisableProgress bool
	DisableColor    bool
	DisableUnicode  bool
}

// New constructs a Console. When DisableColor/DisableProgress are left at
// their zero value (false), color and the progress bar default to enabled
// only when the output stream is a TTY.
func New(opts Options) *Console {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	isTTY := false
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		isTTY = true
	}

	noColor := opts.DisableColor || !isTTY
	color.NoColor = noColor

	basic := &cli.BasicUi{Writer: out, ErrorWriter: errOut}
	colored := &cli.ColoredUi{
		Ui:          basic,
		OutputColor: cli.UiColorNone,
		InfoColor:   cli.UiColor{Code: 32},
		ErrorColor:  cli.UiColor{Code: 31},
		WarnColor:   cli.UiColor{Code: 33},
	}

	var ui cli.Ui = colored
	if noColor {
		ui = basic
	}

	c := &Console{
		ui:         &cli.ConcurrentUi{Ui: ui},
		minLevel:   opts.MinLevel,
		verbose:    opts.Verbose,
		progressOn: !opts.DisableProgress && isTTY,
	}

	if c.progressOn {
		charSet := spinner.CharSets[14]
		if opts.DisableUnicode {
			charSet = []string{"-", "\\", "|", "/"}
		}
		c.spin = spinner.New(charSet, 100*time.Millisecond, spinner.WithWriter(errOut))
	}

	return c
}

// Init sets the progress bar's total (1 + dependency count, falling back
// to 1 if the count could not be determined).
func (c *Console) Init(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if total < 1 {
		total = 1
	}
	c.total = total
	c.completed = 0
}

// LogMessage emits msg at level if it meets the Console's minimum level.
func (c *Console) LogMessage(level Level, msg string) {
	if level < c.minLevel {
		return
	}
	c.withClearedProgress(func() {
		switch level {
		case Error:
			c.ui.Error(msg)
		case Warning:
			c.ui.Warn(msg)
		default:
			c.ui.Output(msg)
		}
	})
}

// LogExecOutput prints a completed task's captured output.
func (c *Console) LogExecOutput(path taskpath.TaskPath, task *config.Task, out process.Output) {
	status := "done"
	if out.ExitCode != 0 {
		status = "failed"
	}
	prefix := fmt.Sprintf("%s: %s (%s, %s)", taskpath.Display(path), status, out.Duration.Round(time.Millisecond), exitCodeLabel(out.ExitCode))
	if c.verbose {
		prefix = fmt.Sprintf("[%s] %s", uuid.NewString()[:8], prefix)
	}

	c.withClearedProgress(func() {
		if out.ExitCode != 0 {
			c.ui.Error(prefix)
		} else {
			c.ui.Output(prefix)
		}
		if len(out.Combined) > 0 {
			c.ui.Output(string(out.Combined))
		}
	})
}

// LogExecSkipped prints a skip notice for path.
func (c *Console) LogExecSkipped(path taskpath.TaskPath, reason string) {
	c.withClearedProgress(func() {
		c.ui.Output(fmt.Sprintf("%s: skipped (%s)", taskpath.Display(path), reason))
	})
}

// BeginTask marks path as starting.
func (c *Console) BeginTask(path taskpath.TaskPath, task *config.Task) {
	if !c.progressOn {
		return
	}
	c.withClearedProgress(func() {
		c.tickLocked(fmt.Sprintf("running %s", taskpath.Display(path)))
	})
}

// CompleteTask increments the completed count.
func (c *Console) CompleteTask() {
	if !c.progressOn {
		return
	}
	c.withClearedProgress(func() {
		c.completed++
		c.tickLocked("")
	})
}

// Clear stops and clears the progress bar.
func (c *Console) Clear() {
	if !c.progressOn {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

// withClearedProgress serializes clear -> print -> re-tick under one mutex
// held for its duration, so concurrent task completions never corrupt the
// terminal.
func (c *Console) withClearedProgress(print func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
	print()
	if c.progressOn {
		c.tickLocked("")
	}
}

func (c *Console) clearLocked() {
	if c.spin != nil && c.spinStarted {
		c.spin.Stop()
		c.spinStarted = false
	}
}

func (c *Console) tickLocked(suffix string) {
	if c.spin == nil {
		return
	}
	label := fmt.Sprintf(" %d/%d", c.completed, c.total)
	if suffix != "" {
		label += " " + suffix
	}
	c.spin.Suffix = label
	if !c.spinStarted {
		c.spin.Start()
		c.spinStarted = true
	}
}

func exitCodeLabel(code int) string {
	return fmt.Sprintf("exit %d", code)
}
