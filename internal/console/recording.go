package console

import (
	"sync"

	"github.com/sophiekatz/workbench/internal/config"
	"github.com/sophiekatz/workbench/internal/process"
	"github.com/sophiekatz/workbench/internal/taskpath"
)

// Event is one ordered entry in a Recording's event stream.
type Event struct {
	Kind string // "begin", "complete", "skip", "log"
	Path string
}

// Recording is an in-memory Log+Progress sink for tests, used in place of
// the production Console.
type Recording struct {
	mu     sync.Mutex
	Events []Event
}

func (r *Recording) record(kind, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Kind: kind, Path: path})
}

func (r *Recording) LogMessage(level Level, msg string) {
	r.record("log", msg)
}

func (r *Recording) LogExecOutput(path taskpath.TaskPath, task *config.Task, out process.Output) {
	r.record("log", taskpath.Display(path))
}

func (r *Recording) LogExecSkipped(path taskpath.TaskPath, reason string) {
	r.record("skip", taskpath.Display(path))
}

func (r *Recording) BeginTask(path taskpath.TaskPath, task *config.Task) {
	r.record("begin", taskpath.Display(path))
}

// CompleteTask records a bare completion marker. It carries no task
// identity, matching console.Progress's own CompleteTask() signature.
// Neither Recording nor Console holds a lock across one task's
// begin/log/complete calls, so with concurrent siblings those events may
// interleave with another task's, and a completion cannot always be
// attributed to a task from the event stream alone.
func (r *Recording) CompleteTask() {
	r.record("complete", "")
}

func (r *Recording) Clear() {}

// Snapshot returns a copy of the recorded events.
func (r *Recording) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.Events))
	copy(out, r.Events)
	return out
}
