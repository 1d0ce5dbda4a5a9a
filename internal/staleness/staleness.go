// Package staleness decides whether a task's declared outputs are
// up-to-date with respect to its declared inputs.
package staleness

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sophiekatz/workbench/internal/config"
	"github.com/sophiekatz/workbench/internal/fileset"
)

// Cached is the reason returned when a task may be skipped.
const Cached = "cached"

// ShouldRun reports whether task must run, and if not, the reason it may be
// skipped. dir is the working directory both file sets resolve against.
func ShouldRun(dir string, task *config.Task) (reason string, run bool, err error) {
	if task.Inputs == nil {
		return "", true, nil
	}

	inputs, err := fileset.Resolve(dir, task.Inputs)
	if err != nil {
		return "", false, err
	}
	if len(inputs) == 0 {
		return "", true, nil
	}

	if task.Outputs == nil {
		return "", true, nil
	}

	maxInputMtime, err := latestMtime(dir, inputs, true)
	if err != nil {
		return "", false, err
	}

	outputs, err := fileset.Resolve(dir, task.Outputs)
	if err != nil {
		return "", false, err
	}
	if len(outputs) == 0 {
		return "", true, nil
	}

	for _, out := range outputs {
		mtime, ok, err := mtimeOf(dir, out, false)
		if err != nil {
			return "", false, err
		}
		if !ok {
			// Missing output counts as stale (mtime = -inf).
			return "", true, nil
		}
		if mtime.Before(maxInputMtime) {
			return "", true, nil
		}
	}

	return Cached, false, nil
}

// latestMtime returns the newest mtime among paths. requireExists causes a
// missing file to raise an error, matching the oracle's treatment of
// missing inputs as a fatal I/O condition.
func latestMtime(dir string, paths []string, requireExists bool) (t mtimeValue, err error) {
	var max mtimeValue
	first := true
	for _, p := range paths {
		mtime, ok, err := mtimeOf(dir, p, requireExists)
		if err != nil {
			return mtimeValue{}, err
		}
		if !ok {
			continue
		}
		if first || mtime.after(max) {
			max = mtime
			first = false
		}
	}
	return max, nil
}

// mtimeValue is a thin wrapper so callers never reach for time.Time zero
// values as a stand-in for "missing" by accident.
type mtimeValue struct {
	seconds int64
	nanos   int64
}

func (m mtimeValue) after(other mtimeValue) bool {
	if m.seconds != other.seconds {
		return m.seconds > other.seconds
	}
	return m.nanos > other.nanos
}

func (m mtimeValue) Before(other mtimeValue) bool {
	return other.after(m)
}

func mtimeOf(dir, rel string, requireExists bool) (mtimeValue, bool, error) {
	info, err := os.Stat(filepath.Join(dir, rel))
	if err != nil {
		if os.IsNotExist(err) {
			if requireExists {
				return mtimeValue{}, false, fmt.Errorf("input %s does not exist: %w", rel, err)
			}
			return mtimeValue{}, false, nil
		}
		return mtimeValue{}, false, err
	}
	mt := info.ModTime()
	return mtimeValue{seconds: mt.Unix(), nanos: int64(mt.Nanosecond())}, true, nil
}
