// Package renamer applies a rename plan inside one directory. Every operation
// is attempted; a failure is logged and recorded without stopping the batch.
package renamer

import (
	"log/slog"
	"os"
	"path/filepath"

	"subrename/internal/logging"
	"subrename/internal/planner"
)

// Status is the result of one operation.
type Status int

const (
	StatusRenamed Status = iota
	StatusUnchanged
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "failed"
	}
}

// Outcome pairs an operation with what happened to it.
type Outcome struct {
	planner.Operation
	Status Status
	Err    error
}

// RenameFunc matches os.Rename.
type RenameFunc func(oldpath, newpath string) error

// Renamer performs renames within Dir.
type Renamer struct {
	Dir    string
	Rename RenameFunc
	Logger *slog.Logger
}

// New returns a Renamer using os.Rename.
func New(dir string, logger *slog.Logger) *Renamer {
	return &Renamer{Dir: dir, Rename: os.Rename, Logger: logger}
}

// Apply runs every operation in plan order and returns one outcome each.
func (r *Renamer) Apply(plan planner.Plan) []Outcome {
	logger := logging.NewComponentLogger(r.Logger, "renamer")
	rename := r.Rename
	if rename == nil {
		rename = os.Rename
	}

	outcomes := make([]Outcome, 0, len(plan.Operations))
	for _, op := range plan.Operations {
		attrs := []any{
			logging.String("from", op.OldName),
			logging.String("to", op.NewName),
			logging.Episode(op.Episode, true),
		}
		if op.Noop() {
			logger.Info("already named", attrs...)
			outcomes = append(outcomes, Outcome{Operation: op, Status: StatusUnchanged})
			continue
		}

		err := rename(filepath.Join(r.Dir, op.OldName), filepath.Join(r.Dir, op.NewName))
		if err != nil {
			logger.Error("failed to rename", append(attrs, logging.Error(err))...)
			outcomes = append(outcomes, Outcome{Operation: op, Status: StatusFailed, Err: err})
			continue
		}
		logger.Info("renamed", attrs...)
		outcomes = append(outcomes, Outcome{Operation: op, Status: StatusRenamed})
	}
	return outcomes
}

// Failed counts outcomes with StatusFailed.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Status == StatusFailed {
			n++
		}
	}
	return n
}
