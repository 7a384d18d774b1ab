package task

import (
	"errors"
	"fmt"
)

// ErrInterrupted signals that the owning handle has been stopped.  Errors
// returned by StartedJob, FinishedJob and CheckStatus wrap it, so callers
// match with errors.Is.
var ErrInterrupted = errors.New("task interrupted")

func interruptedError(taskName, jobSetName string) error {
	return fmt.Errorf("job set %q of task %q: %w", jobSetName, taskName, ErrInterrupted)
}

// IsInterrupted reports whether err originates from a stopped handle.
func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted)
}
