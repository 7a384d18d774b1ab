package task

import "sync"

// jobSet is the live JobSet implementation.  The handle reference is
// non-owning: a job set only queries the handle's stopped flag and triggers
// its observer notification, while the handle owns the job-set sequence.
type jobSet struct {
	handle *TaskHandle
	name   string

	mu      sync.Mutex
	count   *int
	done    int
	jobName string
}

// StartedJob records name as the sub-job in progress.  Cancellation is
// checked first, so no progress is recorded for a stopped task.
func (s *jobSet) StartedJob(name string) error {
	if err := s.CheckStatus(); err != nil {
		return err
	}
	s.mu.Lock()
	s.jobName = name
	s.mu.Unlock()
	s.handle.notifyObservers()
	return nil
}

// FinishedJob increments the completed counter.  Observers fired by this
// call still see the finishing job's name; it is cleared only after the
// notification pass.
func (s *jobSet) FinishedJob() error {
	if err := s.CheckStatus(); err != nil {
		return err
	}
	s.mu.Lock()
	s.done++
	s.mu.Unlock()
	s.handle.notifyObservers()
	s.mu.Lock()
	s.jobName = ""
	s.mu.Unlock()
	return nil
}

// CheckStatus is the sole cancellation polling point.
func (s *jobSet) CheckStatus() error {
	if s.handle.IsStopped() {
		return interruptedError(s.handle.Name(), s.name)
	}
	return nil
}

// PercentDone computes floor(done*100/count) clamped to 100.  It returns
// false when the total is unknown or not positive.
func (s *jobSet) PercentDone() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == nil || *s.count <= 0 {
		return 0, false
	}
	percent := s.done * 100 / *s.count
	if percent > 100 {
		percent = 100
	}
	return percent, true
}

// Increment grows a defined total by one.  On an unbounded job set it is a
// no-op: the total stays unknown rather than being silently defaulted.
func (s *jobSet) Increment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == nil {
		return
	}
	*s.count++
}

// Name returns the job set's display label.
func (s *jobSet) Name() string {
	return s.name
}

// JobName returns the label of the sub-job in progress, if any.
func (s *jobSet) JobName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobName
}

// Done returns the number of completed sub-jobs.
func (s *jobSet) Done() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Count returns the expected total and whether it is defined.
func (s *jobSet) Count() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == nil {
		return 0, false
	}
	return *s.count, true
}

var _ JobSet = (*jobSet)(nil)
