package task

// Observer is a zero-argument callback registered on a Handle and invoked
// synchronously, in registration order, on every state change (stop, job-set
// creation, job start, job finish).
type Observer func()

// Handle represents a cancellable task that owns an ordered sequence of job
// sets.  Two variants implement it: TaskHandle (live) and NullTaskHandle
// (inert).
type Handle interface {
	// Stop requests cooperative cancellation.  It is a no-op on handles
	// constructed with WithInterruptible(false).
	Stop()

	// IsStopped reports whether cancellation has been requested.
	IsStopped() bool

	// CreateJobSet creates a new job set bound to this handle and appends it
	// to the handle's sequence.  An empty name defaults to DefaultJobSetName.
	// Creation is permitted even after Stop, allowing final-phase bookkeeping.
	CreateJobSet(name string, opts ...JobSetOption) JobSet

	// CurrentJobSet returns the most recently created job set, or nil when
	// none has been created yet.  "Current" means last created, not still
	// active.
	CurrentJobSet() JobSet

	// JobSets returns all job sets ever created, in creation order.
	JobSets() []JobSet

	// AddObserver registers an observer for the remaining lifetime of the
	// handle.
	AddObserver(observer Observer)

	// Name returns the handle's display label.
	Name() string
}

// JobSet represents a named, optionally bounded phase of work within a task.
// Two variants implement it: the live job set created by
// TaskHandle.CreateJobSet and NullJobSet.
type JobSet interface {
	// StartedJob records name as the sub-job now in progress.  It returns
	// ErrInterrupted when the owning handle has been stopped.
	StartedJob(name string) error

	// FinishedJob increments the completed counter and clears the in-flight
	// job name.  It returns ErrInterrupted when the owning handle has been
	// stopped.
	FinishedJob() error

	// CheckStatus is the cancellation polling point: it returns
	// ErrInterrupted when the owning handle has been stopped and nil
	// otherwise.
	CheckStatus() error

	// PercentDone returns the completed percentage in [0, 100] and true when
	// the job set has a defined positive total, or 0 and false otherwise.
	PercentDone() (int, bool)

	// Increment grows a defined total by one, for work discovered
	// mid-execution.  On an unbounded job set it is a no-op.
	Increment()

	// Name returns the job set's display label.
	Name() string

	// JobName returns the label of the sub-job in progress, or an empty
	// string when none is in flight.
	JobName() string

	// Done returns the number of completed sub-jobs.
	Done() int

	// Count returns the expected sub-job total and true, or 0 and false when
	// the total is unknown.
	Count() (int, bool)
}
