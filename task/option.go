package task

// Option customises a TaskHandle at construction time.
type Option func(h *TaskHandle)

// WithName sets the handle's display label.
func WithName(name string) Option {
	return func(h *TaskHandle) {
		h.name = name
	}
}

// WithInterruptible controls whether Stop has any effect.  Handles are
// interruptible by default; with false, Stop is permanently disabled.
func WithInterruptible(interruptible bool) Option {
	return func(h *TaskHandle) {
		h.interruptible = interruptible
	}
}

// JobSetOption customises a job set at creation time.
type JobSetOption func(s *jobSet)

// WithCount sets the expected sub-job total.  Without this option the job
// set is unbounded and PercentDone stays undefined.
func WithCount(count int) JobSetOption {
	return func(s *jobSet) {
		value := count
		s.count = &value
	}
}
