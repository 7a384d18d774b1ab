package task

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/viant/taskmon/internal/clock"
	"github.com/viant/taskmon/internal/idgen"
)

// Default display labels applied when the caller supplies none.
const (
	DefaultTaskName   = "Task"
	DefaultJobSetName = "JobSet"
)

// TaskHandle is the live Handle implementation.  It assumes a single logical
// writer; the stopped flag alone is atomic so that a second goroutine (a UI
// callback, a signal handler) may request cancellation concurrently.
type TaskHandle struct {
	id            string
	name          string
	interruptible bool
	createdAt     time.Time

	stopped atomic.Bool

	mu        sync.Mutex
	jobSets   []*jobSet
	observers []Observer
}

// New creates a TaskHandle.  Without options the handle is named
// DefaultTaskName and is interruptible.
func New(opts ...Option) *TaskHandle {
	h := &TaskHandle{
		id:            idgen.New(),
		name:          DefaultTaskName,
		interruptible: true,
		createdAt:     clock.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ID returns the handle's generated identifier, used to correlate events and
// traces.
func (h *TaskHandle) ID() string {
	return h.id
}

// Name returns the handle's display label.
func (h *TaskHandle) Name() string {
	return h.name
}

// CreatedAt returns the handle's creation time.
func (h *TaskHandle) CreatedAt() time.Time {
	return h.createdAt
}

// Stop requests cancellation.  On an interruptible handle it sets the
// stopped flag and notifies observers; repeated calls are permitted and
// notify again.  On a non-interruptible handle it does nothing.
func (h *TaskHandle) Stop() {
	if !h.interruptible {
		return
	}
	h.stopped.Store(true)
	h.notifyObservers()
}

// IsStopped reports whether cancellation has been requested.
func (h *TaskHandle) IsStopped() bool {
	return h.stopped.Load()
}

// CreateJobSet creates a job set bound to this handle, appends it to the
// handle's sequence and notifies observers.  The stopped flag is not
// checked, so bookkeeping job sets can still be created after cancellation.
func (h *TaskHandle) CreateJobSet(name string, opts ...JobSetOption) JobSet {
	if name == "" {
		name = DefaultJobSetName
	}
	result := &jobSet{handle: h, name: name}
	for _, opt := range opts {
		opt(result)
	}
	h.mu.Lock()
	h.jobSets = append(h.jobSets, result)
	h.mu.Unlock()
	h.notifyObservers()
	return result
}

// CurrentJobSet returns the most recently created job set, or nil when the
// handle has none.
func (h *TaskHandle) CurrentJobSet() JobSet {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.jobSets) == 0 {
		return nil
	}
	return h.jobSets[len(h.jobSets)-1]
}

// JobSets returns all job sets ever created, in creation order.
func (h *TaskHandle) JobSets() []JobSet {
	h.mu.Lock()
	defer h.mu.Unlock()
	result := make([]JobSet, len(h.jobSets))
	for i, s := range h.jobSets {
		result[i] = s
	}
	return result
}

// AddObserver registers an observer.  Observers are never removed and fire
// for every subsequent state change.
func (h *TaskHandle) AddObserver(observer Observer) {
	if observer == nil {
		return
	}
	h.mu.Lock()
	h.observers = append(h.observers, observer)
	h.mu.Unlock()
}

// notifyObservers invokes every registered observer in registration order.
// It iterates a snapshot taken under the lock, so an observer may register
// further observers without affecting the in-progress pass.
func (h *TaskHandle) notifyObservers() {
	h.mu.Lock()
	snapshot := make([]Observer, len(h.observers))
	copy(snapshot, h.observers)
	h.mu.Unlock()
	for _, observer := range snapshot {
		observer()
	}
}

var _ Handle = (*TaskHandle)(nil)
