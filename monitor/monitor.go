// Package monitor aggregates the state of one task handle into a read-only
// snapshot for UI and reporting layers.  The handle's observer protocol
// carries no arguments, so every consumer would otherwise re-derive the same
// per-job-set numbers on each notification; a Monitor does it once and hands
// out value copies.
package monitor

import (
	"sync"
	"time"

	"github.com/viant/taskmon/task"
)

// JobSetStatus describes one job set at snapshot time.  Count and Percent
// are nil for unbounded job sets.
type JobSetStatus struct {
	Name    string `json:"name"`
	Job     string `json:"job,omitempty"`
	Done    int    `json:"done"`
	Count   *int   `json:"count,omitempty"`
	Percent *int   `json:"percent,omitempty"`
}

// Snapshot is an immutable view of a handle taken after a state change.
type Snapshot struct {
	TaskID       string         `json:"taskId"`
	Task         string         `json:"task"`
	StartedAt    time.Time      `json:"startedAt"`
	Stopped      bool           `json:"stopped"`
	JobSets      []JobSetStatus `json:"jobSets,omitempty"`
	JobsDone     int            `json:"jobsDone"`
	JobsExpected int            `json:"jobsExpected"`
	Changes      int            `json:"changes"`
}

// Current returns the status of the most recently created job set, or nil
// when the task has none.
func (s *Snapshot) Current() *JobSetStatus {
	if len(s.JobSets) == 0 {
		return nil
	}
	return &s.JobSets[len(s.JobSets)-1]
}

// Monitor observes a task handle and maintains the latest Snapshot.  It is
// safe for concurrent use.
type Monitor struct {
	handle *task.TaskHandle

	mu       sync.Mutex
	snapshot Snapshot
	onChange func(Snapshot)
}

// Watch registers a Monitor as an observer on handle and returns it.  The
// monitor refreshes on every subsequent state change; Snapshot is valid
// immediately.
func Watch(handle *task.TaskHandle) *Monitor {
	m := &Monitor{handle: handle}
	m.snapshot = Snapshot{
		TaskID:    handle.ID(),
		Task:      handle.Name(),
		StartedAt: handle.CreatedAt(),
	}
	handle.AddObserver(m.refresh)
	return m
}

// Snapshot returns a copy of the latest snapshot.  The JobSets slice is
// rebuilt on every refresh and never mutated in place, so the copy is safe
// to retain.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}

// OnChange registers a callback invoked with a snapshot copy after every
// refresh, outside the critical section so it may perform slow work.
// Passing nil disables the callback; only one callback can be active.
func (m *Monitor) OnChange(cb func(Snapshot)) {
	m.mu.Lock()
	m.onChange = cb
	m.mu.Unlock()
}

func (m *Monitor) refresh() {
	jobSets := m.handle.JobSets()
	statuses := make([]JobSetStatus, 0, len(jobSets))
	var done, expected int
	for _, jobSet := range jobSets {
		status := JobSetStatus{
			Name: jobSet.Name(),
			Job:  jobSet.JobName(),
			Done: jobSet.Done(),
		}
		if count, ok := jobSet.Count(); ok {
			value := count
			status.Count = &value
			expected += count
		}
		if percent, ok := jobSet.PercentDone(); ok {
			value := percent
			status.Percent = &value
		}
		done += status.Done
		statuses = append(statuses, status)
	}

	m.mu.Lock()
	m.snapshot.Stopped = m.handle.IsStopped()
	m.snapshot.JobSets = statuses
	m.snapshot.JobsDone = done
	m.snapshot.JobsExpected = expected
	m.snapshot.Changes++
	snapshot := m.snapshot
	cb := m.onChange
	m.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}
