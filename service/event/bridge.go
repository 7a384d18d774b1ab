package event

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/viant/taskmon/task"
)

// Bridge adapts the synchronous zero-argument observer protocol of a task
// handle to typed status events.  It registers one observer on the handle,
// diffs the handle state against what it last saw to classify the change,
// and publishes one event per change.  The handle's own contract is
// untouched; a bridge is just another observer.
type Bridge struct {
	ctx       context.Context
	handle    *task.TaskHandle
	publisher *Publisher[Status]
	logger    *logrus.Logger

	mu       sync.Mutex
	seenDone []int
	lastJob  []string
	stopped  bool
}

// Attach creates a bridge between handle and publisher and registers it as
// an observer.  Publish failures are logged, never propagated into the
// tracked work.
func Attach(ctx context.Context, handle *task.TaskHandle, publisher *Publisher[Status], logger *logrus.Logger) *Bridge {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	b := &Bridge{
		ctx:       ctx,
		handle:    handle,
		publisher: publisher,
		logger:    logger,
	}
	handle.AddObserver(b.onChange)
	return b
}

func (b *Bridge) onChange() {
	jobSets := b.handle.JobSets()

	b.mu.Lock()
	var events []*Event[Status]

	for i := len(b.seenDone); i < len(jobSets); i++ {
		b.seenDone = append(b.seenDone, 0)
		b.lastJob = append(b.lastJob, "")
		events = append(events, b.newEvent(TypeJobSetCreated, jobSets[i]))
	}

	for i, jobSet := range jobSets {
		if done := jobSet.Done(); done > b.seenDone[i] {
			b.seenDone[i] = done
			// the finish notification fires before the job name is cleared
			b.lastJob[i] = ""
			events = append(events, b.newEvent(TypeJobFinished, jobSet))
			continue
		}
		if job := jobSet.JobName(); job != "" && job != b.lastJob[i] {
			b.lastJob[i] = job
			events = append(events, b.newEvent(TypeJobStarted, jobSet))
		}
	}

	if b.handle.IsStopped() && !b.stopped {
		b.stopped = true
		var current task.JobSet
		if len(jobSets) > 0 {
			current = jobSets[len(jobSets)-1]
		}
		events = append(events, b.newEvent(TypeTaskStopped, current))
	}
	b.mu.Unlock()

	for _, event := range events {
		if err := b.publisher.Publish(b.ctx, event); err != nil {
			b.logger.WithError(err).
				WithField("task", b.handle.Name()).
				Warn("failed to publish status event")
		}
	}
}

func (b *Bridge) newEvent(eventType Type, jobSet task.JobSet) *Event[Status] {
	eventContext := &Context{
		TaskID:    b.handle.ID(),
		TaskName:  b.handle.Name(),
		EventType: eventType,
	}
	status := Status{Stopped: b.handle.IsStopped()}
	if jobSet != nil {
		eventContext.JobSet = jobSet.Name()
		eventContext.Job = jobSet.JobName()
		status.JobSet = jobSet.Name()
		status.Job = jobSet.JobName()
		status.Done = jobSet.Done()
		if count, ok := jobSet.Count(); ok {
			value := count
			status.Count = &value
		}
		if percent, ok := jobSet.PercentDone(); ok {
			value := percent
			status.Percent = &value
		}
	}
	return NewEvent(eventContext, status)
}
