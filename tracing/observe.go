package tracing

import (
	"context"
	"sync"

	"github.com/viant/taskmon/task"
)

// Observe attaches span bookkeeping to a task handle: a span is opened when
// a sub-job starts and closed when it finishes, and in-flight spans are
// closed with an interrupted status when the handle stops.  The core task
// package never imports OpenTelemetry; this observer is the opt-in glue.
func Observe(ctx context.Context, handle *task.TaskHandle) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := &observer{ctx: ctx, handle: handle}
	handle.AddObserver(o.onChange)
}

type jobSpan struct {
	span *Span
	job  string
}

type observer struct {
	ctx    context.Context
	handle *task.TaskHandle

	mu       sync.Mutex
	seenDone []int
	inFlight []*jobSpan
	stopped  bool
}

func (o *observer) onChange() {
	jobSets := o.handle.JobSets()

	o.mu.Lock()
	defer o.mu.Unlock()

	for i := len(o.seenDone); i < len(jobSets); i++ {
		o.seenDone = append(o.seenDone, 0)
		o.inFlight = append(o.inFlight, nil)
	}

	for i, jobSet := range jobSets {
		if done := jobSet.Done(); done > o.seenDone[i] {
			o.seenDone[i] = done
			if current := o.inFlight[i]; current != nil {
				EndSpan(current.span, nil)
				o.inFlight[i] = nil
			}
			continue
		}
		job := jobSet.JobName()
		if job == "" {
			continue
		}
		if current := o.inFlight[i]; current != nil {
			if current.job == job {
				continue
			}
			// a job restarted without a finish; close the stale span
			EndSpan(current.span, nil)
		}
		_, span := StartSpan(o.ctx, jobSet.Name()+"/"+job)
		span.WithAttributes(map[string]string{
			"task":   o.handle.Name(),
			"taskId": o.handle.ID(),
			"jobSet": jobSet.Name(),
			"job":    job,
		})
		o.inFlight[i] = &jobSpan{span: span, job: job}
	}

	if o.handle.IsStopped() && !o.stopped {
		o.stopped = true
		for i, current := range o.inFlight {
			if current == nil {
				continue
			}
			current.span.AddEvent("task stopped")
			EndSpan(current.span, task.ErrInterrupted)
			o.inFlight[i] = nil
		}
	}
}
