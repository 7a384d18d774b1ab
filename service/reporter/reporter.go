// Package reporter provides a ready-made logging consumer of the observer
// protocol: one structured log line per state change of a task handle.  It
// is the library form of a UI/reporting layer; applications that render
// progress themselves register their own observers instead.
package reporter

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/taskmon/task"
)

// Option customises a Reporter.
type Option func(r *Reporter)

// WithLevel sets the level progress lines are logged at; the default is
// logrus.InfoLevel.  Stop is always logged at warning level.
func WithLevel(level logrus.Level) Option {
	return func(r *Reporter) {
		r.level = level
	}
}

// Reporter logs task progress through a logrus logger.
type Reporter struct {
	logger *logrus.Logger
	level  logrus.Level
}

// New creates a Reporter.  A nil logger defaults to the logrus standard
// logger.
func New(logger *logrus.Logger, opts ...Option) *Reporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	r := &Reporter{logger: logger, level: logrus.InfoLevel}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Attach registers the reporter as an observer on handle.
func (r *Reporter) Attach(handle *task.TaskHandle) {
	handle.AddObserver(func() {
		r.report(handle)
	})
}

func (r *Reporter) report(handle *task.TaskHandle) {
	entry := r.logger.WithFields(logrus.Fields{
		"task":   handle.Name(),
		"taskId": handle.ID(),
	})
	if current := handle.CurrentJobSet(); current != nil {
		entry = entry.WithFields(logrus.Fields{
			"jobSet": current.Name(),
			"done":   current.Done(),
		})
		if job := current.JobName(); job != "" {
			entry = entry.WithField("job", job)
		}
		if percent, ok := current.PercentDone(); ok {
			entry = entry.WithField("percent", percent)
		}
	}
	if handle.IsStopped() {
		entry.Warn("task stopped")
		return
	}
	entry.Log(r.level, "task progress")
}
