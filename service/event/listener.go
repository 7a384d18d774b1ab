package event

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// pollInterval bounds how often a listener re-polls a queue that returned no
// message without blocking.
const pollInterval = 50 * time.Millisecond

// Listener consumes events from a publisher on a dedicated goroutine and
// invokes the handler for each one.
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T])
	logger    *logrus.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewListener creates a listener invoking handler for every consumed event.
func NewListener[T any](publisher *Publisher[T], handler func(*Event[T]), logger *logrus.Logger) *Listener[T] {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Listener[T]{
		publisher: publisher,
		handler:   handler,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Start begins consuming on a new goroutine.
func (l *Listener[T]) Start() {
	go func() {
		defer close(l.done)
		for {
			event, err := l.publisher.Consume(l.ctx)
			if err != nil {
				if l.ctx.Err() != nil {
					return
				}
				l.logger.WithError(err).Warn("failed to consume event")
				continue
			}
			if event == nil {
				// empty poll of a non-blocking queue
				select {
				case <-l.ctx.Done():
					return
				case <-time.After(pollInterval):
				}
				continue
			}
			l.handler(event)
		}
	}()
}

// Stop cancels the consume loop and waits for it to exit.
func (l *Listener[T]) Stop() {
	l.cancel()
	<-l.done
}
