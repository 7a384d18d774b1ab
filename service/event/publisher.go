package event

import (
	"context"

	"github.com/viant/taskmon/internal/clock"
	"github.com/viant/taskmon/service/messaging"
)

// Publisher publishes and consumes typed events over a messaging queue.
type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

// NewPublisher creates a publisher backed by the supplied queue.
func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{queue: queue}
}

// Publish stamps the event and hands it to the queue.
func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	event.CreatedAt = clock.Now()
	return p.queue.Publish(ctx, event)
}

// Consume retrieves and acknowledges a single event.  It returns nil when
// the queue yields no message.
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}
