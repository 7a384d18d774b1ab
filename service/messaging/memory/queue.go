package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viant/taskmon/internal/idgen"
	"github.com/viant/taskmon/service/messaging"
)

// Config for the in-memory queue implementation.
type Config struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter bool
	Buffer     int
}

// DefaultConfig returns a standard configuration for the in-memory queue.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		RetryDelay: 100 * time.Millisecond,
		DeadLetter: true,
		Buffer:     100,
	}
}

// Message implements messaging.Message for the in-memory queue.
type Message[T any] struct {
	id      string
	payload T
	queue   *Queue[T]
	retries int

	mu      sync.Mutex
	settled bool
}

// T returns the message payload.
func (m *Message[T]) T() *T {
	return &m.payload
}

// Ack acknowledges the message as processed successfully.
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settled {
		return fmt.Errorf("message %v already settled", m.id)
	}
	m.settled = true
	return nil
}

// Nack indicates a processing failure.  The message is requeued after the
// configured delay until MaxRetries is exceeded, then moved to the dead
// letter queue when one is enabled.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settled {
		return fmt.Errorf("message %v already settled", m.id)
	}
	m.settled = true
	m.retries++

	if m.retries <= m.queue.config.MaxRetries {
		go m.queue.requeue(m)
		return nil
	}
	if m.queue.config.DeadLetter {
		m.queue.dlqMu.Lock()
		m.queue.dlq = append(m.queue.dlq, m)
		m.queue.dlqMu.Unlock()
	}
	return nil
}

// Queue implements a channel-backed messaging.Queue.
type Queue[T any] struct {
	messages chan *Message[T]
	config   Config

	dlqMu sync.Mutex
	dlq   []*Message[T]
}

// NewQueue creates a new in-memory queue.
func NewQueue[T any](config Config) *Queue[T] {
	if config.Buffer <= 0 {
		config.Buffer = DefaultConfig().Buffer
	}
	return &Queue[T]{
		messages: make(chan *Message[T], config.Buffer),
		config:   config,
	}
}

// Publish adds a new item to the queue.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := &Message[T]{
		id:      idgen.New(),
		payload: *t,
		queue:   q,
	}
	select {
	case q.messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume retrieves a single item from the queue, blocking until one is
// available or ctx is done.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case msg := <-q.messages:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the current number of messages in the queue.
func (q *Queue[T]) Size() int {
	return len(q.messages)
}

// DLQSize returns the number of messages in the dead letter queue.
func (q *Queue[T]) DLQSize() int {
	q.dlqMu.Lock()
	defer q.dlqMu.Unlock()
	return len(q.dlq)
}

func (q *Queue[T]) requeue(m *Message[T]) {
	time.Sleep(q.config.RetryDelay)
	retry := &Message[T]{
		id:      m.id,
		payload: m.payload,
		queue:   q,
		retries: m.retries,
	}
	q.messages <- retry
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
