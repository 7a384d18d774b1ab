package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Task string
	Done int
}

func TestQueue(t *testing.T) {
	config := DefaultConfig()
	config.RetryDelay = 10 * time.Millisecond
	queue := NewQueue[payload](config)
	ctx := context.Background()

	err := queue.Publish(ctx, &payload{Task: "rename", Done: 1})
	assert.NoError(t, err)
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "rename", message.T().Task)
	assert.Equal(t, 0, queue.Size())

	assert.NoError(t, message.Ack())
	assert.Error(t, message.Ack())
}

func TestQueueRetries(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 1
	config.RetryDelay = 5 * time.Millisecond
	queue := NewQueue[payload](config)
	ctx := context.Background()

	assert.NoError(t, queue.Publish(ctx, &payload{Task: "retry"}))

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Nack(nil))

	// the retried copy becomes consumable after the delay
	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	message, err = queue.Consume(waitCtx)
	assert.NoError(t, err)
	assert.NotNil(t, message)

	// final failure moves the message to the DLQ
	assert.NoError(t, message.Nack(nil))
	assert.Eventually(t, func() bool { return queue.DLQSize() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, queue.Size())
}

func TestQueueContextCancellation(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, queue.Publish(ctx, &payload{}))

	timeoutCtx, cancelTimeout := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelTimeout()
	_, err := queue.Consume(timeoutCtx)
	assert.Error(t, err)

	// the queue stays usable afterwards
	assert.NoError(t, queue.Publish(context.Background(), &payload{}))
	message, err := queue.Consume(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, message)
}
