package event

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/taskmon/service/messaging"
	"github.com/viant/taskmon/service/messaging/fs"
	"github.com/viant/taskmon/task"
)

func TestServiceListen(t *testing.T) {
	srv, err := New(messaging.VendorMemory)
	assert.NoError(t, err)

	var mu sync.Mutex
	var received []Type
	srv.Listen(func(event *Event[Status]) {
		mu.Lock()
		received = append(received, event.Context.EventType)
		mu.Unlock()
	})

	handle := task.New(task.WithName("move"))
	Attach(context.Background(), handle, srv.Publisher(), nil)

	jobSet := handle.CreateJobSet("files", task.WithCount(1))
	assert.NoError(t, jobSet.StartedJob("a"))
	assert.NoError(t, jobSet.FinishedJob())

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 3
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []Type{TypeJobSetCreated, TypeJobStarted, TypeJobFinished}, received)
	mu.Unlock()

	srv.Shutdown()
}

func TestServiceFsVendor(t *testing.T) {
	_, err := New(messaging.VendorFS)
	assert.Error(t, err)

	tempDir, err := os.MkdirTemp("", "taskmon-events")
	assert.NoError(t, err)
	defer os.RemoveAll(tempDir)

	srv, err := New(messaging.VendorFS, WithFsQueueConfig(func(name string) fs.Config {
		return fs.Config{BasePath: tempDir + "/" + name, MaxRetries: 1}
	}))
	assert.NoError(t, err)

	ctx := context.Background()
	eventContext := &Context{TaskName: "move", EventType: TypeJobFinished}
	assert.NoError(t, srv.Publish(ctx, NewEvent(eventContext, Status{Done: 1})))

	event, err := srv.Publisher().Consume(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, TypeJobFinished, event.Context.EventType)
	assert.Equal(t, 1, event.Data.Done)
}

func TestServiceUnsupportedVendor(t *testing.T) {
	_, err := New("nats")
	assert.Error(t, err)
}
