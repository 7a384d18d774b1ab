package monitor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/taskmon/task"
)

func TestMonitorSnapshot(t *testing.T) {
	handle := task.New(task.WithName("rename"))
	m := Watch(handle)

	snapshot := m.Snapshot()
	assert.Equal(t, "rename", snapshot.Task)
	assert.Equal(t, handle.ID(), snapshot.TaskID)
	assert.Nil(t, snapshot.Current())

	jobSet := handle.CreateJobSet("occurrences", task.WithCount(2))
	assert.NoError(t, jobSet.StartedJob("module.go"))
	assert.NoError(t, jobSet.FinishedJob())

	snapshot = m.Snapshot()
	assert.False(t, snapshot.Stopped)
	assert.Equal(t, 1, snapshot.JobsDone)
	assert.Equal(t, 2, snapshot.JobsExpected)
	assert.Equal(t, 3, snapshot.Changes)

	current := snapshot.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "occurrences", current.Name)
	assert.Equal(t, 1, current.Done)
	assert.NotNil(t, current.Percent)
	assert.Equal(t, 50, *current.Percent)
	// the finish notification was the last one, so the job name is still set
	assert.Equal(t, "module.go", current.Job)

	handle.Stop()
	snapshot = m.Snapshot()
	assert.True(t, snapshot.Stopped)
}

func TestMonitorUnbounded(t *testing.T) {
	handle := task.New()
	m := Watch(handle)

	jobSet := handle.CreateJobSet("scan")
	assert.NoError(t, jobSet.StartedJob("a"))

	snapshot := m.Snapshot()
	current := snapshot.Current()
	assert.NotNil(t, current)
	assert.Nil(t, current.Count)
	assert.Nil(t, current.Percent)
	assert.Equal(t, "a", current.Job)
}

func TestMonitorOnChange(t *testing.T) {
	handle := task.New()
	m := Watch(handle)

	var changes []Snapshot
	m.OnChange(func(s Snapshot) { changes = append(changes, s) })

	jobSet := handle.CreateJobSet("phase", task.WithCount(1))
	assert.NoError(t, jobSet.StartedJob("a"))
	assert.NoError(t, jobSet.FinishedJob())

	assert.Len(t, changes, 3)
	assert.Equal(t, 1, changes[2].JobsDone)

	m.OnChange(nil)
	handle.Stop()
	assert.Len(t, changes, 3)
}

func TestMonitorContext(t *testing.T) {
	handle := task.New()
	m := Watch(handle)

	ctx := WithMonitor(context.Background(), m)
	extracted, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, m, extracted)

	snapshot, ok := GetSnapshot(ctx)
	assert.True(t, ok)
	assert.Equal(t, handle.ID(), snapshot.TaskID)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
	_, ok = GetSnapshot(context.Background())
	assert.False(t, ok)
}
