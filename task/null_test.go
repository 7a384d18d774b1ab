package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullTaskHandle(t *testing.T) {
	handle := Null()

	handle.Stop()
	assert.False(t, handle.IsStopped())

	handle.AddObserver(func() { t.Fatal("null handle must never notify") })
	handle.Stop()

	assert.Nil(t, handle.CurrentJobSet())
	assert.Empty(t, handle.JobSets())
	assert.Equal(t, "", handle.Name())

	jobSet := handle.CreateJobSet("phase", WithCount(10))
	assert.NotNil(t, jobSet)
	// created job sets are not retained
	assert.Nil(t, handle.CurrentJobSet())
}

func TestNullJobSet(t *testing.T) {
	jobSet := NullTaskHandle{}.CreateJobSet("phase")

	assert.NoError(t, jobSet.StartedJob("a"))
	assert.NoError(t, jobSet.FinishedJob())
	assert.NoError(t, jobSet.CheckStatus())

	_, ok := jobSet.PercentDone()
	assert.False(t, ok)

	jobSet.Increment()
	_, ok = jobSet.Count()
	assert.False(t, ok)

	assert.Equal(t, 0, jobSet.Done())
	assert.Equal(t, "", jobSet.Name())
	assert.Equal(t, "", jobSet.JobName())
}
