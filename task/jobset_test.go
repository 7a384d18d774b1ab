package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobSetLifecycle(t *testing.T) {
	handle := New()
	jobSet := handle.CreateJobSet("Phase1", WithCount(2))

	assert.NoError(t, jobSet.StartedJob("a"))
	assert.Equal(t, "a", jobSet.JobName())

	assert.NoError(t, jobSet.FinishedJob())
	assert.Equal(t, 1, jobSet.Done())
	assert.Equal(t, "", jobSet.JobName())
	percent, ok := jobSet.PercentDone()
	assert.True(t, ok)
	assert.Equal(t, 50, percent)

	handle.Stop()
	err := jobSet.StartedJob("b")
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.True(t, IsInterrupted(err))
	assert.Equal(t, 1, jobSet.Done())

	assert.Error(t, jobSet.FinishedJob())
	assert.Equal(t, 1, jobSet.Done())
	assert.Error(t, jobSet.CheckStatus())
}

func TestJobSetPercentDone(t *testing.T) {
	handle := New()

	unbounded := handle.CreateJobSet("unbounded")
	_, ok := unbounded.PercentDone()
	assert.False(t, ok)

	zero := handle.CreateJobSet("zero", WithCount(0))
	_, ok = zero.PercentDone()
	assert.False(t, ok)

	bounded := handle.CreateJobSet("bounded", WithCount(3))
	percent, ok := bounded.PercentDone()
	assert.True(t, ok)
	assert.Equal(t, 0, percent)

	previous := 0
	for i := 0; i < 3; i++ {
		assert.NoError(t, bounded.StartedJob("job"))
		assert.NoError(t, bounded.FinishedJob())
		percent, ok = bounded.PercentDone()
		assert.True(t, ok)
		assert.GreaterOrEqual(t, percent, previous)
		previous = percent
	}
	assert.Equal(t, 100, previous)

	// overrun clamps at 100
	assert.NoError(t, bounded.FinishedJob())
	percent, _ = bounded.PercentDone()
	assert.Equal(t, 100, percent)
	assert.Equal(t, 4, bounded.Done())
}

func TestJobSetIncrement(t *testing.T) {
	handle := New()
	jobSet := handle.CreateJobSet("discovery", WithCount(1))

	assert.NoError(t, jobSet.StartedJob("a"))
	assert.NoError(t, jobSet.FinishedJob())
	percent, _ := jobSet.PercentDone()
	assert.Equal(t, 100, percent)

	jobSet.Increment()
	count, ok := jobSet.Count()
	assert.True(t, ok)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, jobSet.Done())
	percent, _ = jobSet.PercentDone()
	assert.Equal(t, 50, percent)
}

func TestJobSetIncrementUnbounded(t *testing.T) {
	handle := New()
	jobSet := handle.CreateJobSet("unbounded")

	for i := 0; i < 3; i++ {
		jobSet.Increment()
	}
	_, ok := jobSet.Count()
	assert.False(t, ok)
	_, ok = jobSet.PercentDone()
	assert.False(t, ok)

	assert.NoError(t, jobSet.StartedJob("a"))
	assert.NoError(t, jobSet.FinishedJob())
	assert.Equal(t, 1, jobSet.Done())
}

func TestJobSetFinishNotifiesBeforeClearingJobName(t *testing.T) {
	handle := New()
	jobSet := handle.CreateJobSet("phase", WithCount(1))

	var seen []string
	handle.AddObserver(func() {
		seen = append(seen, jobSet.JobName())
	})

	assert.NoError(t, jobSet.StartedJob("a"))
	assert.NoError(t, jobSet.FinishedJob())

	// the finish notification still sees the finishing job's name
	assert.Equal(t, []string{"a", "a"}, seen)
	assert.Equal(t, "", jobSet.JobName())
}

func TestJobSetInterruptedError(t *testing.T) {
	handle := New(WithName("rename"))
	jobSet := handle.CreateJobSet("occurrences")
	handle.Stop()

	err := jobSet.CheckStatus()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "occurrences")
	assert.Contains(t, err.Error(), "rename")
	assert.Contains(t, err.Error(), "interrupted")
}
