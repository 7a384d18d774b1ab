package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextHandle(t *testing.T) {
	handle := New(WithName("embedded"))
	ctx := WithHandle(context.Background(), handle)

	extracted := FromContext(ctx)
	assert.Equal(t, Handle(handle), extracted)

	// a context without a handle yields a usable null handle
	extracted = FromContext(context.Background())
	assert.False(t, extracted.IsStopped())
	jobSet := extracted.CreateJobSet("phase")
	assert.NoError(t, jobSet.StartedJob("a"))

	extracted = FromContext(nil)
	assert.Equal(t, Handle(NullTaskHandle{}), extracted)
}
