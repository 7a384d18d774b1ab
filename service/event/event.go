package event

import (
	"time"

	"github.com/viant/taskmon/internal/clock"
)

// Type classifies the state change an event describes.
type Type string

const (
	TypeTaskStopped   Type = "taskStopped"
	TypeJobSetCreated Type = "jobSetCreated"
	TypeJobStarted    Type = "jobStarted"
	TypeJobFinished   Type = "jobFinished"
)

// Context identifies the task, job set and job an event originates from.
type Context struct {
	TaskID    string `json:"taskID"`
	TaskName  string `json:"taskName"`
	JobSet    string `json:"jobSet,omitempty"`
	Job       string `json:"job,omitempty"`
	EventType Type   `json:"eventType"`
}

// Event carries a typed payload together with its origin context.
type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Data      T                      `json:"data"`
}

// NewEvent creates an event for the supplied context and payload.
func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}

// Status is the progress payload published on every task state change; it is
// the state a renderer needs per notification.  Count and Percent are nil
// for unbounded job sets.
type Status struct {
	Stopped bool   `json:"stopped"`
	JobSet  string `json:"jobSet,omitempty"`
	Job     string `json:"job,omitempty"`
	Done    int    `json:"done"`
	Count   *int   `json:"count,omitempty"`
	Percent *int   `json:"percent,omitempty"`
}
