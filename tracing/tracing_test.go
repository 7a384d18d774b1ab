package tracing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/viant/taskmon/task"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "spans.json")

	if err := Init("taskmon", "0.0.1", fname); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	ctx, span := StartSpan(context.Background(), "test")
	span.WithAttributes(map[string]string{"k": "v"})
	EndSpan(span, nil)
	_ = ctx

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("no data written to trace file")
	}
}

func TestObserve(t *testing.T) {
	handle := task.New(task.WithName("rename"))
	Observe(context.Background(), handle)

	jobSet := handle.CreateJobSet("occurrences", task.WithCount(2))
	if err := jobSet.StartedJob("a"); err != nil {
		t.Fatal(err)
	}
	if err := jobSet.FinishedJob(); err != nil {
		t.Fatal(err)
	}
	if err := jobSet.StartedJob("b"); err != nil {
		t.Fatal(err)
	}

	// stop with a job in flight closes its span with an interrupted status
	handle.Stop()
	if err := jobSet.CheckStatus(); err == nil {
		t.Fatal("expected interrupted status")
	}
}
