package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/taskmon/internal/clock"
	"github.com/viant/taskmon/internal/idgen"
	"github.com/viant/taskmon/service/messaging"
)

// Config holds configuration for the filesystem queue.
type Config struct {
	// BasePath is the base directory (or afs URL) for queue entries.
	BasePath string

	// MaxRetries bounds how many times a message is re-published to the
	// pending directory after Nack before it lands in the DLQ.
	MaxRetries int
}

// DefaultConfig returns a default filesystem queue configuration.
func DefaultConfig() Config {
	return Config{
		BasePath:   "/tmp/taskmon/queue",
		MaxRetries: 3,
	}
}

// Message implements messaging.Message for the filesystem queue.  The
// exported fields are the persisted JSON document.
type Message[T any] struct {
	ID        string    `json:"id"`
	Data      T         `json:"data"`
	Retries   int       `json:"retries"`
	CreatedAt time.Time `json:"createdAt"`

	name    string
	queue   *Queue[T]
	mu      sync.Mutex
	settled bool
}

// T returns the message payload.
func (m *Message[T]) T() *T {
	return &m.Data
}

// Ack moves the message from the processing to the completed directory.
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settled {
		return fmt.Errorf("message %v already settled", m.ID)
	}
	m.settled = true
	ctx := context.Background()
	src := path.Join(m.queue.processingDir, m.name)
	dest := path.Join(m.queue.completedDir, m.name)
	return m.queue.fs.Move(ctx, src, dest)
}

// Nack re-publishes the message to the pending directory until the retry
// limit is exceeded, then moves it to the DLQ.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settled {
		return fmt.Errorf("message %v already settled", m.ID)
	}
	m.settled = true
	m.Retries++

	ctx := context.Background()
	destDir := m.queue.pendingDir
	if m.Retries > m.queue.config.MaxRetries {
		destDir = m.queue.dlqDir
	}
	data, marshalErr := json.Marshal(m)
	if marshalErr != nil {
		return fmt.Errorf("failed to marshal message %v: %w", m.ID, marshalErr)
	}
	if uploadErr := m.queue.upload(ctx, path.Join(destDir, m.name), data); uploadErr != nil {
		return uploadErr
	}
	return m.queue.fs.Delete(ctx, path.Join(m.queue.processingDir, m.name))
}

// Queue implements a filesystem-backed messaging.Queue.  Messages are JSON
// documents moved between pending, processing, completed and dlq
// directories; the filename carries a creation timestamp so consumption is
// oldest-first.
type Queue[T any] struct {
	fs     afs.Service
	config Config

	pendingDir    string
	processingDir string
	completedDir  string
	dlqDir        string

	mu sync.Mutex
}

// NewQueue creates a filesystem-backed queue rooted at config.BasePath,
// creating the state directories when missing.
func NewQueue[T any](fs afs.Service, config Config) (*Queue[T], error) {
	if config.BasePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}
	q := &Queue[T]{
		fs:            fs,
		config:        config,
		pendingDir:    path.Join(config.BasePath, "pending"),
		processingDir: path.Join(config.BasePath, "processing"),
		completedDir:  path.Join(config.BasePath, "completed"),
		dlqDir:        path.Join(config.BasePath, "dlq"),
	}
	ctx := context.Background()
	for _, dir := range []string{q.pendingDir, q.processingDir, q.completedDir, q.dlqDir} {
		exists, _ := fs.Exists(ctx, dir)
		if exists {
			continue
		}
		if err := fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return q, nil
}

// Publish writes a new message document to the pending directory.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	message := &Message[T]{
		ID:        idgen.New(),
		Data:      *t,
		CreatedAt: clock.Now(),
	}
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	name := fmt.Sprintf("%020d-%s.json", message.CreatedAt.UnixNano(), message.ID)
	return q.upload(ctx, path.Join(q.pendingDir, name), data)
}

// Consume claims the oldest pending message by moving it to the processing
// directory.  It returns a nil message when the queue is empty.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	objects, err := q.fs.List(ctx, q.pendingDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending messages: %w", err)
	}
	var names []string
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		names = append(names, object.Name())
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)
	name := names[0]

	data, err := q.fs.DownloadWithURL(ctx, path.Join(q.pendingDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read message %s: %w", name, err)
	}
	message := &Message[T]{}
	if err = json.Unmarshal(data, message); err != nil {
		// quarantine the unreadable document
		_ = q.fs.Move(ctx, path.Join(q.pendingDir, name), path.Join(q.dlqDir, "invalid-"+name))
		return nil, fmt.Errorf("failed to decode message %s: %w", name, err)
	}
	message.name = name
	message.queue = q

	if err = q.fs.Move(ctx, path.Join(q.pendingDir, name), path.Join(q.processingDir, name)); err != nil {
		return nil, fmt.Errorf("failed to claim message %s: %w", name, err)
	}
	return message, nil
}

// Size returns the number of pending messages.
func (q *Queue[T]) Size(ctx context.Context) (int, error) {
	objects, err := q.fs.List(ctx, q.pendingDir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, object := range objects {
		if !object.IsDir() && strings.HasSuffix(object.Name(), ".json") {
			count++
		}
	}
	return count, nil
}

func (q *Queue[T]) upload(ctx context.Context, URL string, data []byte) error {
	if err := q.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %s: %w", URL, err)
	}
	return nil
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
