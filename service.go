package taskmon

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/viant/taskmon/monitor"
	"github.com/viant/taskmon/service/event"
	"github.com/viant/taskmon/service/messaging"
	"github.com/viant/taskmon/service/messaging/fs"
	"github.com/viant/taskmon/service/messaging/memory"
	"github.com/viant/taskmon/service/reporter"
	"github.com/viant/taskmon/task"
	"github.com/viant/taskmon/tracing"
)

// Service is the facade: NewTask returns task handles with the configured
// consumers (reporter, event bridge, tracing observer) already attached, and
// keeps a monitor per handle so callers can enumerate task progress.
type Service struct {
	config   *Config
	logger   *logrus.Logger
	events   *event.Service
	reporter *reporter.Reporter

	mu       sync.Mutex
	handles  []*task.TaskHandle
	monitors []*monitor.Monitor
}

// New creates a facade Service.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		config: DefaultConfig(),
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) init() error {
	if s.config.Reporter.Enabled {
		level := logrus.InfoLevel
		if s.config.Reporter.Level != "" {
			level, _ = logrus.ParseLevel(s.config.Reporter.Level)
		}
		s.reporter = reporter.New(s.logger, reporter.WithLevel(level))
	}
	if s.events == nil && s.config.Event.Enabled {
		events, err := s.newEventService()
		if err != nil {
			return err
		}
		s.events = events
	}
	if s.config.Tracing.Enabled {
		if err := tracing.Init(s.config.Tracing.ServiceName, s.config.Tracing.ServiceVersion, s.config.Tracing.OutputFile); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) newEventService() (*event.Service, error) {
	vendor := s.config.Event.Vendor
	if vendor == "" {
		vendor = messaging.VendorMemory
	}
	opts := []event.Option{event.WithLogger(s.logger)}
	switch vendor {
	case messaging.VendorMemory:
		opts = append(opts, event.WithMemoryQueueConfig(func(string) memory.Config {
			config := memory.DefaultConfig()
			if s.config.Event.Memory.Buffer > 0 {
				config.Buffer = s.config.Event.Memory.Buffer
			}
			if s.config.Event.Memory.MaxRetries > 0 {
				config.MaxRetries = s.config.Event.Memory.MaxRetries
			}
			return config
		}))
	case messaging.VendorFS:
		opts = append(opts, event.WithFsQueueConfig(func(name string) fs.Config {
			config := fs.DefaultConfig()
			config.BasePath = s.config.Event.FS.BasePath + "/" + name
			if s.config.Event.FS.MaxRetries > 0 {
				config.MaxRetries = s.config.Event.FS.MaxRetries
			}
			return config
		}))
	}
	return event.New(vendor, opts...)
}

// NewTask creates a task handle with the configured consumers attached and
// registers it with the service.  The context is used by the event bridge
// and tracing observer for the handle's lifetime.
func (s *Service) NewTask(ctx context.Context, opts ...task.Option) *task.TaskHandle {
	handle := task.New(opts...)
	if s.reporter != nil {
		s.reporter.Attach(handle)
	}
	if s.events != nil {
		event.Attach(ctx, handle, s.events.Publisher(), s.logger)
	}
	if s.config.Tracing.Enabled {
		tracing.Observe(ctx, handle)
	}
	m := monitor.Watch(handle)

	s.mu.Lock()
	s.handles = append(s.handles, handle)
	s.monitors = append(s.monitors, m)
	s.mu.Unlock()
	return handle
}

// Events returns the event service, or nil when the event pipeline is
// disabled.
func (s *Service) Events() *event.Service {
	return s.events
}

// Tasks returns a progress snapshot for every task created through NewTask,
// in creation order.
func (s *Service) Tasks() []monitor.Snapshot {
	s.mu.Lock()
	monitors := make([]*monitor.Monitor, len(s.monitors))
	copy(monitors, s.monitors)
	s.mu.Unlock()

	result := make([]monitor.Snapshot, len(monitors))
	for i, m := range monitors {
		result[i] = m.Snapshot()
	}
	return result
}

// StopAll requests cancellation of every task created through NewTask.
func (s *Service) StopAll() {
	s.mu.Lock()
	handles := make([]*task.TaskHandle, len(s.handles))
	copy(handles, s.handles)
	s.mu.Unlock()

	for _, handle := range handles {
		handle.Stop()
	}
}

// Shutdown stops the event listeners; created handles stay usable.
func (s *Service) Shutdown() {
	if s.events != nil {
		s.events.Shutdown()
	}
}
