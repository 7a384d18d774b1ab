package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/taskmon/service/messaging"
	"github.com/viant/taskmon/service/messaging/fs"
	"github.com/viant/taskmon/service/messaging/memory"
)

// Service wires status events to a queue vendor and manages the listeners
// consuming them.
type Service struct {
	queueVendor       messaging.Vendor
	fsNewQueueConfig  func(name string) fs.Config
	memNewQueueConfig func(name string) memory.Config
	logger            *logrus.Logger

	publisher *Publisher[Status]

	mux       sync.Mutex
	listeners []*Listener[Status]
}

// New creates an event service for the supplied queue vendor.  The memory
// vendor works out of the box; the fs vendor requires WithFsQueueConfig.
func New(queueVendor messaging.Vendor, opts ...Option) (*Service, error) {
	ret := &Service{
		queueVendor: queueVendor,
		logger:      logrus.StandardLogger(),
		memNewQueueConfig: func(string) memory.Config {
			return memory.DefaultConfig()
		},
	}
	for _, opt := range opts {
		opt(ret)
	}

	switch queueVendor {
	case messaging.VendorMemory:
	case messaging.VendorFS:
		if ret.fsNewQueueConfig == nil {
			return nil, fmt.Errorf("fs queue vendor requires a queue config, see WithFsQueueConfig")
		}
	default:
		return nil, fmt.Errorf("unsupported queue vendor: %s", queueVendor)
	}

	queue, err := newQueue[Event[Status]](ret, "status")
	if err != nil {
		return nil, err
	}
	ret.publisher = NewPublisher[Status](queue)
	return ret, nil
}

// Publisher returns the status event publisher.
func (s *Service) Publisher() *Publisher[Status] {
	return s.publisher
}

// Publish publishes a single status event.
func (s *Service) Publish(ctx context.Context, event *Event[Status]) error {
	return s.publisher.Publish(ctx, event)
}

// Listen starts a listener invoking handler for every status event and
// returns it.  The listener runs until its Stop or the service's Shutdown.
func (s *Service) Listen(handler func(*Event[Status])) *Listener[Status] {
	listener := NewListener[Status](s.publisher, handler, s.logger)
	s.mux.Lock()
	s.listeners = append(s.listeners, listener)
	s.mux.Unlock()
	listener.Start()
	return listener
}

// Shutdown stops all listeners started through Listen.
func (s *Service) Shutdown() {
	s.mux.Lock()
	listeners := s.listeners
	s.listeners = nil
	s.mux.Unlock()
	for _, listener := range listeners {
		listener.Stop()
	}
}

func newQueue[T any](s *Service, name string) (messaging.Queue[T], error) {
	switch s.queueVendor {
	case messaging.VendorFS:
		return fs.NewQueue[T](afs.New(), s.fsNewQueueConfig(name))
	case messaging.VendorMemory:
		return memory.NewQueue[T](s.memNewQueueConfig(name)), nil
	}
	return nil, fmt.Errorf("unsupported queue vendor: %s", s.queueVendor)
}
