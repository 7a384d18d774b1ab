package event

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/taskmon/service/messaging/fs"
	"github.com/viant/taskmon/service/messaging/memory"
)

// Option customises an event Service.
type Option func(s *Service)

// WithFsQueueConfig sets the filesystem queue configuration factory; name is
// the logical queue name.
func WithFsQueueConfig(newConfig func(name string) fs.Config) Option {
	return func(s *Service) {
		s.fsNewQueueConfig = newConfig
	}
}

// WithMemoryQueueConfig sets the memory queue configuration factory.
func WithMemoryQueueConfig(newConfig func(name string) memory.Config) Option {
	return func(s *Service) {
		s.memNewQueueConfig = newConfig
	}
}

// WithLogger sets the logger used by the service's listeners.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
