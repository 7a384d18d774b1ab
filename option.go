package taskmon

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/taskmon/service/event"
)

// Option customises the facade Service.
type Option func(s *Service)

// WithConfig sets the service configuration; nil keeps the defaults.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger sets the logger used by the reporter and the event pipeline.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithEventService supplies a pre-built event service, overriding the
// event section of the configuration.
func WithEventService(events *event.Service) Option {
	return func(s *Service) {
		s.events = events
	}
}
