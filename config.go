package taskmon

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/taskmon/service/messaging"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the facade configuration.  It
// can be populated from JSON or YAML; the zero value is useful and all
// nested sections inherit their package defaults.
type Config struct {
	Event    EventConfig    `json:"event" yaml:"event"`
	Reporter ReporterConfig `json:"reporter" yaml:"reporter"`
	Tracing  TracingConfig  `json:"tracing" yaml:"tracing"`
}

// EventConfig controls the status event pipeline.
type EventConfig struct {
	Enabled bool              `json:"enabled" yaml:"enabled"`
	Vendor  messaging.Vendor  `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Memory  MemoryQueueConfig `json:"memory,omitempty" yaml:"memory,omitempty"`
	FS      FSQueueConfig     `json:"fs,omitempty" yaml:"fs,omitempty"`
}

// MemoryQueueConfig configures the in-memory queue vendor.
type MemoryQueueConfig struct {
	Buffer     int `json:"buffer,omitempty" yaml:"buffer,omitempty"`
	MaxRetries int `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty"`
}

// FSQueueConfig configures the filesystem queue vendor.
type FSQueueConfig struct {
	BasePath   string `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	MaxRetries int    `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty"`
}

// ReporterConfig controls the logrus progress reporter.
type ReporterConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Level   string `json:"level,omitempty" yaml:"level,omitempty"`
}

// TracingConfig controls the OpenTelemetry observer.
type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty"`
	OutputFile     string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// DefaultConfig returns a Config with the event pipeline on the in-memory
// vendor, the reporter at info level and tracing disabled.
func DefaultConfig() *Config {
	return &Config{
		Event: EventConfig{
			Enabled: true,
			Vendor:  messaging.VendorMemory,
		},
		Reporter: ReporterConfig{
			Enabled: true,
			Level:   logrus.InfoLevel.String(),
		},
		Tracing: TracingConfig{
			ServiceName:    "taskmon",
			ServiceVersion: "dev",
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Event.Enabled {
		switch c.Event.Vendor {
		case messaging.VendorMemory, "":
		case messaging.VendorFS:
			if c.Event.FS.BasePath == "" {
				return fmt.Errorf("event.fs.basePath is required for the fs vendor")
			}
		default:
			return fmt.Errorf("unsupported event.vendor: %s", c.Event.Vendor)
		}
	}
	if c.Reporter.Enabled && c.Reporter.Level != "" {
		if _, err := logrus.ParseLevel(c.Reporter.Level); err != nil {
			return fmt.Errorf("invalid reporter.level: %w", err)
		}
	}
	return nil
}

// LoadConfig reads a YAML configuration document from URL (any scheme the
// afs service understands, e.g. a plain path, file://, mem://, embed://) on
// top of the defaults.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
