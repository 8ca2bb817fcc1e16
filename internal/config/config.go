// Package config provides configuration management for the report tool.
// It defines the configuration structure and default values for the fetch
// and analysis parameters.
package config

import (
	"fmt"
	"strings"
	"time"
)

// ReportConfig holds the report tool configuration
type ReportConfig struct {
	URL            string        `mapstructure:"url" yaml:"url"`                         // Page to analyze (host/path, scheme optional)
	UserAgent      string        `mapstructure:"user_agent" yaml:"user_agent"`           // HTTP User-Agent header
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"` // HTTP request timeout
	Headers        []string      `mapstructure:"headers" yaml:"headers"`                 // Custom headers in "Name: Value" form
	AllText        bool          `mapstructure:"all_text" yaml:"all_text"`               // Count all source text, not only visible text
	LogLevel       string        `mapstructure:"log_level" yaml:"log_level"`             // Log level (debug, info, warn, error)
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *ReportConfig {
	return &ReportConfig{
		UserAgent:      "PageReport/1.0",
		RequestTimeout: 30 * time.Second,
		AllText:        false,
		LogLevel:       "warn",
	}
}

// Validate checks if the configuration is valid
func (c *ReportConfig) Validate() error {
	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.UserAgent == "" {
		return ErrEmptyUserAgent
	}

	if _, err := c.ParseHeaders(); err != nil {
		return err
	}

	return nil
}

// ParseHeaders converts the configured "Name: Value" header strings into a
// map usable by the HTTP client
func (c *ReportConfig) ParseHeaders() (map[string]string, error) {
	headers := make(map[string]string, len(c.Headers))
	for _, h := range c.Headers {
		name, value, found := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHeader, h)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}
