package notifyresults

import (
	"fmt"
	"time"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`
	EmailEnabled  bool          `mapstructure:"email_enabled"`
	FromEmail     string        `mapstructure:"from_email"`
	EventsEnabled bool          `mapstructure:"events_enabled"`
	TopicARN      string        `mapstructure:"topic_arn"`
	// MaxCareers caps how many recommendations the email lists.
	MaxCareers int `mapstructure:"max_careers"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30 * time.Second,
		MaxCareers:    5,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	if c.EmailEnabled && c.FromEmail == "" {
		return fmt.Errorf("from_email is required when email is enabled")
	}
	if c.EventsEnabled && c.TopicARN == "" {
		return fmt.Errorf("topic_arn is required when events are enabled")
	}
	if c.MaxCareers <= 0 {
		return fmt.Errorf("max_careers must be positive")
	}
	return nil
}
