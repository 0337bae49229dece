package config

import "time"

// NotificationsConfig contains notification polling configuration.
type NotificationsConfig struct {
	// PollInterval is the fixed delay between poll cycles while
	// authenticated.
	PollInterval time.Duration `env:"NOTIFICATION_POLL_INTERVAL" envDefault:"30s"`
}

// Sanitize applies guardrails to notification configuration.
func (c *NotificationsConfig) Sanitize() {
	if c.PollInterval < time.Second {
		c.PollInterval = 30 * time.Second
	}
}
