package config

import "time"

// GatewayConfig contains configuration for the gateway HTTP client. All
// microservice endpoints (auth, players, fields, bookings, events,
// notifications) are reached through the gateway base URL.
type GatewayConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8888"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"15s"`
}

// Sanitize applies guardrails to gateway configuration.
func (c *GatewayConfig) Sanitize() {
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
}
