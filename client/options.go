package client

// Functional options applied by New. Options must be deterministic and
// side-effect free.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithLatency sets the artificial delay applied before a successful
// response resolves. It exists to make loading states observable; pass
// zero to disable (tests do).
func WithLatency(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("latency must not be negative")
		}
		c.latency = d
		return nil
	}
}

// WithHTTPTimeout bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.rest.SetTimeout(d)
		return nil
	}
}

// WithHooks installs the side-effect callbacks invoked by error
// classification (notices, navigation, server-error recording).
// Unset callbacks are skipped; classification still rejects.
func WithHooks(h Hooks) Option {
	return func(c *Client) error {
		c.hooks = h
		return nil
	}
}

// WithLogger replaces the client's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}

// WithDebugLogging wraps the transport so each request/response is
// dumped to the log when enabled.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.rest.SetTransport(&debugTransport{base: c.rest.GetClient().Transport, log: c.log})
		}
		return nil
	}
}
