package client

// Functional options that configure the Client during construction.

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/giovan110109-blip/homePageuUni/client/internal/retry"
)

// Option configures a Client during construction in New.
//
// Options are applied before the credential transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath it.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout. It bounds a single
// attempt, not the whole retry chain. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the http.Client. The client is copied so wrapping
// its transport does not affect the caller's instance.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithDefaultHeaders replaces the headers sent with every request. Per-request
// headers still win.
func WithDefaultHeaders(h map[string]string) Option {
	return func(c *Client) error {
		c.headers = make(map[string]string, len(h))
		for k, v := range h {
			c.headers[k] = v
		}
		return nil
	}
}

// WithRetryDefaults sets the retry count and delay used when a request does
// not carry its own.
func WithRetryDefaults(count int, delay time.Duration) Option {
	return func(c *Client) error {
		if count < 0 {
			return fmt.Errorf("retry count must be >= 0")
		}
		if delay < 0 {
			return fmt.Errorf("retry delay must be >= 0")
		}
		c.retryCount = count
		c.retryDelay = delay
		return nil
	}
}

// WithClassifier replaces the error classifier.
func WithClassifier(cl Classifier) Option {
	return func(c *Client) error {
		if cl == nil {
			return fmt.Errorf("classifier cannot be nil")
		}
		c.classifier = cl
		return nil
	}
}

// WithLogger sets the logger used for retry and request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging dumps each request/response through the logger when
// enabled is true. HOMEPAGE_DEBUG=true or DEBUG=true has the same effect.
// Do not enable this in production; dumps include the bearer token.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithSleeper replaces the backoff sleep, mainly for tests.
func WithSleeper(s func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("sleeper cannot be nil")
		}
		c.sleep = retry.Sleeper(s)
		return nil
	}
}

// WithClock replaces the clock used for the X-Request-Timestamp header.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		c.now = now
		return nil
	}
}
