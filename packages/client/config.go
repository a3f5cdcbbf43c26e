package client

import "time"

// Config describes a client before construction. It is copied by New and
// never mutated afterwards, so a Config value can be reused freely.
type Config struct {
	// BaseURL, when non-empty, is the base against which relative request
	// URLs are resolved. Absolute request URLs override it entirely.
	BaseURL string
	// DefaultHeaders are applied to every request, under per-request headers.
	DefaultHeaders map[string]string
	// Timeout bounds each request unless overridden per call. Zero means
	// DefaultTimeout.
	Timeout time.Duration
	// FollowRedirects enables bounded automatic redirect following (up to
	// DefaultMaxRedirects hops). Fixed for the client's lifetime.
	FollowRedirects bool
	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string
}

// DefaultConfig returns the configuration handed to callers that do not
// customize anything: no base URL, 30 second timeout, redirects followed.
func DefaultConfig() Config {
	return Config{
		DefaultHeaders:  make(map[string]string),
		Timeout:         DefaultTimeout,
		FollowRedirects: true,
		UserAgent:       DefaultUserAgent,
	}
}

func (c Config) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return DefaultUserAgent
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}
