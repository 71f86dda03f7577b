// Package listings provides a Go client for the residential listings
// admin API: communities, apartments, and user management under /api.
package listings

import "time"

// Default client settings.
const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 30 * time.Second
)

// apiPrefix is the backend namespace every request is rooted under.
const apiPrefix = "/api"

// TokenSource supplies the bearer token for outbound requests. It is
// consulted fresh on every call, so a logout or re-login during the
// process lifetime takes effect on the next request.
type TokenSource func() string

// Config holds all configuration for the listings API client.
type Config struct {
	// BaseURL is the backend root; the /api prefix is appended per request.
	BaseURL string

	// Timeout is the HTTP client timeout for each request.
	Timeout time.Duration

	// Tokens supplies the bearer credential. Nil means unauthenticated.
	Tokens TokenSource
}

// DefaultConfig returns a Config with default settings and no credential.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// WithBaseURL returns a copy of the config with the specified base URL.
func (c Config) WithBaseURL(baseURL string) Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout returns a copy of the config with the specified timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}

// WithTokens returns a copy of the config with the specified token source.
func (c Config) WithTokens(ts TokenSource) Config {
	c.Tokens = ts
	return c
}
