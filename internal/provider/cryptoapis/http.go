package cryptoapis

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type httpConfig struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
}

// HTTPOption configures the HTTP client built by NewHTTPClient.
type HTTPOption func(*httpConfig)

// NewHTTPClient returns a retrying HTTP client. Defaults: 10s timeout,
// 1s..10s backoff, 3 retries.
func NewHTTPClient(opts ...HTTPOption) *retryablehttp.Client {
	cfg := httpConfig{
		timeout:      10 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 10 * time.Second,
		retryMax:     3,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

func WithTimeout(d time.Duration) HTTPOption {
	return func(c *httpConfig) { c.timeout = d }
}

func WithRetryWaitMin(d time.Duration) HTTPOption {
	return func(c *httpConfig) { c.retryWaitMin = d }
}

func WithRetryWaitMax(d time.Duration) HTTPOption {
	return func(c *httpConfig) { c.retryWaitMax = d }
}

func WithRetryMax(n int) HTTPOption {
	return func(c *httpConfig) { c.retryMax = n }
}
