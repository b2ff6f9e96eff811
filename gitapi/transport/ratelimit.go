package transport

import (
	"net/http"

	"golang.org/x/time/rate"
)

type rateLimitTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewRateLimit wraps base so that every request first waits for the
// limiter. The wait respects the request context: cancellation while
// queued surfaces as the context's error.
func NewRateLimit(base http.RoundTripper, limiter *rate.Limiter) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &rateLimitTransport{base: base, limiter: limiter}
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
