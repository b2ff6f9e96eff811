// Package transport provides composable http.RoundTripper decorators for
// the policies the call executor deliberately leaves out: retries, rate
// limiting, and request logging. Callers stack them onto the http.Client
// handed to gitapi.New.
package transport

import (
	"context"
	"errors"
	"io"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// RetryPolicy holds configuration for retry behavior.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64 // Backoff multiplier (default: 2.0)
	JitterFactor   float64 // Random jitter factor 0-1 (default: 0.1)
}

// DefaultRetryPolicy returns a conservative policy for interactive tools.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     30 * time.Second,
		Multiplier:     2.0,
		JitterFactor:   0.1,
	}
}

// IsRetryableStatusCode checks if an HTTP status code indicates a
// transient failure worth retrying.
func IsRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusBadGateway,
		http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

type retryTransport struct {
	base   http.RoundTripper
	policy RetryPolicy
}

// NewRetry wraps base with retry-on-transient-failure behavior. Requests
// whose body cannot be replayed (Body set but GetBody nil) are sent exactly
// once.
func NewRetry(base http.RoundTripper, policy RetryPolicy) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Multiplier == 0 {
		policy.Multiplier = 2.0
	}
	if policy.JitterFactor == 0 {
		policy.JitterFactor = 0.1
	}
	return &retryTransport{base: base, policy: policy}
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil && req.GetBody == nil {
		return t.base.RoundTrip(req)
	}

	var (
		resp    *http.Response
		lastErr error
	)
	for attempt := 1; attempt <= t.policy.MaxAttempts; attempt++ {
		if attempt > 1 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			req.Body = body
		}

		resp, lastErr = t.base.RoundTrip(req)
		if lastErr == nil && !IsRetryableStatusCode(resp.StatusCode) {
			return resp, nil
		}
		if lastErr != nil && !isRetryableError(lastErr) {
			return nil, lastErr
		}
		if attempt == t.policy.MaxAttempts {
			break
		}
		if resp != nil {
			// Drain so the connection can be reused.
			io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(t.backoff(attempt)):
		}
	}

	return resp, lastErr
}

func isRetryableError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr interface{ Temporary() bool }
	if errors.As(err, &netErr) && netErr.Temporary() {
		return true
	}
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}

// backoff calculates the wait before the next attempt with exponential
// increase and jitter.
func (t *retryTransport) backoff(attempt int) time.Duration {
	backoff := float64(t.policy.InitialBackoff) * math.Pow(t.policy.Multiplier, float64(attempt-1))

	if backoff > float64(t.policy.MaxBackoff) {
		backoff = float64(t.policy.MaxBackoff)
	}

	// backoff * (1 + random(-jitter, +jitter))
	jitter := (rand.Float64()*2 - 1) * t.policy.JitterFactor
	backoff *= (1 + jitter)

	return time.Duration(backoff)
}
