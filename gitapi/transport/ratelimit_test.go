package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func TestRateLimitTransport(t *testing.T) {
	t.Run("passes requests through under the limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{Transport: NewRateLimit(nil, rate.NewLimiter(rate.Inf, 1))}
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("unexpected status: %d", resp.StatusCode)
		}
	})

	t.Run("cancelled context surfaces while queued", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		// Zero-rate limiter: every wait blocks until the context ends.
		client := &http.Client{Transport: NewRateLimit(nil, rate.NewLimiter(0, 0))}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := client.Do(req); err == nil {
			t.Fatal("expected error")
		}
	})
}
