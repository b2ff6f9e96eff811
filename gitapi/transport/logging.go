package transport

import (
	"log/slog"
	"net/http"
	"time"
)

type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

// NewLogging wraps base so that every exchange is logged at debug level
// with method, URL, status, and duration. Failures are logged and then
// propagated unchanged.
func NewLogging(base http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingTransport{base: base, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.ErrorContext(req.Context(), "api call failed",
			"method", req.Method,
			"url", req.URL.String(),
			"duration", time.Since(start),
			"error", err,
		)
		return nil, err
	}
	t.logger.DebugContext(req.Context(), "api call",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}
