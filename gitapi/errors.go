package gitapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoContent is returned by Do when the caller asked for a decoded
// response but the server answered 2xx with an empty body. Action endpoints
// (add/remove/delete) pass a nil output value and never see it.
var ErrNoContent = errors.New("gitapi: no content in response")

// TemplateError reports a mismatch between a path template's placeholders
// and the parameters supplied for it. This is a programming error at the
// call site, never a consequence of remote state: fixed-template callers
// use MustBuild, which panics on it.
type TemplateError struct {
	Template string
	Missing  []string
	Unused   []string
}

func (e *TemplateError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unused) > 0 {
		parts = append(parts, "unused "+strings.Join(e.Unused, ", "))
	}
	return fmt.Sprintf("gitapi: template %q: %s", e.Template, strings.Join(parts, "; "))
}

// APIError is the error for any non-2xx response. The executor raises it
// uniformly and never special-cases a status; translating a specific status
// into a domain value (404 on a membership check, say) is call-site policy.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []ErrorItem
	Body       []byte
}

// ErrorItem is one entry of the API's uniform error body.
type ErrorItem struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gitapi: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("gitapi: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// newAPIError decodes the API's error body when it has the uniform shape
// and preserves the raw body either way.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}
	if len(body) > 0 {
		var decoded struct {
			Message string      `json:"message"`
			Errors  []ErrorItem `json:"errors"`
		}
		if err := json.Unmarshal(body, &decoded); err == nil {
			apiErr.Message = decoded.Message
			apiErr.Errors = decoded.Errors
		}
	}
	return apiErr
}

// IsNotFound reports whether err is an *APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
