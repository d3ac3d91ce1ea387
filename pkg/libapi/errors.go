package libapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrSessionExpired is returned when the session could not be refreshed.
	ErrSessionExpired = errors.New("session expired, please log in again")
	// ErrUnavailable is returned while the circuit breaker rejects calls.
	ErrUnavailable = errors.New("library api unavailable")
)

// APIError is a non-2xx answer of the library API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusCode maps err to the HTTP status it should surface with,
// 0 when err carries none.
func StatusCode(err error) int {
	var apiErr *APIError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &apiErr):
		return apiErr.Status
	case errors.Is(err, ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return 0
	}
}

// Message normalizes err to the string shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func readAPIError(resp *http.Response) *APIError {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10)) //nolint:errcheck
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(data, &body) == nil {
		msg = body.Message
		if msg == "" {
			msg = body.Error
		}
	}
	if msg == "" && !strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		msg = strings.TrimSpace(string(data))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
