package telegram

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrCircuitOpen = errors.New("telegram: circuit breaker is open")

// APIError is a Bot API response with ok=false.
type APIError struct {
	ErrorCode   int
	Description string
	RetryAfter  int // seconds, set on 429
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("telegram API error %d: %s", e.ErrorCode, e.Description)
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry_after=%ds)", e.RetryAfter)
	}
	return msg
}

func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}

// GetRetryAfter returns the server-requested delay of a 429, or 0.
func GetRetryAfter(err error) int {
	if apiErr := asAPIError(err); apiErr != nil && apiErr.ErrorCode == http.StatusTooManyRequests {
		return apiErr.RetryAfter
	}
	return 0
}

// isNonRetryable reports whether the API rejected the message itself,
// e.g. an unknown chat or a bot removed from the group.
func isNonRetryable(err error) bool {
	apiErr := asAPIError(err)
	if apiErr == nil {
		return false
	}
	switch apiErr.ErrorCode {
	case http.StatusBadRequest, http.StatusForbidden:
		return true
	}
	return false
}

// IsPermanent reports whether resending the same message cannot succeed soon.
func IsPermanent(err error) bool {
	return isNonRetryable(err) || IsCircuitOpen(err)
}

func asAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
