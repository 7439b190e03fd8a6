package newsapi

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps failures to reach the API at all.
	ErrTransport = errors.New("newsapi: transport failure")
	// ErrMalformed wraps responses whose body could not be decoded.
	ErrMalformed = errors.New("newsapi: malformed response")
)

// APIError is returned when the API answers with a non-2xx status or with
// status "error" in the body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("newsapi returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("newsapi returned %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("newsapi returned status %d", e.StatusCode)
	}
}
