package api

import (
	"errors"
	"fmt"
)

// NetworkError is returned when a remote call fails on transport
// or answers with a non-success status.
type NetworkError struct {
	Err        error
	Method     string
	Path       string
	Message    string
	StatusCode int // 0 for transport failures
}

func (e *NetworkError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s %s: request failed: %v", e.Method, e.Path, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s %s: server error (%d): %s", e.Method, e.Path, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s %s: request failed with status %d", e.Method, e.Path, e.StatusCode)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound сообщает, ответил ли сервер 404
func IsNotFound(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr) && netErr.StatusCode == 404
}
