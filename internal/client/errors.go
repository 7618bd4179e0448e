package client

import (
	"errors"
	"fmt"

	"backoffice/internal/models"
)

// ErrOperationFailed matches every error returned by Client, whatever its cause.
var ErrOperationFailed = errors.New("operation failed")

// OperationError reports a failed call to the REST backend. Transport failures
// and non-2xx responses are reported alike; StatusCode is zero for the former.
type OperationError struct {
	Op         string
	Resource   models.Resource
	ID         int64
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	target := e.Resource.String()
	if e.ID != 0 {
		target = fmt.Sprintf("%s/%d", e.Resource, e.ID)
	}
	msg := fmt.Sprintf("%s %s: %s", e.Op, target, ErrOperationFailed)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrOperationFailed) true for every OperationError.
func (e *OperationError) Is(target error) bool {
	return target == ErrOperationFailed
}
