package parcel

import (
	"errors"
	"fmt"
)

// ErrParcelNotFound is returned by repositories when no parcel matches an id.
var ErrParcelNotFound = errors.New("parcel not found")

// NotFoundError is returned when no parcel exists for the requested id.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no parcel with id %d", e.ID)
}

// Issue describes a single validation failure.
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// ValidationError is returned when an update payload fails validation,
// either because a field value is malformed or because the caller's role
// may not modify a field. Both cases are surfaced as a 400 to callers;
// the existing contract deliberately does not use 403 for forbidden fields.
type ValidationError struct {
	Name   string
	Issues []Issue
}

func (e ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return e.Name
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Issues[0].Message)
}

func newShapeError(issues []Issue) ValidationError {
	return ValidationError{Name: "ShapeError", Issues: issues}
}

func newForbiddenFieldError(issues []Issue) ValidationError {
	return ValidationError{Name: "ForbiddenFieldError", Issues: issues}
}
