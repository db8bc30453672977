package errors

import (
	"errors"
	"fmt"
)

// ClientInputError the request carried a value the server cannot coerce
// (bad date/time format, missing required field, non-JSON body). Maps to 400.
type ClientInputError struct {
	Message string
	Fields  map[string]string
}

func (e *ClientInputError) Error() string { return e.Message }

// NotFoundError a lookup by id missed. Maps to 404.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ClientInput creates a ClientInputError
func ClientInput(format string, args ...interface{}) error {
	return &ClientInputError{Message: fmt.Sprintf(format, args...)}
}

// InvalidFields creates a ClientInputError carrying per-field reasons
func InvalidFields(message string, fields map[string]string) error {
	return &ClientInputError{Message: message, Fields: fields}
}

// NotFound creates a NotFoundError
func NotFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsClientInput reports whether err is (or wraps) a ClientInputError
func IsClientInput(err error) bool {
	var target *ClientInputError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
