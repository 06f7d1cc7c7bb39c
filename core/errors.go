package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBackendUnavailable is returned by persistence collaborators that are not configured or not reachable.
var ErrBackendUnavailable = errors.New("backend unavailable")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Field + ": " + err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// NotFoundError is returned when a lookup matches nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func (err NotFoundError) Error() string {
	if err.ID == "" {
		return err.Resource + " not found"
	}
	return fmt.Sprintf("%s %q not found", err.Resource, err.ID)
}

func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// InvalidTransitionError is returned when a status change is not a legal successor of the current status.
type InvalidTransitionError struct {
	Kind string
	From string
	To   string
}

func NewInvalidTransitionError(kind, from, to string) error {
	return &InvalidTransitionError{Kind: kind, From: from, To: to}
}

func (err InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %q to %q", err.Kind, err.From, err.To)
}

func IsInvalidTransition(err error) bool {
	_, ok := errors.Cause(err).(*InvalidTransitionError)
	return ok
}

func IsBackendUnavailable(err error) bool {
	return errors.Cause(err) == ErrBackendUnavailable
}

// ForbiddenError is returned when the acting user does not own the record they try to change.
type ForbiddenError struct {
	Message string
}

func NewForbiddenError(msg string) error {
	return &ForbiddenError{Message: msg}
}

func (err ForbiddenError) Error() string {
	return err.Message
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
