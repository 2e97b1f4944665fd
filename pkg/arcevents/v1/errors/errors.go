// Package errors defines the error types returned by arcevents packages.
package errors

import (
	"errors"
	"fmt"
)

// --- Registry and configuration errors ---

// ConfigError represents an error encountered while loading or registering
// event types, extension manifests or runtime settings.
type ConfigError struct {
	Message string
	Cause   error
}

func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{Message: message, Cause: cause}
}
func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}
func (e *ConfigError) Unwrap() error { return e.Cause }

// ValidationError indicates that a manifest or a set of registry entries
// failed validation checks.
type ValidationError struct {
	Message string
	Cause   error
}

func NewValidationError(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Cause: cause}
}
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
func (e *ValidationError) Unwrap() error { return e.Cause }

// --- Payload construction errors ---

// Argument kinds used in ArgumentError messages.
const (
	KindString = "string"
	KindObject = "object"
	KindArray  = "array"
	KindNumber = "number"
)

// ArgumentError is returned by event constructors when a required argument
// is missing or malformed. The message format is part of the public
// contract: "Expected url argument as string."
type ArgumentError struct {
	Argument string
	Kind     string
}

func NewArgumentError(argument, kind string) *ArgumentError {
	return &ArgumentError{Argument: argument, Kind: kind}
}
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Expected %s argument as %s.", e.Argument, e.Kind)
}

// IsArgumentError reports whether err is, or wraps, an ArgumentError.
func IsArgumentError(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// --- Registry lookups ---

// TypeNotFoundError indicates that a namespace path is not registered.
type TypeNotFoundError struct {
	Path string
}

func NewTypeNotFoundError(path string) *TypeNotFoundError {
	return &TypeNotFoundError{Path: path}
}
func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("event type not registered: %s", e.Path)
}

// --- Dispatch ---

// ListenerPanicError wraps a value recovered from a panicking listener.
// The dispatcher reports it and continues with the next listener.
type ListenerPanicError struct {
	EventType string
	Recovered interface{}
}

func NewListenerPanicError(eventType string, recovered interface{}) *ListenerPanicError {
	return &ListenerPanicError{EventType: eventType, Recovered: recovered}
}
func (e *ListenerPanicError) Error() string {
	return fmt.Sprintf("listener for '%s' panicked: %v", e.EventType, e.Recovered)
}

// Unwrap returns the recovered value when it was itself an error.
func (e *ListenerPanicError) Unwrap() error {
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}
