package service

import (
	"errors"
	"fmt"
	"time"
)

// Error codes. Each maps to one HTTP status in NewErrorCodeToStatusCodeMaps.
const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that the instance (or its stored session) does not exist.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrInstanceExists means that an instance with the same id is already registered.
	ErrInstanceExists = "instance_exists"
	// ErrStoreUnavailable means that the session object store failed.
	ErrStoreUnavailable = "store_unavailable"
	// ErrQueueUnavailable means that the work queue failed.
	ErrQueueUnavailable = "queue_unavailable"
	// ErrDeliveryFailed means that the engine could not deliver a message.
	ErrDeliveryFailed = "delivery_failed"
	// ErrPairingTimeout means that no pairing challenge arrived within the allowed wait.
	ErrPairingTimeout = "pairing_timeout"
	// ErrAuthFailure means that the engine rejected the instance credentials.
	ErrAuthFailure = "auth_failure"
)

// MyError represents an error within the context of mysessions services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// classify returns the MyError already carried by inner, so an adapter's more precise
// code (store_unavailable from S3, say) survives being wrapped by a caller. Only when
// inner carries none is a new error with code created.
func classify(code string, message string, inner error) *MyError {
	if known := ToMyError(inner); known != nil {
		return known
	}
	return NewMyError(code, message, inner)
}

func NewInternalServerError(message string, inner error) *MyError {
	return classify(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	return classify(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	return classify(ErrBadParameter, message, inner)
}

// NewInstanceNotFoundError is the entity_not_found error for an unknown instance id.
func NewInstanceNotFoundError(instanceID string) *MyError {
	return NewMyError(ErrEntityNotFound, fmt.Sprintf("Instance with ID %s does not exist.", instanceID), nil)
}

// NewInstanceExistsError rejects a second registration of the same id.
func NewInstanceExistsError(instanceID string) *MyError {
	return NewMyError(ErrInstanceExists, fmt.Sprintf("Instance with ID %s already exists.", instanceID), nil)
}

// NewAuthFailureError reports credentials rejected by the engine; reason is the engine's text.
func NewAuthFailureError(instanceID string, reason string) *MyError {
	var inner error
	if reason != "" {
		inner = errors.New(reason)
	}
	return NewMyError(ErrAuthFailure, fmt.Sprintf("Authentication failed for instance %s.", instanceID), inner)
}

// NewPairingTimeoutError is returned by createInstance when no challenge arrived within wait.
func NewPairingTimeoutError(wait time.Duration, inner error) *MyError {
	return NewMyError(ErrPairingTimeout, fmt.Sprintf("Failed to create instance: no pairing challenge within %s.", wait), inner)
}

// Backend failures always carry their own code, whatever inner holds.

func NewStoreUnavailableError(message string, inner error) *MyError {
	return NewMyError(ErrStoreUnavailable, message, inner)
}

func NewQueueUnavailableError(message string, inner error) *MyError {
	return NewMyError(ErrQueueUnavailable, message, inner)
}

// NewDeliveryFailedError always wraps, so the engine cause stays visible through Unwrap.
func NewDeliveryFailedError(message string, inner error) *MyError {
	return NewMyError(ErrDeliveryFailed, message, inner)
}

func (e MyError) Error() string {
	if e.Inner == nil {
		return e.Code + " " + e.Message
	}
	return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns the first MyError in err's chain, or nil.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// ToMyErrorCode returns the code of the error, or "" for errors from outside the service.
func ToMyErrorCode(err error) string {
	if e := ToMyError(err); e != nil {
		return e.Code
	}
	return ""
}

// IsMyError reports whether err carries a MyError with code.
func IsMyError(err error, code string) bool {
	return ToMyErrorCode(err) == code && code != ""
}

func IsInternalServerError(err error) bool   { return IsMyError(err, ErrInternalServerError) }
func IsEntityNotFoundError(err error) bool   { return IsMyError(err, ErrEntityNotFound) }
func IsBadParameterError(err error) bool     { return IsMyError(err, ErrBadParameter) }
func IsStoreUnavailableError(err error) bool { return IsMyError(err, ErrStoreUnavailable) }
func IsQueueUnavailableError(err error) bool { return IsMyError(err, ErrQueueUnavailable) }
func IsDeliveryFailedError(err error) bool   { return IsMyError(err, ErrDeliveryFailed) }
func IsPairingTimeoutError(err error) bool   { return IsMyError(err, ErrPairingTimeout) }
func IsAuthFailureError(err error) bool      { return IsMyError(err, ErrAuthFailure) }
