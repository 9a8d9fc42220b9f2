// Package errors provides custom error types and utilities for crate.
//
// This package provides error handling for various operations including:
// - Login failures and their classification
// - Fatal errors that end the client before the command loop
// - Prompt cancellation
// - HTTP, configuration and validation errors
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error categories for crate operations
var (
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidInput   = errors.New("invalid input")
	ErrConfiguration  = errors.New("configuration error")
	ErrAuthentication = errors.New("authentication error")
	ErrFatal          = errors.New("fatal error")

	// ErrPromptCancelled is returned by prompts when the operator cancels
	// input (Ctrl-C, Esc, end of input). It is distinct from an empty answer.
	ErrPromptCancelled = errors.New("prompt cancelled")

	// ErrLoginAborted is returned when the operator declines to retry a
	// failed login or cancels the credentials prompt.
	ErrLoginAborted = errors.New("login aborted")

	ErrDuplicateCommand = errors.New("duplicate command")
)

// AuthFailureKind classifies a failed login attempt.
type AuthFailureKind int

const (
	// KindOther covers every failure that is not a credentials rejection:
	// unexpected status codes, malformed bodies and transport failures.
	KindOther AuthFailureKind = iota
	KindInvalidCredentials
)

func (k AuthFailureKind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid credentials"
	default:
		return "other"
	}
}

// AuthenticationError represents a failed login against the catalog service
type AuthenticationError struct {
	BaseURL    string
	Username   string
	Kind       AuthFailureKind
	StatusCode int
	Err        error
}

func (e *AuthenticationError) Error() string {
	msg := fmt.Sprintf("authentication failed for user '%s' on '%s' (%s)", e.Username, e.BaseURL, e.Kind)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

func (e *AuthenticationError) Is(target error) bool {
	if e.Kind == KindInvalidCredentials && target == ErrUnauthorized {
		return true
	}
	return target == ErrAuthentication
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(baseURL, username string, kind AuthFailureKind, statusCode int, err error) *AuthenticationError {
	return &AuthenticationError{
		BaseURL:    baseURL,
		Username:   username,
		Kind:       kind,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsAuthentication checks if an error is authentication-related
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsInvalidCredentials reports whether err is a login rejected because of
// wrong username or password.
func IsInvalidCredentials(err error) bool {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Kind == KindInvalidCredentials
	}
	return false
}

// FatalError is an unrecoverable failure that must end the client.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func (e *FatalError) Is(target error) bool {
	return target == ErrFatal
}

// NewFatalError creates a new fatal error
func NewFatalError(op string, err error) *FatalError {
	return &FatalError{
		Op:  op,
		Err: err,
	}
}

// IsFatal checks if an error must terminate the client
func IsFatal(err error) bool {
	return errors.Is(err, ErrFatal)
}

// IsCancelled checks if an error is a cancelled prompt
func IsCancelled(err error) bool {
	return errors.Is(err, ErrPromptCancelled)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// HTTPError represents an HTTP-related error
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d %s %s: %s", e.StatusCode, e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d %s %s", e.StatusCode, e.Method, e.URL)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == ErrUnauthorized
	case http.StatusBadRequest:
		return target == ErrInvalidInput
	default:
		return false
	}
}

// NewHTTPError creates a new HTTP error
func NewHTTPError(statusCode int, method, url, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Message:    message,
	}
}

// IsHTTPStatus checks if an error represents a specific HTTP status
func IsHTTPStatus(err error, statusCode int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == statusCode
	}
	return false
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || IsHTTPStatus(err, http.StatusNotFound)
}
