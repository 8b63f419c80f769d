// Package errors provides custom error types and utilities for cpgate.
//
// This package provides error handling for various operations including:
// - Gateway process errors
// - Interactive login errors
// - Configuration errors
// - HTTP and transport errors
// - Validation errors
// - Multi-error handling
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error categories for cpgate operations
var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidInput         = errors.New("invalid input")
	ErrTransport            = errors.New("transport error")
	ErrConfiguration        = errors.New("configuration error")
	ErrProcessLaunch        = errors.New("gateway process launch failed")
	ErrGatewayStartTimeout  = errors.New("gateway did not start listening in time")
	ErrLoginElementNotFound = errors.New("login element not found")
	ErrTwoFactorTimeout     = errors.New("two-factor approval timed out")
	ErrLoginFailed          = errors.New("login failed")
	ErrAuthVerification     = errors.New("authentication could not be verified")
	ErrSessionExpired       = errors.New("session expired")
)

// GatewayKind classifies a GatewayError.
type GatewayKind string

const (
	GatewayKindLaunch       GatewayKind = "launch"
	GatewayKindStartTimeout GatewayKind = "start_timeout"
	GatewayKindStop         GatewayKind = "stop"
)

// GatewayError represents a failure while managing the gateway process.
type GatewayError struct {
	Kind GatewayKind
	Addr string
	Err  error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s on %s: %v", e.Kind, e.Addr, e.Err)
	}
	return fmt.Sprintf("gateway %s on %s", e.Kind, e.Addr)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) Is(target error) bool {
	switch e.Kind {
	case GatewayKindLaunch:
		return errors.Is(target, ErrProcessLaunch)
	case GatewayKindStartTimeout:
		return errors.Is(target, ErrGatewayStartTimeout)
	default:
		return false
	}
}

// NewGatewayError creates a new gateway error
func NewGatewayError(kind GatewayKind, addr string, err error) *GatewayError {
	return &GatewayError{
		Kind: kind,
		Addr: addr,
		Err:  err,
	}
}

// LoginKind classifies a LoginError.
type LoginKind string

const (
	LoginKindElementNotFound  LoginKind = "element_not_found"
	LoginKindTwoFactorTimeout LoginKind = "two_factor_timeout"
	LoginKindRejected         LoginKind = "rejected"
	LoginKindBrowser          LoginKind = "browser"
)

// maxMarkupLength bounds the page markup kept for diagnosis.
const maxMarkupLength = 1000

// LoginError represents a failed interactive login. Markup holds the
// beginning of the page at the time of failure.
type LoginError struct {
	Kind   LoginKind
	Stage  string
	Markup string
	Err    error
}

func (e *LoginError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("login failed during %s (%s): %v", e.Stage, e.Kind, e.Err)
	}
	return fmt.Sprintf("login failed during %s (%s)", e.Stage, e.Kind)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

func (e *LoginError) Is(target error) bool {
	switch e.Kind {
	case LoginKindElementNotFound:
		return errors.Is(target, ErrLoginElementNotFound)
	case LoginKindTwoFactorTimeout:
		return errors.Is(target, ErrTwoFactorTimeout)
	default:
		return errors.Is(target, ErrLoginFailed)
	}
}

// NewLoginError creates a new login error, truncating markup.
func NewLoginError(kind LoginKind, stage, markup string, err error) *LoginError {
	return &LoginError{
		Kind:   kind,
		Stage:  stage,
		Markup: truncateMarkup(markup),
		Err:    err,
	}
}

// truncateMarkup returns at most the first 1000 characters of markup.
func truncateMarkup(markup string) string {
	runes := []rune(markup)
	if len(runes) <= maxMarkupLength {
		return markup
	}
	return string(runes[:maxMarkupLength])
}

// IsLogin checks if an error is an interactive login failure of any kind
func IsLogin(err error) bool {
	var loginErr *LoginError
	return errors.As(err, &loginErr)
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
	return errors.Is(target, ErrConfiguration)
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
	return errors.Is(target, ErrInvalidInput)
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
		return errors.Is(target, ErrNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Is(target, ErrUnauthorized)
	case http.StatusBadRequest:
		return errors.Is(target, ErrInvalidInput)
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

// NewHTTPErrorWithCause creates a new HTTP error with an underlying cause
func NewHTTPErrorWithCause(statusCode int, method, url, message string, err error) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Message:    message,
		Err:        err,
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

// TransportError represents a request that never produced an HTTP response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return errors.Is(target, ErrTransport)
}

// NewTransportError creates a new transport error
func NewTransportError(method, url string, err error) *TransportError {
	return &TransportError{
		Method: method,
		URL:    url,
		Err:    err,
	}
}

// IsTransport checks if an error is a transport failure
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// MultiError represents multiple errors that occurred together
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Error(), len(e.Errors)-1)
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}

func (e *MultiError) Is(target error) bool {
	for _, err := range e.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (e *MultiError) As(target any) bool {
	for _, err := range e.Errors {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

// NewMultiError creates a new multi-error from a slice of errors
func NewMultiError(errs []error) *MultiError {
	var filteredErrors []error
	for _, err := range errs {
		if err != nil {
			filteredErrors = append(filteredErrors, err)
		}
	}
	return &MultiError{Errors: filteredErrors}
}

// Join creates a MultiError from multiple errors, filtering out nils
func Join(errs ...error) error {
	var nonNilErrors []error
	for _, err := range errs {
		if err != nil {
			nonNilErrors = append(nonNilErrors, err)
		}
	}

	if len(nonNilErrors) == 0 {
		return nil
	}
	if len(nonNilErrors) == 1 {
		return nonNilErrors[0]
	}

	return NewMultiError(nonNilErrors)
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || IsHTTPStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error represents an authorization failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		IsHTTPStatus(err, http.StatusUnauthorized) ||
		IsHTTPStatus(err, http.StatusForbidden)
}
