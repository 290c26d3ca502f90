// Package errors provides standardized error handling for the lead intake function.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Client input errors
const (
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrCodeMissingPhone     ErrorCode = "MISSING_PHONE"
)

// Upstream / integration errors
const (
	ErrCodeTokenRefreshFailed     ErrorCode = "TOKEN_REFRESH_FAILED"
	ErrCodeLeadSubmitFailed       ErrorCode = "LEAD_SUBMIT_FAILED"
	ErrCodeLeadResponseUnexpected ErrorCode = "LEAD_RESPONSE_UNEXPECTED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Public messages returned to callers. They are part of the HTTP contract.
const (
	MsgMethodNotAllowed   = "Method Not Allowed"
	MsgInvalidJSON        = "Invalid JSON format in request body."
	MsgMissingPhone       = `Missing "phone" in request body.`
	MsgTokenRefreshFailed = "Could not refresh Zoho token."
	MsgLeadSubmitFailed   = "Failed to post lead to Zoho."
	MsgInternal           = "Internal Server Error"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
}

// ==========================
// 2. Error Constructors
// ==========================

func NewMethodNotAllowedError(method string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMethodNotAllowed,
		Message:   MsgMethodNotAllowed,
		Details:   fmt.Sprintf("method: %s", method),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidJSONError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJSON,
		Message:   MsgInvalidJSON,
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewMissingPhoneError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingPhone,
		Message:   MsgMissingPhone,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTokenRefreshFailedError wraps the upstream failure detail of the
// refresh-token exchange.
func NewTokenRefreshFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTokenRefreshFailed,
		Message:   MsgTokenRefreshFailed,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLeadSubmitFailedError carries the serialized CRM response (or the
// transport error) as details.
func NewLeadSubmitFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLeadSubmitFailed,
		Message:   MsgLeadSubmitFailed,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLeadResponseUnexpectedError is returned when the CRM answers with a
// shape that cannot be read (no data, empty data, success without an id).
func NewLeadResponseUnexpectedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLeadResponseUnexpected,
		Message:   MsgLeadSubmitFailed,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   MsgInternal,
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// HTTPStatus maps an error code to the status code returned to the caller.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrCodeInvalidJSON, ErrCodeMissingPhone:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether the code describes a problem with the inbound
// request. Client errors never expose details to the caller.
func IsClientError(code ErrorCode) bool {
	return HTTPStatus(code) < http.StatusInternalServerError
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeMethodNotAllowed, ErrCodeInvalidJSON, ErrCodeMissingPhone:
		return "CLIENT_INPUT"
	case ErrCodeTokenRefreshFailed:
		return "AUTHENTICATION"
	case ErrCodeLeadSubmitFailed, ErrCodeLeadResponseUnexpected:
		return "INTEGRATION"
	default:
		return "INTERNAL"
	}
}
