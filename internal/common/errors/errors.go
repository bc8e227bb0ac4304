// Package errors provides standardized error handling for the bot pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnsupportedIntent ErrorCode = "UNSUPPORTED_INTENT"

	ErrCodeQueueSendFailed    ErrorCode = "QUEUE_SEND_FAILED"
	ErrCodeQueueReceiveFailed ErrorCode = "QUEUE_RECEIVE_FAILED"

	ErrCodeSearchQueryFailed   ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeInsufficientResults ErrorCode = "INSUFFICIENT_RESULTS"

	ErrCodeRecordLookupFailed ErrorCode = "RECORD_LOOKUP_FAILED"
	ErrCodeRecordWriteFailed  ErrorCode = "RECORD_WRITE_FAILED"

	ErrCodeEmailSendFailed ErrorCode = "EMAIL_SEND_FAILED"

	ErrCodeDialogEngineFailed   ErrorCode = "DIALOG_ENGINE_FAILED"
	ErrCodeDirectoryQueryFailed ErrorCode = "DIRECTORY_QUERY_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationFailedError marks a malformed queue message. Not retryable;
// redelivery cannot fix a bad body.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Fulfillment request failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedIntentError creates a non-retryable dispatch error. The
// invocation fails as a whole; there is no user-facing re-prompt for it.
func NewUnsupportedIntentError(intentName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedIntent,
		Message:   "Intent not supported by this bot",
		Details:   fmt.Sprintf("intentName: %s", intentName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueueSendFailedError creates a retryable queue submission error.
func NewQueueSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueueSendFailed,
		Message:   "Failed to enqueue fulfillment request",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueueReceiveFailedError creates a retryable queue poll error.
func NewQueueReceiveFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueueReceiveFailed,
		Message:   "Failed to receive messages from queue",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchQueryFailedError creates a retryable search error.
func NewSearchQueryFailedError(cuisine string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "Search index query failed",
		Details:   fmt.Sprintf("cuisine: %s, error: %s", cuisine, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInsufficientResultsError marks a fulfillment message that cannot be
// completed with the current index contents. The message is abandoned and
// becomes redeliverable after the visibility timeout.
func NewInsufficientResultsError(cuisine string, found, wanted int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInsufficientResults,
		Message:   "Not enough search matches to build a suggestion",
		Details:   fmt.Sprintf("cuisine: %s, found: %d, wanted: %d", cuisine, found, wanted),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecordLookupFailedError creates a retryable document store error.
func NewRecordLookupFailedError(businessID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecordLookupFailed,
		Message:   "Restaurant record lookup failed",
		Details:   fmt.Sprintf("businessId: %s, error: %s", businessID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecordWriteFailedError creates a retryable document store write error.
func NewRecordWriteFailedError(businessID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecordWriteFailed,
		Message:   "Restaurant record write failed",
		Details:   fmt.Sprintf("businessId: %s, error: %s", businessID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError creates a retryable email delivery error.
func NewEmailSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "Email delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDialogEngineFailedError creates a retryable dialog engine transport error.
func NewDialogEngineFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDialogEngineFailed,
		Message:   "Dialog engine call failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDirectoryQueryFailedError creates a retryable directory API error.
func NewDirectoryQueryFailedError(location, term string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDirectoryQueryFailed,
		Message:   "Business directory query failed",
		Details:   fmt.Sprintf("location: %s, term: %s, error: %s", location, term, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err is a StandardError marked retryable.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
