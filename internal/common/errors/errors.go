// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeUnknownOccupation      ErrorCode = "UNKNOWN_OCCUPATION"
	ErrCodeInvalidAssessmentInput ErrorCode = "INVALID_ASSESSMENT_INPUT"
	ErrCodeCatalogLoadFailed      ErrorCode = "CATALOG_LOAD_FAILED"

	ErrCodeResultStoreFailed ErrorCode = "RESULT_STORE_FAILED"
	ErrCodeResultNotFound    ErrorCode = "RESULT_NOT_FOUND"
	ErrCodeResultLoadFailed  ErrorCode = "RESULT_LOAD_FAILED"

	ErrCodeCacheUnavailable  ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeBrokerUnavailable ErrorCode = "BROKER_UNAVAILABLE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata attaches a key to the error metadata and returns the error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = map[string]interface{}{}
	}
	e.Metadata[key] = value
	return e
}

// AsStandardError finds the first StandardError in err's chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewUnknownOccupationError is raised when the occupation id has no catalog entry.
func NewUnknownOccupationError(occupationID string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownOccupation,
		Message:   "Occupation not found in catalog",
		Details:   fmt.Sprintf("occupationId: %s", occupationID),
		Retryable: false,
		Metadata:  map[string]interface{}{"occupationId": occupationID},
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

func NewInvalidAssessmentInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidAssessmentInput,
		Message:   "Assessment input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewCatalogLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Reference catalog could not be loaded",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewResultStoreFailedError creates a retryable database write error.
func NewResultStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResultStoreFailed,
		Message:   "Assessment result could not be stored",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewResultNotFoundError(assessmentID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResultNotFound,
		Message:   "Assessment result not found",
		Details:   fmt.Sprintf("assessmentId: %s", assessmentID),
		Retryable: false,
		Metadata:  map[string]interface{}{"assessmentId": assessmentID},
		Timestamp: time.Now().UTC(),
	}
}

// NewResultLoadFailedError creates a retryable database read error.
func NewResultLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResultLoadFailed,
		Message:   "Assessment result could not be loaded",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Result cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewBrokerUnavailableError wraps a transient Zeebe gateway failure.
func NewBrokerUnavailableError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrokerUnavailable,
		Message:   "Workflow broker unavailable",
		Details:   fmt.Sprintf("%s: %v", operation, err),
		Retryable: true,
		Metadata:  map[string]interface{}{"operation": operation},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to the codes modelled on BPMN
// boundary events. Codes missing here are thrown unchanged.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeUnknownOccupation:      "UNKNOWN_OCCUPATION",
	ErrCodeInvalidAssessmentInput: "INVALID_ASSESSMENT_INPUT",
	ErrCodeCatalogLoadFailed:      "CATALOG_LOAD_FAILED",
	ErrCodeResultStoreFailed:      "RESULT_STORE_FAILED",
	ErrCodeResultNotFound:         "RESULT_NOT_FOUND",
	ErrCodeResultLoadFailed:       "RESULT_LOAD_FAILED",
	ErrCodeCacheUnavailable:       "CACHE_UNAVAILABLE",
	ErrCodeBrokerUnavailable:      "BROKER_UNAVAILABLE",
	ErrCodeInternal:               "INTERNAL_ERROR",
}

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeResultStoreFailed,
		ErrCodeResultLoadFailed:
		return 3

	case ErrCodeCacheUnavailable,
		ErrCodeBrokerUnavailable:
		return 2

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeUnknownOccupation, ErrCodeInvalidAssessmentInput:
		return "VALIDATION"
	case ErrCodeCatalogLoadFailed:
		return "CATALOG"
	case ErrCodeResultStoreFailed, ErrCodeResultNotFound, ErrCodeResultLoadFailed:
		return "DATABASE"
	case ErrCodeCacheUnavailable:
		return "CACHE"
	case ErrCodeBrokerUnavailable:
		return "TRANSPORT"
	default:
		return "INTERNAL"
	}
}
