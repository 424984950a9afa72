package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"career-assessment-workers/internal/assessment"
)

type ErrorCode string

const (
	ErrCodeAssessmentValidationFailed ErrorCode = "ASSESSMENT_VALIDATION_FAILED"
	ErrCodeUnknownReference           ErrorCode = "UNKNOWN_REFERENCE"
	ErrCodeAssessmentConfiguration    ErrorCode = "ASSESSMENT_CONFIGURATION_ERROR"
	ErrCodeAssessmentNotReady         ErrorCode = "ASSESSMENT_NOT_READY"
	ErrCodeProgressNotFound           ErrorCode = "PROGRESS_NOT_FOUND"
	ErrCodeProgressConflict           ErrorCode = "PROGRESS_VERSION_CONFLICT"
	ErrCodeResultsNotAggregated       ErrorCode = "RESULTS_NOT_AGGREGATED"
	ErrCodeInputValidationFailed      ErrorCode = "INPUT_VALIDATION_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeCacheOperationFailed     ErrorCode = "CACHE_OPERATION_FAILED"

	ErrCodeElasticsearchConnectionFailed ErrorCode = "ELASTICSEARCH_CONNECTION_FAILED"
	ErrCodeIndexOperationFailed          ErrorCode = "INDEX_OPERATION_FAILED"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

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

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

func NewAssessmentValidationError(details string) *StandardError {
	return newError(ErrCodeAssessmentValidationFailed, "Assessment submission is invalid", details, false)
}

func NewInputValidationError(details string) *StandardError {
	return newError(ErrCodeInputValidationFailed, "Job input failed schema validation", details, false)
}

func NewUnknownReferenceError(details string) *StandardError {
	return newError(ErrCodeUnknownReference, "Response references an unknown question", details, false)
}

func NewConfigurationError(details string) *StandardError {
	return newError(ErrCodeAssessmentConfiguration, "Assessment configuration is invalid", details, false)
}

// NewNotReadyError carries the missing tests so the process can route the
// individual back to them.
func NewNotReadyError(missing []string) *StandardError {
	e := newError(ErrCodeAssessmentNotReady, "Not all tests are completed",
		"missing: "+strings.Join(missing, ", "), false)
	e.Metadata = map[string]interface{}{"missingTests": missing}
	return e
}

func NewProgressNotFoundError(individualID string) *StandardError {
	return newError(ErrCodeProgressNotFound, "No assessment progress found",
		fmt.Sprintf("individualId: %s", individualID), false)
}

func NewProgressConflictError(individualID string) *StandardError {
	return newError(ErrCodeProgressConflict, "Assessment progress was modified concurrently",
		fmt.Sprintf("individualId: %s", individualID), true)
}

func NewResultsNotAggregatedError(individualID string) *StandardError {
	return newError(ErrCodeResultsNotAggregated, "Assessment results have not been aggregated",
		fmt.Sprintf("individualId: %s", individualID), false)
}

func NewDatabaseConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseConnectionFailed, "Database connection error", err.Error(), true)
}

func NewQueryExecutionFailedError(queryType string, err error) *StandardError {
	return newError(ErrCodeQueryExecutionFailed, "Database query execution error",
		fmt.Sprintf("queryType: %s, error: %s", queryType, err.Error()), true)
}

func NewQueryTimeoutError(queryType string) *StandardError {
	return newError(ErrCodeQueryTimeout, "Database query timeout", fmt.Sprintf("queryType: %s", queryType), true)
}

func NewDatabaseInsertFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseInsertFailed, "Database insert operation failed", err.Error(), true)
}

func NewCacheOperationFailedError(op string, err error) *StandardError {
	return newError(ErrCodeCacheOperationFailed, "Cache operation failed",
		fmt.Sprintf("operation: %s, error: %s", op, err.Error()), true)
}

func NewElasticsearchConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeElasticsearchConnectionFailed, "Elasticsearch connection error", err.Error(), true)
}

func NewIndexOperationFailedError(index string, err error) *StandardError {
	return newError(ErrCodeIndexOperationFailed, "Elasticsearch index operation failed",
		fmt.Sprintf("index: %s, error: %s", index, err.Error()), true)
}

func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed, "Notification delivery failed",
		fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()), true)
}

// FromAssessmentError maps engine errors onto standard codes. Errors that
// are already StandardErrors pass through; anything else is internal.
func FromAssessmentError(err error) *StandardError {
	if err == nil {
		return nil
	}

	var std *StandardError
	if stderrors.As(err, &std) {
		return std
	}

	var notReady *assessment.NotReadyError
	var validation *assessment.ValidationError
	var config *assessment.ConfigurationError
	var unknown *assessment.UnknownReferenceError

	switch {
	case stderrors.As(err, &notReady):
		return NewNotReadyError(notReady.MissingNames())
	case stderrors.As(err, &validation):
		return NewAssessmentValidationError(validation.Error())
	case stderrors.As(err, &config):
		return NewConfigurationError(config.Reason)
	case stderrors.As(err, &unknown):
		return NewUnknownReferenceError(unknown.Error())
	case stderrors.Is(err, assessment.ErrNotFound):
		return NewProgressNotFoundError(err.Error())
	case stderrors.Is(err, assessment.ErrConflict):
		return NewProgressConflictError(err.Error())
	}
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeAssessmentValidationFailed:    "ASSESSMENT_VALIDATION_FAILED",
	ErrCodeInputValidationFailed:         "INPUT_VALIDATION_FAILED",
	ErrCodeUnknownReference:              "UNKNOWN_REFERENCE",
	ErrCodeAssessmentConfiguration:       "ASSESSMENT_CONFIGURATION_ERROR",
	ErrCodeAssessmentNotReady:            "ASSESSMENT_NOT_READY",
	ErrCodeProgressNotFound:              "PROGRESS_NOT_FOUND",
	ErrCodeProgressConflict:              "PROGRESS_VERSION_CONFLICT",
	ErrCodeResultsNotAggregated:          "RESULTS_NOT_AGGREGATED",
	ErrCodeDatabaseConnectionFailed:      "DATABASE_CONNECTION_FAILED",
	ErrCodeQueryExecutionFailed:          "QUERY_EXECUTION_FAILED",
	ErrCodeQueryTimeout:                  "QUERY_TIMEOUT",
	ErrCodeDatabaseInsertFailed:          "DATABASE_INSERT_FAILED",
	ErrCodeCacheOperationFailed:          "CACHE_OPERATION_FAILED",
	ErrCodeElasticsearchConnectionFailed: "ELASTICSEARCH_CONNECTION_FAILED",
	ErrCodeIndexOperationFailed:          "INDEX_OPERATION_FAILED",
	ErrCodeNotificationSendFailed:        "NOTIFICATION_SEND_FAILED",
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeDatabaseInsertFailed,
		ErrCodeCacheOperationFailed,
		ErrCodeElasticsearchConnectionFailed,
		ErrCodeIndexOperationFailed,
		ErrCodeNotificationSendFailed,
		ErrCodeProgressConflict:
		return 3

	case ErrCodeQueryTimeout:
		return 2

	default:
		return 0 // business errors are never retried
	}
}

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

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY") || strings.Contains(codeStr, "CACHE"):
		return "DATABASE"
	case strings.Contains(codeStr, "ELASTICSEARCH") || strings.Contains(codeStr, "INDEX"):
		return "SEARCH"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "UNKNOWN_REFERENCE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "ASSESSMENT") || strings.Contains(codeStr, "PROGRESS") || strings.Contains(codeStr, "RESULTS"):
		return "ASSESSMENT"
	default:
		return "OTHER"
	}
}
