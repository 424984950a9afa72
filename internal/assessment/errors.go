package assessment

import (
	"fmt"
	"strings"

	"career-assessment-workers/internal/models"
)

// ValidationError rejects a whole submission. Nothing is scored.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// UnknownReferenceError describes a response whose question is not in the
// catalog. It is reported, never returned from scoring.
type UnknownReferenceError struct {
	TestType   models.TestType
	QuestionID int
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("unknown %s question %d", e.TestType, e.QuestionID)
}

// ConfigurationError is fatal at engine construction.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid assessment configuration: " + e.Reason
}

func configErrorf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// NotReadyError is returned when aggregation is requested before every test
// has been completed.
type NotReadyError struct {
	Missing []models.TestType
}

func (e *NotReadyError) Error() string {
	return "assessment not ready, missing: " + strings.Join(e.MissingNames(), ", ")
}

// MissingNames returns the missing tests as plain strings.
func (e *NotReadyError) MissingNames() []string {
	names := make([]string, len(e.Missing))
	for i, t := range e.Missing {
		names[i] = string(t)
	}
	return names
}

// UnknownReferences lists the skipped question ids of a result as errors.
func UnknownReferences(r *models.TestResult) []*UnknownReferenceError {
	if r == nil {
		return nil
	}
	out := make([]*UnknownReferenceError, 0, len(r.SkippedQuestionIDs))
	for _, id := range r.SkippedQuestionIDs {
		out = append(out, &UnknownReferenceError{TestType: r.TestType, QuestionID: id})
	}
	return out
}
