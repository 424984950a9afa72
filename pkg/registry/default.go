// pkg/registry/default.go
package registry

import (
	"time"

	"career-assessment-workers/internal/common/errors"
	"career-assessment-workers/internal/common/validation"
	aggregateresults "career-assessment-workers/internal/workers/assessment/aggregate-results"
	getprogress "career-assessment-workers/internal/workers/assessment/get-progress"
	indexresults "career-assessment-workers/internal/workers/assessment/index-results"
	notifyresults "career-assessment-workers/internal/workers/assessment/notify-results"
	scoretest "career-assessment-workers/internal/workers/assessment/score-test"
	submitcomplete "career-assessment-workers/internal/workers/assessment/submit-complete"
)

const (
	RegistryVersion = "1.0.0"
	assessmentFlow  = "career-assessment"
)

func activity(id, name, desc, category, taskType string, in, out validation.JSONSchema, timeout time.Duration, codes ...errors.ErrorCode) Activity {
	errorCodes := make([]string, 0, len(codes)+1)
	for _, c := range codes {
		errorCodes = append(errorCodes, string(c))
	}
	errorCodes = append(errorCodes, string(errors.ErrCodeInternal))

	return Activity{
		ID:                   id,
		DisplayName:          name,
		Description:          desc,
		Category:             category,
		Version:              RegistryVersion,
		TaskType:             taskType,
		ImplementationStatus: StatusCompleted,
		InputSchema:          in.Document(),
		OutputSchema:         out.Document(),
		ErrorCodes:           errorCodes,
		Timeout:              timeout.String(),
		Retries:              3,
		Workflows:            []string{assessmentFlow},
		Tags:                 []string{"assessment", category},
	}
}

// Default builds the registry of every worker in this module.
func Default() *ActivityRegistry {
	return &ActivityRegistry{
		Version:     RegistryVersion,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Activities: []Activity{
			activity("assessment.test.score", "Score Test",
				"Scores one personality, aptitude or interest batch and stores the result",
				"scoring", scoretest.TaskType,
				scoretest.GetInputSchema(), scoretest.GetOutputSchema(), scoretest.DefaultConfig().Timeout,
				errors.ErrCodeInputValidationFailed, errors.ErrCodeAssessmentValidationFailed,
				errors.ErrCodeProgressConflict, errors.ErrCodeQueryExecutionFailed),
			activity("assessment.test.submit-complete", "Submit Complete Assessment",
				"Scores every supplied batch at once and aggregates when all three tests are done",
				"scoring", submitcomplete.TaskType,
				submitcomplete.GetInputSchema(), submitcomplete.GetOutputSchema(), submitcomplete.DefaultConfig().Timeout,
				errors.ErrCodeInputValidationFailed, errors.ErrCodeAssessmentValidationFailed,
				errors.ErrCodeProgressConflict, errors.ErrCodeQueryExecutionFailed),
			activity("assessment.progress.get", "Get Assessment Progress",
				"Reports which tests are done and whether aggregated results are current",
				"progress", getprogress.TaskType,
				getprogress.GetInputSchema(), getprogress.GetOutputSchema(), getprogress.DefaultConfig().Timeout,
				errors.ErrCodeInputValidationFailed, errors.ErrCodeQueryExecutionFailed),
			activity("assessment.results.aggregate", "Aggregate Results",
				"Combines the three test vectors into ranked career recommendations",
				"aggregation", aggregateresults.TaskType,
				aggregateresults.GetInputSchema(), aggregateresults.GetOutputSchema(), aggregateresults.DefaultConfig().Timeout,
				errors.ErrCodeInputValidationFailed, errors.ErrCodeAssessmentNotReady,
				errors.ErrCodeAssessmentConfiguration, errors.ErrCodeProgressConflict),
			activity("assessment.results.notify", "Notify Results",
				"Emails the top careers and publishes the results event",
				"notification", notifyresults.TaskType,
				notifyresults.GetInputSchema(), notifyresults.GetOutputSchema(), notifyresults.DefaultConfig().Timeout,
				errors.ErrCodeInputValidationFailed, errors.ErrCodeResultsNotAggregated,
				errors.ErrCodeNotificationSendFailed),
			activity("assessment.results.index", "Index Results",
				"Writes the aggregated result to the reporting index",
				"reporting", indexresults.TaskType,
				indexresults.GetInputSchema(), indexresults.GetOutputSchema(), indexresults.DefaultConfig().Timeout,
				errors.ErrCodeInputValidationFailed, errors.ErrCodeResultsNotAggregated,
				errors.ErrCodeIndexOperationFailed),
		},
	}
}
