package assessment

import "career-assessment-workers/internal/models"

// ProgressState is derived from the three completion flags.
type ProgressState string

const (
	StateNotStarted   ProgressState = "NotStarted"
	StateInProgress   ProgressState = "InProgress"
	StateAllCompleted ProgressState = "AllCompleted"
)

// StateOf reports where p is in the assessment lifecycle.
func StateOf(p *models.AssessmentProgress) ProgressState {
	if p == nil {
		return StateNotStarted
	}
	if p.AllCompleted() {
		return StateAllCompleted
	}
	if p.PersonalityDone || p.AptitudeDone || p.InterestDone {
		return StateInProgress
	}
	return StateNotStarted
}

// NewProgress returns the empty record of an individual with no submissions.
func NewProgress(individualID string) *models.AssessmentProgress {
	return &models.AssessmentProgress{IndividualID: individualID}
}

// Submit scores a batch and returns the next progress value. The input is
// left untouched; only the slot of testType changes in the returned copy.
func (e *Engine) Submit(p *models.AssessmentProgress, t models.TestType, responses []models.Response) (*models.AssessmentProgress, error) {
	if p == nil {
		return nil, &ValidationError{Field: "progress", Reason: "is required"}
	}
	result, err := e.ScoreTest(t, responses)
	if err != nil {
		return nil, err
	}

	next := *p
	switch t {
	case models.TestPersonality:
		next.Personality = result
		next.PersonalityDone = true
	case models.TestAptitude:
		next.Aptitude = result
		next.AptitudeDone = true
	case models.TestInterest:
		next.Interest = result
		next.InterestDone = true
	}
	if next.Aggregated != nil {
		next.AggregationStale = true
	}
	next.Version++
	return &next, nil
}

// AggregateProgress combines the stored results. It fails with
// NotReadyError until all three tests are done.
func (e *Engine) AggregateProgress(p *models.AssessmentProgress) (*models.AssessmentProgress, error) {
	next, _, err := e.aggregateProgress(p)
	return next, err
}

func (e *Engine) aggregateProgress(p *models.AssessmentProgress) (*models.AssessmentProgress, []string, error) {
	if p == nil {
		return nil, nil, &ValidationError{Field: "progress", Reason: "is required"}
	}
	if !p.AllCompleted() {
		return nil, nil, &NotReadyError{Missing: p.Missing()}
	}
	result, fired, err := e.aggregate(p.Personality, p.Aptitude, p.Interest)
	if err != nil {
		return nil, nil, err
	}

	next := *p
	next.Aggregated = result
	next.AggregationStale = false
	next.Version++
	return &next, fired, nil
}
