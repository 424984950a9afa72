package scoretest

import "career-assessment-workers/internal/models"

type Input struct {
	IndividualID string            `json:"individualId"`
	TestType     models.TestType   `json:"testType"`
	Responses    []models.Response `json:"responses"`
}

type Output struct {
	Progress   *models.AssessmentProgress `json:"-"`
	Result     *models.TestResult         `json:"testResult"`
	Aggregated bool                       `json:"aggregated"`
}
