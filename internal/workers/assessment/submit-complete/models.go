package submitcomplete

import "career-assessment-workers/internal/models"

type Input struct {
	IndividualID string
	Tests        map[models.TestType][]models.Response
}

type Output struct {
	Progress   *models.AssessmentProgress
	Submitted  []models.TestType
	Aggregated bool
}
