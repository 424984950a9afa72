package indexresults

import (
	"time"

	"career-assessment-workers/internal/models"
)

// ResultDocument is the reporting shape of one individual's aggregated result.
type ResultDocument struct {
	IndividualID          string                        `json:"individualId"`
	TopCareer             models.CareerField            `json:"topCareer"`
	TopCareers            []models.CareerRecommendation `json:"topCareers"`
	FinalCareerScores     models.CareerFieldVector      `json:"finalCareerScores"`
	RuleBasedEnhancements []string                      `json:"ruleBasedEnhancements"`
	TestWeights           models.TestWeights            `json:"testWeights"`
	Personality           models.NormalizedScores       `json:"personality"`
	Aptitude              models.NormalizedScores       `json:"aptitude"`
	Interest              models.NormalizedScores       `json:"interest"`
	AggregatedAt          time.Time                     `json:"aggregatedAt"`
	IndexedAt             time.Time                     `json:"indexedAt"`
}

func newResultDocument(p *models.AssessmentProgress, now time.Time) ResultDocument {
	doc := ResultDocument{
		IndividualID:          p.IndividualID,
		TopCareers:            p.Aggregated.TopCareers,
		FinalCareerScores:     p.Aggregated.FinalCareerScores,
		RuleBasedEnhancements: p.Aggregated.RuleBasedEnhancements,
		TestWeights:           p.Aggregated.TestWeights,
		AggregatedAt:          p.Aggregated.AggregatedAt,
		IndexedAt:             now,
	}
	if len(doc.TopCareers) > 0 {
		doc.TopCareer = doc.TopCareers[0].Career
	}
	if p.Personality != nil {
		doc.Personality = p.Personality.NormalizedScores
	}
	if p.Aptitude != nil {
		doc.Aptitude = p.Aptitude.NormalizedScores
	}
	if p.Interest != nil {
		doc.Interest = p.Interest.NormalizedScores
	}
	return doc
}

// IndexMapping is applied when the results index is created.
func IndexMapping() map[string]interface{} {
	return map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"individualId":          map[string]interface{}{"type": "keyword"},
				"topCareer":             map[string]interface{}{"type": "keyword"},
				"ruleBasedEnhancements": map[string]interface{}{"type": "text"},
				"finalCareerScores":     map[string]interface{}{"type": "object", "dynamic": true},
				"aggregatedAt":          map[string]interface{}{"type": "date"},
				"indexedAt":             map[string]interface{}{"type": "date"},
			},
		},
	}
}
