package scoretest

import "career-assessment-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"individualId": {
				Type:        "string",
				Description: "Identifier of the person taking the assessment",
				MinLength:   validation.Int(1),
			},
			"testType": {
				Type:        "string",
				Description: "Which instrument the batch answers",
				Enum:        []string{"personality", "aptitude", "interest"},
			},
			"responses": {
				Type:        "array",
				Description: "Answers to catalog questions",
				Nullable:    true,
				Items: &validation.Property{
					Type:     "object",
					Required: []string{"questionId", "answer"},
					Properties: map[string]validation.Property{
						"questionId": {Type: "integer"},
						"answer":     {Type: "string"},
					},
				},
			},
		},
		Required:             []string{"individualId", "testType", "responses"},
		AdditionalProperties: true,
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"individualId":       {Type: "string"},
			"testType":           {Type: "string"},
			"testResult":         {Type: "object"},
			"skippedQuestionIds": {Type: "array", Items: &validation.Property{Type: "integer"}},
			"aggregated":         {Type: "boolean"},
			"allCompleted":       {Type: "boolean"},
			"state":              {Type: "string"},
			"aggregatedResult":   {Type: "object"},
		},
		Required:             []string{"individualId", "testType", "testResult", "aggregated", "allCompleted"},
		AdditionalProperties: true,
	}
}
