package submitcomplete

import "career-assessment-workers/internal/common/validation"

func batchSchema() validation.Property {
	return validation.Property{
		Type:     "array",
		Nullable: true,
		Items: &validation.Property{
			Type:     "object",
			Required: []string{"questionId", "answer"},
			Properties: map[string]validation.Property{
				"questionId": {Type: "integer"},
				"answer":     {Type: "string"},
			},
		},
	}
}

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"individualId": {Type: "string", MinLength: validation.Int(1)},
			"tests": {
				Type:        "object",
				Description: "Response batches keyed by test type",
				Properties: map[string]validation.Property{
					"personality": batchSchema(),
					"aptitude":    batchSchema(),
					"interest":    batchSchema(),
				},
			},
		},
		Required:             []string{"individualId", "tests"},
		AdditionalProperties: true,
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"individualId":     {Type: "string"},
			"submittedTests":   {Type: "array", Items: &validation.Property{Type: "string"}},
			"testResults":      {Type: "object"},
			"aggregated":       {Type: "boolean"},
			"allCompleted":     {Type: "boolean"},
			"aggregatedResult": {Type: "object"},
		},
		Required:             []string{"individualId", "submittedTests", "testResults", "aggregated", "allCompleted"},
		AdditionalProperties: true,
	}
}
