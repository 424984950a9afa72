package aggregateresults

import "career-assessment-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"individualId": {Type: "string", MinLength: validation.Int(1)},
		},
		Required:             []string{"individualId"},
		AdditionalProperties: true,
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"individualId":          {Type: "string"},
			"aggregatedResult":      {Type: "object"},
			"topCareers":            {Type: "array", Items: &validation.Property{Type: "object"}},
			"topCareer":             {Type: "string"},
			"ruleBasedEnhancements": {Type: "array", Items: &validation.Property{Type: "string"}},
			"hasAggregatedResults":  {Type: "boolean"},
		},
		Required:             []string{"individualId", "aggregatedResult", "topCareers", "ruleBasedEnhancements"},
		AdditionalProperties: true,
	}
}
