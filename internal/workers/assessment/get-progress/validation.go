package getprogress

import "career-assessment-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"individualId":   {Type: "string", MinLength: validation.Int(1)},
			"includeResults": {Type: "boolean", Description: "Also return stored test and aggregated results"},
		},
		Required:             []string{"individualId"},
		AdditionalProperties: true,
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"individualId":         {Type: "string"},
			"personalityDone":      {Type: "boolean"},
			"aptitudeDone":         {Type: "boolean"},
			"interestDone":         {Type: "boolean"},
			"allCompleted":         {Type: "boolean"},
			"hasAggregatedResults": {Type: "boolean"},
			"aggregationStale":     {Type: "boolean"},
			"state":                {Type: "string", Enum: []string{"NotStarted", "InProgress", "AllCompleted"}},
			"missingTests":         {Type: "array", Items: &validation.Property{Type: "string"}},
			"progressVersion":      {Type: "integer"},
		},
		Required: []string{
			"individualId", "personalityDone", "aptitudeDone", "interestDone",
			"allCompleted", "hasAggregatedResults", "state",
		},
		AdditionalProperties: true,
	}
}
