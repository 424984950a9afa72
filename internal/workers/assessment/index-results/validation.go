package indexresults

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
			"indexed":     {Type: "boolean"},
			"indexName":   {Type: "string"},
			"documentId":  {Type: "string"},
			"indexResult": {Type: "string", Enum: []string{"created", "updated", "noop"}},
		},
		Required:             []string{"indexed", "indexName", "documentId", "indexResult"},
		AdditionalProperties: true,
	}
}
