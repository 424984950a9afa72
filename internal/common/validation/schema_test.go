package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionSchema() JSONSchema {
	return JSONSchema{
		Type: "object",
		Properties: map[string]Property{
			"individualId": {Type: "string", MinLength: Int(1)},
			"testType":     {Type: "string", Enum: []string{"personality", "aptitude", "interest"}},
			"topN":         {Type: "integer", Minimum: Float(0), Maximum: Float(31)},
			"responses": {
				Type: "array",
				Items: &Property{
					Type:     "object",
					Required: []string{"questionId", "answer"},
					Properties: map[string]Property{
						"questionId": {Type: "integer"},
						"answer":     {Type: "string"},
					},
				},
			},
			"note": {Type: "string", Nullable: true},
		},
		Required: []string{"individualId", "testType", "responses"},
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name      string
		input     map[string]interface{}
		valid     bool
		wantField string
		wantCode  string
	}{
		{
			name: "valid batch with decoded numbers",
			input: map[string]interface{}{
				"individualId": "ind-1",
				"testType":     "aptitude",
				"topN":         float64(5),
				"responses":    []interface{}{map[string]interface{}{"questionId": float64(3), "answer": "B"}},
				"note":         nil,
			},
			valid: true,
		},
		{
			name:      "missing individual",
			input:     map[string]interface{}{"testType": "aptitude", "responses": []interface{}{}},
			wantField: "individualId",
			wantCode:  "REQUIRED_FIELD_MISSING",
		},
		{
			name:      "unknown test type",
			input:     map[string]interface{}{"individualId": "ind-1", "testType": "iq", "responses": []interface{}{}},
			wantField: "testType",
			wantCode:  "INVALID_ENUM_VALUE",
		},
		{
			name:      "responses not a list",
			input:     map[string]interface{}{"individualId": "ind-1", "testType": "interest", "responses": "all agree"},
			wantField: "responses",
			wantCode:  "INVALID_TYPE",
		},
		{
			name: "extra field rejected",
			input: map[string]interface{}{
				"individualId": "ind-1", "testType": "interest", "responses": []interface{}{}, "debug": true,
			},
			wantField: "debug",
			wantCode:  "EXTRA_FIELD",
		},
		{
			name: "answer missing inside a response",
			input: map[string]interface{}{
				"individualId": "ind-1", "testType": "interest",
				"responses": []interface{}{map[string]interface{}{"questionId": float64(1)}},
			},
			wantField: "responses.0",
			wantCode:  "REQUIRED_FIELD_MISSING",
		},
		{
			name: "topN out of range",
			input: map[string]interface{}{
				"individualId": "ind-1", "testType": "interest", "responses": []interface{}{}, "topN": float64(40),
			},
			wantField: "topN",
			wantCode:  "MAXIMUM_VIOLATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateInput(tt.input, submissionSchema())
			assert.Equal(t, tt.valid, res.Valid, res.GetErrorMessages())
			if tt.valid {
				return
			}
			require.NotEmpty(t, res.Errors)
			assert.True(t, res.HasErrors(tt.wantField), res.GetErrorMessages())
			var codes []string
			for _, e := range res.Errors {
				codes = append(codes, e.Code)
			}
			assert.Contains(t, codes, tt.wantCode)
		})
	}
}

func TestValidateDocument_BrokenSchema(t *testing.T) {
	res := ValidateDocument(map[string]interface{}{"type": 12}, map[string]interface{}{})
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "SCHEMA_ERROR", res.Errors[0].Code)
}

func TestValidateActivityNaming(t *testing.T) {
	assert.NoError(t, ValidateActivityNaming("assessment.test.score"))
	assert.NoError(t, ValidateActivityNaming("assessment.results.aggregate"))
	assert.NoError(t, ValidateActivityNaming("assessment.progress.get"))
	assert.Error(t, ValidateActivityNaming("Assessment.Test"))
	assert.Error(t, ValidateActivityNaming("score"))
}

func TestGetSchemaFromJSON(t *testing.T) {
	s, err := GetSchemaFromJSON(`{"type":"object","properties":{"individualId":{"type":"string"}},"required":["individualId"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"individualId"}, s.Required)

	res := ValidateInput(map[string]interface{}{}, s)
	assert.False(t, res.Valid)
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("student@example.org"))
	assert.False(t, ValidateEmail("not-an-email"))
}
