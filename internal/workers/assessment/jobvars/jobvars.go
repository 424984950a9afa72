// Package jobvars converts between Zeebe job variables and assessment types.
package jobvars

import (
	"fmt"
	"math"
	"strconv"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/models"
)

// Responses decodes a response list. A missing or null value yields a nil
// slice, which the engine rejects; an empty list is kept as empty.
func Responses(field string, v interface{}) ([]models.Response, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, &assessment.ValidationError{Field: field, Reason: fmt.Sprintf("must be a list, got %T", v)}
	}

	out := make([]models.Response, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, &assessment.ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: "must be an object"}
		}
		id, err := questionID(obj["questionId"])
		if err != nil {
			return nil, &assessment.ValidationError{Field: fmt.Sprintf("%s[%d].questionId", field, i), Reason: err.Error()}
		}
		answer, ok := obj["answer"].(string)
		if !ok {
			return nil, &assessment.ValidationError{Field: fmt.Sprintf("%s[%d].answer", field, i), Reason: "must be a string"}
		}
		out = append(out, models.Response{QuestionID: id, Answer: answer})
	}
	return out, nil
}

func questionID(v interface{}) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("must be an integer, got %v", n)
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("is out of range, got %v", n)
		}
		return int(n), nil
	case int:
		return boundedID(int64(n))
	case int64:
		return boundedID(n)
	case string:
		id, err := strconv.ParseInt(n, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("must be an integer, got %q", n)
		}
		return int(id), nil
	case nil:
		return 0, fmt.Errorf("is required")
	}
	return 0, fmt.Errorf("must be an integer, got %T", v)
}

func boundedID(n int64) (int, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("is out of range, got %d", n)
	}
	return int(n), nil
}

// TestType decodes and checks a test type name.
func TestType(field string, v interface{}) (models.TestType, error) {
	s, _ := v.(string)
	t := models.TestType(s)
	if !t.Valid() {
		return "", &assessment.ValidationError{Field: field, Reason: fmt.Sprintf("unknown test type %q", s)}
	}
	return t, nil
}

// String returns the string at key, or "" when absent or of another type.
func String(vars map[string]interface{}, key string) string {
	s, _ := vars[key].(string)
	return s
}

// Bool returns the bool at key, or def when absent.
func Bool(vars map[string]interface{}, key string, def bool) bool {
	if b, ok := vars[key].(bool); ok {
		return b
	}
	return def
}

// Status is the progress report returned to the process.
func Status(p *models.AssessmentProgress) map[string]interface{} {
	missing := make([]string, 0, 3)
	for _, t := range p.Missing() {
		missing = append(missing, string(t))
	}
	return map[string]interface{}{
		"individualId":         p.IndividualID,
		"personalityDone":      p.PersonalityDone,
		"aptitudeDone":         p.AptitudeDone,
		"interestDone":         p.InterestDone,
		"allCompleted":         p.AllCompleted(),
		"hasAggregatedResults": p.Aggregated != nil,
		"aggregationStale":     p.AggregationStale,
		"state":                string(assessment.StateOf(p)),
		"missingTests":         missing,
		"progressVersion":      p.Version,
	}
}

// Aggregated flattens an aggregated result into process variables.
func Aggregated(vars map[string]interface{}, r *models.AggregatedResult) {
	vars["aggregatedResult"] = r
	vars["topCareers"] = r.TopCareers
	vars["ruleBasedEnhancements"] = r.RuleBasedEnhancements
	if len(r.TopCareers) > 0 {
		vars["topCareer"] = string(r.TopCareers[0].Career)
	}
}
