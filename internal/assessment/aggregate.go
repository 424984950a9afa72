package assessment

import (
	"fmt"
	"math"
	"sort"

	"career-assessment-workers/internal/models"
)

const weightTolerance = 1e-9

// DefaultWeights is the fixed personality/aptitude/interest split.
func DefaultWeights() models.TestWeights {
	return models.TestWeights{Personality: 0.30, Aptitude: 0.40, Interest: 0.30}
}

// ValidateWeights rejects negative weights and triples that do not sum to 1.
func ValidateWeights(w models.TestWeights) error {
	for name, v := range map[string]float64{"personality": w.Personality, "aptitude": w.Aptitude, "interest": w.Interest} {
		if v < 0 || math.IsNaN(v) {
			return configErrorf("%s weight %v is negative", name, v)
		}
	}
	sum := w.Personality + w.Aptitude + w.Interest
	if math.Abs(sum-1.0) > weightTolerance {
		return &ConfigurationError{Reason: fmt.Sprintf("test weights sum to %.4f, must sum to 1.0", sum)}
	}
	return nil
}

func weightFor(w models.TestWeights, t models.TestType) float64 {
	switch t {
	case models.TestPersonality:
		return w.Personality
	case models.TestAptitude:
		return w.Aptitude
	case models.TestInterest:
		return w.Interest
	}
	return 0
}

// Combine computes the weighted sum over the union of fields. Tests are
// visited in declaration order so the result is reproducible bit for bit.
func Combine(vectors map[models.TestType]models.CareerFieldVector, w models.TestWeights) models.CareerFieldVector {
	final := make(models.CareerFieldVector)
	for _, t := range models.AllTestTypes {
		vec := vectors[t]
		weight := weightFor(w, t)

		fields := make([]models.CareerField, 0, len(vec))
		for f := range vec {
			fields = append(fields, f)
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })

		for _, f := range fields {
			final[f] += vec[f] * weight
		}
	}
	return final
}
