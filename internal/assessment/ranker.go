package assessment

import (
	"sort"

	"career-assessment-workers/internal/catalog"
	"career-assessment-workers/internal/models"
)

// DefaultTopN is the length of the recommendation list.
const DefaultTopN = 7

// Rank orders fields by score descending and then by name, attaches catalog
// metadata and keeps the first topN. Fields absent from the catalog are
// dropped. topN <= 0 keeps everything.
func Rank(scores models.CareerFieldVector, careers catalog.CareerCatalog, topN int) []models.CareerRecommendation {
	fields := make([]models.CareerField, 0, len(scores))
	for f := range scores {
		if _, ok := careers[f]; ok {
			fields = append(fields, f)
		}
	}
	sort.Slice(fields, func(i, j int) bool {
		si, sj := scores[fields[i]], scores[fields[j]]
		if si != sj {
			return si > sj
		}
		return fields[i] < fields[j]
	})
	if topN > 0 && len(fields) > topN {
		fields = fields[:topN]
	}

	out := make([]models.CareerRecommendation, 0, len(fields))
	for _, f := range fields {
		c := careers[f]
		out = append(out, models.CareerRecommendation{
			Career:          f,
			Score:           scores[f],
			Description:     c.Description,
			RelatedPrograms: append([]string(nil), c.RelatedPrograms...),
			Category:        c.Category,
			Specializations: append([]models.Specialization(nil), c.Specializations...),
		})
	}
	return out
}
