package assessment

import (
	"sort"

	"career-assessment-workers/internal/catalog"
	"career-assessment-workers/internal/models"
)

// Project adds every category score to each career field the category maps
// to. A category without a table entry is a configuration error.
func Project(table catalog.MappingTable, scores models.NormalizedScores) (models.CareerFieldVector, error) {
	categories := make([]models.Category, 0, len(scores))
	for c := range scores {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	vector := make(models.CareerFieldVector)
	for _, c := range categories {
		fields, ok := table[c]
		if !ok {
			return nil, configErrorf("category %q has no career field mapping", c)
		}
		for _, f := range fields {
			vector[f] += float64(scores[c])
		}
	}
	return vector, nil
}

func validateMapping(t models.TestType, table catalog.MappingTable, categories []models.Category, known map[models.CareerField]bool) error {
	if table == nil {
		return configErrorf("no mapping table for %s", t)
	}
	for _, c := range categories {
		fields, ok := table[c]
		if !ok {
			return configErrorf("%s category %q has no career field mapping", t, c)
		}
		if len(fields) == 0 {
			return configErrorf("%s category %q maps to no career field", t, c)
		}
	}
	for c, fields := range table {
		for _, f := range fields {
			if !known[f] {
				return configErrorf("%s category %q maps to unknown career field %q", t, c, f)
			}
		}
	}
	return nil
}
