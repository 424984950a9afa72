package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-assessment-workers/internal/models"
)

func TestQuestionCounts(t *testing.T) {
	tests := []struct {
		testType models.TestType
		total    int
		perCat   int
		cats     int
	}{
		{models.TestPersonality, 36, 6, 6},
		{models.TestAptitude, 40, 10, 4},
		{models.TestInterest, 36, 6, 6},
	}
	all := Questions()
	for _, tt := range tests {
		t.Run(string(tt.testType), func(t *testing.T) {
			qs := all[tt.testType]
			require.Len(t, qs, tt.total)

			counts := map[models.Category]int{}
			ids := map[int]bool{}
			for _, q := range qs {
				assert.Equal(t, tt.testType, q.TestType)
				assert.False(t, ids[q.ID], "duplicate id %d", q.ID)
				ids[q.ID] = true
				counts[q.Category]++
			}
			assert.Len(t, counts, tt.cats)
			for c, n := range counts {
				assert.Equal(t, tt.perCat, n, c)
			}
		})
	}
}

func TestAptitudeQuestionsHaveAnswerAmongOptions(t *testing.T) {
	for _, q := range AptitudeQuestions() {
		require.NotEmpty(t, q.SkillType, q.ID)
		require.Len(t, q.Options, 4, q.ID)

		found := false
		for _, o := range q.Options {
			if len(o) > 0 && o[:1] == q.CorrectAnswer {
				found = true
			}
		}
		assert.True(t, found, "question %d answer %q", q.ID, q.CorrectAnswer)
	}
}

func TestMappingsUseKnownFields(t *testing.T) {
	known := map[models.CareerField]bool{}
	for _, f := range models.AllCareerFields {
		known[f] = true
	}
	for testType, table := range DefaultMappings() {
		for c, fields := range table {
			assert.NotEmpty(t, fields, "%s %s", testType, c)
			for _, f := range fields {
				assert.True(t, known[f], "%s %s -> %s", testType, c, f)
			}
		}
	}
	_, ok := InterestMapping()[models.InterestWorkEnvironment]
	assert.False(t, ok)
}

func TestDefaultCareers(t *testing.T) {
	careers := DefaultCareers()
	assert.Len(t, careers, 7)
	for f, c := range careers {
		assert.Equal(t, f, c.Field)
		assert.NotEmpty(t, c.Description, f)
		assert.NotEmpty(t, c.RelatedPrograms, f)
		assert.NotEmpty(t, c.Category, f)
	}
}
