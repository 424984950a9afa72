package assessment

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-assessment-workers/internal/catalog"
	"career-assessment-workers/internal/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	return e
}

func allAnswers(questions []models.Question, answer string) []models.Response {
	out := make([]models.Response, 0, len(questions))
	for _, q := range questions {
		out = append(out, models.Response{QuestionID: q.ID, Answer: answer})
	}
	return out
}

func allCorrect(questions []models.Question) []models.Response {
	out := make([]models.Response, 0, len(questions))
	for _, q := range questions {
		out = append(out, models.Response{QuestionID: q.ID, Answer: q.CorrectAnswer})
	}
	return out
}

// ==========================================
// Normalization
// ==========================================

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		count    int
		scaleMax int
		want     int
	}{
		{"two answers of six", 9, 6, 5, 30},
		{"full marks", 30, 6, 5, 100},
		{"half rounds away from zero", 1, 8, 1, 13},
		{"zero count", 12, 0, 5, 0},
		{"zero scale", 12, 6, 0, 0},
		{"over max is clamped", 50, 6, 5, 100},
		{"negative is clamped", -3, 6, 5, 0},
		{"NaN", math.NaN(), 6, 5, 0},
		{"aptitude all correct", 3, 3, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, tt.count, tt.scaleMax))
		})
	}
}

func TestNormalizeBounds(t *testing.T) {
	for count := 0; count <= 10; count++ {
		for raw := -5.0; raw <= 60; raw += 0.5 {
			got := Normalize(raw, count, LikertMax)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}

func TestAgreementValue(t *testing.T) {
	tests := map[string]int{
		"Strongly Agree":      5,
		"agree":               4,
		" Neutral ":           3,
		"DISAGREE":            2,
		"Strongly Disagree":   1,
		"":                    3,
		"maybe":               3,
		"strongly   disagree": 3,
	}
	for in, want := range tests {
		assert.Equal(t, want, AgreementValue(in), in)
	}
}

// ==========================================
// Scoring
// ==========================================

func TestScorePersonality_PartialTrait(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.ScoreTest(models.TestPersonality, []models.Response{
		{QuestionID: 1, Answer: "Strongly Agree"},
		{QuestionID: 2, Answer: "Agree"},
	})
	require.NoError(t, err)

	assert.Equal(t, 9.0, result.RawScores[models.TraitRealistic])
	assert.Equal(t, 30, result.NormalizedScores[models.TraitRealistic])
	assert.Equal(t, 0, result.NormalizedScores[models.TraitSocial])
	assert.Len(t, result.NormalizedScores, 6)

	for _, f := range []models.CareerField{models.FieldEngineering, models.FieldTechnical, models.FieldConstruction, models.FieldManufacturing} {
		assert.Equal(t, 30.0, result.CareerFields[f], f)
	}
	assert.Equal(t, 0.0, result.CareerFields[models.FieldMedical])
	require.Len(t, result.Answers, 2)
	assert.Equal(t, 5, result.Answers[0].Score)
	assert.Nil(t, result.Answers[0].Correct)
	assert.True(t, result.ScoredAt.IsZero())
}

func TestScoreAptitude_AllSectionsCorrect(t *testing.T) {
	e := newTestEngine(t)

	// two logical, one mathematical, one verbal, two analytical
	result, err := e.ScoreTest(models.TestAptitude, []models.Response{
		{QuestionID: 1, Answer: "D"},
		{QuestionID: 2, Answer: "b"},
		{QuestionID: 11, Answer: "B"},
		{QuestionID: 21, Answer: " B "},
		{QuestionID: 31, Answer: "B"},
		{QuestionID: 32, Answer: "C"},
	})
	require.NoError(t, err)

	for _, s := range []models.Category{models.SectionLogical, models.SectionMathematical, models.SectionVerbal, models.SectionAnalytical} {
		assert.Equal(t, 100, result.NormalizedSections[s], s)
	}
	for _, s := range []models.Category{models.SkillLogical, models.SkillMathematical, models.SkillVerbal, models.SkillAnalytical} {
		assert.Equal(t, 100, result.NormalizedSkills[s], s)
	}
	assert.Equal(t, models.Tally{Correct: 2, Total: 2}, result.SectionTallies[models.SectionLogical])
	assert.Equal(t, 6, result.TotalCorrect)
	assert.Equal(t, 6, result.TotalQuestions)
	assert.Equal(t, result.NormalizedSkills, result.NormalizedScores)
	assert.Equal(t, 300.0, result.CareerFields[models.FieldEngineering])
	assert.Equal(t, 300.0, result.CareerFields[models.FieldComputerScience])
}

func TestScoreAptitude_WrongAndUnknown(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.ScoreTest(models.TestAptitude, []models.Response{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 3, Answer: "D"},
		{QuestionID: 999, Answer: "A"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.Tally{Correct: 1, Total: 2}, result.SkillTallies[models.SkillLogical])
	assert.Equal(t, 50, result.NormalizedSkills[models.SkillLogical])
	assert.Equal(t, 0, result.NormalizedSkills[models.SkillVerbal])
	assert.Equal(t, models.Tally{}, result.SectionTallies[models.SectionVerbal])
	assert.Equal(t, 1, result.TotalCorrect)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, []int{999}, result.SkippedQuestionIDs)

	require.Len(t, result.Answers, 2)
	require.NotNil(t, result.Answers[0].Correct)
	assert.False(t, *result.Answers[0].Correct)
	assert.True(t, *result.Answers[1].Correct)

	refs := UnknownReferences(result)
	require.Len(t, refs, 1)
	assert.Equal(t, "unknown aptitude question 999", refs[0].Error())
}

func TestScoreAptitude_Monotonic(t *testing.T) {
	e := newTestEngine(t)
	questions := e.Questions(models.TestAptitude)

	responses := allAnswers(questions, "Z")
	prev, err := e.ScoreTest(models.TestAptitude, responses)
	require.NoError(t, err)

	for i, q := range questions {
		responses[i].Answer = q.CorrectAnswer
		next, err := e.ScoreTest(models.TestAptitude, responses)
		require.NoError(t, err)

		for skill, score := range prev.NormalizedSkills {
			assert.GreaterOrEqual(t, next.NormalizedSkills[skill], score, "question %d skill %s", q.ID, skill)
		}
		for f, v := range prev.CareerFields {
			assert.GreaterOrEqual(t, next.CareerFields[f], v)
		}
		prev = next
	}
	assert.Equal(t, 40, prev.TotalCorrect)
}

func TestScoreInterest_NeutralDefaults(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.ScoreTest(models.TestInterest, []models.Response{})
	require.NoError(t, err)

	for _, c := range []models.Category{models.InterestEngineering, models.InterestMedical, models.InterestBusiness, models.InterestComputerScience, models.InterestArts} {
		assert.Equal(t, 18.0, result.RawScores[c], c)
		assert.Equal(t, 60, result.NormalizedScores[c], c)
	}
	_, hasWorkEnv := result.NormalizedScores[models.InterestWorkEnvironment]
	assert.False(t, hasWorkEnv)
	_, hasWorkEnvRaw := result.RawScores[models.InterestWorkEnvironment]
	assert.False(t, hasWorkEnvRaw)
	assert.Equal(t, 18.0, result.WorkEnvironmentScore)
	assert.Equal(t, []models.Category{models.InterestArts, models.InterestBusiness, models.InterestComputerScience}, result.TopCategories)
	assert.Equal(t, 60.0, result.CareerFields[models.FieldEngineering])
}

func TestScoreInterest_WorkEnvironmentAndTop(t *testing.T) {
	e := newTestEngine(t)

	responses := []models.Response{{QuestionID: 31, Answer: "Strongly Agree"}, {QuestionID: 32, Answer: "Strongly Disagree"}}
	for id := 19; id <= 24; id++ {
		responses = append(responses, models.Response{QuestionID: id, Answer: "Strongly Agree"})
	}
	for id := 7; id <= 12; id++ {
		responses = append(responses, models.Response{QuestionID: id, Answer: "Agree"})
	}

	result, err := e.ScoreTest(models.TestInterest, responses)
	require.NoError(t, err)

	assert.Equal(t, 5+1+4*3.0, result.WorkEnvironmentScore)
	assert.Equal(t, 100, result.NormalizedScores[models.InterestComputerScience])
	assert.Equal(t, 80, result.NormalizedScores[models.InterestMedical])
	assert.Equal(t, []models.Category{models.InterestComputerScience, models.InterestMedical, models.InterestArts}, result.TopCategories)
}

func TestScoreTest_Dedupe(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.ScoreTest(models.TestPersonality, []models.Response{
		{QuestionID: 1, Answer: "Strongly Disagree"},
		{QuestionID: 2, Answer: "Agree"},
		{QuestionID: 1, Answer: "Strongly Agree"},
	})
	require.NoError(t, err)

	assert.Equal(t, 9.0, result.RawScores[models.TraitRealistic])
	require.Len(t, result.Answers, 2)
	assert.Equal(t, 1, result.Answers[0].QuestionID)
	assert.Equal(t, "Strongly Agree", result.Answers[0].Answer)
}

func TestScoreTest_Rejections(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name      string
		testType  models.TestType
		responses []models.Response
		field     string
	}{
		{"nil batch", models.TestPersonality, nil, "responses"},
		{"unknown test type", models.TestType("memory"), []models.Response{}, "testType"},
		{"missing question id", models.TestAptitude, []models.Response{{QuestionID: 1, Answer: "D"}, {Answer: "B"}}, "responses[1].questionId"},
		{"negative question id", models.TestInterest, []models.Response{{QuestionID: -4, Answer: "Agree"}}, "responses[0].questionId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := e.ScoreTest(tt.testType, tt.responses)
			assert.Nil(t, result)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestScoreTest_Deterministic(t *testing.T) {
	e := newTestEngine(t)
	responses := []models.Response{
		{QuestionID: 3, Answer: "agree"},
		{QuestionID: 14, Answer: "Strongly Agree"},
		{QuestionID: 27, Answer: "Disagree"},
		{QuestionID: 500, Answer: "Agree"},
	}

	first, err := e.ScoreTest(models.TestPersonality, responses)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := e.ScoreTest(models.TestPersonality, responses)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// ==========================================
// Mapping and aggregation
// ==========================================

func TestProject_SumsContributions(t *testing.T) {
	vec, err := Project(catalog.AptitudeMapping(), models.NormalizedScores{
		models.SkillLogical:      80,
		models.SkillMathematical: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, 140.0, vec[models.FieldEngineering])
	assert.Equal(t, 140.0, vec[models.FieldMathematics])
	assert.Equal(t, 60.0, vec[models.FieldFinance])

	_, err = Project(catalog.InterestMapping(), models.NormalizedScores{models.InterestWorkEnvironment: 50})
	var cerr *ConfigurationError
	assert.True(t, errors.As(err, &cerr))
}

func TestCombine_WeightedSum(t *testing.T) {
	vectors := map[models.TestType]models.CareerFieldVector{
		models.TestPersonality: {models.FieldEngineering: 80},
		models.TestAptitude:    {models.FieldEngineering: 90, models.FieldFinance: 50},
		models.TestInterest:    {models.FieldEngineering: 75},
	}
	final := Combine(vectors, DefaultWeights())

	assert.InDelta(t, 82.5, final[models.FieldEngineering], 1e-9)
	assert.InDelta(t, 20.0, final[models.FieldFinance], 1e-9)
	assert.Len(t, final, 2)
}

func TestCombine_WeightConservation(t *testing.T) {
	weights := []models.TestWeights{
		DefaultWeights(),
		{Personality: 1, Aptitude: 0, Interest: 0},
		{Personality: 0.2, Aptitude: 0.5, Interest: 0.3},
	}
	for _, w := range weights {
		require.NoError(t, ValidateWeights(w))
		uniform := models.CareerFieldVector{models.FieldArts: 64, models.FieldLaw: 12}
		final := Combine(map[models.TestType]models.CareerFieldVector{
			models.TestPersonality: uniform,
			models.TestAptitude:    uniform,
			models.TestInterest:    uniform,
		}, w)
		assert.InDelta(t, 64.0, final[models.FieldArts], 1e-9)
		assert.InDelta(t, 12.0, final[models.FieldLaw], 1e-9)
	}
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights models.TestWeights
		wantErr bool
	}{
		{"default", DefaultWeights(), false},
		{"sum too low", models.TestWeights{Personality: 0.3, Aptitude: 0.3, Interest: 0.3}, true},
		{"sum too high", models.TestWeights{Personality: 0.5, Aptitude: 0.5, Interest: 0.1}, true},
		{"negative", models.TestWeights{Personality: -0.2, Aptitude: 0.8, Interest: 0.4}, true},
		{"all zero", models.TestWeights{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeights(tt.weights)
			if tt.wantErr {
				var cerr *ConfigurationError
				assert.True(t, errors.As(err, &cerr))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAggregate_MissingInterest(t *testing.T) {
	e := newTestEngine(t)
	p, err := e.ScoreTest(models.TestPersonality, []models.Response{{QuestionID: 1, Answer: "Agree"}})
	require.NoError(t, err)
	a, err := e.ScoreTest(models.TestAptitude, []models.Response{{QuestionID: 1, Answer: "D"}})
	require.NoError(t, err)

	result, err := e.Aggregate(p, a, nil)
	assert.Nil(t, result)

	var nerr *NotReadyError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, []models.TestType{models.TestInterest}, nerr.Missing)
	assert.Contains(t, err.Error(), "interest")
}

func TestAggregate_MismatchedResult(t *testing.T) {
	e := newTestEngine(t)
	p, err := e.ScoreTest(models.TestPersonality, []models.Response{})
	require.NoError(t, err)

	_, err = e.Aggregate(p, p, p)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestAggregate_FullMarks(t *testing.T) {
	e := newTestEngine(t)

	p, err := e.ScoreTest(models.TestPersonality, allAnswers(e.Questions(models.TestPersonality), "Strongly Agree"))
	require.NoError(t, err)
	a, err := e.ScoreTest(models.TestAptitude, allCorrect(e.Questions(models.TestAptitude)))
	require.NoError(t, err)
	i, err := e.ScoreTest(models.TestInterest, allAnswers(e.Questions(models.TestInterest), "Strongly Agree"))
	require.NoError(t, err)

	result, err := e.Aggregate(p, a, i)
	require.NoError(t, err)

	want := []struct {
		field models.CareerField
		score float64
	}{
		{models.FieldEngineering, 200},
		{models.FieldComputerScience, 150},
		{models.FieldBusiness, 110},
		{models.FieldFinance, 80},
		{models.FieldArts, 70},
		{models.FieldMedical, 60},
		{models.FieldTeaching, 30},
	}
	require.Len(t, result.TopCareers, len(want))
	for k, w := range want {
		assert.Equal(t, w.field, result.TopCareers[k].Career)
		assert.InDelta(t, w.score, result.TopCareers[k].Score, 1e-9)
	}
	assert.NotEmpty(t, result.TopCareers[0].Description)
	assert.NotEmpty(t, result.TopCareers[0].Specializations)

	assert.Len(t, result.RuleBasedEnhancements, 5)
	assert.Equal(t, "High logical and analytical skills → Engineering boost", result.RuleBasedEnhancements[0])
	assert.Equal(t, DefaultWeights(), result.TestWeights)

	again, err := e.Aggregate(p, a, i)
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestAggregate_IsPureFunctionOfNormalizedScores(t *testing.T) {
	e := newTestEngine(t)

	p, _ := e.ScoreTest(models.TestPersonality, allAnswers(e.Questions(models.TestPersonality), "Agree"))
	a, _ := e.ScoreTest(models.TestAptitude, allCorrect(e.Questions(models.TestAptitude)))
	i, _ := e.ScoreTest(models.TestInterest, []models.Response{})

	base, err := e.Aggregate(p, a, i)
	require.NoError(t, err)

	// vectors stored on the results are recomputed, not trusted
	tampered := *p
	tampered.CareerFields = models.CareerFieldVector{models.FieldLaw: 1e6}
	tampered.RawScores = nil
	again, err := e.Aggregate(&tampered, a, i)
	require.NoError(t, err)
	assert.Equal(t, base.FinalCareerScores, again.FinalCareerScores)
}

// ==========================================
// Rules and ranking
// ==========================================

func TestDefaultRules_FireIndividually(t *testing.T) {
	tests := []struct {
		name  string
		rc    RuleContext
		field models.CareerField
		rule  string
	}{
		{
			name:  "logical and analytical",
			rc:    RuleContext{AptitudeSkills: models.NormalizedScores{models.SkillLogical: 70, models.SkillAnalytical: 75}},
			field: models.FieldEngineering,
			rule:  "engineering-logic",
		},
		{
			name:  "artistic and social",
			rc:    RuleContext{Personality: models.NormalizedScores{models.TraitArtistic: 90, models.TraitSocial: 70}},
			field: models.FieldArts,
			rule:  "arts-creative",
		},
		{
			name:  "mathematical and analytical",
			rc:    RuleContext{AptitudeSkills: models.NormalizedScores{models.SkillMathematical: 70, models.SkillAnalytical: 70, models.SkillLogical: 10}},
			field: models.FieldFinance,
			rule:  "finance-quantitative",
		},
		{
			name:  "social and enterprising",
			rc:    RuleContext{Personality: models.NormalizedScores{models.TraitSocial: 70, models.TraitEnterprising: 71, models.TraitArtistic: 20}},
			field: models.FieldBusiness,
			rule:  "business-social",
		},
		{
			name: "mathematical skill and engineering interest",
			rc: RuleContext{
				AptitudeSkills: models.NormalizedScores{models.SkillMathematical: 85},
				Interest:       models.NormalizedScores{models.InterestEngineering: 70},
			},
			field: models.FieldEngineering,
			rule:  "engineering-interest",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := models.CareerFieldVector{tt.field: 40}
			scores, explanations, fired := ApplyRules(DefaultRules(), tt.rc, base)

			assert.Equal(t, []string{tt.rule}, fired)
			assert.Len(t, explanations, 1)
			assert.Equal(t, 50.0, scores[tt.field])
			assert.Equal(t, 40.0, base[tt.field])
		})
	}
}

func TestApplyRules_BelowThreshold(t *testing.T) {
	rc := RuleContext{
		AptitudeSkills: models.NormalizedScores{models.SkillLogical: 69, models.SkillAnalytical: 100, models.SkillMathematical: 84},
		Interest:       models.NormalizedScores{models.InterestEngineering: 100},
	}
	scores, explanations, fired := ApplyRules(DefaultRules(), rc, models.CareerFieldVector{models.FieldEngineering: 10})

	assert.Equal(t, []string{"finance-quantitative"}, fired)
	assert.Equal(t, 10.0, scores[models.FieldEngineering])
	assert.Equal(t, 10.0, scores[models.FieldFinance])
	assert.Len(t, explanations, 1)
}

func TestApplyRules_FoldSeesEarlierAdjustments(t *testing.T) {
	var seen float64
	rules := []Rule{
		BonusRule("first", models.FieldLaw, 5, "first"),
		{
			Name: "second",
			Evaluate: func(rc RuleContext) (Adjustment, bool) {
				seen = rc.Scores[models.FieldLaw]
				return Adjustment{}, false
			},
		},
	}
	_, explanations, _ := ApplyRules(rules, RuleContext{}, models.CareerFieldVector{models.FieldLaw: 1})
	assert.Equal(t, 6.0, seen)
	assert.Equal(t, []string{"first"}, explanations)
}

func TestRank(t *testing.T) {
	careers := catalog.DefaultCareers()
	scores := models.CareerFieldVector{
		models.FieldMedical:     50,
		models.FieldArts:        50,
		models.FieldBusiness:    50,
		models.FieldEngineering: 90,
		models.FieldLaw:         99, // not in the catalog
		models.FieldTeaching:    10,
	}

	tests := []struct {
		name string
		topN int
		want []models.CareerField
	}{
		{"ties by name", 0, []models.CareerField{models.FieldEngineering, models.FieldArts, models.FieldBusiness, models.FieldMedical, models.FieldTeaching}},
		{"top two", 2, []models.CareerField{models.FieldEngineering, models.FieldArts}},
		{"negative means all", -1, []models.CareerField{models.FieldEngineering, models.FieldArts, models.FieldBusiness, models.FieldMedical, models.FieldTeaching}},
		{"more than available", 20, []models.CareerField{models.FieldEngineering, models.FieldArts, models.FieldBusiness, models.FieldMedical, models.FieldTeaching}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for run := 0; run < 5; run++ {
				ranked := Rank(scores, careers, tt.topN)
				got := make([]models.CareerField, len(ranked))
				for i, r := range ranked {
					got[i] = r.Career
				}
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRank_CopiesCatalogSlices(t *testing.T) {
	careers := catalog.DefaultCareers()
	ranked := Rank(models.CareerFieldVector{models.FieldArts: 1}, careers, 1)
	require.Len(t, ranked, 1)

	ranked[0].RelatedPrograms[0] = "changed"
	assert.NotEqual(t, "changed", careers[models.FieldArts].RelatedPrograms[0])
}

// ==========================================
// Engine construction
// ==========================================

func TestNewEngine_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *EngineConfig)
	}{
		{"bad weights", func(cfg *EngineConfig) { cfg.Weights.Interest = 0.5 }},
		{"missing mapping entry", func(cfg *EngineConfig) {
			table := catalog.PersonalityMapping()
			delete(table, models.TraitSocial)
			cfg.Mappings[models.TestPersonality] = table
		}},
		{"missing mapping table", func(cfg *EngineConfig) { delete(cfg.Mappings, models.TestInterest) }},
		{"mapping to unknown field", func(cfg *EngineConfig) {
			cfg.Mappings[models.TestInterest][models.InterestArts] = []models.CareerField{"Astrology"}
		}},
		{"empty catalog", func(cfg *EngineConfig) { cfg.Questions[models.TestAptitude] = nil }},
		{"duplicate question", func(cfg *EngineConfig) {
			qs := cfg.Questions[models.TestPersonality]
			cfg.Questions[models.TestPersonality] = append(qs, qs[0])
		}},
		{"question filed under wrong test", func(cfg *EngineConfig) {
			cfg.Questions[models.TestInterest][0].TestType = models.TestPersonality
		}},
		{"aptitude question without answer", func(cfg *EngineConfig) {
			cfg.Questions[models.TestAptitude][3].CorrectAnswer = ""
		}},
		{"unnamed rule", func(cfg *EngineConfig) { cfg.Rules = append(cfg.Rules, Rule{Evaluate: DefaultRules()[0].Evaluate}) }},
		{"duplicate rule", func(cfg *EngineConfig) { cfg.Rules = append(cfg.Rules, DefaultRules()[0]) }},
		{"empty careers", func(cfg *EngineConfig) { cfg.Careers = catalog.CareerCatalog{} }},
		{"career field mismatch", func(cfg *EngineConfig) {
			c := cfg.Careers[models.FieldArts]
			c.Field = models.FieldMedia
			cfg.Careers[models.FieldArts] = c
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			e, err := NewEngine(cfg)
			assert.Nil(t, e)
			var cerr *ConfigurationError
			assert.True(t, errors.As(err, &cerr), "got %v", err)
		})
	}
}

func TestEngine_QuestionsIsACopy(t *testing.T) {
	e := newTestEngine(t)
	qs := e.Questions(models.TestAptitude)
	require.Len(t, qs, 40)
	qs[0].CorrectAnswer = "A"

	result, err := e.ScoreTest(models.TestAptitude, []models.Response{{QuestionID: 1, Answer: "D"}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCorrect)
	assert.Nil(t, e.Questions(models.TestType("memory")))
}
