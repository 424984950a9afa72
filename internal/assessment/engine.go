package assessment

import (
	"career-assessment-workers/internal/catalog"
	"career-assessment-workers/internal/models"
)

// EngineConfig is the static configuration of the engine. Everything in it
// is checked once by NewEngine.
type EngineConfig struct {
	Questions map[models.TestType][]models.Question
	Mappings  catalog.Mappings
	Weights   models.TestWeights
	Rules     []Rule
	Careers   catalog.CareerCatalog
	TopN      int
}

// DefaultConfig returns the built-in catalog, tables, weights and rules.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Questions: catalog.Questions(),
		Mappings:  catalog.DefaultMappings(),
		Weights:   DefaultWeights(),
		Rules:     DefaultRules(),
		Careers:   catalog.DefaultCareers(),
		TopN:      DefaultTopN,
	}
}

// Engine scores, maps and aggregates. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	indexes  map[models.TestType]*questionIndex
	mappings catalog.Mappings
	weights  models.TestWeights
	rules    []Rule
	careers  catalog.CareerCatalog
	topN     int
}

// NewEngine validates cfg and builds the per-test lookups.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	known := make(map[models.CareerField]bool, len(models.AllCareerFields))
	for _, f := range models.AllCareerFields {
		known[f] = true
	}

	e := &Engine{
		indexes:  make(map[models.TestType]*questionIndex, len(models.AllTestTypes)),
		mappings: cfg.Mappings,
		weights:  cfg.Weights,
		rules:    cfg.Rules,
		careers:  cfg.Careers,
		topN:     cfg.TopN,
	}

	for _, t := range models.AllTestTypes {
		idx, err := newQuestionIndex(t, cfg.Questions[t])
		if err != nil {
			return nil, err
		}
		if err := validateMapping(t, cfg.Mappings[t], idx.mappedCategories(), known); err != nil {
			return nil, err
		}
		e.indexes[t] = idx
	}

	if err := ValidateWeights(cfg.Weights); err != nil {
		return nil, err
	}

	names := make(map[string]bool, len(cfg.Rules))
	for i, r := range cfg.Rules {
		if r.Name == "" {
			return nil, configErrorf("rule %d has no name", i)
		}
		if r.Evaluate == nil {
			return nil, configErrorf("rule %q has no evaluator", r.Name)
		}
		if names[r.Name] {
			return nil, configErrorf("duplicate rule %q", r.Name)
		}
		names[r.Name] = true
	}

	if len(cfg.Careers) == 0 {
		return nil, configErrorf("career catalog is empty")
	}
	for f, c := range cfg.Careers {
		if !known[f] {
			return nil, configErrorf("career catalog lists unknown field %q", f)
		}
		if c.Field != "" && c.Field != f {
			return nil, configErrorf("career catalog entry %q declares field %q", f, c.Field)
		}
	}

	return e, nil
}

// ScoreTest scores one batch. Unknown question ids are skipped and listed on
// the result; a malformed batch fails as a whole.
func (e *Engine) ScoreTest(t models.TestType, responses []models.Response) (*models.TestResult, error) {
	if !t.Valid() {
		return nil, &ValidationError{Field: "testType", Reason: "must be one of personality, aptitude, interest"}
	}
	if err := validateBatch(responses); err != nil {
		return nil, err
	}
	idx := e.indexes[t]
	if t == models.TestAptitude {
		return e.scoreAptitude(idx, responses)
	}
	return e.scoreLikert(idx, responses)
}

// Aggregate combines three results into the weighted, rule-adjusted and
// ranked recommendation list.
func (e *Engine) Aggregate(p, a, i *models.TestResult) (*models.AggregatedResult, error) {
	result, _, err := e.aggregate(p, a, i)
	return result, err
}

func (e *Engine) aggregate(p, a, i *models.TestResult) (*models.AggregatedResult, []string, error) {
	inputs := map[models.TestType]*models.TestResult{
		models.TestPersonality: p,
		models.TestAptitude:    a,
		models.TestInterest:    i,
	}
	var missing []models.TestType
	for _, t := range models.AllTestTypes {
		if inputs[t] == nil {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &NotReadyError{Missing: missing}
	}

	vectors := make(map[models.TestType]models.CareerFieldVector, len(inputs))
	for _, t := range models.AllTestTypes {
		r := inputs[t]
		if r.TestType != t {
			return nil, nil, &ValidationError{Field: string(t), Reason: "result is for test " + string(r.TestType)}
		}
		scores := r.NormalizedScores
		if t == models.TestAptitude && r.NormalizedSkills != nil {
			scores = r.NormalizedSkills
		}
		vec, err := Project(e.mappings[t], scores)
		if err != nil {
			return nil, nil, err
		}
		vectors[t] = vec
	}

	base := Combine(vectors, e.weights)
	rc := RuleContext{
		Personality:      p.NormalizedScores,
		AptitudeSkills:   a.NormalizedSkills,
		AptitudeSections: a.NormalizedSections,
		Interest:         i.NormalizedScores,
	}
	if rc.AptitudeSkills == nil {
		rc.AptitudeSkills = a.NormalizedScores
	}
	final, explanations, fired := ApplyRules(e.rules, rc, base)

	return &models.AggregatedResult{
		FinalCareerScores:     final,
		TopCareers:            Rank(final, e.careers, e.topN),
		TestWeights:           e.weights,
		RuleBasedEnhancements: explanations,
	}, fired, nil
}

// Questions returns a copy of the catalog for t.
func (e *Engine) Questions(t models.TestType) []models.Question {
	idx, ok := e.indexes[t]
	if !ok {
		return nil
	}
	return append([]models.Question(nil), idx.questions...)
}

func (e *Engine) Weights() models.TestWeights { return e.weights }

func (e *Engine) TopN() int { return e.topN }
