package assessment

import (
	"fmt"
	"sort"
	"strings"

	"career-assessment-workers/internal/models"
)

// questionIndex is a per-test lookup built once at engine construction.
type questionIndex struct {
	testType  models.TestType
	byID      map[int]models.Question
	questions []models.Question
	counts    map[models.Category]int
	order     []models.Category
	sections  []models.Category
	skills    []models.Category
}

func newQuestionIndex(t models.TestType, questions []models.Question) (*questionIndex, error) {
	idx := &questionIndex{
		testType:  t,
		byID:      make(map[int]models.Question, len(questions)),
		questions: questions,
		counts:    make(map[models.Category]int),
	}
	seenSkill := make(map[models.Category]bool)

	for _, q := range questions {
		if q.TestType != t {
			return nil, configErrorf("question %d is filed under %s but declares %q", q.ID, t, q.TestType)
		}
		if q.ID <= 0 {
			return nil, configErrorf("%s question has non-positive id %d", t, q.ID)
		}
		if _, dup := idx.byID[q.ID]; dup {
			return nil, configErrorf("duplicate %s question id %d", t, q.ID)
		}
		if q.Category == "" {
			return nil, configErrorf("%s question %d has no category", t, q.ID)
		}
		if t == models.TestAptitude {
			if strings.TrimSpace(q.CorrectAnswer) == "" {
				return nil, configErrorf("aptitude question %d has no correct answer", q.ID)
			}
			if q.SkillType == "" {
				return nil, configErrorf("aptitude question %d has no skill type", q.ID)
			}
			if !seenSkill[q.SkillType] {
				seenSkill[q.SkillType] = true
				idx.skills = append(idx.skills, q.SkillType)
			}
		}

		idx.byID[q.ID] = q
		if idx.counts[q.Category] == 0 {
			idx.order = append(idx.order, q.Category)
		}
		idx.counts[q.Category]++
	}

	if len(questions) == 0 {
		return nil, configErrorf("%s catalog is empty", t)
	}
	if t == models.TestAptitude {
		idx.sections = idx.order
	}
	return idx, nil
}

// mappedCategories returns the categories whose scores feed the mapper.
func (idx *questionIndex) mappedCategories() []models.Category {
	switch idx.testType {
	case models.TestAptitude:
		return idx.skills
	case models.TestInterest:
		out := make([]models.Category, 0, len(idx.order))
		for _, c := range idx.order {
			if c != models.InterestWorkEnvironment {
				out = append(out, c)
			}
		}
		return out
	}
	return idx.order
}

func validateBatch(responses []models.Response) error {
	if responses == nil {
		return &ValidationError{Field: "responses", Reason: "must be a list"}
	}
	for i, r := range responses {
		if r.QuestionID <= 0 {
			return &ValidationError{
				Field:  fmt.Sprintf("responses[%d].questionId", i),
				Reason: "is required and must be positive",
			}
		}
	}
	return nil
}

// dedupe keeps one response per question. The last answer wins and the
// position of the first occurrence is kept.
func dedupe(responses []models.Response) []models.Response {
	pos := make(map[int]int, len(responses))
	out := make([]models.Response, 0, len(responses))
	for _, r := range responses {
		if i, ok := pos[r.QuestionID]; ok {
			out[i].Answer = r.Answer
			continue
		}
		pos[r.QuestionID] = len(out)
		out = append(out, r)
	}
	return out
}

func (e *Engine) scoreLikert(idx *questionIndex, responses []models.Response) (*models.TestResult, error) {
	raw := make(models.RawCategoryScores, len(idx.order))
	for _, c := range idx.order {
		raw[c] = 0
	}

	result := &models.TestResult{TestType: idx.testType}
	answered := make(map[int]bool, len(responses))

	for _, r := range dedupe(responses) {
		q, ok := idx.byID[r.QuestionID]
		if !ok {
			result.SkippedQuestionIDs = append(result.SkippedQuestionIDs, r.QuestionID)
			continue
		}
		value := AgreementValue(r.Answer)
		raw[q.Category] += float64(value)
		answered[q.ID] = true
		result.Answers = append(result.Answers, models.ScoredAnswer{
			QuestionID: r.QuestionID,
			Answer:     r.Answer,
			Score:      value,
		})
	}

	// The interest survey starts every item on Neutral.
	if idx.testType == models.TestInterest {
		for _, q := range idx.questions {
			if !answered[q.ID] {
				raw[q.Category] += NeutralScore
			}
		}
		result.WorkEnvironmentScore = raw[models.InterestWorkEnvironment]
		delete(raw, models.InterestWorkEnvironment)
	}

	normalized := make(models.NormalizedScores, len(raw))
	for _, c := range idx.mappedCategories() {
		normalized[c] = Normalize(raw[c], idx.counts[c], LikertMax)
	}

	vector, err := Project(e.mappings[idx.testType], normalized)
	if err != nil {
		return nil, err
	}

	result.RawScores = raw
	result.NormalizedScores = normalized
	result.CareerFields = vector
	if idx.testType == models.TestInterest {
		result.TopCategories = topCategories(normalized, interestTopCategories)
	}
	return result, nil
}

func (e *Engine) scoreAptitude(idx *questionIndex, responses []models.Response) (*models.TestResult, error) {
	sections := make(map[models.Category]models.Tally, len(idx.sections))
	for _, c := range idx.sections {
		sections[c] = models.Tally{}
	}
	skills := make(map[models.Category]models.Tally, len(idx.skills))
	for _, c := range idx.skills {
		skills[c] = models.Tally{}
	}

	result := &models.TestResult{TestType: models.TestAptitude}

	for _, r := range dedupe(responses) {
		q, ok := idx.byID[r.QuestionID]
		if !ok {
			result.SkippedQuestionIDs = append(result.SkippedQuestionIDs, r.QuestionID)
			continue
		}
		correct := strings.EqualFold(strings.TrimSpace(r.Answer), strings.TrimSpace(q.CorrectAnswer))

		section := sections[q.Category]
		skill := skills[q.SkillType]
		section.Total++
		skill.Total++
		score := 0
		if correct {
			section.Correct++
			skill.Correct++
			result.TotalCorrect++
			score = CorrectnessMax
		}
		sections[q.Category] = section
		skills[q.SkillType] = skill
		result.TotalQuestions++

		c := correct
		result.Answers = append(result.Answers, models.ScoredAnswer{
			QuestionID: r.QuestionID,
			Answer:     r.Answer,
			Score:      score,
			Correct:    &c,
		})
	}

	normalizedSections := make(models.NormalizedScores, len(sections))
	for c, t := range sections {
		normalizedSections[c] = Normalize(float64(t.Correct), t.Total, CorrectnessMax)
	}
	normalizedSkills := make(models.NormalizedScores, len(skills))
	raw := make(models.RawCategoryScores, len(skills))
	for c, t := range skills {
		normalizedSkills[c] = Normalize(float64(t.Correct), t.Total, CorrectnessMax)
		raw[c] = float64(t.Correct)
	}

	vector, err := Project(e.mappings[models.TestAptitude], normalizedSkills)
	if err != nil {
		return nil, err
	}

	result.SectionTallies = sections
	result.NormalizedSections = normalizedSections
	result.SkillTallies = skills
	result.NormalizedSkills = normalizedSkills
	result.RawScores = raw
	result.NormalizedScores = normalizedSkills
	result.CareerFields = vector
	return result, nil
}

const interestTopCategories = 3

// topCategories orders categories by score descending, then by name.
func topCategories(scores models.NormalizedScores, n int) []models.Category {
	out := make([]models.Category, 0, len(scores))
	for c := range scores {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if scores[out[i]] != scores[out[j]] {
			return scores[out[i]] > scores[out[j]]
		}
		return out[i] < out[j]
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
