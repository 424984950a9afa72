// internal/models/assessment.go
package models

import "time"

// TestType identifies one of the three assessment instruments.
type TestType string

const (
	TestPersonality TestType = "personality"
	TestAptitude    TestType = "aptitude"
	TestInterest    TestType = "interest"
)

// AllTestTypes lists the instruments in declaration order.
var AllTestTypes = []TestType{TestPersonality, TestAptitude, TestInterest}

func (t TestType) Valid() bool {
	switch t {
	case TestPersonality, TestAptitude, TestInterest:
		return true
	}
	return false
}

// Category is a trait, section, skill or interest grouping. Which values are
// legal depends on the test type.
type Category string

// Personality traits (RIASEC).
const (
	TraitRealistic     Category = "Realistic"
	TraitInvestigative Category = "Investigative"
	TraitArtistic      Category = "Artistic"
	TraitSocial        Category = "Social"
	TraitEnterprising  Category = "Enterprising"
	TraitConventional  Category = "Conventional"
)

// Aptitude display sections.
const (
	SectionLogical      Category = "Logical Reasoning"
	SectionMathematical Category = "Mathematical Ability"
	SectionVerbal       Category = "Verbal Ability"
	SectionAnalytical   Category = "Analytical Skills"
)

// Aptitude skills.
const (
	SkillLogical      Category = "logical"
	SkillMathematical Category = "mathematical"
	SkillVerbal       Category = "verbal"
	SkillAnalytical   Category = "analytical"
)

// Interest categories. WorkEnvironment is scored separately and never
// normalized.
const (
	InterestEngineering     Category = "engineering"
	InterestMedical         Category = "medical"
	InterestBusiness        Category = "business"
	InterestComputerScience Category = "computerScience"
	InterestArts            Category = "arts"
	InterestWorkEnvironment Category = "workEnvironment"
)

// CareerField is the unit every test is projected onto.
type CareerField string

const (
	FieldEngineering      CareerField = "Engineering"
	FieldTechnical        CareerField = "Technical"
	FieldConstruction     CareerField = "Construction"
	FieldManufacturing    CareerField = "Manufacturing"
	FieldMedical          CareerField = "Medical"
	FieldResearch         CareerField = "Research"
	FieldScience          CareerField = "Science"
	FieldLaboratory       CareerField = "Laboratory"
	FieldArts             CareerField = "Arts"
	FieldMedia            CareerField = "Media"
	FieldDesign           CareerField = "Design"
	FieldCreative         CareerField = "Creative"
	FieldTeaching         CareerField = "Teaching"
	FieldCounseling       CareerField = "Counseling"
	FieldHealthcare       CareerField = "Healthcare"
	FieldSocialWork       CareerField = "Social Work"
	FieldBusiness         CareerField = "Business"
	FieldManagement       CareerField = "Management"
	FieldSales            CareerField = "Sales"
	FieldEntrepreneurship CareerField = "Entrepreneurship"
	FieldAccounting       CareerField = "Accounting"
	FieldAdministration   CareerField = "Administration"
	FieldFinance          CareerField = "Finance"
	FieldDataEntry        CareerField = "Data Entry"
	FieldComputerScience  CareerField = "Computer Science"
	FieldMathematics      CareerField = "Mathematics"
	FieldEconomics        CareerField = "Economics"
	FieldLaw              CareerField = "Law"
	FieldSocialSciences   CareerField = "Social Sciences"
	FieldJournalism       CareerField = "Journalism"
	FieldDataScience      CareerField = "Data Science"
)

// AllCareerFields is the closed set of career fields.
var AllCareerFields = []CareerField{
	FieldEngineering, FieldTechnical, FieldConstruction, FieldManufacturing,
	FieldMedical, FieldResearch, FieldScience, FieldLaboratory,
	FieldArts, FieldMedia, FieldDesign, FieldCreative,
	FieldTeaching, FieldCounseling, FieldHealthcare, FieldSocialWork,
	FieldBusiness, FieldManagement, FieldSales, FieldEntrepreneurship,
	FieldAccounting, FieldAdministration, FieldFinance, FieldDataEntry,
	FieldComputerScience, FieldMathematics, FieldEconomics, FieldLaw,
	FieldSocialSciences, FieldJournalism, FieldDataScience,
}

// Question is immutable reference data owned by the question catalog.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"question"`
	TestType      TestType `json:"testType"`
	Category      Category `json:"category"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	SkillType     Category `json:"skillType,omitempty"`
}

// Response is one answer in a submitted batch.
type Response struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

// ScoredAnswer is a response after scoring, kept for review.
type ScoredAnswer struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
	Correct    *bool  `json:"correct,omitempty"`
}

// Tally counts correct answers over answered questions.
type Tally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type RawCategoryScores map[Category]float64

type NormalizedScores map[Category]int

type CareerFieldVector map[CareerField]float64

// TestResult is the outcome of scoring one submission.
type TestResult struct {
	TestType         TestType          `json:"testType"`
	RawScores        RawCategoryScores `json:"rawScores"`
	NormalizedScores NormalizedScores  `json:"normalizedScores"`
	CareerFields     CareerFieldVector `json:"careerFieldVector"`
	Answers          []ScoredAnswer    `json:"answers,omitempty"`

	// Aptitude only.
	SectionTallies     map[Category]Tally `json:"sectionScores,omitempty"`
	NormalizedSections NormalizedScores   `json:"normalizedSectionScores,omitempty"`
	SkillTallies       map[Category]Tally `json:"skillScores,omitempty"`
	NormalizedSkills   NormalizedScores   `json:"normalizedSkillScores,omitempty"`
	TotalCorrect       int                `json:"totalCorrect,omitempty"`
	TotalQuestions     int                `json:"totalQuestions,omitempty"`

	// Interest only.
	WorkEnvironmentScore float64    `json:"workEnvironmentScore,omitempty"`
	TopCategories        []Category `json:"topCategories,omitempty"`

	SkippedQuestionIDs []int     `json:"skippedQuestionIds,omitempty"`
	ScoredAt           time.Time `json:"scoredAt"`
}

// TestWeights are the per-test aggregation weights.
type TestWeights struct {
	Personality float64 `json:"personality" mapstructure:"personality"`
	Aptitude    float64 `json:"aptitude" mapstructure:"aptitude"`
	Interest    float64 `json:"interest" mapstructure:"interest"`
}

// Specialization is a concrete career inside a field.
type Specialization struct {
	Career          string   `json:"career"`
	Description     string   `json:"description"`
	RelatedPrograms []string `json:"relatedPrograms"`
}

// CareerRecommendation is one ranked entry of an aggregated result.
type CareerRecommendation struct {
	Career          CareerField      `json:"career"`
	Score           float64          `json:"score"`
	Description     string           `json:"description"`
	RelatedPrograms []string         `json:"relatedPrograms"`
	Category        string           `json:"category"`
	Specializations []Specialization `json:"specializations,omitempty"`
}

// AggregatedResult combines the three tests into a ranked list.
type AggregatedResult struct {
	FinalCareerScores     CareerFieldVector      `json:"finalCareerScores"`
	TopCareers            []CareerRecommendation `json:"topCareers"`
	TestWeights           TestWeights            `json:"testWeights"`
	RuleBasedEnhancements []string               `json:"ruleBasedEnhancements"`
	AggregatedAt          time.Time              `json:"aggregatedAt"`
}

// AssessmentProgress is the per-individual record passed into and returned
// from every state transition.
type AssessmentProgress struct {
	IndividualID     string            `json:"individualId"`
	PersonalityDone  bool              `json:"personalityDone"`
	AptitudeDone     bool              `json:"aptitudeDone"`
	InterestDone     bool              `json:"interestDone"`
	Personality      *TestResult       `json:"personalityResult,omitempty"`
	Aptitude         *TestResult       `json:"aptitudeResult,omitempty"`
	Interest         *TestResult       `json:"interestResult,omitempty"`
	Aggregated       *AggregatedResult `json:"aggregatedResult,omitempty"`
	AggregationStale bool              `json:"aggregationStale"`
	Version          int64             `json:"version"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// AllCompleted reports whether all three tests are done.
func (p *AssessmentProgress) AllCompleted() bool {
	return p.PersonalityDone && p.AptitudeDone && p.InterestDone
}

// Done reports the completion flag of a single test.
func (p *AssessmentProgress) Done(t TestType) bool {
	switch t {
	case TestPersonality:
		return p.PersonalityDone
	case TestAptitude:
		return p.AptitudeDone
	case TestInterest:
		return p.InterestDone
	}
	return false
}

// Result returns the stored result of a single test, nil when absent.
func (p *AssessmentProgress) Result(t TestType) *TestResult {
	switch t {
	case TestPersonality:
		return p.Personality
	case TestAptitude:
		return p.Aptitude
	case TestInterest:
		return p.Interest
	}
	return nil
}

// Missing lists the tests that are not yet done, in declaration order.
func (p *AssessmentProgress) Missing() []TestType {
	var missing []TestType
	for _, t := range AllTestTypes {
		if !p.Done(t) {
			missing = append(missing, t)
		}
	}
	return missing
}

// Submission is the raw batch as received, kept for review.
type Submission struct {
	ID                 string     `json:"id"`
	IndividualID       string     `json:"individualId"`
	TestType           TestType   `json:"testType"`
	Responses          []Response `json:"responses"`
	SkippedQuestionIDs []int      `json:"skippedQuestionIds,omitempty"`
	SubmittedAt        time.Time  `json:"submittedAt"`
}
