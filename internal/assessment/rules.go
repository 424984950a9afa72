package assessment

import "career-assessment-workers/internal/models"

const defaultBonus = 10.0

// RuleContext is the read-only input of every rule. Scores holds the
// weighted vector as adjusted by the rules that ran before.
type RuleContext struct {
	Personality      models.NormalizedScores
	AptitudeSkills   models.NormalizedScores
	AptitudeSections models.NormalizedScores
	Interest         models.NormalizedScores
	Scores           models.CareerFieldVector
}

// Adjustment is the effect of a fired rule.
type Adjustment struct {
	Field       models.CareerField
	Delta       float64
	Explanation string
}

// Rule is one named adjustment evaluated in list order.
type Rule struct {
	Name     string
	Evaluate func(RuleContext) (Adjustment, bool)
}

// Condition is a single threshold check used by BonusRule.
type Condition func(RuleContext) bool

func PersonalityAtLeast(trait models.Category, min int) Condition {
	return func(rc RuleContext) bool { return rc.Personality[trait] >= min }
}

func SkillAtLeast(skill models.Category, min int) Condition {
	return func(rc RuleContext) bool { return rc.AptitudeSkills[skill] >= min }
}

func InterestAtLeast(category models.Category, min int) Condition {
	return func(rc RuleContext) bool { return rc.Interest[category] >= min }
}

// BonusRule fires when every condition holds and adds bonus to field.
func BonusRule(name string, field models.CareerField, bonus float64, explanation string, conds ...Condition) Rule {
	return Rule{
		Name: name,
		Evaluate: func(rc RuleContext) (Adjustment, bool) {
			for _, c := range conds {
				if !c(rc) {
					return Adjustment{}, false
				}
			}
			return Adjustment{Field: field, Delta: bonus, Explanation: explanation}, true
		},
	}
}

// DefaultRules returns the built-in boosts in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		BonusRule("engineering-logic", models.FieldEngineering, defaultBonus,
			"High logical and analytical skills → Engineering boost",
			SkillAtLeast(models.SkillLogical, 70), SkillAtLeast(models.SkillAnalytical, 70)),
		BonusRule("arts-creative", models.FieldArts, defaultBonus,
			"High creative and communication skills → Media/Arts boost",
			PersonalityAtLeast(models.TraitArtistic, 70), PersonalityAtLeast(models.TraitSocial, 70)),
		BonusRule("finance-quantitative", models.FieldFinance, defaultBonus,
			"High mathematical and analytical skills → Finance/Economics boost",
			SkillAtLeast(models.SkillMathematical, 70), SkillAtLeast(models.SkillAnalytical, 70)),
		BonusRule("business-social", models.FieldBusiness, defaultBonus,
			"High social and enterprising traits → Business/Management boost",
			PersonalityAtLeast(models.TraitSocial, 70), PersonalityAtLeast(models.TraitEnterprising, 70)),
		BonusRule("engineering-interest", models.FieldEngineering, defaultBonus,
			"Strong mathematical skill and engineering interest → Engineering boost",
			SkillAtLeast(models.SkillMathematical, 85), InterestAtLeast(models.InterestEngineering, 70)),
	}
}

// ApplyRules folds rules over a copy of base. It returns the adjusted vector,
// one explanation per fired rule and the fired rule names.
func ApplyRules(rules []Rule, rc RuleContext, base models.CareerFieldVector) (models.CareerFieldVector, []string, []string) {
	scores := make(models.CareerFieldVector, len(base))
	for f, v := range base {
		scores[f] = v
	}

	explanations := []string{}
	var fired []string
	for _, r := range rules {
		rc.Scores = scores
		adj, ok := r.Evaluate(rc)
		if !ok {
			continue
		}
		scores[adj.Field] += adj.Delta
		explanations = append(explanations, adj.Explanation)
		fired = append(fired, r.Name)
	}
	return scores, explanations, fired
}
