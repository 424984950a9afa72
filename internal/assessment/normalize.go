package assessment

import (
	"math"
	"strings"
)

const (
	// LikertMax is the top of the five-point agreement scale.
	LikertMax = 5
	// CorrectnessMax is the value of one correct aptitude answer.
	CorrectnessMax = 1
	// NeutralScore is used for unmapped, empty or unanswered Likert items.
	NeutralScore = 3
)

var agreementScale = map[string]int{
	"strongly agree":    5,
	"agree":             4,
	"neutral":           3,
	"disagree":          2,
	"strongly disagree": 1,
}

// AgreementValue maps a Likert answer onto 1..5, defaulting to neutral.
func AgreementValue(answer string) int {
	if v, ok := agreementScale[strings.ToLower(strings.TrimSpace(answer))]; ok {
		return v
	}
	return NeutralScore
}

// Normalize rescales raw onto 0..100 against count*scaleMax, rounding half
// away from zero. Zero capacity normalizes to 0.
func Normalize(raw float64, count, scaleMax int) int {
	maxPossible := float64(count * scaleMax)
	if maxPossible <= 0 {
		return 0
	}
	pct := math.Round(raw * 100 / maxPossible)
	switch {
	case math.IsNaN(pct), pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}
