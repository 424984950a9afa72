package notifyresults

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"career-assessment-workers/internal/models"
)

const subject = "Your career assessment results"

var bodyTemplate = template.Must(template.New("results").Funcs(template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(`Hello {{.Name}},

Thank you for completing the personality, aptitude and interest tests.
Your strongest career fields are:
{{range $i, $c := .Careers}}
{{inc $i}}. {{$c.Career}} (score {{printf "%.1f" $c.Score}})
   {{$c.Description}}
   Programs: {{join $c.RelatedPrograms}}
{{end}}
{{- if .Explanations}}
Why these results:
{{range .Explanations}}- {{.}}
{{end}}{{end}}
`))

type emailView struct {
	Name         string
	Careers      []models.CareerRecommendation
	Explanations []string
}

func renderBody(name string, r *models.AggregatedResult, maxCareers int) (string, error) {
	if name == "" {
		name = "there"
	}
	careers := r.TopCareers
	if len(careers) > maxCareers {
		careers = careers[:maxCareers]
	}

	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, emailView{Name: name, Careers: careers, Explanations: r.RuleBasedEnhancements})
	if err != nil {
		return "", fmt.Errorf("render results email: %w", err)
	}
	return buf.String(), nil
}
