package assertion

import (
	"fmt"
	"strings"
)

// Summary aggregates the results of one suite run.
type Summary struct {
	Total    int      `json:"total"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	PassRate float64  `json:"pass_rate"`
	Failures []Result `json:"failures,omitempty"`
}

// Summarize builds a Summary from results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Total++
		if r.Passed {
			s.Passed++
			continue
		}
		s.Failed++
		s.Failures = append(s.Failures, r)
	}

	if s.Total > 0 {
		s.PassRate = float64(s.Passed) / float64(s.Total)
	}
	return s
}

// Markdown renders the summary as a Markdown table of counts
// followed by one row per failed assertion.
func (s Summary) Markdown() string {
	var sb strings.Builder

	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total | %d |\n", s.Total))
	sb.WriteString(fmt.Sprintf("| Passed | %d |\n", s.Passed))
	sb.WriteString(fmt.Sprintf("| Failed | %d |\n", s.Failed))
	sb.WriteString(fmt.Sprintf("| Pass Rate | %.0f%% |\n", s.PassRate*100))

	if len(s.Failures) == 0 {
		return sb.String()
	}

	sb.WriteString("\n| Type | Target | Message |\n")
	sb.WriteString("|------|--------|---------|\n")
	for _, r := range s.Failures {
		sb.WriteString(fmt.Sprintf(
			"| %s | %s | %s |\n",
			r.Type, r.Target, firstLine(r.Message),
		))
	}
	return sb.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.ReplaceAll(line, "|", `\|`)
}
