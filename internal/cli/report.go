package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/percolation/montecarlo"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Bold(true).Width(46)
)

// Report is the result of a `run` invocation.
type Report struct {
	RunID              string `json:"run_id" yaml:"run_id"`
	Seed               int64  `json:"seed" yaml:"seed"`
	RequestedTrials    int    `json:"requested_trials" yaml:"requested_trials"`
	montecarlo.Summary `yaml:",inline"`
	Fraction           float64 `json:"fraction" yaml:"fraction"`
	VacancyPercent     float64 `json:"vacancy_percent" yaml:"vacancy_percent"`
	Failures           int     `json:"failures" yaml:"failures"`
}

// newReport flattens a montecarlo.Result for output.
func newReport(runID string, seed int64, requested int, res *montecarlo.Result) Report {
	return Report{
		RunID:           runID,
		Seed:            seed,
		RequestedTrials: requested,
		Summary:         res.Summary,
		Fraction:        res.Fraction(),
		VacancyPercent:  res.VacancyPercent(),
		Failures:        res.Failures,
	}
}

// Text renders the report for terminals.
func (r Report) Text() string {
	rows := []struct{ label, value string }{
		{"Mean", fmt.Sprintf("%f", r.Mean)},
		{"Standard Deviation", fmt.Sprintf("%f", r.StdDev)},
		{"Confidence High", fmt.Sprintf("%f", r.ConfidenceHigh)},
		{"Confidence Low", fmt.Sprintf("%f", r.ConfidenceLow)},
		{"Threshold Fraction", fmt.Sprintf("%f", r.Fraction)},
		{"Failures", fmt.Sprintf("%d", r.Failures)},
		{"Average site vacancy at time of percolation", fmt.Sprintf("%f%%", r.VacancyPercent)},
		{"Seed", fmt.Sprintf("%d", r.Seed)},
		{"Run ID", r.RunID},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Ran %d tests of size %d", r.RequestedTrials, r.GridSize)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label + ":"))
		b.WriteString(" ")
		b.WriteString(row.value)
		b.WriteString("\n")
	}
	return b.String()
}
