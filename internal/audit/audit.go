// Package audit evaluates colour schemes against WCAG contrast thresholds
// and produces aggregated accessibility reports.
package audit

import (
	"github.com/luminatehq/lumen/internal/colour"
)

// Severity classifies how far below the AA threshold a failing pairing
// falls. Lower ratios map to the same or higher severity.
type Severity int

const (
	// SeverityMedium is a failure close to the threshold (ratio >= 3.5).
	SeverityMedium Severity = iota
	// SeverityHigh is a clear failure (ratio >= 2.0, < 3.5).
	SeverityHigh
	// SeverityCritical is a severe failure (ratio < 2.0).
	SeverityCritical
)

// Severity cut-points below the 4.5:1 AA threshold.
const (
	criticalBelow = 2.0
	highBelow     = 3.5
)

// String returns the string representation of a Severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "unknown"
	}
}

// Grade is a letter grade summarising a scheme's accessibility.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Issue records a role pairing that failed its contrast requirement.
type Issue struct {
	Role     string   `json:"role"`
	Ratio    float64  `json:"ratio"`
	Required float64  `json:"required"`
	Severity Severity `json:"severity"`
}

// Report aggregates all contrast issues found in a scheme.
type Report struct {
	Issues         []Issue `json:"issues"`
	TotalIssues    int     `json:"total_issues"`
	CriticalIssues int     `json:"critical_issues"`
	HighIssues     int     `json:"high_issues"`
	MediumIssues   int     `json:"medium_issues"`
	IsAccessible   bool    `json:"is_accessible"`
	Grade          Grade   `json:"grade"`
}

// maxTolerableIssues is the issue count above which a scheme is no longer
// considered accessible even without critical failures.
const maxTolerableIssues = 2

// GenerateReport evaluates every role pairing of the scheme against the
// WCAG AA threshold for normal text. Poor colours never cause an error -
// they simply produce a low-grade report. The result is deterministic for
// identical input: pairings are evaluated in the scheme's fixed order.
func GenerateReport(scheme colour.Scheme) Report {
	report := Report{Issues: []Issue{}}

	for _, pair := range scheme.Pairs() {
		ratio := colour.ContrastRatio(pair.Foreground, pair.Background)
		if ratio >= colour.AANormalText {
			continue
		}

		issue := Issue{
			Role:     pair.Role,
			Ratio:    ratio,
			Required: colour.AANormalText,
			Severity: severityFor(ratio),
		}
		report.Issues = append(report.Issues, issue)

		switch issue.Severity {
		case SeverityCritical:
			report.CriticalIssues++
		case SeverityHigh:
			report.HighIssues++
		case SeverityMedium:
			report.MediumIssues++
		}
	}

	report.TotalIssues = len(report.Issues)
	report.IsAccessible = report.CriticalIssues == 0 && report.TotalIssues <= maxTolerableIssues
	report.Grade = gradeFor(report)

	return report
}

// severityFor maps a failing ratio to a severity. Monotonic: a lower
// ratio never yields a lower severity.
func severityFor(ratio float64) Severity {
	switch {
	case ratio < criticalBelow:
		return SeverityCritical
	case ratio < highBelow:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

// gradeFor maps issue counts to a letter grade: a clean scheme earns an A,
// medium-only issues a B, any high issue a C, and critical issues a D or
// an F depending on how many.
func gradeFor(r Report) Grade {
	switch {
	case r.TotalIssues == 0:
		return GradeA
	case r.CriticalIssues >= 2:
		return GradeF
	case r.CriticalIssues == 1:
		return GradeD
	case r.HighIssues > 0:
		return GradeC
	default:
		return GradeB
	}
}
