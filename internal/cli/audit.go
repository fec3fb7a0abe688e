package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luminatehq/lumen/internal/audit"
	"github.com/luminatehq/lumen/internal/colour"
	"github.com/luminatehq/lumen/internal/schemefile"
)

var (
	// Audit command flags
	auditFormat string
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit <scheme-file>",
	Short: "Audit a colour scheme for WCAG contrast issues",
	Long: `Audit every role pairing of a colour scheme against the WCAG AA
threshold for normal text and produce a graded accessibility report.

The scheme file is a role-to-hex document in JSON, YAML, or TOML; the
format is selected by file extension. Missing required roles or unknown
keys are errors.

The command exits with a non-zero status when the scheme is not
accessible (any critical issue, or more than two issues overall).

Examples:
  # Audit a scheme and print the report
  lumen audit scheme.yaml

  # Machine-readable report
  lumen audit scheme.json --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "table", "output format (table, json)")
}

// runAudit executes the audit command.
func runAudit(cmd *cobra.Command, args []string) error {
	scheme, err := schemefile.Load(args[0])
	if err != nil {
		return err
	}

	report := audit.GenerateReport(scheme)
	logger.Debug("audited scheme", "file", args[0], "issues", report.TotalIssues, "grade", report.Grade)

	switch auditFormat {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(data))
	case "table":
		printReport(scheme, report)
	default:
		return fmt.Errorf("unsupported format %q (expected table or json)", auditFormat)
	}

	if !report.IsAccessible {
		return fmt.Errorf("scheme is not accessible: %d issue(s), grade %s", report.TotalIssues, report.Grade)
	}
	return nil
}

// printReport renders a human-readable report.
func printReport(scheme colour.Scheme, report audit.Report) {
	fmt.Printf("Grade: %s\n", report.Grade)
	fmt.Printf("Issues: %d total (%d critical, %d high, %d medium)\n",
		report.TotalIssues, report.CriticalIssues, report.HighIssues, report.MediumIssues)
	fmt.Printf("Accessible: %s\n", passFail(report.IsAccessible))

	if report.TotalIssues == 0 {
		return
	}

	fmt.Println()
	table := NewTable([]string{"Pair", "Ratio", "Required", "Severity"})
	for _, issue := range report.Issues {
		table.AddRow([]string{
			issue.Role,
			fmt.Sprintf("%.2f:1", issue.Ratio),
			fmt.Sprintf("%.1f:1", issue.Required),
			issue.Severity.String(),
		})
	}
	fmt.Print(table.Render())
}
