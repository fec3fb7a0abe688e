package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luminatehq/lumen/internal/colour"
)

var (
	// Check command flags
	checkLargeText bool
	checkFormat    string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <foreground> <background>",
	Short: "Check the WCAG contrast of a colour pair",
	Long: `Check the contrast ratio between a foreground and a background colour
against the WCAG 2.1 thresholds.

Normal text requires 4.5:1 for AA and 7:1 for AAA. Large text requires
3:1 for AA. Colours are hex values (#RRGGBB, #RGB, with or without '#').

The command exits with a non-zero status when the pair fails AA, so it
can gate CI pipelines.

Examples:
  # Check dark grey text on white
  lumen check 333333 ffffff

  # Check a large-text pairing
  lumen check '#949494' '#ffffff' --large-text

  # Machine-readable output
  lumen check 333333 ffffff --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkLargeText, "large-text", false, "apply the large-text AA threshold (3:1)")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format (text, json)")
}

// checkResult is the JSON output shape of the check command.
type checkResult struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	Level      string  `json:"level"`
	LargeText  bool    `json:"large_text"`
	MeetsAA    bool    `json:"meets_aa"`
	MeetsAAA   bool    `json:"meets_aaa"`
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	fg, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid foreground colour %q: %w", args[0], err)
	}
	bg, err := colour.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("invalid background colour %q: %w", args[1], err)
	}

	ratio := colour.ContrastRatio(fg, bg)
	meetsAA := colour.MeetsAA(fg, bg, checkLargeText)
	meetsAAA := colour.MeetsAAA(fg, bg, checkLargeText)
	level := colour.ComplianceLevel(fg, bg)

	logger.Debug("checked contrast", "fg", fg.Hex(), "bg", bg.Hex(), "ratio", ratio)

	switch checkFormat {
	case "json":
		result := checkResult{
			Foreground: fg.Hex(),
			Background: bg.Hex(),
			Ratio:      ratio,
			Level:      level.String(),
			LargeText:  checkLargeText,
			MeetsAA:    meetsAA,
			MeetsAAA:   meetsAAA,
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		if useColour() {
			fmt.Println(colour.PreviewPair(fg, bg, " Sample ", 10))
		}
		fmt.Printf("Contrast ratio: %.2f:1\n", ratio)
		fmt.Printf("Level:          %s\n", level)
		fmt.Printf("WCAG AA:        %s\n", passFail(meetsAA))
		fmt.Printf("WCAG AAA:       %s\n", passFail(meetsAAA))
	default:
		return fmt.Errorf("unsupported format %q (expected text or json)", checkFormat)
	}

	if !meetsAA {
		threshold := colour.AANormalText
		if checkLargeText {
			threshold = colour.AALargeText
		}
		return fmt.Errorf("contrast ratio %.2f:1 fails WCAG AA (requires %.1f:1)", ratio, threshold)
	}
	return nil
}

// passFail renders a boolean as "pass" or "fail".
func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
