package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luminatehq/lumen/internal/colour"
)

var (
	// Adjust command flags
	adjustMinRatio     float64
	adjustPreferLight  bool
	adjustOutputFormat string
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust <colour> <background>",
	Short: "Adjust a colour to meet a contrast ratio",
	Long: `Adjust a colour so that its contrast ratio against a background meets a
minimum value, darkening by default or lightening with --prefer-lighter.

The adjustment is best effort: when even pure black or white cannot reach
the requested ratio, the saturated extreme is returned.

Examples:
  # Darken light grey until it reads on white
  lumen adjust cccccc ffffff

  # Lighten a colour for a dark background, targeting AAA
  lumen adjust '#555555' '#121212' --prefer-lighter --min-ratio 7`,
	Args: cobra.ExactArgs(2),
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().Float64VarP(&adjustMinRatio, "min-ratio", "r", colour.AANormalText, "minimum contrast ratio to reach")
	adjustCmd.Flags().BoolVar(&adjustPreferLight, "prefer-lighter", false, "step toward white instead of black")
	adjustCmd.Flags().StringVarP(&adjustOutputFormat, "format", "f", "text", "output format (text, json)")
}

// adjustResult is the JSON output shape of the adjust command.
type adjustResult struct {
	Input      string  `json:"input"`
	Background string  `json:"background"`
	Adjusted   string  `json:"adjusted"`
	Ratio      float64 `json:"ratio"`
	MinRatio   float64 `json:"min_ratio"`
	Reached    bool    `json:"reached"`
}

// runAdjust executes the adjust command.
func runAdjust(cmd *cobra.Command, args []string) error {
	c, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid colour %q: %w", args[0], err)
	}
	bg, err := colour.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("invalid background colour %q: %w", args[1], err)
	}

	if adjustMinRatio < 1.0 || adjustMinRatio > 21.0 {
		return fmt.Errorf("min-ratio must be in [1.0, 21.0], got %g", adjustMinRatio)
	}

	adjusted := colour.AdjustForContrast(c, bg, adjustMinRatio, adjustPreferLight)
	ratio := colour.ContrastRatio(adjusted, bg)

	logger.Debug("adjusted colour", "input", c.Hex(), "adjusted", adjusted.Hex(), "ratio", ratio)

	switch adjustOutputFormat {
	case "json":
		result := adjustResult{
			Input:      c.Hex(),
			Background: bg.Hex(),
			Adjusted:   adjusted.Hex(),
			Ratio:      ratio,
			MinRatio:   adjustMinRatio,
			Reached:    ratio >= adjustMinRatio,
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		if useColour() {
			fmt.Printf("%s -> %s\n", colour.FormatWithPreview(c, 6), colour.FormatWithPreview(adjusted, 6))
		} else {
			fmt.Printf("%s -> %s\n", c.Hex(), adjusted.Hex())
		}
		fmt.Printf("Contrast ratio: %.2f:1 (target %.2f:1)\n", ratio, adjustMinRatio)
		if ratio < adjustMinRatio {
			fmt.Println("Target ratio unreachable; returned the saturated extreme.")
		}
	default:
		return fmt.Errorf("unsupported format %q (expected text or json)", adjustOutputFormat)
	}

	return nil
}
