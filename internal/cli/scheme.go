package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/luminatehq/lumen/internal/colour"
	"github.com/luminatehq/lumen/internal/image"
	"github.com/luminatehq/lumen/internal/schemefile"
)

var (
	// Scheme command flags
	schemePrimary    string
	schemeBackground string
	schemeFromImage  string
	schemeBrightness = brightnessValue(colour.BrightnessLight)
	schemeFormat     string
	schemeOutput     string
)

// brightnessValue adapts colour.Brightness to the pflag.Value interface.
type brightnessValue colour.Brightness

var _ pflag.Value = (*brightnessValue)(nil)

func (b *brightnessValue) String() string { return colour.Brightness(*b).String() }

func (b *brightnessValue) Set(s string) error {
	parsed, err := colour.ParseBrightness(s)
	if err != nil {
		return err
	}
	*b = brightnessValue(parsed)
	return nil
}

func (b *brightnessValue) Type() string { return "brightness" }

// schemeCmd represents the scheme command
var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Derive an accessible colour scheme",
	Long: `Derive a full colour scheme from a primary colour, or from the dominant
colour of an image. Every role pairing in the result meets WCAG AA for
normal text by construction.

Examples:
  # Derive a light scheme from a primary colour
  lumen scheme --primary '#6200ee'

  # Derive a dark scheme with an explicit background
  lumen scheme --primary 6200ee --background 121212 --brightness dark

  # Seed the primary colour from a wallpaper
  lumen scheme --from-image wallpaper.png --brightness dark

  # Write the scheme to a YAML file
  lumen scheme --primary 6200ee --output scheme.yaml`,
	Args: cobra.NoArgs,
	RunE: runScheme,
}

func init() {
	schemeCmd.Flags().StringVarP(&schemePrimary, "primary", "p", "", "primary colour (hex)")
	schemeCmd.Flags().StringVarP(&schemeBackground, "background", "b", "", "background colour (hex, defaults by brightness)")
	schemeCmd.Flags().StringVar(&schemeFromImage, "from-image", "", "derive the primary colour from an image (JPEG, PNG, GIF, WebP)")
	schemeCmd.Flags().Var(&schemeBrightness, "brightness", "scheme brightness (light, dark)")
	schemeCmd.Flags().StringVarP(&schemeFormat, "format", "f", "table", "output format (table, json, yaml, toml)")
	schemeCmd.Flags().StringVarP(&schemeOutput, "output", "o", "", "write the scheme to a file (format from extension)")
}

// runScheme executes the scheme command.
func runScheme(cmd *cobra.Command, args []string) error {
	brightness := colour.Brightness(schemeBrightness)

	primary, err := resolvePrimary()
	if err != nil {
		return err
	}

	background := colour.DefaultBackground(brightness)
	if schemeBackground != "" {
		background, err = colour.ParseHex(schemeBackground)
		if err != nil {
			return fmt.Errorf("invalid background colour %q: %w", schemeBackground, err)
		}
	}

	logger.Debug("deriving scheme", "primary", primary.Hex(), "background", background.Hex(), "brightness", brightness)

	scheme := colour.NewAccessibleScheme(primary, background, brightness)

	if schemeOutput != "" {
		if err := schemefile.Save(schemeOutput, scheme); err != nil {
			return err
		}
		fmt.Printf("Scheme written to %s\n", schemeOutput)
		return nil
	}

	switch schemeFormat {
	case "table":
		fmt.Print(renderSchemeTable(scheme))
	case "json", "yaml", "toml":
		data, err := schemefile.Encode(scheme, schemeFormat)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unsupported format %q (expected table, json, yaml, or toml)", schemeFormat)
	}

	return nil
}

// resolvePrimary picks the primary colour from --primary or --from-image.
func resolvePrimary() (colour.RGB, error) {
	if schemePrimary != "" && schemeFromImage != "" {
		return colour.RGB{}, fmt.Errorf("--primary and --from-image are mutually exclusive")
	}

	if schemeFromImage != "" {
		if err := image.ValidatePath(schemeFromImage); err != nil {
			return colour.RGB{}, fmt.Errorf("invalid image path: %w", err)
		}

		loader := image.NewFileLoader()
		img, err := loader.Load(schemeFromImage)
		if err != nil {
			return colour.RGB{}, fmt.Errorf("failed to load image: %w", err)
		}

		extractor := colour.NewKMeansExtractor()
		primary, err := extractor.Dominant(img)
		if err != nil {
			return colour.RGB{}, fmt.Errorf("failed to extract dominant colour: %w", err)
		}

		logger.Debug("extracted dominant colour", "image", schemeFromImage, "colour", primary.Hex())
		return primary, nil
	}

	if schemePrimary == "" {
		return colour.RGB{}, fmt.Errorf("either --primary or --from-image is required")
	}

	primary, err := colour.ParseHex(schemePrimary)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("invalid primary colour %q: %w", schemePrimary, err)
	}
	return primary, nil
}

// renderSchemeTable formats a scheme as a role table with contrast ratios.
func renderSchemeTable(scheme colour.Scheme) string {
	headers := []string{"Pair", "Foreground", "Background", "Ratio", "Level"}
	if useColour() {
		headers = append(headers, "Preview")
	}

	table := NewTable(headers)
	for _, pair := range scheme.Pairs() {
		ratio := colour.ContrastRatio(pair.Foreground, pair.Background)
		row := []string{
			pair.Role,
			pair.Foreground.Hex(),
			pair.Background.Hex(),
			fmt.Sprintf("%.2f:1", ratio),
			colour.ComplianceLevel(pair.Foreground, pair.Background).String(),
		}
		if useColour() {
			row = append(row, colour.PreviewPair(pair.Foreground, pair.Background, " Aa ", 6))
		}
		table.AddRow(row)
	}

	return table.Render()
}
