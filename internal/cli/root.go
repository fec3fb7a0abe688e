// Package cli provides the command-line interface for Lumen.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/luminatehq/lumen/internal/version"
)

var (
	// Global flags
	verbose  bool
	noColour bool

	// logger is replaced with a debug-level logger when --verbose is set.
	logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "lumen",
		Short: "A WCAG colour contrast checker and scheme auditor",
		Long: `Lumen checks colour pairs against the WCAG 2.1 contrast thresholds,
adjusts colours to meet a target ratio, derives accessible colour schemes
from a primary colour or an image, and audits full schemes into graded
accessibility reports.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = hclog.New(&hclog.LoggerOptions{
					Name:   "lumen",
					Output: os.Stderr,
					Level:  hclog.Debug,
				})
			}
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColour, "no-colour", false, "disable colour swatches in output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(schemeCmd)
	rootCmd.AddCommand(auditCmd)
}

// useColour reports whether swatch previews should be rendered: only when
// stdout is a terminal and --no-colour is not set.
func useColour() bool {
	return !noColour && term.IsTerminal(int(os.Stdout.Fd()))
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
