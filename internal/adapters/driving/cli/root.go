// Package cli provides the cobra command surface for Scribe.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Finn-TH/scribe/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verboseFlag enables pipeline tracing on stderr.
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Extract company directory entries from PDF pages",
	Long: `Scribe extracts structured company records (name, phone numbers,
emails) from the formatted text layout of company directory PDFs,
using typographic cues to segment pages into per-company blocks.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose pipeline tracing")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
