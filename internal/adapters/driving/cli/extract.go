package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/Finn-TH/scribe/internal/adapters/driven/config/file"
	"github.com/Finn-TH/scribe/internal/adapters/driven/management"
	"github.com/Finn-TH/scribe/internal/adapters/driven/pdflayout"
	"github.com/Finn-TH/scribe/internal/adapters/driving/cli/render"
	"github.com/Finn-TH/scribe/internal/core/services"
	"github.com/Finn-TH/scribe/internal/pipeline/headers"
)

var (
	extractPages  []int
	extractJSON   bool
	extractConfig string
)

var extractCmd = &cobra.Command{
	Use:   "extract [pdf]",
	Short: "Extract company records from directory pages",
	Long: `Runs the extraction pipeline over the requested pages of a
directory PDF and prints the company records found on each page.
Pages are zero-based; when none are given, the configured default
pages are used. Out-of-range pages are skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntSliceVarP(&extractPages, "pages", "p", nil, "zero-based pages to parse")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output results as JSON")
	extractCmd.Flags().StringVar(&extractConfig, "config", "", "path to a heuristics TOML file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := context.Background()

	store, err := configfile.NewHeuristicsStore(extractConfig)
	if err != nil {
		return fmt.Errorf("heuristics store: %w", err)
	}
	heuristics, err := store.Load()
	if err != nil {
		return fmt.Errorf("load heuristics: %w", err)
	}

	detector, err := headers.New(headers.ConfigFromHeuristics(heuristics))
	if err != nil {
		return err
	}

	svc := services.NewExtractionService(pdflayout.New(), detector, management.NewNoopExtractor())

	pages := extractPages
	if len(pages) == 0 {
		pages = heuristics.DefaultPages
	}

	result, err := svc.ExtractPages(ctx, path, pages)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if extractJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Loaded %s (%d pages)\n", result.DocumentPath, result.PageCount)
	cmd.Print(render.Result(result))
	return nil
}
