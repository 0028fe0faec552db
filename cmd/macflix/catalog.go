package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/macflix/internal/catalog"
	"github.com/vmunix/macflix/internal/config"
	"github.com/vmunix/macflix/internal/media"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Offline catalog tools (no server needed)",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check [config]",
	Short: "Load the catalog files and check local locators",
	Long: `Load the content and categories files named by the config, report
validation problems, and check that every local locator names a readable
file. Remote locators are counted but not contacted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogCheck,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
}

// catalogCheckResult is the --json output of catalog check.
type catalogCheckResult struct {
	Content    string       `json:"content"`
	Categories string       `json:"categories"`
	Version    string       `json:"version"`
	Audit      media.Report `json:"audit"`
}

func runCatalogCheck(cmd *cobra.Command, args []string) error {
	path, err := configPath(args)
	if err != nil {
		return err
	}
	cfg, err := config.LoadWithoutValidation(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cat, err := catalog.LoadFiles(cfg.Catalog.Content, cfg.Catalog.Categories)
	if err != nil {
		return fmt.Errorf("catalog invalid: %w", err)
	}

	deliverer := media.NewDeliverer(media.WithMediaRoot(cfg.Delivery.MediaRoot))
	result := catalogCheckResult{
		Content:    cfg.Catalog.Content,
		Categories: cfg.Catalog.Categories,
		Version:    cat.Version(),
		Audit:      media.Audit(cat, deliverer.CheckLocal),
	}

	if jsonOutput {
		printJSON(result)
	} else {
		fmt.Printf("Catalog %s: %d records, %d categories\n\n", result.Version, cat.Len(), len(cat.Categories()))
		printVerifyResult(&result.Audit)
	}

	if n := len(result.Audit.Problems); n > 0 {
		return fmt.Errorf("%d problems found", n)
	}
	return nil
}
