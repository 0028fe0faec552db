package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:     "content",
	Aliases: []string{"ls"},
	Short:   "Browse the catalog",
	Long: `Browse the catalog.

Examples:
  macflix content                      # Everything
  macflix content --type series        # Series only
  macflix content --year 1994          # Released in 1994
  macflix content --category Drama     # Members of a category
  macflix content show tt0111161       # One title with seasons`,
	Args: cobra.NoArgs,
	RunE: runContentList,
}

var contentShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one title",
	Args:  cobra.ExactArgs(1),
	RunE:  runContentShow,
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.AddCommand(contentShowCmd)
	contentCmd.Flags().String("type", "", "Content type (movie or series)")
	contentCmd.Flags().Int("year", 0, "Release year")
	contentCmd.Flags().String("category", "", "Category name")
	contentCmd.MarkFlagsMutuallyExclusive("type", "year", "category")
	_ = contentCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeCategoryNames(cmd, nil, toComplete)
	})
}

func runContentList(cmd *cobra.Command, args []string) error {
	contentType, _ := cmd.Flags().GetString("type")
	year, _ := cmd.Flags().GetInt("year")
	category, _ := cmd.Flags().GetString("category")

	client := NewClient(serverURL)

	var (
		items []ContentResponse
		err   error
	)
	switch {
	case year != 0:
		items, err = client.ContentByYear(year)
	case category != "":
		items, err = client.ContentByCategory(category)
	default:
		items, err = client.Content(contentType)
	}
	if err != nil {
		return fmt.Errorf("list content: %w", err)
	}

	if jsonOutput {
		printJSON(items)
		return nil
	}

	printContentTable(items)
	return nil
}

func printContentTable(items []ContentResponse) {
	if len(items) == 0 {
		fmt.Println("No content found")
		return
	}

	fmt.Printf("  %-12s │ %-36s │ %-6s │ %4s │ %s\n", "ID", "TITLE", "TYPE", "YEAR", "RATING")
	fmt.Println("──────────────┼──────────────────────────────────────┼────────┼──────┼───────")
	for _, c := range items {
		fmt.Printf("  %-12s │ %-36s │ %-6s │ %4d │ %s\n",
			truncate(c.ID, 12), truncate(c.Title, 36), c.Type, c.Year, formatRating(c.Rating))
	}
	fmt.Printf("\n%d titles\n", len(items))
}

func formatRating(r *float64) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *r)
}

func runContentShow(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	item, err := client.ContentByID(args[0])
	if err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("no content with id %q", args[0])
		}
		return fmt.Errorf("show content: %w", err)
	}

	if jsonOutput {
		printJSON(item)
		return nil
	}

	printContentDetail(item)
	return nil
}

func printContentDetail(c *ContentResponse) {
	fmt.Printf("%s (%d)\n", c.Title, c.Year)
	fmt.Printf("  ID:       %s\n", c.ID)
	fmt.Printf("  Type:     %s\n", c.Type)
	if len(c.Genres) > 0 {
		fmt.Printf("  Genres:   %s\n", strings.Join(c.Genres, ", "))
	}
	fmt.Printf("  Rating:   %s\n", formatRating(c.Rating))
	if c.Director != "" {
		fmt.Printf("  Director: %s\n", c.Director)
	}
	if len(c.Cast) > 0 {
		fmt.Printf("  Cast:     %s\n", strings.Join(c.Cast, ", "))
	}
	if c.Duration != nil {
		fmt.Printf("  Duration: %d min\n", *c.Duration)
	}
	if c.VideoURL != "" {
		fmt.Printf("  Video:    %s\n", c.VideoURL)
	}
	if c.DownloadURL != "" {
		fmt.Printf("  Download: %s\n", c.DownloadURL)
	}
	if c.Description != "" {
		fmt.Printf("\n  %s\n", c.Description)
	}

	for _, s := range c.Seasons {
		fmt.Printf("\n  Season %d (%d episodes)\n", s.SeasonNumber, len(s.Episodes))
		for _, ep := range s.Episodes {
			fmt.Printf("    E%02d  %s\n", ep.EpisodeNumber, ep.Title)
		}
	}
}
