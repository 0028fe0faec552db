package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/macflix/internal/omdb"
	"github.com/vmunix/macflix/internal/tmdb"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search titles in the catalog or a metadata provider",
	Long: `Search titles in the catalog or a metadata provider.

Examples:
  macflix search shawshank
  macflix search --limit 5 "game of"
  macflix search --source tmdb --type tv "The Wire"
  macflix search --source omdb "Heat"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("source", "local", "Where to search: local, tmdb or omdb")
	searchCmd.Flags().Int("limit", 0, "Maximum local results (server default when 0)")
	searchCmd.Flags().String("type", "", "TMDB media type (movie or tv)")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")
	mediaType, _ := cmd.Flags().GetString("type")

	client := NewClient(serverURL)

	switch source {
	case "local":
		results, err := client.Search(query, limit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if jsonOutput {
			printJSON(results)
			return nil
		}
		printLocalResults(query, results)

	case "tmdb":
		results, err := client.TMDBSearch(query, mediaType)
		if err != nil {
			return fmt.Errorf("tmdb search failed: %w", err)
		}
		if jsonOutput {
			printJSON(results)
			return nil
		}
		printTMDBResults(query, results)

	case "omdb":
		results, err := client.OMDBSearch(query)
		if err != nil {
			return fmt.Errorf("omdb search failed: %w", err)
		}
		if jsonOutput {
			printJSON(results)
			return nil
		}
		printOMDBResults(query, results)

	default:
		return fmt.Errorf("unknown source %q (want local, tmdb or omdb)", source)
	}
	return nil
}

func printLocalResults(query string, r *SearchResponse) {
	if len(r.Results) == 0 {
		fmt.Printf("No titles match %q\n", query)
		return
	}

	fmt.Printf("Found %d titles for %q:\n\n", len(r.Results), query)
	fmt.Printf("  # │ %-12s │ %-40s │ %5s\n", "ID", "TITLE", "SCORE")
	fmt.Println("────┼──────────────┼──────────────────────────────────────────┼───────")
	for i, hit := range r.Results {
		fmt.Printf(" %2d │ %-12s │ %-40s │ %5.2f\n",
			i+1, truncate(hit.ID, 12), truncate(hit.Title, 40), hit.Score)
	}
}

func printTMDBResults(query string, results []tmdb.SearchResult) {
	if len(results) == 0 {
		fmt.Printf("TMDB has nothing for %q\n", query)
		return
	}

	fmt.Printf("TMDB results for %q:\n\n", query)
	for i := range results {
		r := &results[i]
		year := "----"
		if y := r.Year(); y > 0 {
			year = fmt.Sprintf("%d", y)
		}
		fmt.Printf(" %2d │ %8d │ %s │ %s\n", i+1, r.ID, year, truncate(r.DisplayTitle(), 48))
	}
}

func printOMDBResults(query string, results []omdb.SearchResult) {
	if len(results) == 0 {
		fmt.Printf("OMDB has nothing for %q\n", query)
		return
	}

	fmt.Printf("OMDB results for %q:\n\n", query)
	for i, r := range results {
		fmt.Printf(" %2d │ %-10s │ %-9s │ %-6s │ %s\n", i+1, r.IMDBID, r.Year, r.Type, truncate(r.Title, 40))
	}
}
