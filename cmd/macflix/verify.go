package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that local media files behind the catalog exist",
	Long:  "Ask the server to check every local video and download locator. Remote locators are counted but not contacted.",
	Args:  cobra.NoArgs,
	RunE:  runVerifyCmd,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerifyCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	result, err := client.Verify()
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if jsonOutput {
		printJSON(result)
		return nil
	}

	printVerifyResult(result)
	if len(result.Problems) > 0 {
		return fmt.Errorf("%d problems found", len(result.Problems))
	}
	return nil
}

func printVerifyResult(r *VerifyResponse) {
	fmt.Printf("Checked %d local locators across %d records...\n\n", r.Checked, r.Records)
	fmt.Printf("  Passed:  %d/%d\n", r.Passed, r.Checked)
	fmt.Printf("  Remote:  %d (not checked)\n", r.Remote)
	fmt.Println()

	if len(r.Problems) == 0 {
		fmt.Println("No problems detected.")
		return
	}

	fmt.Printf("Problems (%d):\n\n", len(r.Problems))
	for _, p := range r.Problems {
		where := p.ContentID
		if p.Season > 0 {
			where = fmt.Sprintf("%s S%02dE%02d", p.ContentID, p.Season, p.Episode)
		}
		fmt.Printf("  %s | %s\n", where, p.Title)
		fmt.Printf("    Field:   %s\n", p.Field)
		fmt.Printf("    Locator: %s\n", p.Locator)
		fmt.Printf("    Issue:   %s\n", p.Issue)
		fmt.Println()
	}
}
