package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server health and catalog summary",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	health, err := client.Health()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(health)
		return nil
	}

	printStatus(serverURL, health)
	return nil
}

func printStatus(server string, h *HealthResponse) {
	fmt.Printf("Server:     %s (%s)\n", server, h.Status)
	fmt.Printf("Records:    %d\n", h.Records)
	fmt.Printf("Categories: %d\n", h.Categories)
	if h.Version != "" {
		fmt.Printf("Catalog:    %s\n", h.Version)
	}
}
