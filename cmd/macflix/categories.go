package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [name]",
	Short: "List categories or show one category's filters",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCategoriesCmd,

	ValidArgsFunction: completeCategoryNames,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	if len(args) == 1 {
		cat, err := client.Category(args[0])
		if err != nil {
			if IsNotFound(err) {
				return fmt.Errorf("no category named %q", args[0])
			}
			return fmt.Errorf("show category: %w", err)
		}
		if jsonOutput {
			printJSON(cat)
			return nil
		}
		printCategory(*cat)
		return nil
	}

	resp, err := client.Categories()
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if len(resp.Categories) == 0 {
		fmt.Println("No categories defined")
		return nil
	}
	for i, c := range resp.Categories {
		if i > 0 {
			fmt.Println()
		}
		printCategory(c)
	}
	return nil
}

func printCategory(c CategoryResponse) {
	fmt.Printf("%s\n", c.Name)
	for _, f := range c.Filters {
		fmt.Printf("  %-7s = %-10v  (%s)\n", f.Type, f.Value, f.Name)
	}
}
