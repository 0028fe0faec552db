package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeCategoryNames offers the server's category names. Shell
// completion stays silent when the server is unreachable.
func completeCategoryNames(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	resp, err := NewClient(serverURL).Categories()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveError
	}
	var names []string
	for _, c := range resp.Categories {
		if strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(toComplete)) {
			names = append(names, c.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
