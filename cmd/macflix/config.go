package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/macflix/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, catalog paths, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example configuration file",
	Long:  "Writes a commented example config.toml. Defaults to the XDG config location.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file the server would use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Discover()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd, configInitCmd, configPathCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

// configPath returns args[0] when given, otherwise the discovered config.
func configPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	path, err := config.Discover()
	if errors.Is(err, config.ErrNotFound) {
		return "", fmt.Errorf("%w\nrun 'macflix config init' to create one", err)
	}
	return path, err
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path, err := configPath(args)
	if err != nil {
		return err
	}

	fmt.Printf("Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(cfg)
	fmt.Println("\nConfiguration valid!")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func printConfigErrors(e *config.Error) {
	fmt.Printf("%d problems:\n", len(e.Problems))
	for _, p := range e.Problems {
		fmt.Printf("  - %s\n", p)
	}
	fmt.Println()
}

func printConfigSummary(cfg *config.Config) {
	fmt.Println("Configuration Summary:")
	fmt.Printf("  Server:     %s (log: %s/%s)\n", cfg.Addr(), cfg.Server.LogLevel, cfg.Server.LogFormat)
	if cfg.Server.RateLimit > 0 {
		fmt.Printf("  Rate limit: %d/min per IP\n", cfg.Server.RateLimit)
	}

	watch := ""
	if cfg.Catalog.Watch {
		watch = " (watched)"
	}
	fmt.Printf("  Content:    %s%s\n", cfg.Catalog.Content, watch)
	fmt.Printf("  Categories: %s\n", cfg.Catalog.Categories)

	fmt.Printf("  Probe:      %s\n", cfg.Delivery.ProbeTimeout)
	if cfg.Delivery.MediaRoot != "" {
		fmt.Printf("  Media root: %s\n", cfg.Delivery.MediaRoot)
	}

	providers := []string{}
	if cfg.Metadata.TMDB != nil {
		providers = append(providers, "tmdb")
	}
	if cfg.Metadata.OMDB != nil {
		providers = append(providers, "omdb")
	}
	if len(providers) > 0 {
		fmt.Printf("  Metadata:   %s\n", strings.Join(providers, ", "))
	}
}
