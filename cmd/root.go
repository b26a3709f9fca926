// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/portfolio-projects/internal/config"
	"github.com/naka-gawa/portfolio-projects/internal/gateway"
	"github.com/naka-gawa/portfolio-projects/internal/view"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-projects",
	Short: "Shows a GitHub user's top projects for a portfolio site.",
	Long: `portfolio-projects fetches a GitHub user's public repositories, keeps the
original (non-fork) ones, ranks them by stars and recent activity, and renders
the top few as project cards. It can print the cards, summarize the profile,
or serve a portfolio page that loads them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringP("owner", "o", "", "GitHub user whose repositories are shown (overrides config)")
	rootCmd.PersistentFlags().IntP("limit", "n", 0, "Number of projects to show (overrides config)")
}

// newLogger discards all logs unless --verbose is set, in which case it logs to standard error.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// loadConfig reads the config file and environment, then applies flag overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		fail("Failed to load config: %v", err)
	}
	if cmd.Flags().Changed("owner") {
		cfg.Owner, _ = cmd.Flags().GetString("owner")
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit, _ = cmd.Flags().GetInt("limit")
	}
	if err := cfg.Validate(); err != nil {
		fail("Invalid config: %v", err)
	}
	return cfg
}

func newFetcher(cfg config.Config, logger *log.Logger) gateway.Fetcher {
	fetcher, err := gateway.NewGitHubGateway(gateway.Options{
		Token:      cfg.Token,
		Source:     gateway.Source(cfg.Source),
		APIBaseURL: cfg.APIBaseURL,
	}, logger)
	if err != nil {
		fail("Failed to create GitHub gateway: %v", err)
	}
	return fetcher
}

func viewOptions(cfg config.Config) view.Options {
	return view.Options{Images: cfg.Images, MaxTopics: cfg.MaxTopics}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
