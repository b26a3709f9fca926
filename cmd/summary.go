package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/portfolio-projects/internal/usecase"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarizes the owner's public repositories and outputs as JSON",
	Long:  `Counts repositories, stars and forks, computes mean and median stars of original repositories, and tallies their languages.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		cfg := loadConfig(cmd)

		summarizer := usecase.NewSummarizer(newFetcher(cfg, logger), logger)
		summary, err := summarizer.Summarize(ctx, cfg.Owner)
		if err != nil {
			fail("Failed to summarize repositories: %v", err)
		}

		jsonData, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fail("Failed to marshal summary to JSON: %v", err)
		}
		fmt.Println(string(jsonData))
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
