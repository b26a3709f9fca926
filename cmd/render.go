package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/portfolio-projects/internal/usecase"
	"github.com/naka-gawa/portfolio-projects/internal/view"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders the projects panel as HTML or text",
	Long: `Fetches the owner's repositories once, selects the top projects and renders
exactly one of: the project cards, a "no projects" message, or an error message
linking to the owner's profile.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		cfg := loadConfig(cmd)

		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		var renderer usecase.Renderer
		switch format {
		case "html":
			htmlRenderer, err := view.NewHTMLRenderer(viewOptions(cfg))
			if err != nil {
				fail("%v", err)
			}
			renderer = htmlRenderer
		case "text":
			renderer = view.NewTerminalRenderer(viewOptions(cfg))
		default:
			fail("unknown --format %q (want html or text)", format)
		}

		panel := usecase.NewProjectsPanel(newFetcher(cfg, logger), renderer, cfg.Owner, cfg.Limit, logger)
		if err := mountTo(ctx, panel, outPath, os.Stdout); err != nil {
			fail("%v", err)
		}
	},
}

// mountTo renders the panel to stdout, or to outPath once rendering has succeeded,
// so a failed render never leaves a file behind.
func mountTo(ctx context.Context, panel *usecase.ProjectsPanel, outPath string, stdout io.Writer) error {
	if outPath == "" {
		return panel.Mount(ctx, stdout)
	}
	var buf bytes.Buffer
	if err := panel.Mount(ctx, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("format", "f", "html", "Output format: html or text")
	renderCmd.Flags().String("out", "", "Write the panel to this file instead of standard output")
}
