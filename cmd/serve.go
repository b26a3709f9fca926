package cmd

import (
	"context"
	"html/template"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/portfolio-projects/internal/server"
	"github.com/naka-gawa/portfolio-projects/internal/view"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio page with its projects panel",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := newLogger(cmd)
		cfg := loadConfig(cmd)
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}

		var about template.HTML
		if cfg.AboutFile != "" {
			src, err := os.ReadFile(cfg.AboutFile)
			if err != nil {
				fail("Failed to read about file: %v", err)
			}
			if about, err = view.RenderMarkdown(src); err != nil {
				fail("%v", err)
			}
		}

		renderer, err := view.NewHTMLRenderer(viewOptions(cfg))
		if err != nil {
			fail("%v", err)
		}

		srv := server.New(newFetcher(cfg, logger), renderer, server.Settings{
			Owner: cfg.Owner,
			Limit: cfg.Limit,
			Title: cfg.Title,
			About: about,
		}, logger)
		if err := srv.Run(ctx, cfg.Addr); err != nil {
			fail("Server failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides config and PORT)")
}
