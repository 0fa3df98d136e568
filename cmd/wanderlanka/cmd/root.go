package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wanderlanka/planner-cli/internal/bootstrap"
)

var rootCmd = &cobra.Command{
	Use:   "wanderlanka",
	Short: "Sri Lanka travel itinerary assistant",
	Long: `wanderlanka is a command-line client for the Sri Lanka travel
itinerary assistant. It signs you in, generates day-by-day trip plans
through the assistant's AI, and keeps your saved trips available
offline.

Environment Variables:
  API_BASE_URL  Assistant server root (default: http://localhost:8000)
  CRED_STORE    Credential store backend, file or redis (default: file)
  ADMIN_EMAILS  Comma-separated accounts granted the admin role`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// withApp loads configuration, builds the application graph, and runs
// fn with a signal-aware context.
func withApp(fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger := bootstrap.InitLogger(cfg.IsDev)

	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			logger.ErrorContext(ctx, "shutdown cleanup failed", "error", cerr)
		}
	}()

	return fn(ctx, app)
}
