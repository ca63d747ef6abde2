package main

import (
	"context"
	"fmt"
	"os"

	"fooddash/internal/api"
	"fooddash/internal/config"
	"fooddash/internal/dashboard"
	"fooddash/internal/logging"
	"fooddash/internal/telemetry"
	"fooddash/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	envFile string
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "fooddash",
	Short: "Manage a food menu from the terminal",
	Long: `fooddash lists the foods served by a REST API and lets you add, edit,
toggle and delete them. Run "fooddash serve" for a local API to point it at.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnvFile(envFile)
	},
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.Flags().StringVar(&apiURL, "api", "", "API base URL (overrides FOODDASH_API_URL)")
}

// loadDashboardConfig reads the environment and applies the --api override,
// validating the result as a whole.
func loadDashboardConfig(apiOverride string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiOverride == "" {
		return cfg, nil
	}
	cfg.API.BaseURL = apiOverride
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid --api: %w", err)
	}
	return cfg, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadDashboardConfig(apiURL)
	if err != nil {
		return err
	}

	// stdout belongs to the TUI, so logs go to a file.
	logger, closer, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := cmd.Context()
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName, cfg.Telemetry.Insecure)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	client := api.NewClient(cfg.API.BaseURL, api.WithTimeout(cfg.API.RequestTimeout))
	ctrl := dashboard.NewController(client, logger)
	model := ui.NewAppModel(ctrl, ui.Options{ConfirmDelete: cfg.ConfirmDelete}).AsTeaModel()

	logger.Info("starting dashboard", "api", cfg.API.BaseURL)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
