package main

import (
	"os"
	"os/signal"
	"syscall"

	"fooddash/internal/config"
	"fooddash/internal/logging"
	"fooddash/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local foods API",
	Long: `Serve GET/POST /foods and GET/PUT/DELETE /foods/{id} backed by memory
or a bbolt file. The dashboard can point at it with --api or FOODDASH_API_URL.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "listen host (overrides HOST)")
	serveCmd.Flags().String("port", "", "listen port (overrides PORT)")
	serveCmd.Flags().String("db", "", "bbolt database file; empty keeps foods in memory (overrides FOODDASH_DB)")
	serveCmd.Flags().String("seed", "", "JSON seed file loaded into an empty store (overrides FOODDASH_SEED)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	overrides := map[string]*string{
		"host": &cfg.Server.Host,
		"port": &cfg.Server.Port,
		"db":   &cfg.Server.DBPath,
		"seed": &cfg.Server.SeedFile,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	repo, err := server.OpenRepository(cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("closing repository", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.SeedFile != "" {
		foods, err := server.LoadSeed(cfg.Server.SeedFile)
		if err != nil {
			return err
		}
		seeded, err := repo.Seed(ctx, foods)
		if err != nil {
			return err
		}
		logger.Info("seed", "file", cfg.Server.SeedFile, "foods", len(foods), "applied", seeded)
	}

	return server.Run(ctx, cfg, repo, logger)
}
