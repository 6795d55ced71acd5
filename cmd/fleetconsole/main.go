package main

import (
	"fleet-console/internal/adapters/fleetapi"
	"fleet-console/internal/adapters/journal"
	"fleet-console/internal/config"
	"fleet-console/internal/platform/logger"
	"fleet-console/internal/ports"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// consoleApp holds what every command needs. The caller must defer Close().
type consoleApp struct {
	cfg     *config.Config
	log     *zap.Logger
	client  *fleetapi.Client
	journal ports.Journal

	closeJournal func() error
}

// newApp reads the config and connects the API client and the journal.
func newApp(cmd *cobra.Command) (*consoleApp, error) {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	client, err := fleetapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout.Duration)
	if err != nil {
		return nil, fmt.Errorf("creating api client: %w", err)
	}

	j, closeJournal, err := journal.Open(cfg.Journal)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	return &consoleApp{
		cfg:          cfg,
		log:          log,
		client:       client,
		journal:      j,
		closeJournal: closeJournal,
	}, nil
}

// loadConfig reads the config named by --config and builds the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, logger.New(cfg.Log.Level), nil
}

// Close releases the journal. Sync errors on a console stderr are ignored.
func (a *consoleApp) Close() error {
	_ = a.log.Sync()
	return a.closeJournal()
}

var rootCmd = &cobra.Command{
	Use:          "fleetconsole",
	Short:        "Fleet logistics admin console",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "fleetconsole.toml", "path to the TOML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(trucksCmd, driversCmd, usersCmd, deliveriesCmd)
	rootCmd.AddCommand(dashboardCmd, reportsCmd, journalCmd)
}
