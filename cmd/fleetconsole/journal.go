package main

import (
	"fleet-console/internal/adapters/journal"
	"fleet-console/internal/domain"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the audit journal of console mutations",
}

var journalMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply journal migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		appCfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg := appCfg.Journal
		if cfg.Driver == journal.DriverNone {
			fmt.Fprintln(cmd.OutOrStdout(), "Journal is disabled.")
			return nil
		}

		conn, err := journal.Connect(cfg)
		if err != nil {
			return fmt.Errorf("opening journal database: %w", err)
		}
		defer conn.Close()

		if err := journal.MigrateUp(conn, cfg.Driver); err != nil {
			return err
		}
		version, dirty, err := journal.Version(conn, cfg.Driver)
		if err != nil {
			return err
		}
		log.Info("journal migrated", zap.String("driver", cfg.Driver), zap.Uint("version", version))
		fmt.Fprintf(cmd.OutOrStdout(), "Journal schema at version %d (dirty=%t)\n", version, dirty)
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print recent journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.journal.Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("reading journal: %w", err)
		}

		t := domain.Table{Header: []string{"At", "Resource", "Action", "Record", "Summary"}}
		for _, e := range entries {
			t.Rows = append(t.Rows, []string{
				e.At.Local().Format(time.DateTime), e.Resource, e.Action, strconv.Itoa(e.RecordID), e.Summary,
			})
		}
		return printTable(cmd.OutOrStdout(), t)
	},
}

func init() {
	journalListCmd.Flags().Int("limit", 50, "number of entries to print")
	journalCmd.AddCommand(journalMigrateCmd, journalListCmd)
}
