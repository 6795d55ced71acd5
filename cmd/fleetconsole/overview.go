package main

import (
	"fleet-console/internal/domain"
	"fleet-console/internal/services"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the fleet, financial and alert summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := services.NewDashboardScreen(a.client)
		mountErr := s.Mount(cmd.Context())

		out := cmd.OutOrStdout()
		printNotice(cmd.ErrOrStderr(), s.Summary.Notice)
		printNotice(cmd.ErrOrStderr(), s.Financial.Notice)
		printNotice(cmd.ErrOrStderr(), s.Alerts.Notice)

		sum, fin, alerts := s.Summary.Data, s.Financial.Data, s.AlertCounts()
		err = printTable(out, domain.Table{
			Header: []string{"Card", "Metric", "Value"},
			Rows: [][]string{
				{"Summary", "Total trucks", strconv.Itoa(sum.TotalTrucks)},
				{"Summary", "Pending deliveries", strconv.Itoa(sum.TotalPendingDeliveries)},
				{"Summary", "Completed deliveries", strconv.Itoa(sum.TotalCompletedDeliveries)},
				{"Financial", "Today", "R$ " + fin.TotalValueToday.Format()},
				{"Financial", "This week", "R$ " + fin.TotalValueWeek.Format()},
				{"Financial", "This month", "R$ " + fin.TotalValueMonth.Format()},
				{"Alerts", "High value deliveries", strconv.Itoa(alerts.Valuable)},
				{"Alerts", "Electronics without insurance", strconv.Itoa(alerts.ElectronicsWithoutInsurance)},
				{"Alerts", "Dangerous deliveries", strconv.Itoa(alerts.Dangerous)},
			},
		})
		if err != nil {
			return err
		}
		return mountErr
	},
}

var reportsCmd = &cobra.Command{
	Use:       "reports <deliveries|drivers|trucks>",
	Short:     "Print one report",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.ReportDeliveries), string(domain.ReportDrivers), string(domain.ReportTrucks)},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := domain.ReportKind(args[0])
		if !kind.Valid() {
			return fmt.Errorf("unknown report %q", args[0])
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := services.NewReportsScreen(a.client)
		if err := s.MountKind(cmd.Context(), kind); err != nil {
			return fmt.Errorf("%s: %w", services.UserMessage(err, "Error fetching report"), err)
		}

		t, err := s.Table(kind)
		if err != nil {
			return err
		}
		return printTable(cmd.OutOrStdout(), t)
	},
}
