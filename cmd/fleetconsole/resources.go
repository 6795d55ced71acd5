package main

import (
	"fleet-console/internal/domain"
	"fleet-console/internal/services"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var trucksCmd = &cobra.Command{
	Use:   "trucks",
	Short: "Manage the fleet",
}

var trucksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trucks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		search, _ := cmd.Flags().GetString("search")
		model, _ := cmd.Flags().GetString("model")
		status, _ := cmd.Flags().GetString("status")

		s := services.NewFleetScreen(a.client.Trucks(), a.journal)
		s.SetFilter(domain.TruckFilter{Search: search, Model: model, Status: status})
		if err := s.Mount(cmd.Context()); err != nil {
			printNotice(cmd.ErrOrStderr(), s.LastNotice())
			return err
		}

		t := domain.Table{Header: []string{"ID", "Model", "Plate", "Status"}}
		for _, tr := range s.State.Visible() {
			t.Rows = append(t.Rows, []string{strconv.Itoa(tr.ID), tr.Model, tr.Plate, tr.Status})
		}
		return printTable(cmd.OutOrStdout(), t)
	},
}

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "Manage drivers",
}

var driversListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drivers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		truckModel, _ := cmd.Flags().GetString("truck-model")

		s := services.NewDriversScreen(a.client.Drivers(), a.client.Trucks(), a.journal)
		s.SetFilter(domain.DriverFilter{Search: search, Status: status, TruckModel: truckModel})
		if err := s.Mount(cmd.Context()); err != nil {
			printNotice(cmd.ErrOrStderr(), s.LastNotice())
			if len(s.State.Items) == 0 {
				return err
			}
		}

		t := domain.Table{Header: []string{"ID", "Name", "Deliveries completed", "Status", "Truck"}}
		for _, d := range s.State.Visible() {
			t.Rows = append(t.Rows, []string{
				strconv.Itoa(d.ID), d.Name, strconv.Itoa(d.DeliveriesCompleted), d.Status, s.TruckLabel(d.AssociatedTruck),
			})
		}
		return printTable(cmd.OutOrStdout(), t)
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage console users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := services.NewSettingsScreen(a.client.Users(), a.journal)
		if err := s.Mount(cmd.Context()); err != nil {
			printNotice(cmd.ErrOrStderr(), s.LastNotice())
			return err
		}

		t := domain.Table{Header: []string{"ID", "Name", "Permissions"}}
		for _, u := range s.State.Visible() {
			t.Rows = append(t.Rows, []string{strconv.Itoa(u.ID), u.Name, strings.Join(u.Permissions, ", ")})
		}
		return printTable(cmd.OutOrStdout(), t)
	},
}

var deliveriesCmd = &cobra.Command{
	Use:   "deliveries",
	Short: "Manage deliveries",
}

var deliveriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deliveries with truck and driver labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		search, _ := cmd.Flags().GetString("search")
		truck, _ := cmd.Flags().GetInt("truck")

		s := newDeliveriesScreen(a)
		s.SetFilter(domain.DeliveryFilter{Search: search, TruckID: truck})
		if err := s.Mount(cmd.Context()); err != nil {
			printNotice(cmd.ErrOrStderr(), s.LastNotice())
			if len(s.State.Items) == 0 {
				return err
			}
		}

		t := domain.Table{Header: []string{"ID", "Truck", "Driver", "Cargo", "Value", "Destination", "Status", "Tags"}}
		for _, r := range s.Rows() {
			t.Rows = append(t.Rows, []string{
				strconv.Itoa(r.ID), r.TruckModel, r.DriverName, r.CargoType,
				"R$ " + r.Value.Format(), r.Destination, r.Status, strings.Join(r.Tags, ", "),
			})
		}
		return printTable(cmd.OutOrStdout(), t)
	},
}

var deliveriesCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a delivery as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid delivery id %q", args[0])
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		s := newDeliveriesScreen(a)
		_ = s.Mount(cmd.Context())

		err = s.Complete(cmd.Context(), id)
		printNotice(cmd.OutOrStdout(), s.LastNotice())
		return err
	},
}

func newDeliveriesScreen(a *consoleApp) *services.DeliveriesScreen {
	return services.NewDeliveriesScreen(
		a.client.Deliveries(), a.client.Trucks(), a.client.Drivers(), a.client, a.journal,
	)
}

func init() {
	trucksListCmd.Flags().String("search", "", "match model or plate")
	trucksListCmd.Flags().String("model", "", "exact truck model")
	trucksListCmd.Flags().String("status", "", "exact truck status")
	trucksCmd.AddCommand(trucksListCmd)

	driversListCmd.Flags().String("search", "", "match driver name")
	driversListCmd.Flags().String("status", "", "exact driver status")
	driversListCmd.Flags().String("truck-model", "", "model of the associated truck")
	driversCmd.AddCommand(driversListCmd)

	usersCmd.AddCommand(usersListCmd)

	deliveriesListCmd.Flags().String("search", "", "match destination")
	deliveriesListCmd.Flags().Int("truck", 0, "truck id")
	deliveriesCmd.AddCommand(deliveriesListCmd, deliveriesCompleteCmd)
}
