package services

import (
	"context"
	"fleet-console/internal/domain"
	"fleet-console/internal/ports"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// ReportsScreen shows the three report tabs. A failed tab is empty and
// carries its own notice.
type ReportsScreen struct {
	Deliveries Card[[]domain.DeliveryReportRow]
	Drivers    Card[[]domain.DriverReportRow]
	Trucks     Card[[]domain.TruckReportRow]

	api ports.Reports
}

func NewReportsScreen(api ports.Reports) *ReportsScreen {
	return &ReportsScreen{api: api}
}

// Mount loads every tab in parallel.
func (s *ReportsScreen) Mount(ctx context.Context) error {
	var g errgroup.Group
	for _, kind := range domain.ReportKinds {
		g.Go(s.loader(ctx, kind))
	}
	_ = g.Wait()

	for _, kind := range domain.ReportKinds {
		s.settle(kind)
	}
	return multierr.Combine(s.Deliveries.Err(), s.Drivers.Err(), s.Trucks.Err())
}

// MountKind loads a single tab.
func (s *ReportsScreen) MountKind(ctx context.Context, kind domain.ReportKind) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown report %q", kind)
	}
	_ = s.loader(ctx, kind)()
	s.settle(kind)

	switch kind {
	case domain.ReportDeliveries:
		return s.Deliveries.Err()
	case domain.ReportDrivers:
		return s.Drivers.Err()
	default:
		return s.Trucks.Err()
	}
}

func (s *ReportsScreen) loader(ctx context.Context, kind domain.ReportKind) func() error {
	switch kind {
	case domain.ReportDeliveries:
		return s.Deliveries.load(ctx, s.api.DeliveriesReport)
	case domain.ReportDrivers:
		return s.Drivers.load(ctx, s.api.DriversReport)
	default:
		return s.Trucks.load(ctx, s.api.TrucksReport)
	}
}

func (s *ReportsScreen) settle(kind domain.ReportKind) {
	switch kind {
	case domain.ReportDeliveries:
		s.Deliveries.settle("reports", "Error fetching deliveries report")
	case domain.ReportDrivers:
		s.Drivers.settle("reports", "Error fetching drivers report")
	default:
		s.Trucks.settle("reports", "Error fetching trucks report")
	}
}

// Table flattens one tab for CSV or terminal output.
func (s *ReportsScreen) Table(kind domain.ReportKind) (domain.Table, error) {
	switch kind {
	case domain.ReportDeliveries:
		return domain.DeliveriesTable(s.Deliveries.Data), nil
	case domain.ReportDrivers:
		return domain.DriversTable(s.Drivers.Data), nil
	case domain.ReportTrucks:
		return domain.TrucksTable(s.Trucks.Data), nil
	}
	return domain.Table{}, fmt.Errorf("unknown report %q", kind)
}
