package services

import (
	"context"
	"fleet-console/internal/domain"
	"fleet-console/internal/ports"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// DashboardScreen shows the three overview cards. Each card loads on its own;
// a failed card shows zero values and its own notice.
type DashboardScreen struct {
	Summary   Card[domain.Summary]
	Financial Card[domain.FinancialSummary]
	Alerts    Card[domain.Alerts]

	api ports.Dashboard
}

func NewDashboardScreen(api ports.Dashboard) *DashboardScreen {
	return &DashboardScreen{api: api}
}

func (s *DashboardScreen) Mount(ctx context.Context) error {
	var g errgroup.Group
	g.Go(s.Summary.load(ctx, s.api.Summary))
	g.Go(s.Financial.load(ctx, s.api.FinancialSummary))
	g.Go(s.Alerts.load(ctx, s.api.Alerts))
	_ = g.Wait()

	s.Summary.settle("dashboard", "Error fetching summary")
	s.Financial.settle("dashboard", "Error fetching financial summary")
	s.Alerts.settle("dashboard", "Error fetching alerts")

	return multierr.Combine(s.Summary.Err(), s.Financial.Err(), s.Alerts.Err())
}

// AlertCounts are the sizes of the three alert lists.
type AlertCounts struct {
	Valuable                    int
	ElectronicsWithoutInsurance int
	Dangerous                   int
}

func (s *DashboardScreen) AlertCounts() AlertCounts {
	a := s.Alerts.Data
	return AlertCounts{
		Valuable:                    len(a.ValuableDeliveries),
		ElectronicsWithoutInsurance: len(a.ElectronicsWithoutInsurance),
		Dangerous:                   len(a.DangerousDeliveries),
	}
}
