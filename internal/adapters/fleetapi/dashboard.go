package fleetapi

import (
	"context"
	"fleet-console/internal/domain"
	"fleet-console/internal/platform/obs"
	"fmt"
	"net/http"
)

func (c *Client) Summary(ctx context.Context) (_ domain.Summary, err error) {
	defer obs.Time(ctx, "fleetapi.Summary")(&err)

	var out domain.Summary
	if err := c.call(ctx, http.MethodGet, "dashboard", "/api/dashboard/summary", nil, &out); err != nil {
		return domain.Summary{}, fmt.Errorf("dashboard summary: %w", err)
	}
	return out, nil
}

func (c *Client) FinancialSummary(ctx context.Context) (_ domain.FinancialSummary, err error) {
	defer obs.Time(ctx, "fleetapi.FinancialSummary")(&err)

	var out domain.FinancialSummary
	if err := c.call(ctx, http.MethodGet, "dashboard", "/api/dashboard/financial-summary", nil, &out); err != nil {
		return domain.FinancialSummary{}, fmt.Errorf("dashboard financial summary: %w", err)
	}
	return out, nil
}

func (c *Client) Alerts(ctx context.Context) (_ domain.Alerts, err error) {
	defer obs.Time(ctx, "fleetapi.Alerts")(&err)

	var out domain.Alerts
	if err := c.call(ctx, http.MethodGet, "dashboard", "/api/dashboard/alerts", nil, &out); err != nil {
		return domain.Alerts{}, fmt.Errorf("dashboard alerts: %w", err)
	}
	return out, nil
}

func (c *Client) DeliveriesReport(ctx context.Context) (_ []domain.DeliveryReportRow, err error) {
	defer obs.Time(ctx, "fleetapi.DeliveriesReport")(&err)

	out := []domain.DeliveryReportRow{}
	if err := c.call(ctx, http.MethodGet, "reports", "/api/reports/deliveries", nil, &out); err != nil {
		return nil, fmt.Errorf("deliveries report: %w", err)
	}
	return out, nil
}

func (c *Client) DriversReport(ctx context.Context) (_ []domain.DriverReportRow, err error) {
	defer obs.Time(ctx, "fleetapi.DriversReport")(&err)

	out := []domain.DriverReportRow{}
	if err := c.call(ctx, http.MethodGet, "reports", "/api/reports/drivers", nil, &out); err != nil {
		return nil, fmt.Errorf("drivers report: %w", err)
	}
	return out, nil
}

func (c *Client) TrucksReport(ctx context.Context) (_ []domain.TruckReportRow, err error) {
	defer obs.Time(ctx, "fleetapi.TrucksReport")(&err)

	out := []domain.TruckReportRow{}
	if err := c.call(ctx, http.MethodGet, "reports", "/api/reports/trucks", nil, &out); err != nil {
		return nil, fmt.Errorf("trucks report: %w", err)
	}
	return out, nil
}
