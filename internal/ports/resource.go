//go:generate mockgen -source ./resource.go -destination=./mocks/resource.go -package=mocks
package ports

import (
	"context"
	"fleet-console/internal/domain"
)

// Resource is the CRUD contract of one REST collection. Create and Update
// return the record as the API stored it.
type Resource[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, id int, record T) (T, error)
	Delete(ctx context.Context, id int) error
}

// Catalog exposes the read-only lookup collections used by delivery forms.
type Catalog interface {
	Destinations(ctx context.Context) ([]domain.Destination, error)
	CargoTypes(ctx context.Context) ([]domain.CargoType, error)
}

// Dashboard exposes the three aggregation endpoints of the home screen.
type Dashboard interface {
	Summary(ctx context.Context) (domain.Summary, error)
	FinancialSummary(ctx context.Context) (domain.FinancialSummary, error)
	Alerts(ctx context.Context) (domain.Alerts, error)
}

// Reports exposes the reporting endpoints.
type Reports interface {
	DeliveriesReport(ctx context.Context) ([]domain.DeliveryReportRow, error)
	DriversReport(ctx context.Context) ([]domain.DriverReportRow, error)
	TrucksReport(ctx context.Context) ([]domain.TruckReportRow, error)
}
