package services

import (
	"context"
	"fleet-console/internal/domain"
	"fleet-console/internal/ports"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// DriversScreen manages drivers. The trucks collection is fetched alongside
// to fill the associated truck select and resolve the truck model filter.
type DriversScreen struct {
	*CRUDScreen[domain.Driver, domain.DriverFilter]

	Trucks []domain.Truck

	trucks ports.Resource[domain.Truck]
}

func NewDriversScreen(
	api ports.Resource[domain.Driver],
	trucks ports.Resource[domain.Truck],
	journal ports.Journal,
) *DriversScreen {
	s := newCRUDScreen[domain.Driver, domain.DriverFilter]("drivers", "drivers", api, journal, Messages{
		Fetch:   "Error fetching drivers",
		Add:     "Error adding driver",
		Update:  "Error updating driver",
		Delete:  "Error deleting driver",
		Added:   "Driver added successfully",
		Updated: "Driver updated successfully",
		Deleted: "Driver deleted successfully",
	})
	s.onCreate = domain.NewDriver
	s.onUpdate = func(current, form domain.Driver) domain.Driver {
		form.DeliveriesCompleted = current.DeliveriesCompleted
		return form
	}
	s.describe = domain.Driver.Label

	return &DriversScreen{
		CRUDScreen: s,
		Trucks:     []domain.Truck{},
		trucks:     trucks,
	}
}

// Mount fetches drivers and trucks in parallel.
func (s *DriversScreen) Mount(ctx context.Context) error {
	var (
		g          errgroup.Group
		driversErr error
		trucksErr  error
	)
	g.Go(func() error {
		driversErr = s.CRUDScreen.Mount(ctx)
		return nil
	})
	g.Go(fetchInto(ctx, &s.Trucks, &trucksErr, s.trucks.List))
	_ = g.Wait()

	if trucksErr != nil {
		s.Notice = s.Notice.join(errorNotice(s.name, "Error fetching trucks", trucksErr))
	}
	s.SetFilter(s.State.Filter)

	return multierr.Combine(driversErr, trucksErr)
}

func (s *DriversScreen) SetFilter(f domain.DriverFilter) {
	s.CRUDScreen.SetFilter(f.WithTrucks(s.Trucks))
}

// TruckModels lists the distinct models of the fetched trucks.
func (s *DriversScreen) TruckModels() []string {
	return domain.TruckModels(s.Trucks)
}

// TruckLabel is the display label of a driver's associated truck, empty when
// the driver has none and UnknownLabel when the truck is not in the fleet.
func (s *DriversScreen) TruckLabel(ref domain.Ref) string {
	if ref.IsZero() {
		return ""
	}
	if t, ok := s.findTruck(ref); ok {
		return t.Label()
	}
	return domain.UnknownLabel
}

// HasTruck reports whether ref resolves to one of the fetched trucks.
func (s *DriversScreen) HasTruck(ref domain.Ref) bool {
	_, ok := s.findTruck(ref)
	return ok
}

func (s *DriversScreen) findTruck(ref domain.Ref) (domain.Truck, bool) {
	for _, t := range s.Trucks {
		if ref.Is(t.ID) {
			return t, true
		}
	}
	return domain.Truck{}, false
}
