package services

import (
	"context"
	"fleet-console/internal/domain"
	"fleet-console/internal/ports"
	"fmt"
	"strconv"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// DeliveriesScreen manages deliveries. Rows are joined with the trucks and
// drivers collections for display; every mutation refetches.
type DeliveriesScreen struct {
	*CRUDScreen[domain.Delivery, domain.DeliveryFilter]

	Trucks       []domain.Truck
	Drivers      []domain.Driver
	Destinations []domain.Destination
	CargoTypes   []domain.CargoType

	trucks  ports.Resource[domain.Truck]
	drivers ports.Resource[domain.Driver]
	catalog ports.Catalog
}

func NewDeliveriesScreen(
	api ports.Resource[domain.Delivery],
	trucks ports.Resource[domain.Truck],
	drivers ports.Resource[domain.Driver],
	catalog ports.Catalog,
	journal ports.Journal,
) *DeliveriesScreen {
	s := newCRUDScreen[domain.Delivery, domain.DeliveryFilter]("deliveries", "deliveries", api, journal, Messages{
		Fetch:   "Error fetching deliveries",
		Add:     "Error adding delivery",
		Update:  "Error updating delivery",
		Delete:  "Error deleting delivery",
		Added:   "Delivery added successfully",
		Updated: "Delivery updated successfully",
		Deleted: "Delivery deleted successfully",
	})
	s.onCreate = domain.NewDelivery
	s.describe = func(d domain.Delivery) string {
		return d.CargoType + " to " + d.Destination
	}

	return &DeliveriesScreen{
		CRUDScreen:   s,
		Trucks:       []domain.Truck{},
		Drivers:      []domain.Driver{},
		Destinations: []domain.Destination{},
		CargoTypes:   []domain.CargoType{},
		trucks:       trucks,
		drivers:      drivers,
		catalog:      catalog,
	}
}

// Mount fetches deliveries, trucks, drivers, destinations and cargo types in
// parallel. Every failure adds to the notice; the other collections still load.
func (s *DeliveriesScreen) Mount(ctx context.Context) error {
	if err := s.fetch(ctx, true); err != nil {
		return fmt.Errorf("mount %s: %w", s.name, err)
	}
	return nil
}

// fetch loads the collections in parallel. A collection that fails to load
// keeps its current contents.
func (s *DeliveriesScreen) fetch(ctx context.Context, withCatalog bool) error {
	var (
		g               errgroup.Group
		deliveries      []domain.Delivery
		deliveriesErr   error
		trucksErr       error
		driversErr      error
		destinationsErr error
		cargoTypesErr   error
	)
	g.Go(fetchInto(ctx, &deliveries, &deliveriesErr, s.api.List))
	g.Go(fetchInto(ctx, &s.Trucks, &trucksErr, s.trucks.List))
	g.Go(fetchInto(ctx, &s.Drivers, &driversErr, s.drivers.List))
	if withCatalog {
		g.Go(fetchInto(ctx, &s.Destinations, &destinationsErr, s.catalog.Destinations))
		g.Go(fetchInto(ctx, &s.CargoTypes, &cargoTypesErr, s.catalog.CargoTypes))
	}
	_ = g.Wait()

	if deliveriesErr == nil {
		s.State = s.State.Loaded(deliveries)
	}

	for _, f := range []struct {
		err      error
		fallback string
	}{
		{deliveriesErr, s.messages.Fetch},
		{trucksErr, "Error fetching trucks"},
		{driversErr, "Error fetching drivers"},
		{destinationsErr, "Error fetching destinations"},
		{cargoTypesErr, "Error fetching cargo types"},
	} {
		if f.err != nil {
			s.Notice = s.Notice.join(errorNotice(s.name, f.fallback, f.err))
		}
	}

	return multierr.Combine(deliveriesErr, trucksErr, driversErr, destinationsErr, cargoTypesErr)
}

// Rows is the visible subset joined with truck and driver labels.
func (s *DeliveriesScreen) Rows() []domain.DeliveryRow {
	return domain.Join(s.State.Visible(), s.Trucks, s.Drivers)
}

func (s *DeliveriesScreen) Submit(ctx context.Context, form domain.Delivery) error {
	if err := s.CRUDScreen.Submit(ctx, form); err != nil {
		return err
	}
	s.refetch(ctx)
	return nil
}

func (s *DeliveriesScreen) Delete(ctx context.Context, id int) error {
	if err := s.CRUDScreen.Delete(ctx, id); err != nil {
		return err
	}
	s.refetch(ctx)
	return nil
}

// Complete puts the stored record back with only its status set to Completed.
// There is no guard against concurrent edits; the last write wins.
func (s *DeliveriesScreen) Complete(ctx context.Context, id int) error {
	rec, ok := s.State.Find(id)
	if !ok {
		err := fmt.Errorf("complete delivery id=%d: %w", id, ErrNotFound)
		s.Notice = errorNotice(s.name, "Error completing delivery", err)
		return err
	}

	if _, err := s.api.Update(ctx, id, rec.Completed()); err != nil {
		s.Notice = errorNotice(s.name, "Error completing delivery", err)
		return err
	}

	s.Notice = successNotice(s.name, "Delivery completed successfully")
	s.journal.record(ctx, ActionComplete, id, s.summary(rec))
	s.refetch(ctx)
	return nil
}

// refetch reloads the joined collections after a mutation, keeping the
// success notice and appending any fetch failure.
func (s *DeliveriesScreen) refetch(ctx context.Context) {
	_ = s.fetch(ctx, false)
}

// TruckOptions are the truck select entries, labelled "model - (plate)".
func (s *DeliveriesScreen) TruckOptions() []Option {
	out := make([]Option, 0, len(s.Trucks))
	for _, t := range s.Trucks {
		out = append(out, Option{Value: strconv.Itoa(t.ID), Label: t.Label()})
	}
	return out
}

// DriverOptions are the driver select entries, labelled "(id) - name".
func (s *DeliveriesScreen) DriverOptions() []Option {
	out := make([]Option, 0, len(s.Drivers))
	for _, d := range s.Drivers {
		out = append(out, Option{Value: strconv.Itoa(d.ID), Label: d.Label()})
	}
	return out
}

// Option is one entry of a form select.
type Option struct {
	Value string
	Label string
}
