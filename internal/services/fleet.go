package services

import (
	"fleet-console/internal/domain"
	"fleet-console/internal/ports"
)

// FleetScreen manages trucks.
type FleetScreen struct {
	*CRUDScreen[domain.Truck, domain.TruckFilter]
}

func NewFleetScreen(api ports.Resource[domain.Truck], journal ports.Journal) *FleetScreen {
	s := newCRUDScreen[domain.Truck, domain.TruckFilter]("fleet", "trucks", api, journal, Messages{
		Fetch:   "Error fetching trucks",
		Add:     "Error adding truck",
		Update:  "Error updating truck",
		Delete:  "Error deleting truck",
		Added:   "Truck added successfully",
		Updated: "Truck updated successfully",
		Deleted: "Truck deleted successfully",
	})
	s.describe = domain.Truck.Label
	return &FleetScreen{CRUDScreen: s}
}

// Models lists the distinct models of the fetched trucks, for the model filter.
func (s *FleetScreen) Models() []string {
	return domain.TruckModels(s.State.Items)
}
