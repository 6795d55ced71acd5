package domain

import (
	"strconv"
	"strings"
)

const (
	DriverAvailable   = "Available"
	DriverUnavailable = "Unavailable"
)

var DriverStatuses = []string{DriverAvailable, DriverUnavailable}

// Driver is a person who can be assigned to deliveries.
// DeliveriesCompleted is maintained by the API.
type Driver struct {
	ID                  int    `json:"id,omitempty"`
	Name                string `json:"name"`
	DeliveriesCompleted int    `json:"deliveriesCompleted"`
	Status              string `json:"status"`
	AssociatedTruck     Ref    `json:"associatedTruck,omitzero"`
}

func (d Driver) Key() int { return d.ID }

func (d Driver) WithKey(id int) Driver {
	d.ID = id
	return d
}

func (d Driver) Validate() error {
	return required("name", d.Name)
}

// Label is the display form used wherever a delivery refers to the driver.
func (d Driver) Label() string {
	return "(" + strconv.Itoa(d.ID) + ") - " + d.Name
}

// NewDriver applies the defaults every created driver starts with,
// whatever the form carried for those fields.
func NewDriver(d Driver) Driver {
	d.ID = 0
	d.DeliveriesCompleted = 0
	d.Status = DriverAvailable
	return d
}

// DriverFilter narrows the driver list. TruckModel keeps drivers whose
// associated truck has that model; it needs the fetched trucks, see WithTrucks.
type DriverFilter struct {
	Search     string
	Status     string
	TruckModel string

	truckModels map[int]string
}

// WithTrucks returns a copy of the filter able to resolve associated trucks.
func (f DriverFilter) WithTrucks(trucks []Truck) DriverFilter {
	f.truckModels = make(map[int]string, len(trucks))
	for _, t := range trucks {
		f.truckModels[t.ID] = t.Model
	}
	return f
}

func (f DriverFilter) Match(d Driver) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	if f.TruckModel != "" {
		id, ok := d.AssociatedTruck.Exact()
		if !ok {
			return false
		}
		model, ok := f.truckModels[id]
		if !ok || model != f.TruckModel {
			return false
		}
	}
	return true
}
