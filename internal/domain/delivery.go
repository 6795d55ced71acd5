package domain

import (
	"math"
	"strings"
)

const (
	DeliveryPending   = "Pending"
	DeliveryCompleted = "Completed"
)

var DeliveryStatuses = []string{DeliveryPending, DeliveryCompleted}

// UnknownLabel is shown when a delivery refers to a truck or driver that is not in
// the fetched collections.
const UnknownLabel = "Unknown"

// HighValueThreshold is the value above which a delivery is tagged as high value.
const HighValueThreshold Amount = 30000

const (
	TagInsured   = "Insured"
	TagUninsured = "Uninsured"
	TagHazardous = "Hazardous"
	TagHighValue = "High value"
)

// Cargo type names as the API catalog spells them.
var (
	electronicsCargo = []string{"Electronics", "Eletrônicos"}
	fuelCargo        = []string{"Fuel", "Combustível"}
)

// Delivery is a shipment linking a truck, a driver, a cargo type and a destination.
type Delivery struct {
	ID           int    `json:"id,omitempty"`
	TruckID      Ref    `json:"truckId"`
	DriverID     Ref    `json:"driverId"`
	CargoType    string `json:"cargoType"`
	Value        Amount `json:"value"`
	Destination  string `json:"destination"`
	HasInsurance bool   `json:"hasInsurance"`
	Status       string `json:"status"`

	// raw is the object the record was decoded from, nil for form input.
	raw []byte
}

func (d Delivery) Key() int { return d.ID }

func (d Delivery) WithKey(id int) Delivery {
	d.ID = id
	return d
}

func (d Delivery) Validate() error {
	if d.TruckID.IsZero() {
		return &ValidationError{Field: "truckId"}
	}
	if d.DriverID.IsZero() {
		return &ValidationError{Field: "driverId"}
	}
	if err := required("cargoType", d.CargoType); err != nil {
		return err
	}
	switch v := float64(d.Value); {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &ValidationError{Field: "value", Reason: "must be a number"}
	case v < 0:
		return &ValidationError{Field: "value", Reason: "must not be negative"}
	case v == 0:
		return &ValidationError{Field: "value"}
	}
	return required("destination", d.Destination)
}

// NewDelivery applies the status every created delivery starts with.
func NewDelivery(d Delivery) Delivery {
	d.raw = nil
	d.ID = 0
	d.Status = DeliveryPending
	return d
}

// Completed returns the same record with only the status overwritten.
func (d Delivery) Completed() Delivery {
	d.Status = DeliveryCompleted
	return d
}

func (d Delivery) IsCompleted() bool {
	return d.Status == DeliveryCompleted
}

// Tags are presentational markers derived from the record's own fields.
func (d Delivery) Tags() []string {
	var tags []string
	switch {
	case isCargo(d.CargoType, electronicsCargo):
		if d.HasInsurance {
			tags = append(tags, TagInsured)
		} else {
			tags = append(tags, TagUninsured)
		}
	case isCargo(d.CargoType, fuelCargo):
		tags = append(tags, TagHazardous)
	}
	if d.Value > HighValueThreshold {
		tags = append(tags, TagHighValue)
	}
	return tags
}

func isCargo(cargo string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(cargo), n) {
			return true
		}
	}
	return false
}

// DeliveryRow is a delivery joined with the display labels of its truck and driver.
type DeliveryRow struct {
	Delivery
	TruckModel string
	DriverName string
	Tags       []string
}

// Join resolves truck and driver labels for each delivery. Lookups go through
// id-keyed maps built from the complete collections, so the result does not
// depend on which collection arrived first. Trucks match on the exact numeric
// id; drivers match after coercing the reference to a number. Dangling
// references resolve to UnknownLabel.
func Join(deliveries []Delivery, trucks []Truck, drivers []Driver) []DeliveryRow {
	trucksByID := make(map[int]Truck, len(trucks))
	for _, t := range trucks {
		if _, ok := trucksByID[t.ID]; !ok {
			trucksByID[t.ID] = t
		}
	}
	driversByID := make(map[int]Driver, len(drivers))
	for _, d := range drivers {
		if _, ok := driversByID[d.ID]; !ok {
			driversByID[d.ID] = d
		}
	}

	rows := make([]DeliveryRow, 0, len(deliveries))
	for _, d := range deliveries {
		row := DeliveryRow{
			Delivery:   d,
			TruckModel: UnknownLabel,
			DriverName: UnknownLabel,
			Tags:       d.Tags(),
		}
		if id, ok := d.TruckID.Exact(); ok {
			if t, ok := trucksByID[id]; ok {
				row.TruckModel = t.Label()
			}
		}
		if id, ok := d.DriverID.Coerce(); ok {
			if drv, ok := driversByID[id]; ok {
				row.DriverName = drv.Label()
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// DeliveryFilter narrows the deliveries list.
type DeliveryFilter struct {
	Search  string
	TruckID int
}

func (f DeliveryFilter) Match(d Delivery) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(d.Destination), strings.ToLower(f.Search)) {
		return false
	}
	if f.TruckID != 0 {
		id, ok := d.TruckID.Exact()
		if !ok || id != f.TruckID {
			return false
		}
	}
	return true
}
