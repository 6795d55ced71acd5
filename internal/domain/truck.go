package domain

import "strings"

const (
	TruckAvailable  = "Available"
	TruckOnDelivery = "On-Delivery"
)

// TruckStatuses lists the statuses a truck may hold, in display order.
var TruckStatuses = []string{TruckAvailable, TruckOnDelivery}

// Truck is one vehicle of the fleet. Ids are assigned by the API.
type Truck struct {
	ID     int    `json:"id,omitempty"`
	Model  string `json:"model"`
	Plate  string `json:"plate"`
	Status string `json:"status"`
}

func (t Truck) Key() int { return t.ID }

func (t Truck) WithKey(id int) Truck {
	t.ID = id
	return t
}

func (t Truck) Validate() error {
	if err := required("model", t.Model); err != nil {
		return err
	}
	if err := required("plate", t.Plate); err != nil {
		return err
	}
	return required("status", t.Status)
}

// Label is the display form used wherever a delivery refers to the truck.
func (t Truck) Label() string {
	return t.Model + " - (" + t.Plate + ")"
}

// TruckFilter narrows the fleet list. Empty fields match everything.
type TruckFilter struct {
	Search string
	Model  string
	Status string
}

func (f TruckFilter) Match(t Truck) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Model), q) && !strings.Contains(strings.ToLower(t.Plate), q) {
			return false
		}
	}
	if f.Model != "" && t.Model != f.Model {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	return true
}

// TruckModels returns the distinct models of trucks in first-seen order.
func TruckModels(trucks []Truck) []string {
	seen := make(map[string]struct{}, len(trucks))
	out := make([]string, 0, len(trucks))
	for _, t := range trucks {
		if _, ok := seen[t.Model]; ok {
			continue
		}
		seen[t.Model] = struct{}{}
		out = append(out, t.Model)
	}
	return out
}
