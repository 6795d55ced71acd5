package dto

import (
	"fleet-console/internal/domain"
	"net/url"
	"slices"
	"strings"
)

// Form decoders read url-encoded form posts into records. Missing fields are
// left empty for the record's own validation to report.

func DecodeTruck(v url.Values) domain.Truck {
	return domain.Truck{
		Model:  field(v, "model"),
		Plate:  field(v, "plate"),
		Status: field(v, "status"),
	}
}

func DecodeDriver(v url.Values) domain.Driver {
	return domain.Driver{
		Name:            field(v, "name"),
		Status:          field(v, "status"),
		AssociatedTruck: domain.ParseRef(v.Get("associatedTruck")),
	}
}

// DecodeUser keeps only the known permissions, each once.
func DecodeUser(v url.Values) domain.User {
	u := domain.User{Name: field(v, "name"), Permissions: []string{}}
	for _, p := range v["permissions"] {
		p = strings.TrimSpace(p)
		if slices.Contains(domain.Permissions, p) && !u.Has(p) {
			u.Permissions = append(u.Permissions, p)
		}
	}
	return u
}

// DecodeDelivery reads a delivery form. The value field is required and must be
// a number; the returned record carries whatever could be read either way.
func DecodeDelivery(v url.Values) (domain.Delivery, error) {
	d := domain.Delivery{
		TruckID:      domain.ParseRef(v.Get("truckId")),
		DriverID:     domain.ParseRef(v.Get("driverId")),
		CargoType:    field(v, "cargoType"),
		Destination:  field(v, "destination"),
		HasInsurance: truthy(v.Get("hasInsurance")),
		Status:       field(v, "status"),
	}

	raw := field(v, "value")
	if raw == "" {
		return d, &domain.ValidationError{Field: "value"}
	}
	amount, err := domain.ParseAmount(raw)
	if err != nil {
		return d, &domain.ValidationError{Field: "value", Reason: "must be a number"}
	}
	d.Value = amount
	return d, nil
}

func field(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "1", "yes", "sim":
		return true
	}
	return false
}
