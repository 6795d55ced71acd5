package dto

import (
	"fleet-console/internal/domain"
	"net/url"
	"strconv"
)

// Filters are read from the query string of a list page.

func TruckFilter(q url.Values) domain.TruckFilter {
	return domain.TruckFilter{
		Search: field(q, "search"),
		Model:  field(q, "model"),
		Status: field(q, "status"),
	}
}

func DriverFilter(q url.Values) domain.DriverFilter {
	return domain.DriverFilter{
		Search:     field(q, "search"),
		Status:     field(q, "status"),
		TruckModel: field(q, "truck_model"),
	}
}

func UserFilter(q url.Values) domain.UserFilter {
	return domain.UserFilter{
		Search:     field(q, "search"),
		Permission: field(q, "permission"),
	}
}

// DeliveryFilter ignores a truck value that is not a number.
func DeliveryFilter(q url.Values) domain.DeliveryFilter {
	f := domain.DeliveryFilter{Search: field(q, "search")}
	if id, err := strconv.Atoi(field(q, "truck")); err == nil {
		f.TruckID = id
	}
	return f
}
