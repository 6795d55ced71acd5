package domain

import "strconv"

// Report rows are projections shaped by the reporting endpoints.

type DeliveryReportRow struct {
	ID     int    `json:"id"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

type DriverReportRow struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	AssociatedTruck     Ref    `json:"associatedTruck"`
	DeliveriesCompleted int    `json:"deliveriesCompleted"`
}

type TruckReportRow struct {
	ID     int    `json:"id"`
	Model  string `json:"model"`
	Plate  string `json:"plate"`
	Status string `json:"status"`
}

// ReportKind names one of the report collections.
type ReportKind string

const (
	ReportDeliveries ReportKind = "deliveries"
	ReportDrivers    ReportKind = "drivers"
	ReportTrucks     ReportKind = "trucks"
)

var ReportKinds = []ReportKind{ReportDeliveries, ReportDrivers, ReportTrucks}

func (k ReportKind) Valid() bool {
	switch k {
	case ReportDeliveries, ReportDrivers, ReportTrucks:
		return true
	}
	return false
}

// Table is a report flattened to a header and string cells, for CSV and CLI output.
type Table struct {
	Header []string
	Rows   [][]string
}

func DeliveriesTable(rows []DeliveryReportRow) Table {
	t := Table{Header: []string{"ID", "Date", "Status"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(r.ID), r.Date, r.Status})
	}
	return t
}

func DriversTable(rows []DriverReportRow) Table {
	t := Table{Header: []string{"ID", "Name", "Associated truck", "Deliveries completed"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.ID), r.Name, r.AssociatedTruck.String(), strconv.Itoa(r.DeliveriesCompleted),
		})
	}
	return t
}

func TrucksTable(rows []TruckReportRow) Table {
	t := Table{Header: []string{"ID", "Model", "Plate", "Status"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(r.ID), r.Model, r.Plate, r.Status})
	}
	return t
}
