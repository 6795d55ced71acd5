package domain

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func TestJoinResolvesLabels(t *testing.T) {
	trucks := []Truck{
		{ID: 1, Model: "Volvo FH", Plate: "ABC-1234"},
		{ID: 2, Model: "Scania R", Plate: "XYZ-9876"},
	}
	drivers := []Driver{
		{ID: 7, Name: "Ana"},
		{ID: 8, Name: "Bruno"},
	}

	var deliveries []Delivery
	raw := `[
		{"id": 1, "truckId": 2, "driverId": "8", "cargoType": "Food", "value": 100, "destination": "Recife", "status": "Pending"},
		{"id": 2, "truckId": 99, "driverId": 42, "cargoType": "Food", "value": 100, "destination": "Natal", "status": "Pending"},
		{"id": 3, "truckId": "1", "driverId": "7 ", "cargoType": "Food", "value": 100, "destination": "Olinda", "status": "Pending"}
	]`
	if err := json.Unmarshal([]byte(raw), &deliveries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := Join(deliveries, trucks, drivers)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	if rows[0].TruckModel != "Scania R - (XYZ-9876)" {
		t.Errorf("rows[0].TruckModel = %q", rows[0].TruckModel)
	}
	if rows[0].DriverName != "(8) - Bruno" {
		t.Errorf("rows[0].DriverName = %q", rows[0].DriverName)
	}

	// dangling references
	if rows[1].TruckModel != UnknownLabel {
		t.Errorf("rows[1].TruckModel = %q, want %q", rows[1].TruckModel, UnknownLabel)
	}
	if rows[1].DriverName != UnknownLabel {
		t.Errorf("rows[1].DriverName = %q, want %q", rows[1].DriverName, UnknownLabel)
	}

	// truck ids match exactly, driver ids are coerced
	if rows[2].TruckModel != UnknownLabel {
		t.Errorf("rows[2].TruckModel = %q, want %q", rows[2].TruckModel, UnknownLabel)
	}
	if rows[2].DriverName != "(7) - Ana" {
		t.Errorf("rows[2].DriverName = %q", rows[2].DriverName)
	}
}

func TestJoinWithEmptyCollections(t *testing.T) {
	deliveries := []Delivery{{ID: 1, TruckID: RefTo(99), DriverID: RefTo(3)}}

	rows := Join(deliveries, nil, nil)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].TruckModel != UnknownLabel || rows[0].DriverName != UnknownLabel {
		t.Fatalf("got %q / %q, want Unknown labels", rows[0].TruckModel, rows[0].DriverName)
	}
}

func TestDeliveryCompletedOnlyChangesStatus(t *testing.T) {
	var d Delivery
	raw := `{"id": 5, "truckId": 1, "driverId": "2", "cargoType": "Fuel", "value": "45000.5", "destination": "Recife", "hasInsurance": true, "status": "Pending"}`
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := d.Completed()
	if done.Status != DeliveryCompleted {
		t.Fatalf("status = %q, want %q", done.Status, DeliveryCompleted)
	}

	done.Status = d.Status
	if !reflect.DeepEqual(done, d) {
		t.Fatalf("completed record differs beyond status: %+v vs %+v", done, d)
	}

	out, err := json.Marshal(d.Completed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":5,"truckId":1,"driverId":"2","cargoType":"Fuel","value":"45000.5","destination":"Recife","hasInsurance":true,"status":"Completed"}`
	if string(out) != want {
		t.Fatalf("body = %s, want %s", out, want)
	}
}

func TestDeliveryKeepsReceivedObject(t *testing.T) {
	var d Delivery
	raw := `{"id": 10, "truckId": 1e1, "driverId": "1", "cargoType": "Fuel", "value": "45000.50",
		"destination": "Recife", "hasInsurance": false, "status": "Pending", "date": "2024-05-01",
		"meta": {"source": "import"}}`
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := json.Marshal(d.Completed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":10,"truckId":1e1,"driverId":"1","cargoType":"Fuel","value":"45000.50","destination":"Recife","hasInsurance":false,"status":"Completed","date":"2024-05-01","meta":{"source":"import"}}`
	if string(out) != want {
		t.Fatalf("body = %s, want %s", out, want)
	}

	// an edited field takes its new value, untouched ones keep their form
	edited := d
	edited.Value = 50000
	out, err = json.Marshal(edited)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = `{"id":10,"truckId":1e1,"driverId":"1","cargoType":"Fuel","value":50000,"destination":"Recife","hasInsurance":false,"status":"Pending","date":"2024-05-01","meta":{"source":"import"}}`
	if string(out) != want {
		t.Fatalf("body = %s, want %s", out, want)
	}
}

func TestDeliveryFromFormEncodesFields(t *testing.T) {
	d := Delivery{TruckID: RefTo(1), DriverID: ParseRef("2"), CargoType: "Food", Value: 10, Destination: "Natal", Status: DeliveryPending}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"truckId":1,"driverId":2,"cargoType":"Food","value":10,"destination":"Natal","hasInsurance":false,"status":"Pending"}`
	if string(out) != want {
		t.Fatalf("body = %s, want %s", out, want)
	}
}

func TestDeliveryValidateValue(t *testing.T) {
	base := Delivery{TruckID: RefTo(1), DriverID: RefTo(2), CargoType: "Food", Destination: "Natal"}

	tests := []struct {
		name  string
		value Amount
		want  string
	}{
		{"zero", 0, "value is required"},
		{"negative", -1, "value must not be negative"},
		{"nan", Amount(math.NaN()), "value must be a number"},
		{"inf", Amount(math.Inf(1)), "value must be a number"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := base
			d.Value = tc.value
			err := d.Validate()
			if err == nil || err.Error() != tc.want {
				t.Fatalf("Validate() = %v, want %q", err, tc.want)
			}
		})
	}

	base.Value = 0.01
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewDeliveryForcesPending(t *testing.T) {
	d := NewDelivery(Delivery{ID: 4, Status: DeliveryCompleted})
	if d.Status != DeliveryPending {
		t.Fatalf("status = %q, want %q", d.Status, DeliveryPending)
	}
	if d.ID != 0 {
		t.Fatalf("id = %d, want 0", d.ID)
	}
}

func TestDeliveryTags(t *testing.T) {
	tests := []struct {
		name string
		d    Delivery
		want []string
	}{
		{"insured electronics", Delivery{CargoType: "Electronics", HasInsurance: true, Value: 100}, []string{TagInsured}},
		{"uninsured electronics", Delivery{CargoType: "Eletrônicos", Value: 100}, []string{TagUninsured}},
		{"fuel", Delivery{CargoType: "Fuel", Value: 100}, []string{TagHazardous}},
		{"high value", Delivery{CargoType: "Food", Value: 30000.01}, []string{TagHighValue}},
		{"threshold is exclusive", Delivery{CargoType: "Food", Value: 30000}, nil},
		{"hazardous and valuable", Delivery{CargoType: "Combustível", Value: 50000}, []string{TagHazardous, TagHighValue}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.d.Tags()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tags() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDeliveryFilter(t *testing.T) {
	deliveries := []Delivery{
		{ID: 1, TruckID: RefTo(1), Destination: "Recife"},
		{ID: 2, TruckID: RefTo(2), Destination: "Natal"},
		{ID: 3, TruckID: ParseRef("x1"), Destination: "Recife Antigo"},
	}

	f := DeliveryFilter{Search: "recife", TruckID: 1}
	var got []int
	for _, d := range deliveries {
		if f.Match(d) {
			got = append(got, d.ID)
		}
	}
	if !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("matched %v, want [1]", got)
	}
}
