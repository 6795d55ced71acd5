package services

import (
	"context"
	"encoding/json"
	"errors"
	"fleet-console/internal/domain"
	"fleet-console/internal/ports"
	"fleet-console/internal/ports/mocks"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deliveriesDeps struct {
	deliveries *mocks.MockResource[domain.Delivery]
	trucks     *mocks.MockResource[domain.Truck]
	drivers    *mocks.MockResource[domain.Driver]
	catalog    *mocks.MockCatalog
	journal    *mocks.MockJournal
}

func newDeliveriesDeps(t *testing.T) deliveriesDeps {
	ctrl := gomock.NewController(t)
	return deliveriesDeps{
		deliveries: mocks.NewMockResource[domain.Delivery](ctrl),
		trucks:     mocks.NewMockResource[domain.Truck](ctrl),
		drivers:    mocks.NewMockResource[domain.Driver](ctrl),
		catalog:    mocks.NewMockCatalog(ctrl),
		journal:    mocks.NewMockJournal(ctrl),
	}
}

func (d deliveriesDeps) screen() *DeliveriesScreen {
	return NewDeliveriesScreen(d.deliveries, d.trucks, d.drivers, d.catalog, d.journal)
}

func (d deliveriesDeps) expectCatalog() {
	d.catalog.EXPECT().Destinations(gomock.Any()).Return([]domain.Destination{{ID: 1, Local: "Recife"}}, nil)
	d.catalog.EXPECT().CargoTypes(gomock.Any()).Return([]domain.CargoType{{ID: 1, Tipo: "Fuel"}}, nil)
}

func deliveriesFixture(t *testing.T) []domain.Delivery {
	t.Helper()
	var out []domain.Delivery
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": 10, "truckId": 1, "driverId": "1", "cargoType": "Fuel", "value": "100.00",
		 "destination": "Recife", "hasInsurance": false, "status": "Pending", "date": "2024-05-01"},
		{"id": 11, "truckId": 99, "driverId": 42, "cargoType": "Electronics", "value": "45000.50",
		 "destination": "Natal", "hasInsurance": true, "status": "Pending"}
	]`), &out))
	return out
}

func TestDeliveriesScreen_MountJoins(t *testing.T) {
	d := newDeliveriesDeps(t)
	d.deliveries.EXPECT().List(gomock.Any()).Return(deliveriesFixture(t), nil)
	d.trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil)
	d.drivers.EXPECT().List(gomock.Any()).Return([]domain.Driver{{ID: 1, Name: "Ana"}}, nil)
	d.expectCatalog()

	s := d.screen()
	require.NoError(t, s.Mount(context.Background()))
	assert.True(t, s.Notice.IsZero())

	rows := s.Rows()
	require.Len(t, rows, 2)

	assert.Equal(t, "X - (AAA-1)", rows[0].TruckModel)
	assert.Equal(t, "(1) - Ana", rows[0].DriverName)
	assert.Equal(t, []string{domain.TagHazardous}, rows[0].Tags)

	assert.Equal(t, domain.UnknownLabel, rows[1].TruckModel)
	assert.Equal(t, domain.UnknownLabel, rows[1].DriverName)
	assert.Equal(t, []string{domain.TagInsured, domain.TagHighValue}, rows[1].Tags)

	s.SetFilter(domain.DeliveryFilter{Search: "NAT"})
	rows = s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 11, rows[0].ID)

	assert.Len(t, s.TruckOptions(), 2)
	assert.Equal(t, Option{Value: "1", Label: "(1) - Ana"}, s.DriverOptions()[0])
}

func TestDeliveriesScreen_MountPartialFailure(t *testing.T) {
	d := newDeliveriesDeps(t)
	d.deliveries.EXPECT().List(gomock.Any()).Return(deliveriesFixture(t), nil)
	d.trucks.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))
	d.drivers.EXPECT().List(gomock.Any()).Return([]domain.Driver{{ID: 1, Name: "Ana"}}, nil)
	d.catalog.EXPECT().Destinations(gomock.Any()).Return(nil, errors.New("down"))
	d.catalog.EXPECT().CargoTypes(gomock.Any()).Return([]domain.CargoType{{ID: 1, Tipo: "Fuel"}}, nil)

	s := d.screen()
	require.Error(t, s.Mount(context.Background()))

	assert.Equal(t, Notice{
		Kind: NoticeError,
		Text: "Error fetching trucks; Error fetching destinations",
	}, s.Notice)

	rows := s.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, domain.UnknownLabel, rows[0].TruckModel)
	assert.Equal(t, "(1) - Ana", rows[0].DriverName)
	assert.Len(t, s.CargoTypes, 1)
	assert.Empty(t, s.Destinations)
}

func TestDeliveriesScreen_CompleteSendsFullRecord(t *testing.T) {
	d := newDeliveriesDeps(t)
	fixture := deliveriesFixture(t)

	d.deliveries.EXPECT().List(gomock.Any()).Return(fixture, nil)
	d.trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil).Times(2)
	d.drivers.EXPECT().List(gomock.Any()).Return([]domain.Driver{}, nil).Times(2)
	d.expectCatalog()

	d.deliveries.EXPECT().Update(gomock.Any(), 10, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, got domain.Delivery) (domain.Delivery, error) {
			body, err := json.Marshal(got)
			require.NoError(t, err)
			// keys the console does not model and the string value come back as received
			assert.JSONEq(t, `{"id": 10, "truckId": 1, "driverId": "1", "cargoType": "Fuel", "value": "100.00",
				"destination": "Recife", "hasInsurance": false, "status": "Completed", "date": "2024-05-01"}`, string(body))
			return got, nil
		})
	d.journal.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e ports.JournalEntry) error {
			assert.Equal(t, ActionComplete, e.Action)
			assert.Equal(t, 10, e.RecordID)
			return nil
		})

	completed := fixture[0].Completed()
	d.deliveries.EXPECT().List(gomock.Any()).Return([]domain.Delivery{completed, fixture[1]}, nil)

	s := d.screen()
	require.NoError(t, s.Mount(context.Background()))
	require.NoError(t, s.Complete(context.Background(), 10))

	assert.Equal(t, Notice{Kind: NoticeSuccess, Text: "Delivery completed successfully"}, s.Notice)
	assert.True(t, s.State.Items[0].IsCompleted())
}

func TestDeliveriesScreen_CompleteFailure(t *testing.T) {
	d := newDeliveriesDeps(t)
	d.deliveries.EXPECT().List(gomock.Any()).Return(deliveriesFixture(t), nil)
	d.trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil)
	d.drivers.EXPECT().List(gomock.Any()).Return([]domain.Driver{}, nil)
	d.expectCatalog()
	d.deliveries.EXPECT().Update(gomock.Any(), 10, gomock.Any()).Return(domain.Delivery{}, errors.New("boom"))

	s := d.screen()
	require.NoError(t, s.Mount(context.Background()))

	require.Error(t, s.Complete(context.Background(), 10))
	assert.Equal(t, Notice{Kind: NoticeError, Text: "Error completing delivery"}, s.Notice)
	assert.False(t, s.State.Items[0].IsCompleted())

	assert.ErrorIs(t, s.Complete(context.Background(), 77), ErrNotFound)
}

func TestDeliveriesScreen_CreateForcesPending(t *testing.T) {
	d := newDeliveriesDeps(t)
	d.deliveries.EXPECT().List(gomock.Any()).Return([]domain.Delivery{}, nil)
	d.trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil).Times(2)
	d.drivers.EXPECT().List(gomock.Any()).Return([]domain.Driver{}, nil).Times(2)
	d.expectCatalog()

	form := domain.Delivery{
		TruckID: domain.RefTo(1), DriverID: domain.RefTo(1), CargoType: "Fuel",
		Value: 10, Destination: "Recife", Status: domain.DeliveryCompleted,
	}
	sent := form
	sent.Status = domain.DeliveryPending

	d.deliveries.EXPECT().Create(gomock.Any(), sent).Return(sent.WithKey(5), nil)
	d.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
	d.deliveries.EXPECT().List(gomock.Any()).Return([]domain.Delivery{sent.WithKey(5)}, nil)

	s := d.screen()
	require.NoError(t, s.Mount(context.Background()))
	s.New()
	require.NoError(t, s.Submit(context.Background(), form))

	assert.Equal(t, []domain.Delivery{sent.WithKey(5)}, s.State.Items)
	assert.False(t, s.State.Modal.Open)
}

func TestDeliveriesScreen_SubmitValidation(t *testing.T) {
	d := newDeliveriesDeps(t)
	d.deliveries.EXPECT().List(gomock.Any()).Return([]domain.Delivery{}, nil)
	d.trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil)
	d.drivers.EXPECT().List(gomock.Any()).Return([]domain.Driver{}, nil)
	d.expectCatalog()

	s := d.screen()
	require.NoError(t, s.Mount(context.Background()))
	s.New()

	var ve *domain.ValidationError
	require.ErrorAs(t, s.Submit(context.Background(), domain.Delivery{CargoType: "Fuel"}), &ve)
	assert.Equal(t, "truckId", ve.Field)
	assert.True(t, s.State.Modal.Open)
}

func TestDeliveriesScreen_SubmitRejectsBadValue(t *testing.T) {
	tests := []struct {
		name  string
		value domain.Amount
		want  string
	}{
		{"empty", 0, "value is required"},
		{"nan", domain.Amount(math.NaN()), "value must be a number"},
		{"inf", domain.Amount(math.Inf(-1)), "value must be a number"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeliveriesDeps(t)
			d.deliveries.EXPECT().List(gomock.Any()).Return([]domain.Delivery{}, nil)
			d.trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil)
			d.drivers.EXPECT().List(gomock.Any()).Return([]domain.Driver{}, nil)
			d.expectCatalog()

			s := d.screen()
			require.NoError(t, s.Mount(context.Background()))
			s.New()

			form := domain.Delivery{
				TruckID: domain.RefTo(1), DriverID: domain.RefTo(1), CargoType: "Fuel",
				Value: tc.value, Destination: "Recife",
			}
			var ve *domain.ValidationError
			require.ErrorAs(t, s.Submit(context.Background(), form), &ve)
			assert.Equal(t, "value", ve.Field)
			assert.Equal(t, Notice{Kind: NoticeError, Text: tc.want}, s.Notice)
			assert.True(t, s.State.Modal.Open)
		})
	}
}
