package services

import (
	"context"
	"encoding/json"
	"errors"
	"fleet-console/internal/domain"
	"fleet-console/internal/ports/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func driversFixture(t *testing.T) []domain.Driver {
	t.Helper()
	var drivers []domain.Driver
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": 1, "name": "Ana", "deliveriesCompleted": 4, "status": "Available", "associatedTruck": 1},
		{"id": 2, "name": "Bruno", "deliveriesCompleted": 0, "status": "Unavailable", "associatedTruck": 2},
		{"id": 3, "name": "Carla", "deliveriesCompleted": 1, "status": "Available"}
	]`), &drivers))
	return drivers
}

func TestDriversScreen_CreateAppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	drivers := mocks.NewMockResource[domain.Driver](ctrl)
	trucks := mocks.NewMockResource[domain.Truck](ctrl)

	drivers.EXPECT().List(gomock.Any()).Return([]domain.Driver{}, nil)
	trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil)

	form := domain.Driver{Name: "Davi", DeliveriesCompleted: 12, Status: domain.DriverUnavailable}
	sent := domain.Driver{Name: "Davi", DeliveriesCompleted: 0, Status: domain.DriverAvailable}
	drivers.EXPECT().Create(gomock.Any(), sent).Return(sent.WithKey(4), nil)

	s := NewDriversScreen(drivers, trucks, nil)
	require.NoError(t, s.Mount(context.Background()))
	s.New()
	require.NoError(t, s.Submit(context.Background(), form))

	assert.Equal(t, []domain.Driver{sent.WithKey(4)}, s.State.Items)
}

func TestDriversScreen_UpdateKeepsDeliveriesCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	drivers := mocks.NewMockResource[domain.Driver](ctrl)
	trucks := mocks.NewMockResource[domain.Truck](ctrl)

	fixture := driversFixture(t)
	drivers.EXPECT().List(gomock.Any()).Return(fixture, nil)
	trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil)
	drivers.EXPECT().Update(gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, d domain.Driver) (domain.Driver, error) {
			assert.Equal(t, 4, d.DeliveriesCompleted)
			assert.Equal(t, "Ana Maria", d.Name)
			return d, nil
		})

	s := NewDriversScreen(drivers, trucks, nil)
	require.NoError(t, s.Mount(context.Background()))
	require.NoError(t, s.Edit(1))

	form := s.State.Modal.Form
	form.Name = "Ana Maria"
	form.DeliveriesCompleted = 0
	require.NoError(t, s.Submit(context.Background(), form))
}

func TestDriversScreen_TruckModelFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	drivers := mocks.NewMockResource[domain.Driver](ctrl)
	trucks := mocks.NewMockResource[domain.Truck](ctrl)

	drivers.EXPECT().List(gomock.Any()).Return(driversFixture(t), nil)
	trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil)

	s := NewDriversScreen(drivers, trucks, nil)
	// filter set before mount is resolved once trucks arrive
	s.SetFilter(domain.DriverFilter{TruckModel: "Y"})
	require.NoError(t, s.Mount(context.Background()))

	visible := s.State.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Bruno", visible[0].Name)

	s.SetFilter(domain.DriverFilter{TruckModel: "X", Status: domain.DriverAvailable})
	visible = s.State.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Ana", visible[0].Name)
}

func TestDriversScreen_TrucksFailureStillListsDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	drivers := mocks.NewMockResource[domain.Driver](ctrl)
	trucks := mocks.NewMockResource[domain.Truck](ctrl)

	drivers.EXPECT().List(gomock.Any()).Return(driversFixture(t), nil)
	trucks.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))

	s := NewDriversScreen(drivers, trucks, nil)
	require.Error(t, s.Mount(context.Background()))

	assert.Len(t, s.State.Items, 3)
	assert.Empty(t, s.Trucks)
	assert.Equal(t, Notice{Kind: NoticeError, Text: "Error fetching trucks"}, s.Notice)
}

func TestDriversScreen_TruckLabelMatchesNumericIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	drivers := mocks.NewMockResource[domain.Driver](ctrl)
	trucks := mocks.NewMockResource[domain.Truck](ctrl)

	var fixture []domain.Driver
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": 1, "name": "Ana", "associatedTruck": 2.0},
		{"id": 2, "name": "Bruno", "associatedTruck": "2"},
		{"id": 3, "name": "Carla"}
	]`), &fixture))
	drivers.EXPECT().List(gomock.Any()).Return(fixture, nil)
	trucks.EXPECT().List(gomock.Any()).Return(fleet(), nil)

	s := NewDriversScreen(drivers, trucks, nil)
	require.NoError(t, s.Mount(context.Background()))

	assert.Equal(t, "Y - (BBB-2)", s.TruckLabel(fixture[0].AssociatedTruck))
	assert.True(t, s.HasTruck(fixture[0].AssociatedTruck))

	// a quoted id never matches, in the table or in the truck select
	assert.Equal(t, domain.UnknownLabel, s.TruckLabel(fixture[1].AssociatedTruck))
	assert.False(t, s.HasTruck(fixture[1].AssociatedTruck))
	assert.False(t, fixture[1].AssociatedTruck.Is(2))

	assert.Equal(t, "", s.TruckLabel(fixture[2].AssociatedTruck))

	s.SetFilter(domain.DriverFilter{TruckModel: "Y"})
	visible := s.State.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Ana", visible[0].Name)
}
