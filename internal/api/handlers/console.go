package handlers

import (
	"fleet-console/internal/api/dto"
	"fleet-console/internal/domain"
	"fleet-console/internal/ports"
	"fleet-console/internal/services"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

// Console serves the HTML screens. Every request mounts fresh view models;
// nothing is cached between requests.
type Console struct {
	Trucks     ports.Resource[domain.Truck]
	Drivers    ports.Resource[domain.Driver]
	Deliveries ports.Resource[domain.Delivery]
	Users      ports.Resource[domain.User]
	Catalog    ports.Catalog
	Dashboard  ports.Dashboard
	Reports    ports.Reports
	Journal    ports.Journal
}

// Register adds every console route to r.
func (c *Console) Register(r *mux.Router) {
	r.HandleFunc("/", c.DashboardPage).Methods(http.MethodGet)

	c.fleetPage().register(r)
	c.driversPage().register(r)
	c.settingsPage().register(r)
	c.deliveriesPage().register(r)
	r.HandleFunc("/entregas/{id:[0-9]+}/complete", c.CompleteDelivery).Methods(http.MethodPost)

	r.HandleFunc("/relatorios", c.ReportsPage).Methods(http.MethodGet)
	r.HandleFunc("/relatorios/{kind}.csv", c.ReportCSV).Methods(http.MethodGet)
}

func (c *Console) fleetPage() crudPage[domain.Truck, domain.TruckFilter, *services.FleetScreen] {
	return crudPage[domain.Truck, domain.TruckFilter, *services.FleetScreen]{
		path:  "/frota",
		title: "Fleet",
		page:  "fleet",
		newScreen: func() *services.FleetScreen {
			return services.NewFleetScreen(c.Trucks, c.Journal)
		},
		decodeForm:   noError(dto.DecodeTruck),
		decodeFilter: dto.TruckFilter,
	}
}

func (c *Console) driversPage() crudPage[domain.Driver, domain.DriverFilter, *services.DriversScreen] {
	return crudPage[domain.Driver, domain.DriverFilter, *services.DriversScreen]{
		path:  "/motoristas",
		title: "Drivers",
		page:  "drivers",
		newScreen: func() *services.DriversScreen {
			return services.NewDriversScreen(c.Drivers, c.Trucks, c.Journal)
		},
		decodeForm:   noError(dto.DecodeDriver),
		decodeFilter: dto.DriverFilter,
	}
}

func (c *Console) settingsPage() crudPage[domain.User, domain.UserFilter, *services.SettingsScreen] {
	return crudPage[domain.User, domain.UserFilter, *services.SettingsScreen]{
		path:  "/configuracoes",
		title: "Settings",
		page:  "settings",
		newScreen: func() *services.SettingsScreen {
			return services.NewSettingsScreen(c.Users, c.Journal)
		},
		decodeForm:   noError(dto.DecodeUser),
		decodeFilter: dto.UserFilter,
	}
}

func (c *Console) deliveriesPage() crudPage[domain.Delivery, domain.DeliveryFilter, *services.DeliveriesScreen] {
	return crudPage[domain.Delivery, domain.DeliveryFilter, *services.DeliveriesScreen]{
		path:         "/entregas",
		title:        "Deliveries",
		page:         "deliveries",
		newScreen:    c.newDeliveriesScreen,
		decodeForm:   dto.DecodeDelivery,
		decodeFilter: dto.DeliveryFilter,
	}
}

func (c *Console) newDeliveriesScreen() *services.DeliveriesScreen {
	return services.NewDeliveriesScreen(c.Deliveries, c.Trucks, c.Drivers, c.Catalog, c.Journal)
}

// CompleteDelivery marks one delivery as completed.
func (c *Console) CompleteDelivery(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	s := c.newDeliveriesScreen()
	_ = s.Mount(r.Context())

	if err := s.Complete(r.Context(), id); err != nil {
		c.deliveriesPage().render(w, r, statusFor(err), s, services.Notice{})
		return
	}

	redirectWithFlash(w, r, "/entregas", s.LastNotice())
}

func noError[T any](decode func(url.Values) T) func(url.Values) (T, error) {
	return func(v url.Values) (T, error) {
		return decode(v), nil
	}
}
